package domain

import "time"

// Job stages mirror the compute steps the backend delegates.
const (
	StageConcepts  = "concepts"
	StageModel     = "model"
	StagePrintFile = "print_file"
)

// Job status constants.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job tracks the state of one delegated compute step for a project.
type Job struct {
	JobID       string     `json:"job_id"`
	ProjectID   string     `json:"project_id"`
	UserID      string     `json:"user_id"`
	Stage       string     `json:"stage"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
