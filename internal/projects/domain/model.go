package domain

import (
	"time"

	"github.com/NetanelBaruch/Moddo/internal/feedback"
	"github.com/NetanelBaruch/Moddo/internal/printability"
)

// Project status values. The workflow is linear: a project moves
// prompt -> concepts -> model -> completed, and any stage may fail.
const (
	StatusPrompt    = "prompt"
	StatusConcepts  = "concepts"
	StatusModel     = "model"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Concept viewing angles produced by image generation.
const (
	AngleFront       = "front"
	AngleSide        = "side"
	AngleTop         = "top"
	AnglePerspective = "perspective"
)

// Concept is one AI-generated preview image of the product idea.
type Concept struct {
	Angle    string `json:"angle" firestore:"angle"`
	ImageURL string `json:"image_url" firestore:"image_url"`
}

// FeedbackEntry records one classified piece of user feedback.
type FeedbackEntry struct {
	Text       string               `json:"text" firestore:"text"`
	Type       feedback.Type        `json:"type" firestore:"type"`
	Parameters *feedback.Parameters `json:"parameters,omitempty" firestore:"parameters,omitempty"`
	CreatedAt  time.Time            `json:"created_at" firestore:"created_at"`
}

// ModelInfo describes the reconstructed 3D model.
type ModelInfo struct {
	Format        string              `json:"format" firestore:"format"`
	ObjectKey     string              `json:"object_key" firestore:"object_key"`
	Vertices      int                 `json:"vertices" firestore:"vertices"`
	Faces         int                 `json:"faces" firestore:"faces"`
	FileSizeBytes int64               `json:"file_size_bytes" firestore:"file_size_bytes"`
	Printability  printability.Report `json:"printability" firestore:"printability"`
}

// PrintFile describes the converted printable file.
type PrintFile struct {
	Format       string              `json:"format" firestore:"format"`
	ObjectKey    string              `json:"object_key" firestore:"object_key"`
	Vertices     int                 `json:"vertices" firestore:"vertices"`
	Faces        int                 `json:"faces" firestore:"faces"`
	VolumeCm3    float64             `json:"volume_cm3" firestore:"volume_cm3"`
	Printability printability.Report `json:"printability" firestore:"printability"`
}

// Project is the persisted workflow session.
type Project struct {
	ID        string          `json:"id" firestore:"id"`
	UserID    string          `json:"user_id" firestore:"user_id"`
	Prompt    string          `json:"prompt" firestore:"prompt"`
	Status    string          `json:"status" firestore:"status"`
	Concepts  []Concept       `json:"concepts,omitempty" firestore:"concepts,omitempty"`
	Feedback  []FeedbackEntry `json:"feedback,omitempty" firestore:"feedback,omitempty"`
	Model     *ModelInfo      `json:"model,omitempty" firestore:"model,omitempty"`
	PrintFile *PrintFile      `json:"print_file,omitempty" firestore:"print_file,omitempty"`
	CreatedAt time.Time       `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" firestore:"updated_at"`
}
