package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/NetanelBaruch/Moddo/internal/jobs/domain"
)

const (
	jobKeyPrefix     = "moddo:job:"     // Key for job data: moddo:job:{job_id}
	projectJobPrefix = "moddo:project:" // Latest job per project stage: moddo:project:{project_id}:{stage}
	jobTTL           = 24 * time.Hour   // Jobs are short-lived bookkeeping, not the source of truth
)

// JobRepository handles Redis operations for compute jobs.
type JobRepository struct {
	client *redis.Client
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(client *redis.Client) *JobRepository {
	return &JobRepository{client: client}
}

// Create stores a new job and indexes it as the latest job for its
// project stage.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.JobID == "" {
		job.JobID = uuid.New().String()
	}
	if job.Status == "" {
		job.Status = domain.StatusPending
	}
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.jobKey(job.JobID), data, jobTTL)
	pipe.Set(ctx, r.projectJobKey(job.ProjectID, job.Stage), job.JobID, jobTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Get retrieves a job by its ID.
func (r *JobRepository) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	data, err := r.client.Get(ctx, r.jobKey(jobID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job domain.Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job data: %w", err)
	}
	return &job, nil
}

// GetLatestForStage retrieves the most recent job for a project stage.
func (r *JobRepository) GetLatestForStage(ctx context.Context, projectID, stage string) (*domain.Job, error) {
	jobID, err := r.client.Get(ctx, r.projectJobKey(projectID, stage)).Result()
	if err == redis.Nil {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job id for project stage: %w", err)
	}
	return r.Get(ctx, jobID)
}

// SetStatus transitions a job to the given status. Completed and failed
// jobs get a completion timestamp; failed jobs record the error text.
func (r *JobRepository) SetStatus(ctx context.Context, jobID, status, errText string) (*domain.Job, error) {
	if !isValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	job, err := r.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Status = status
	job.Error = errText
	job.UpdatedAt = time.Now()
	if status == domain.StatusCompleted || status == domain.StatusFailed {
		now := time.Now()
		job.CompletedAt = &now
	}

	data, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job data: %w", err)
	}
	if err := r.client.Set(ctx, r.jobKey(job.JobID), data, jobTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job and its project-stage index entry.
func (r *JobRepository) Delete(ctx context.Context, jobID string) error {
	job, err := r.Get(ctx, jobID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.jobKey(jobID))
	pipe.Del(ctx, r.projectJobKey(job.ProjectID, job.Stage))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func isValidStatus(status string) bool {
	return status == domain.StatusPending ||
		status == domain.StatusProcessing ||
		status == domain.StatusCompleted ||
		status == domain.StatusFailed
}

func (r *JobRepository) jobKey(jobID string) string {
	return fmt.Sprintf("%s%s", jobKeyPrefix, jobID)
}

func (r *JobRepository) projectJobKey(projectID, stage string) string {
	return fmt.Sprintf("%s%s:%s", projectJobPrefix, projectID, stage)
}
