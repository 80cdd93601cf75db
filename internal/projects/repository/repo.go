package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NetanelBaruch/Moddo/internal/projects/domain"
)

const collection = "projects"

// ProjectRepository persists projects as Firestore documents.
type ProjectRepository struct {
	client *firestore.Client
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(client *firestore.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Create inserts a new project document for the given user.
func (r *ProjectRepository) Create(ctx context.Context, userID, prompt string) (*domain.Project, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id required")
	}
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    userID,
		Prompt:    prompt,
		Status:    domain.StatusPrompt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.client.Collection(collection).Doc(p.ID).Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Get fetches a project owned by the given user.
func (r *ProjectRepository) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	snap, err := r.client.Collection(collection).Doc(projectID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	if p.UserID != userID {
		// Ownership mismatch is reported as not-found, not forbidden.
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// List returns all projects for the given user, newest first.
func (r *ProjectRepository) List(ctx context.Context, userID string) ([]domain.Project, error) {
	iter := r.client.Collection(collection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []domain.Project{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Update rewrites the full project document.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	if _, err := r.client.Collection(collection).Doc(p.ID).Set(ctx, p); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project document by ID. Ownership is the caller's
// concern; the service fetches the project first anyway to clean up
// stored artifacts.
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	if _, err := r.client.Collection(collection).Doc(projectID).Delete(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// ListStaleFailed returns failed projects not updated since the cutoff.
// Used by the cleanup scheduler.
func (r *ProjectRepository) ListStaleFailed(ctx context.Context, cutoff time.Time) ([]domain.Project, error) {
	iter := r.client.Collection(collection).
		Where("status", "==", domain.StatusFailed).
		Where("updated_at", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	out := []domain.Project{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list stale projects: %w", err)
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}
