package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/NetanelBaruch/Moddo/internal/feedback"
	"github.com/NetanelBaruch/Moddo/internal/generation"
	jobsdomain "github.com/NetanelBaruch/Moddo/internal/jobs/domain"
	"github.com/NetanelBaruch/Moddo/internal/printability"
	"github.com/NetanelBaruch/Moddo/internal/projects/domain"
	"github.com/NetanelBaruch/Moddo/internal/storage/gcs"
)

const downloadURLTTL = 15 * time.Minute

// ProjectStore is the persistence surface the service needs.
type ProjectStore interface {
	Create(ctx context.Context, userID, prompt string) (*domain.Project, error)
	Get(ctx context.Context, userID, projectID string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, projectID string) error
}

// JobStore tracks the delegated compute steps.
type JobStore interface {
	Create(ctx context.Context, job *jobsdomain.Job) error
	SetStatus(ctx context.Context, jobID, status, errText string) (*jobsdomain.Job, error)
	GetLatestForStage(ctx context.Context, projectID, stage string) (*jobsdomain.Job, error)
}

// ProjectService drives the four-stage workflow:
// prompt -> concepts -> model -> completed.
type ProjectService struct {
	repo   ProjectStore
	images *generation.ImageClient
	meshes *generation.MeshClient
	jobs   JobStore
	store  *gcs.Store
}

// NewProjectService creates a new ProjectService. store may be nil when
// object storage is not configured; generated files then stay virtual.
func NewProjectService(
	repo ProjectStore,
	images *generation.ImageClient,
	meshes *generation.MeshClient,
	jobs JobStore,
	store *gcs.Store,
) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: images,
		meshes: meshes,
		jobs:   jobs,
		store:  store,
	}
}

// CreateProject starts a new workflow session from a prompt.
func (s *ProjectService) CreateProject(ctx context.Context, userID, prompt string) (*domain.Project, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}
	return s.repo.Create(ctx, userID, prompt)
}

// GetProject fetches one project owned by the user.
func (s *ProjectService) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.repo.Get(ctx, userID, projectID)
}

// ListProjects lists the user's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.repo.List(ctx, userID)
}

// DeleteProject removes a project and its stored artifacts. Artifact
// deletion is best-effort; failures are logged so orphaned objects stay
// traceable.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return err
	}

	if s.store != nil {
		if p.Model != nil {
			if err := s.store.Delete(ctx, p.Model.ObjectKey); err != nil {
				log.Printf("failed to delete model object %s for project %s: %v", p.Model.ObjectKey, p.ID, err)
			}
		}
		if p.PrintFile != nil {
			if err := s.store.Delete(ctx, p.PrintFile.ObjectKey); err != nil {
				log.Printf("failed to delete print file object %s for project %s: %v", p.PrintFile.ObjectKey, p.ID, err)
			}
		}
	}

	return s.repo.Delete(ctx, p.ID)
}

// GenerateConcepts produces the four concept images for a project.
// Allowed at the prompt stage and again at the concepts stage, so a
// user can regenerate after feedback.
func (s *ProjectService) GenerateConcepts(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusPrompt && p.Status != domain.StatusConcepts {
		return nil, domain.ErrInvalidStage
	}

	job := &jobsdomain.Job{ProjectID: p.ID, UserID: userID, Stage: jobsdomain.StageConcepts}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusProcessing, "")

	images, err := s.images.GenerateConcepts(ctx, p.ID, p.Prompt)
	if err != nil {
		s.fail(ctx, p, job.JobID, err)
		return nil, fmt.Errorf("generate concepts: %w", err)
	}

	p.Concepts = make([]domain.Concept, 0, len(images))
	for _, img := range images {
		p.Concepts = append(p.Concepts, domain.Concept{Angle: img.Angle, ImageURL: img.ImageURL})
	}
	p.Status = domain.StatusConcepts

	if err := s.repo.Update(ctx, p); err != nil {
		_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusFailed, err.Error())
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusCompleted, "")

	return p, nil
}

// SubmitFeedback classifies feedback text, extracts refinement
// parameters and appends the entry to the project history. Text must be
// non-empty after trimming; the classifier itself never validates.
func (s *ProjectService) SubmitFeedback(ctx context.Context, userID, projectID, text string) (*domain.FeedbackEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusPrompt || p.Status == domain.StatusFailed {
		// Nothing to give feedback on before concepts exist or after
		// the workflow has failed.
		return nil, domain.ErrInvalidStage
	}

	entry := domain.FeedbackEntry{
		Text:       text,
		Type:       feedback.Classify(text),
		Parameters: feedback.ExtractParameters(text),
		CreatedAt:  time.Now().UTC(),
	}

	p.Feedback = append(p.Feedback, entry)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GenerateModel reconstructs a 3D model from the concept images and
// runs the post-generation printability check.
func (s *ProjectService) GenerateModel(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusConcepts {
		return nil, domain.ErrInvalidStage
	}

	job := &jobsdomain.Job{ProjectID: p.ID, UserID: userID, Stage: jobsdomain.StageModel}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusProcessing, "")

	urls := make([]string, 0, len(p.Concepts))
	for _, c := range p.Concepts {
		urls = append(urls, c.ImageURL)
	}

	result, err := s.meshes.Reconstruct(ctx, p.ID, urls)
	if err != nil {
		s.fail(ctx, p, job.JobID, err)
		return nil, fmt.Errorf("reconstruct model: %w", err)
	}

	report := printability.CheckModel(printability.ModelStats{
		Vertices:      result.Vertices,
		FileSizeBytes: result.FileSizeBytes,
	})

	if s.store != nil {
		// Placeholder payload until the reconstruction service produces
		// real geometry.
		data := []byte(fmt.Sprintf("placeholder %s model for project %s\n", result.Format, p.ID))
		if err := s.store.Write(ctx, result.ObjectKey, "model/gltf-binary", data); err != nil {
			s.fail(ctx, p, job.JobID, err)
			return nil, err
		}
	}

	p.Model = &domain.ModelInfo{
		Format:        result.Format,
		ObjectKey:     result.ObjectKey,
		Vertices:      result.Vertices,
		Faces:         result.Faces,
		FileSizeBytes: result.FileSizeBytes,
		Printability:  report,
	}
	p.Status = domain.StatusModel

	if err := s.repo.Update(ctx, p); err != nil {
		_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusFailed, err.Error())
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusCompleted, "")

	return p, nil
}

// GeneratePrintFile converts the reconstructed model to STL, runs the
// post-conversion printability check and completes the workflow.
func (s *ProjectService) GeneratePrintFile(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusModel || p.Model == nil {
		return nil, domain.ErrInvalidStage
	}

	job := &jobsdomain.Job{ProjectID: p.ID, UserID: userID, Stage: jobsdomain.StagePrintFile}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusProcessing, "")

	result, err := s.meshes.ConvertToSTL(ctx, p.ID, p.Model.ObjectKey)
	if err != nil {
		s.fail(ctx, p, job.JobID, err)
		return nil, fmt.Errorf("convert to stl: %w", err)
	}

	report := printability.CheckMesh(printability.MeshStats{
		Vertices:  result.Vertices,
		Faces:     result.Faces,
		VolumeCm3: result.VolumeCm3,
	})

	if s.store != nil {
		data := []byte(fmt.Sprintf("placeholder stl for project %s\n", p.ID))
		if err := s.store.Write(ctx, result.ObjectKey, "model/stl", data); err != nil {
			s.fail(ctx, p, job.JobID, err)
			return nil, err
		}
	}

	p.PrintFile = &domain.PrintFile{
		Format:       "stl",
		ObjectKey:    result.ObjectKey,
		Vertices:     result.Vertices,
		Faces:        result.Faces,
		VolumeCm3:    result.VolumeCm3,
		Printability: report,
	}
	p.Status = domain.StatusCompleted

	if err := s.repo.Update(ctx, p); err != nil {
		_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusFailed, err.Error())
		return nil, err
	}
	_, _ = s.jobs.SetStatus(ctx, job.JobID, jobsdomain.StatusCompleted, "")

	return p, nil
}

// PrintFileURL returns a time-limited download URL for the print file.
func (s *ProjectService) PrintFileURL(ctx context.Context, userID, projectID string) (string, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return "", err
	}
	if p.PrintFile == nil {
		return "", domain.ErrInvalidStage
	}
	if s.store == nil {
		return "", fmt.Errorf("object storage not configured")
	}
	return s.store.SignedURL(p.PrintFile.ObjectKey, downloadURLTTL)
}

// JobStatus returns the latest job for a project stage.
func (s *ProjectService) JobStatus(ctx context.Context, userID, projectID, stage string) (*jobsdomain.Job, error) {
	if _, err := s.repo.Get(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.jobs.GetLatestForStage(ctx, projectID, stage)
}

// fail marks the job and the project as failed. Failed projects are
// terminal; the cleanup scheduler purges them once they go stale.
func (s *ProjectService) fail(ctx context.Context, p *domain.Project, jobID string, cause error) {
	_, _ = s.jobs.SetStatus(ctx, jobID, jobsdomain.StatusFailed, cause.Error())

	p.Status = domain.StatusFailed
	if err := s.repo.Update(ctx, p); err != nil {
		log.Printf("failed to persist failed status for project %s: %v", p.ID, err)
	}
}
