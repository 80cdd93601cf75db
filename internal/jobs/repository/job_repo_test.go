package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetanelBaruch/Moddo/internal/jobs/domain"
)

func newTestRepo(t *testing.T) *JobRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewJobRepository(client)
}

func TestJobRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	job := &domain.Job{
		ProjectID: "proj-1",
		UserID:    "user-1",
		Stage:     domain.StageModel,
	}
	require.NoError(t, repo.Create(ctx, job))
	assert.NotEmpty(t, job.JobID)
	assert.Equal(t, domain.StatusPending, job.Status)

	got, err := repo.Get(ctx, job.JobID)
	require.NoError(t, err)
	assert.Equal(t, "proj-1", got.ProjectID)
	assert.Equal(t, domain.StageModel, got.Stage)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestJobRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobRepository_GetLatestForStage(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &domain.Job{ProjectID: "proj-1", UserID: "user-1", Stage: domain.StageConcepts}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Job{ProjectID: "proj-1", UserID: "user-1", Stage: domain.StageConcepts}
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetLatestForStage(ctx, "proj-1", domain.StageConcepts)
	require.NoError(t, err)
	assert.Equal(t, second.JobID, got.JobID)

	_, err = repo.GetLatestForStage(ctx, "proj-1", domain.StagePrintFile)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobRepository_SetStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	job := &domain.Job{ProjectID: "proj-1", UserID: "user-1", Stage: domain.StageModel}
	require.NoError(t, repo.Create(ctx, job))

	updated, err := repo.SetStatus(ctx, job.JobID, domain.StatusProcessing, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	updated, err = repo.SetStatus(ctx, job.JobID, domain.StatusFailed, "upstream timeout")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, updated.Status)
	assert.Equal(t, "upstream timeout", updated.Error)
	assert.NotNil(t, updated.CompletedAt)
}

func TestJobRepository_SetStatusInvalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	job := &domain.Job{ProjectID: "proj-1", UserID: "user-1", Stage: domain.StageModel}
	require.NoError(t, repo.Create(ctx, job))

	_, err := repo.SetStatus(ctx, job.JobID, "paused", "")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestJobRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	job := &domain.Job{ProjectID: "proj-1", UserID: "user-1", Stage: domain.StagePrintFile}
	require.NoError(t, repo.Create(ctx, job))

	require.NoError(t, repo.Delete(ctx, job.JobID))

	_, err := repo.Get(ctx, job.JobID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	_, err = repo.GetLatestForStage(ctx, "proj-1", domain.StagePrintFile)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}
