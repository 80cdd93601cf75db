package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/NetanelBaruch/Moddo/internal/projects/repository"
)

// Failed projects older than this are purged by the nightly job.
const staleFailedAge = 7 * 24 * time.Hour

// Scheduler runs periodic housekeeping over the project store.
type Scheduler struct {
	repo *repository.ProjectRepository
}

func NewScheduler(repo *repository.ProjectRepository) *Scheduler {
	return &Scheduler{repo: repo}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	//  (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.purgeStaleFailed()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (purging stale failed projects nightly at 12:00AM)")
	c.Start()
}

func (s *Scheduler) purgeStaleFailed() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-staleFailedAge)
	stale, err := s.repo.ListStaleFailed(ctx, cutoff)
	if err != nil {
		log.Printf("Cleanup failed to list stale projects: %v", err)
		return
	}

	purged := 0
	for _, p := range stale {
		if err := s.repo.Delete(ctx, p.ID); err != nil {
			log.Printf("Cleanup failed to purge project %s: %v", p.ID, err)
			continue
		}
		purged++
	}

	log.Printf("Cleanup purged %d stale failed projects at %s", purged, time.Now().Format(time.RFC1123))
}
