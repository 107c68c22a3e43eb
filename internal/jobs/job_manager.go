package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	locationPruningJob *LocationPruningJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	locations ports.LocationRepository,
	locationRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		locationPruningJob: NewLocationPruningJob(locations, locationRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.locationPruningJob.Start(); err != nil {
		return fmt.Errorf("failed to start location pruning job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.locationPruningJob.Stop()
}
