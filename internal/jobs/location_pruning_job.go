package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LocationPruningJob periodically deletes location reports older than the
// retention window. The newest report of every order survives regardless of
// age.
type LocationPruningJob struct {
	locations ports.LocationRepository
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLocationPruningJob creates a pruning job with the given retention.
func NewLocationPruningJob(
	locations ports.LocationRepository,
	retention time.Duration,
	logger *slog.Logger,
) *LocationPruningJob {
	return &LocationPruningJob{
		locations: locations,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "location_pruning_job"),
	}
}

// Start begins the pruning job, running once a minute.
func (j *LocationPruningJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location pruning job started",
		"retention", j.retention.String())
	return nil
}

// Stop stops the pruning job.
func (j *LocationPruningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Location pruning job stopped")
}

func (j *LocationPruningJob) run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.retention)

	pruned, err := j.locations.PruneBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Location pruning job failed", "error", err)
		return
	}

	if pruned > 0 {
		j.logger.InfoContext(ctx, "Pruned aged location reports", "count", pruned)
	}
}
