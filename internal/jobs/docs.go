// Package jobs provides scheduled background tasks for the tracking system.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are managed through
// JobManager, which starts and stops them as a unit:
//
//	jobManager := jobs.NewJobManager(locationRepository, retention, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is LocationPruningJob, which deletes location reports
// older than the configured retention while always keeping each order's
// newest report, so the latest-location lookup keeps working for stale
// orders.
package jobs
