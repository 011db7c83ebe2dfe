// Package jobs provides scheduled background tasks for the assignment core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatching.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Runs every second to assign unassigned orders to available workers
// 2. ScheduleProvisioningJob - Runs daily to extend worker calendars to the rolling horizon
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignOrderHandler, ensureSchedulesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *", running every
// second as a safety net behind the event listener. The provisioning job runs
// once a day shortly after midnight, when a new day enters the horizon.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (empty backlog, no eligible worker)
// - Provisioning job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
