// Package jobs provides scheduled background tasks for the workflow engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the notification pipeline.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain due events from the
// transition outbox and deliver them to the configured channels.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *", running every
// second. The outbox holds anything the dispatcher cannot keep up with, so a
// slow cycle delays notifications without losing them.
//
// # Error Handling
//
// Fetch errors are logged and retried on the next tick. Per-event delivery
// failures never surface here: the dispatcher absorbs them into its own
// reschedule and attempt budget accounting.
package jobs
