// Package jobs provides scheduled background tasks for the order tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Advances the demo order one lifecycle stage per
// tick, driving the live tracking surface without manual API calls.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceHandler, demoOrderID, 10, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A delivered demo order is not an error: the status change pipeline
// short-circuits and the job logs at debug level. Transition failures are
// logged and the schedule keeps running.
package jobs
