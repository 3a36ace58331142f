// Package jobs provides scheduled background tasks for the inventory system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fulfillment.
//
// # Available Jobs
//
// 1. TruckAllocationJob - Runs every 30 seconds to bind free trucks to employees left without one
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignTrucksHandler, logger)
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
// The allocation job ignores the expected business outcome of an empty
// backlog (every employee already has a truck) and logs everything else.
package jobs
