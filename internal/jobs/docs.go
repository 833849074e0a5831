// Package jobs provides scheduled background tasks for the bidding engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// together with per-order timers for bidding window deadlines.
//
// # Available Jobs
//
// 1. WindowTimer - one time.AfterFunc per open order, firing the window close at its deadline
// 2. WindowSweepJob - runs every 30 seconds to close expired windows and re-arm lost timers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	timer := jobs.NewWindowTimer(logger)
//	sweep := jobs.NewWindowSweepJob(closeHandler, openOrdersQuery, timer, logger)
//	jobManager := jobs.NewJobManager(sweep, timer)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Recovery
//
// Timer state is process-local. The sweep's first pass runs synchronously at
// startup: windows that expired while the process was down are closed then,
// and timers for still-running windows are rebuilt from their persisted
// deadlines. A lost or failed timer is therefore corrected within one sweep
// interval.
//
// # Error Handling
//
// Close failures are logged and retried by the next sweep pass; the window
// deadline in the database remains the source of truth.
package jobs
