package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	windowSweepJob *WindowSweepJob
	windowTimer    *WindowTimer
}

// NewJobManager creates a new job manager over the window machinery.
func NewJobManager(windowSweepJob *WindowSweepJob, windowTimer *WindowTimer) *JobManager {
	return &JobManager{
		windowSweepJob: windowSweepJob,
		windowTimer:    windowTimer,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.windowSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start window sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully and disarms pending timers.
func (jm *JobManager) StopAll() {
	jm.windowSweepJob.Stop()
	jm.windowTimer.Stop()
}
