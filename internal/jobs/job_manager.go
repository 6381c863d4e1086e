// Package jobs provides scheduled background tasks, implemented as
// cron-based jobs using github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reservationSyncJob *ReservationSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncReservationsHandler commands.SyncReservationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reservationSyncJob: NewReservationSyncJob(syncReservationsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reservationSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start reservation sync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reservationSyncJob.Stop()
}
