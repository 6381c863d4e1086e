package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// forecastDays is the sync window: today through two weeks out, matching
// the horizon the delivery date calculator scans.
const forecastDays = 14

// ReservationSyncJob refreshes the cached reservation forecast from the
// external reservation system. Runs hourly; each run re-reads the full
// window so corrections in the source system propagate.
type ReservationSyncJob struct {
	handler commands.SyncReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationSyncJob creates the hourly forecast sync job.
func NewReservationSyncJob(handler commands.SyncReservationsCommandHandler, logger *slog.Logger) *ReservationSyncJob {
	return &ReservationSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_sync_job"),
	}
}

// Start begins the reservation sync job on the hour, every hour.
func (j *ReservationSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		today := time.Now().UTC().Truncate(24 * time.Hour)
		cmd, cmdErr := commands.NewSyncReservationsCommand(today, today.AddDate(0, 0, forecastDays))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reservation sync command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Reservation sync failed", "error", handleErr)
			return
		}
		j.logger.InfoContext(ctx, "Reservation forecast synced", "days", forecastDays)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation sync job started (running hourly)")
	return nil
}

// Stop stops the reservation sync job.
func (j *ReservationSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation sync job stopped")
}
