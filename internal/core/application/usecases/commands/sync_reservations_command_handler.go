package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// SyncReservationsCommandHandler pulls the reservation forecast from the
// external reservation system and upserts it into the local cache. A failed
// run leaves the previous forecast untouched.
type SyncReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
	feed       ports.ReservationFeed
}

// NewSyncReservationsCommandHandler creates a handler for the forecast sync.
func NewSyncReservationsCommandHandler(
	uowFactory ReservationUoWFactory,
	feed ports.ReservationFeed,
) SyncReservationsCommandHandler {
	return SyncReservationsCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
	}
}

// Handle processes one sync run.
func (h *SyncReservationsCommandHandler) Handle(ctx context.Context, cmd SyncReservationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	summaries, err := h.feed.Forecast(ctx, cmd.From(), cmd.To())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	for _, summary := range summaries {
		if err = reservationRepo.Upsert(ctx, summary); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
