package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrSyncReservationsCommandIsNotConstructed = errors.New(
	"SyncReservationsCommand must be created via NewSyncReservationsCommand constructor",
)

// SyncReservationsCommand represents one run of the reservation forecast
// sync over a closed date range. Issued by the periodic job, not by users.
type SyncReservationsCommand struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewSyncReservationsCommand creates a command to sync the forecast for
// [from, to]. The range must not be inverted.
func NewSyncReservationsCommand(from, to time.Time) (SyncReservationsCommand, error) {
	if to.Before(from) {
		return SyncReservationsCommand{}, errs.NewValueIsInvalidError("to")
	}

	return SyncReservationsCommand{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncReservationsCommand) Validate() error {
	return c.guard.Validate(ErrSyncReservationsCommandIsNotConstructed)
}

// From returns the first forecast date of the range.
func (c SyncReservationsCommand) From() time.Time {
	return c.from
}

// To returns the last forecast date of the range.
func (c SyncReservationsCommand) To() time.Time {
	return c.to
}
