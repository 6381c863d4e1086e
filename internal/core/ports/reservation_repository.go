package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for the locally
// cached reservation forecast.
type ReservationRepository interface {
	// Upsert inserts or replaces the summary row keyed by
	// (forecast date, time slot).
	Upsert(ctx context.Context, summary reservation.Summary) error

	// GetRange retrieves all summaries with a forecast date in
	// [from, to], ordered by date and slot.
	GetRange(ctx context.Context, from, to time.Time) ([]reservation.Summary, error)
}

// ReservationFeed defines the contract for the external reservation system
// the sync job reads from. Implementations query the source system directly
// and never write to it.
type ReservationFeed interface {
	// Forecast retrieves aggregated reservation counts per (date, slot)
	// for all dates in [from, to].
	Forecast(ctx context.Context, from, to time.Time) ([]reservation.Summary, error)
}
