// Package reservation contains the aggregated reservation forecast that a
// periodic job keeps in sync from the external reservation system. The
// forecast informs purchasing decisions but is not consulted by the routing
// core itself.
package reservation

import (
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

// TimeSlot is the closed set of service windows a day is split into.
type TimeSlot string

const (
	SlotLunch  TimeSlot = "LUNCH"
	SlotDinner TimeSlot = "DINNER"
)

// Validate rejects slots outside the closed set.
func (s TimeSlot) Validate() error {
	switch s {
	case SlotLunch, SlotDinner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("timeSlot",
			fmt.Errorf("%q is not a valid time slot", string(s)))
	}
}

// Summary is the aggregated reservation count for one (date, time slot) pair.
// Exactly one row exists per pair; the sync job upserts.
type Summary struct {
	ForecastDate      time.Time
	Slot              TimeSlot
	TotalReservations int
	TotalGuests       int
	SyncedAt          time.Time
}

// NewSummary creates a validated forecast row stamped with the sync time.
func NewSummary(forecastDate time.Time, slot TimeSlot, totalReservations, totalGuests int) (Summary, error) {
	if err := slot.Validate(); err != nil {
		return Summary{}, err
	}
	if totalReservations < 0 {
		return Summary{}, errs.NewValueIsInvalidError("totalReservations")
	}
	if totalGuests < 0 {
		return Summary{}, errs.NewValueIsInvalidError("totalGuests")
	}

	return Summary{
		ForecastDate:      forecastDate,
		Slot:              slot,
		TotalReservations: totalReservations,
		TotalGuests:       totalGuests,
		SyncedAt:          time.Now().UTC(),
	}, nil
}
