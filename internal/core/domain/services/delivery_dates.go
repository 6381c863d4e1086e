package services

import (
	"time"

	"ordering/internal/core/domain/model/supplier"
)

// deliverySearchHorizonDays bounds the forward scan. A supplier with no
// eligible date within two weeks is treated as unschedulable rather than
// searched indefinitely.
const deliverySearchHorizonDays = 14

// HolidayCalendar answers whether a calendar day is a public holiday in the
// configured region. Implementations must be precomputed and side-effect
// free; the calculator calls it once per scanned day.
type HolidayCalendar interface {
	IsHoliday(day time.Time) bool
}

// DeliveryDateCalculator computes the earliest future date on which a
// supplier with fixed delivery days can receive a delivery. Holidays are
// treated exactly like weekdays the supplier does not deliver on.
type DeliveryDateCalculator struct {
	calendar HolidayCalendar
}

// NewDeliveryDateCalculator creates a calculator over the given holiday calendar.
func NewDeliveryDateCalculator(calendar HolidayCalendar) DeliveryDateCalculator {
	return DeliveryDateCalculator{calendar: calendar}
}

// NextDeliveryDate scans forward from the day after today, for at most
// deliverySearchHorizonDays days, and returns the first date that is neither
// a holiday nor outside the supplier's delivery weekday set. The boolean is
// false when the horizon is exhausted without a match (including an empty
// weekday set).
func (c DeliveryDateCalculator) NextDeliveryDate(today time.Time, days supplier.WeekdaySet) (time.Time, bool) {
	candidate := truncateToDay(today).AddDate(0, 0, 1)

	for i := 0; i < deliverySearchHorizonDays; i++ {
		if c.calendar.IsHoliday(candidate) {
			candidate = candidate.AddDate(0, 0, 1)
			continue
		}
		if days.Contains(candidate.Weekday()) {
			return candidate, true
		}
		candidate = candidate.AddDate(0, 0, 1)
	}

	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
