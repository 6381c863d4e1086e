// Package bookingfeed reads raw bookings from the reservation system's
// database and aggregates them into the per-day forecast the sync job
// persists. The connection is read-only; this adapter never writes to the
// source system.
package bookingfeed

import (
	"context"
	"sort"
	"time"

	"ordering/internal/core/domain/model/reservation"

	"gorm.io/gorm"
)

// lunchDinnerCutoverHour splits a service day: bookings before 16:00 local
// time count as lunch, everything later as dinner.
const lunchDinnerCutoverHour = 16

// BookingDTO represents one raw booking row in the reservation system.
type BookingDTO struct {
	ID        string    `gorm:"primaryKey"`
	BookedFor time.Time `gorm:"index"`
	People    int
	Cancelled bool
	NoShow    bool
}

// TableName specifies the source table name for bookings.
func (BookingDTO) TableName() string {
	return "bookings"
}

// GormBookingFeed implements ReservationFeed over the reservation system's
// database.
type GormBookingFeed struct {
	db       *gorm.DB
	location *time.Location
}

// NewGormBookingFeed creates a feed reading from the given connection.
// Slot boundaries follow restaurant local time.
func NewGormBookingFeed(db *gorm.DB) (*GormBookingFeed, error) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return nil, err
	}
	return &GormBookingFeed{db: db, location: location}, nil
}

// Forecast retrieves aggregated reservation counts per (date, slot) for all
// dates in [from, to]. Cancelled bookings and no-shows are excluded.
func (f *GormBookingFeed) Forecast(ctx context.Context, from, to time.Time) ([]reservation.Summary, error) {
	var bookings []BookingDTO
	err := f.db.WithContext(ctx).
		Where("booked_for >= ? AND booked_for < ?", from, to.AddDate(0, 0, 1)).
		Where("NOT cancelled AND NOT no_show").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return aggregate(bookings, f.location)
}

type slotKey struct {
	day  string
	slot reservation.TimeSlot
}

type slotTotals struct {
	reservations int
	guests       int
}

// aggregate folds raw bookings into one summary per (date, slot) pair,
// ordered by date and slot.
func aggregate(bookings []BookingDTO, location *time.Location) ([]reservation.Summary, error) {
	totals := make(map[slotKey]slotTotals)
	for _, b := range bookings {
		local := b.BookedFor.In(location)
		key := slotKey{day: local.Format(time.DateOnly), slot: slotFor(local)}

		t := totals[key]
		t.reservations++
		t.guests += b.People
		totals[key] = t
	}

	summaries := make([]reservation.Summary, 0, len(totals))
	for key, t := range totals {
		day, err := time.ParseInLocation(time.DateOnly, key.day, time.UTC)
		if err != nil {
			return nil, err
		}
		summary, err := reservation.NewSummary(day, key.slot, t.reservations, t.guests)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].ForecastDate.Equal(summaries[j].ForecastDate) {
			return summaries[i].ForecastDate.Before(summaries[j].ForecastDate)
		}
		return slotRank(summaries[i].Slot) < slotRank(summaries[j].Slot)
	})

	return summaries, nil
}

func slotRank(slot reservation.TimeSlot) int {
	if slot == reservation.SlotLunch {
		return 0
	}
	return 1
}

func slotFor(local time.Time) reservation.TimeSlot {
	if local.Hour() < lunchDinnerCutoverHour {
		return reservation.SlotLunch
	}
	return reservation.SlotDinner
}
