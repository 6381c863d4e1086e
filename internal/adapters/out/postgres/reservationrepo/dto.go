package reservationrepo

import (
	"time"

	"ordering/internal/core/domain/model/reservation"
)

// SummaryDTO represents one cached forecast row. The (date, slot) pair is
// the natural key; the sync job upserts against it.
type SummaryDTO struct {
	ForecastDate      time.Time `gorm:"type:date;primaryKey"`
	Slot              string    `gorm:"type:varchar(16);primaryKey"`
	TotalReservations int
	TotalGuests       int
	SyncedAt          time.Time
}

// TableName specifies the database table name for forecast rows.
func (SummaryDTO) TableName() string {
	return "reservation_summaries"
}

func fromDomain(summary reservation.Summary) SummaryDTO {
	return SummaryDTO{
		ForecastDate:      summary.ForecastDate,
		Slot:              string(summary.Slot),
		TotalReservations: summary.TotalReservations,
		TotalGuests:       summary.TotalGuests,
		SyncedAt:          summary.SyncedAt,
	}
}

func toDomain(dto SummaryDTO) reservation.Summary {
	return reservation.Summary{
		ForecastDate:      dto.ForecastDate,
		Slot:              reservation.TimeSlot(dto.Slot),
		TotalReservations: dto.TotalReservations,
		TotalGuests:       dto.TotalGuests,
		SyncedAt:          dto.SyncedAt,
	}
}
