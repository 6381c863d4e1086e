// Package reservationrepo implements persistence for the cached reservation
// forecast.
package reservationrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/reservation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Upsert inserts or replaces the summary row keyed by (forecast date, slot).
func (r *GormReservationRepository) Upsert(ctx context.Context, summary reservation.Summary) error {
	dto := fromDomain(summary)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "forecast_date"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_reservations", "total_guests", "synced_at"}),
		}).
		Create(&dto).Error
}

// GetRange retrieves all summaries with a forecast date in [from, to].
func (r *GormReservationRepository) GetRange(
	ctx context.Context,
	from, to time.Time,
) ([]reservation.Summary, error) {
	var dtos []SummaryDTO
	err := r.db.WithContext(ctx).
		Where("forecast_date BETWEEN ? AND ?", from, to).
		Order("forecast_date, slot").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]reservation.Summary, 0, len(dtos))
	for _, dto := range dtos {
		summaries = append(summaries, toDomain(dto))
	}

	return summaries, nil
}
