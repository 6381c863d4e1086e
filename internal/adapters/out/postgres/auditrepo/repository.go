// Package auditrepo implements append-only persistence for activity records.
package auditrepo

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends an activity record.
func (r *GormAuditRepository) Add(ctx context.Context, record audit.Record) error {
	dto, err := fromDomain(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByEntity retrieves the activity trail of one entity, newest first.
func (r *GormAuditRepository) GetAllByEntity(
	ctx context.Context,
	entityType string,
	entityID kernel.UUID,
) ([]audit.Record, error) {
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID.Bytes()).
		Order("recorded_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}

	return records, nil
}
