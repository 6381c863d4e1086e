package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch. A concurrent insert of the same open
// (supplier, delivery date) key surfaces as a Conflict error so the
// caller can re-read the winner.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("open batch already exists for this supplier and delivery date", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing batch.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"supplier_id":   dto.SupplierID,
		"delivery_date": dto.DeliveryDate,
		"sender_id":     dto.SenderID,
		"sent_at":       dto.SentAt,
		"status":        dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batchId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindOpen retrieves the Open batch keyed by supplier and delivery date.
// A nil date only matches batches without a date.
func (r *GormShipmentRepository) FindOpen(
	ctx context.Context,
	supplierID kernel.UUID,
	deliveryDate *time.Time,
) (*shipment.Batch, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID.Bytes()).
		Where("status = ?", shipment.StatusOpen.String())
	if deliveryDate == nil {
		query = query.Where("delivery_date IS NULL")
	} else {
		query = query.Where("delivery_date = ?", *deliveryDate)
	}

	var dto BatchDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplierId", supplierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
