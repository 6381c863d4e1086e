package supplierrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/supplier"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplierId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeliveryDays retrieves the supplier's configured delivery weekdays.
// Suppliers without configured days yield an empty set.
func (r *GormSupplierRepository) DeliveryDays(ctx context.Context, supplierID kernel.UUID) (supplier.WeekdaySet, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDayDTO
	err := r.db.WithContext(ctx).Find(&dtos, "supplier_id = ?", supplierID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return daysToDomain(dtos), nil
}

// HasApproverGrant reports whether a grant row exists for the pair.
func (r *GormSupplierRepository) HasApproverGrant(ctx context.Context, approverID, supplierID kernel.UUID) (bool, error) {
	if err := errors.Join(approverID.Validate(), supplierID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ApproverSupplierDTO{}).
		Where("approver_id = ? AND supplier_id = ?", approverID.Bytes(), supplierID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GrantedSupplierIDs retrieves the suppliers the approver holds grants for.
func (r *GormSupplierRepository) GrantedSupplierIDs(ctx context.Context, approverID kernel.UUID) ([]kernel.UUID, error) {
	if err := approverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ApproverSupplierDTO
	err := r.db.WithContext(ctx).Find(&dtos, "approver_id = ?", approverID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.SupplierID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
