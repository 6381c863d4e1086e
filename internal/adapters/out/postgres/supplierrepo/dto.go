// Package supplierrepo implements read-only persistence for suppliers,
// their fixed delivery days, and approver-supplier grants.
package supplierrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents one supplier row.
type SupplierDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255)"`
	FixedDeliveryDays bool
	IsActive          bool
}

// TableName specifies the database table name for suppliers.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// DeliveryDayDTO represents one configured delivery weekday of a supplier.
// Weekday follows time.Weekday numbering (Sunday = 0).
type DeliveryDayDTO struct {
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Weekday    int       `gorm:"primaryKey"`
}

// TableName specifies the database table name for supplier delivery days.
func (DeliveryDayDTO) TableName() string {
	return "supplier_delivery_days"
}

// ApproverSupplierDTO represents one approver-supplier grant row.
type ApproverSupplierDTO struct {
	ApproverID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for approver grants.
func (ApproverSupplierDTO) TableName() string {
	return "approver_suppliers"
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return supplier.RestoreSupplier(id, dto.Name, dto.FixedDeliveryDays, dto.IsActive)
}

func daysToDomain(dtos []DeliveryDayDTO) supplier.WeekdaySet {
	days := make([]time.Weekday, 0, len(dtos))
	for _, dto := range dtos {
		days = append(days, time.Weekday(dto.Weekday))
	}
	return supplier.NewWeekdaySet(days...)
}
