// Package shipmentrepo implements persistence for shipment batches. The
// partial unique index on open batches gives the router its race-safe
// find-or-create key.
package shipmentrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// BatchDTO represents one shipment batch row.
type BatchDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SupplierID   uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryDate *time.Time `gorm:"type:date"`
	SenderID     *uuid.UUID `gorm:"type:uuid"`
	SentAt       *time.Time
	Status       string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for shipment batches.
func (BatchDTO) TableName() string {
	return "shipment_batches"
}

func fromDomain(batch *shipment.Batch) BatchDTO {
	var senderID *uuid.UUID
	if id := batch.SenderID(); id != nil {
		raw := id.Bytes()
		senderID = &raw
	}

	return BatchDTO{
		ID:           batch.ID().Bytes(),
		SupplierID:   batch.SupplierID().Bytes(),
		DeliveryDate: batch.DeliveryDate(),
		SenderID:     senderID,
		SentAt:       batch.SentAt(),
		Status:       batch.Status().String(),
	}
}

func toDomain(dto BatchDTO) (*shipment.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	var senderID *kernel.UUID
	if dto.SenderID != nil {
		sender, senderErr := kernel.UUIDFromBytes((*dto.SenderID)[:])
		if senderErr != nil {
			return nil, senderErr
		}
		senderID = &sender
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreBatch(id, supplierID, dto.DeliveryDate, senderID, dto.SentAt, status)
}
