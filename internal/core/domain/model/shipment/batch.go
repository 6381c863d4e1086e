// Package shipment contains the shipment batch aggregate: the grouping of
// order lines by (supplier, delivery date) that is later released as one
// outbound consignment.
package shipment

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrBatchIsNotConstructed is returned when a Batch was not created through
// NewBatch or RestoreBatch.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch")

// Batch groups all order lines, across all orders, that resolved to the same
// supplier and the same delivery date while the batch is Open. A nil delivery
// date is a distinct key: lines without a date share one batch per supplier,
// to be scheduled manually downstream.
//
// Batches are created lazily by the shipment router and are never deleted,
// even when the last line leaves them; they persist as historical groupings.
type Batch struct {
	id           kernel.UUID
	supplierID   kernel.UUID
	deliveryDate *time.Time
	senderID     *kernel.UUID
	sentAt       *time.Time
	status       Status

	guard guard.ConstructorGuard
}

// NewBatch creates an Open batch for the given supplier and delivery date.
func NewBatch(id, supplierID kernel.UUID, deliveryDate *time.Time) (*Batch, error) {
	return RestoreBatch(id, supplierID, deliveryDate, nil, nil, StatusOpen)
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(
	id, supplierID kernel.UUID,
	deliveryDate *time.Time,
	senderID *kernel.UUID,
	sentAt *time.Time,
	status Status,
) (*Batch, error) {
	if err := errors.Join(id.Validate(), supplierID.Validate()); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if senderID != nil {
		if err := senderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Batch{
		id:           id,
		supplierID:   supplierID,
		deliveryDate: deliveryDate,
		senderID:     senderID,
		sentAt:       sentAt,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the batch was created through a constructor.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// SupplierID returns the supplier the batch is addressed to.
func (b *Batch) SupplierID() kernel.UUID {
	return b.supplierID
}

// DeliveryDate returns the batch's delivery date, or nil when unscheduled.
func (b *Batch) DeliveryDate() *time.Time {
	return b.deliveryDate
}

// SenderID returns the user who released the batch, or nil while Open.
func (b *Batch) SenderID() *kernel.UUID {
	return b.senderID
}

// SentAt returns the release timestamp, or nil while Open.
func (b *Batch) SentAt() *time.Time {
	return b.sentAt
}

// Status returns the batch's lifecycle state.
func (b *Batch) Status() Status {
	return b.status
}

// Release transitions Open → Sent, recording who released the batch and when.
// A delivery date in the past (relative to now's calendar day) is a conflict;
// the batch must be rescheduled first. Sent never regresses.
func (b *Batch) Release(senderID kernel.UUID, now time.Time) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	newStatus, err := b.status.Send()
	if err != nil {
		return err
	}
	if b.deliveryDate != nil {
		today := now.Truncate(24 * time.Hour)
		if b.deliveryDate.Before(today) {
			return errs.NewConflictError("delivery date is in the past")
		}
	}

	b.status = newStatus
	b.senderID = &senderID
	b.sentAt = &now
	return nil
}

// Cancel transitions Open → Cancelled.
func (b *Batch) Cancel() error {
	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}
	b.status = newStatus
	return nil
}
