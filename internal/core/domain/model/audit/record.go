// Package audit contains the append-only activity record written alongside
// every significant mutation. Records are fire-and-forget from the core's
// perspective but are committed in the same transaction as the change they
// describe.
package audit

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// EventKind is the closed set of audited events.
type EventKind string

const (
	EventOrderCreated     EventKind = "ORDER_CREATED"
	EventOrderUpdated     EventKind = "ORDER_UPDATED"
	EventOrderCompleted   EventKind = "ORDER_COMPLETED"
	EventOrderSent        EventKind = "ORDER_SENT"
	EventOrderCancelled   EventKind = "ORDER_CANCELLED"
	EventLineUpdated      EventKind = "LINE_UPDATED"
	EventLineRemoved      EventKind = "LINE_REMOVED"
	EventSupplierAssigned EventKind = "SUPPLIER_ASSIGNED"
	EventBatchReleased    EventKind = "BATCH_RELEASED"
)

// Validate rejects event kinds outside the closed set.
func (k EventKind) Validate() error {
	switch k {
	case EventOrderCreated, EventOrderUpdated, EventOrderCompleted, EventOrderSent, EventOrderCancelled,
		EventLineUpdated, EventLineRemoved, EventSupplierAssigned, EventBatchReleased:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("eventKind",
			fmt.Errorf("%q is not a valid event kind", string(k)))
	}
}

// Record is one appended activity entry. Old/new values capture the before
// and after of value-changing events (line updates, supplier assignment);
// Details carries structured extras.
type Record struct {
	ID          kernel.UUID
	EntityType  string
	EntityID    kernel.UUID
	UserID      kernel.UUID
	Kind        EventKind
	Description string
	OldValue    *string
	NewValue    *string
	Details     map[string]any
	RecordedAt  time.Time
}

// NewRecord creates a validated activity record stamped with the current time.
func NewRecord(
	entityType string,
	entityID, userID kernel.UUID,
	kind EventKind,
	description string,
) (Record, error) {
	if entityType == "" {
		return Record{}, errs.NewValueIsRequiredError("entityType")
	}
	if err := entityID.Validate(); err != nil {
		return Record{}, err
	}
	if err := userID.Validate(); err != nil {
		return Record{}, err
	}
	if err := kind.Validate(); err != nil {
		return Record{}, err
	}
	if description == "" {
		return Record{}, errs.NewValueIsRequiredError("description")
	}

	return Record{
		ID:          kernel.NewUUID(),
		EntityType:  entityType,
		EntityID:    entityID,
		UserID:      userID,
		Kind:        kind,
		Description: description,
		RecordedAt:  time.Now().UTC(),
	}, nil
}

// WithChange attaches old/new values to the record.
func (r Record) WithChange(oldValue, newValue string) Record {
	r.OldValue = &oldValue
	r.NewValue = &newValue
	return r
}

// WithDetails attaches structured extras to the record.
func (r Record) WithDetails(details map[string]any) Record {
	r.Details = details
	return r
}
