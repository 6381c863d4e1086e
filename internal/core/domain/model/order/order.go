package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the ordering domain. It is owned by a
// department, created by a requester, and holds the order lines. All
// mutations go through the lifecycle methods, which enforce the Draft →
// Complete → Placed / Cancelled state machine.
//
// Invariants:
//   - lines exist only while the order can still change (adds require Draft)
//   - an order cannot be closed with zero lines
//   - terminal orders (Placed, Cancelled) never change again
type Order struct {
	id                 kernel.UUID
	departmentID       kernel.UUID
	creatorID          kernel.UUID
	approverID         *kernel.UUID
	deliveryDate       *time.Time
	status             Status
	additionalArticles string
	deliveryNotes      string
	isActive           bool
	draftedAt          time.Time
	updatedAt          *time.Time
	lines              []*Line

	guard guard.ConstructorGuard
}

// NewOrder creates an active order in Draft owned by departmentID with
// creatorID as its creator. deliveryDate is optional; when nil the shipment
// router may derive one per supplier.
func NewOrder(
	id, departmentID, creatorID kernel.UUID,
	deliveryDate *time.Time,
	additionalArticles, deliveryNotes string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), departmentID.Validate(), creatorID.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		departmentID:       departmentID,
		creatorID:          creatorID,
		deliveryDate:       deliveryDate,
		status:             StatusDraft,
		additionalArticles: additionalArticles,
		deliveryNotes:      deliveryNotes,
		isActive:           true,
		draftedAt:          time.Now().UTC(),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
func RestoreOrder(
	id, departmentID, creatorID kernel.UUID,
	approverID *kernel.UUID,
	deliveryDate *time.Time,
	status Status,
	additionalArticles, deliveryNotes string,
	isActive bool,
	draftedAt time.Time,
	updatedAt *time.Time,
	lines []*Line,
) (*Order, error) {
	if err := errors.Join(id.Validate(), departmentID.Validate(), creatorID.Validate()); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if approverID != nil {
		if err := approverID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if !l.OrderID().IsEqual(id) {
			return nil, errs.NewInternalConsistencyError("order line belongs to a different order")
		}
	}

	return &Order{
		id:                 id,
		departmentID:       departmentID,
		creatorID:          creatorID,
		approverID:         approverID,
		deliveryDate:       deliveryDate,
		status:             status,
		additionalArticles: additionalArticles,
		deliveryNotes:      deliveryNotes,
		isActive:           isActive,
		draftedAt:          draftedAt,
		updatedAt:          updatedAt,
		lines:              lines,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DepartmentID returns the owning department.
func (o *Order) DepartmentID() kernel.UUID {
	return o.departmentID
}

// CreatorID returns the requester who created the order.
func (o *Order) CreatorID() kernel.UUID {
	return o.creatorID
}

// ApproverID returns the approver, or nil while unapproved.
func (o *Order) ApproverID() *kernel.UUID {
	return o.approverID
}

// DeliveryDate returns the requested delivery date, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AdditionalArticles returns the free-text extras field.
func (o *Order) AdditionalArticles() string {
	return o.additionalArticles
}

// DeliveryNotes returns the free-text delivery notes.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// IsActive reports whether the order is active (not soft-deleted).
func (o *Order) IsActive() bool {
	return o.isActive
}

// DraftedAt returns the creation timestamp.
func (o *Order) DraftedAt() time.Time {
	return o.draftedAt
}

// UpdatedAt returns the last-modified timestamp, or nil if never updated.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Lines returns the order's lines. The slice must not be mutated by callers.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Line returns the line with the given id, or NotFound.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderLineId", lineID.String())
}

// EditableLine returns the line with the given id for mutation. Line
// contents can only be changed while the order is Draft.
func (o *Order) EditableLine(lineID kernel.UUID) (*Line, error) {
	if o.status != StatusDraft {
		return nil, errs.NewConflictError("lines can only be changed on a draft order")
	}
	return o.Line(lineID)
}

// AddLine appends a line to the order. Allowed only while Draft.
func (o *Order) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if o.status != StatusDraft {
		return errs.NewConflictError("lines can only be added to a draft order")
	}
	if !line.OrderID().IsEqual(o.id) {
		return errs.NewInternalConsistencyError("order line belongs to a different order")
	}
	o.lines = append(o.lines, line)
	o.touch()
	return nil
}

// RemoveLine deletes the line with the given id. Allowed only while Draft.
// The line's shipment batch, if any, is left untouched: batches are
// historical groupings and are never deleted or merged.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	if o.status != StatusDraft {
		return errs.NewConflictError("lines can only be removed from a draft order")
	}
	for i, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			o.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderLineId", lineID.String())
}

// Close transitions Draft → Complete. The order must contain at least one line.
func (o *Order) Close() error {
	if len(o.lines) == 0 {
		return errs.NewConflictError("order has no items")
	}
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.touch()
	return nil
}

// Place transitions Complete → Placed. Invoked when the shipment batch
// containing the order's lines is released.
func (o *Order) Place(approverID kernel.UUID) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.approverID = &approverID
	o.touch()
	return nil
}

// Cancel transitions Draft or Complete → Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.touch()
	return nil
}

// SetDeliveryDate updates the requested delivery date. Allowed only while Draft.
func (o *Order) SetDeliveryDate(date *time.Time) error {
	if o.status != StatusDraft {
		return errs.NewConflictError("only draft orders can be changed")
	}
	o.deliveryDate = date
	o.touch()
	return nil
}

// SetNotes updates the free-text fields. Allowed only while Draft.
func (o *Order) SetNotes(additionalArticles, deliveryNotes string) error {
	if o.status != StatusDraft {
		return errs.NewConflictError("only draft orders can be changed")
	}
	o.additionalArticles = additionalArticles
	o.deliveryNotes = deliveryNotes
	o.touch()
	return nil
}

// Deactivate soft-deletes the order.
func (o *Order) Deactivate() {
	o.isActive = false
	o.touch()
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}
