package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one ordered article position. It belongs to exactly one Order and,
// once a supplier is resolved, to exactly one shipment batch. A line without
// a resolved supplier carries no batch reference.
type Line struct {
	id         kernel.UUID
	orderID    kernel.UUID
	articleID  kernel.UUID
	supplierID *kernel.UUID
	batchID    *kernel.UUID
	quantity   decimal.Decimal
	note       string

	guard guard.ConstructorGuard
}

// NewLine creates an unrouted line: no supplier, no batch.
// Quantity must be strictly positive.
func NewLine(id, orderID, articleID kernel.UUID, quantity decimal.Decimal, note string) (*Line, error) {
	return RestoreLine(id, orderID, articleID, nil, nil, quantity, note)
}

// RestoreLine reconstructs a line from persistence.
func RestoreLine(
	id, orderID, articleID kernel.UUID,
	supplierID, batchID *kernel.UUID,
	quantity decimal.Decimal,
	note string,
) (*Line, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), articleID.Validate()); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return nil, err
		}
	}
	if batchID != nil {
		if err := batchID.Validate(); err != nil {
			return nil, err
		}
		if supplierID == nil {
			return nil, errs.NewInternalConsistencyError(
				"order line is attached to a shipment batch without a resolved supplier")
		}
	}

	return &Line{
		id:         id,
		orderID:    orderID,
		articleID:  articleID,
		supplierID: supplierID,
		batchID:    batchID,
		quantity:   quantity,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func validateQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", q))
	}
	return nil
}

// Validate ensures the line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order's identifier.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ArticleID returns the ordered article's identifier.
func (l *Line) ArticleID() kernel.UUID {
	return l.articleID
}

// SupplierID returns the resolved supplier, or nil while unresolved.
func (l *Line) SupplierID() *kernel.UUID {
	return l.supplierID
}

// BatchID returns the shipment batch the line is attached to, or nil.
func (l *Line) BatchID() *kernel.UUID {
	return l.batchID
}

// Quantity returns the ordered amount.
func (l *Line) Quantity() decimal.Decimal {
	return l.quantity
}

// Note returns the free-text note, possibly empty.
func (l *Line) Note() string {
	return l.note
}

// IsRouted reports whether a supplier has been resolved for the line.
func (l *Line) IsRouted() bool {
	return l.supplierID != nil
}

// AssignSupplier resolves the line to the given supplier. Reassignment
// detaches the line from its previous batch; the router attaches it anew.
func (l *Line) AssignSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	l.supplierID = &supplierID
	l.batchID = nil
	return nil
}

// AttachToBatch places the line into a shipment batch. The line must have a
// resolved supplier first.
func (l *Line) AttachToBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if l.supplierID == nil {
		return errs.NewInternalConsistencyError(
			"cannot attach an unresolved line to a shipment batch")
	}
	l.batchID = &batchID
	return nil
}

// SetQuantity replaces the ordered amount. Must be strictly positive.
func (l *Line) SetQuantity(q decimal.Decimal) error {
	if err := validateQuantity(q); err != nil {
		return err
	}
	l.quantity = q
	return nil
}

// SetNote replaces the free-text note.
func (l *Line) SetNote(note string) {
	l.note = note
}

// AppendNote appends marker text to the note, separated from existing
// content. Used by the router to flag lines that need manual assignment.
func (l *Line) AppendNote(marker string) {
	if marker == "" {
		return
	}
	if strings.TrimSpace(l.note) == "" {
		l.note = marker
		return
	}
	l.note = l.note + " | " + marker
}
