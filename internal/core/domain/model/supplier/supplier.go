// Package supplier contains the supplier entity and its delivery weekday
// rules. A supplier with fixed delivery days only accepts deliveries on the
// configured weekdays; all other suppliers accept any date an order names.
package supplier

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrSupplierIsNotConstructed is returned when a Supplier was not created
// through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New(
	"Supplier must be created via NewSupplier or RestoreSupplier")

// Supplier is a vendor that order lines resolve to and shipment batches are
// addressed to.
type Supplier struct {
	id                kernel.UUID
	name              string
	fixedDeliveryDays bool
	isActive          bool

	guard guard.ConstructorGuard
}

// NewSupplier creates an active supplier.
func NewSupplier(id kernel.UUID, name string, fixedDeliveryDays bool) (*Supplier, error) {
	return RestoreSupplier(id, name, fixedDeliveryDays, true)
}

// RestoreSupplier reconstructs a supplier from persistence.
func RestoreSupplier(id kernel.UUID, name string, fixedDeliveryDays, isActive bool) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Supplier{
		id:                id,
		name:              name,
		fixedDeliveryDays: fixedDeliveryDays,
		isActive:          isActive,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the supplier was created through a constructor.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier's display name.
func (s *Supplier) Name() string {
	return s.name
}

// HasFixedDeliveryDays reports whether deliveries are restricted to the
// supplier's configured weekday set.
func (s *Supplier) HasFixedDeliveryDays() bool {
	return s.fixedDeliveryDays
}

// IsActive reports whether the supplier is active.
func (s *Supplier) IsActive() bool {
	return s.isActive
}
