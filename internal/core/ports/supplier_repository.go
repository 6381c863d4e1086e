package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/supplier"
)

// SupplierRepository defines the read contract for suppliers, their
// delivery-day rules, and approver-supplier grants.
type SupplierRepository interface {
	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// DeliveryDays retrieves the weekday set a fixed-delivery-days
	// supplier accepts deliveries on. Returns an empty set for suppliers
	// without configured days.
	DeliveryDays(ctx context.Context, supplierID kernel.UUID) (supplier.WeekdaySet, error)

	// HasApproverGrant reports whether the given approver is responsible
	// for the given supplier. Grants scope which batches a non-admin
	// approver may assign, release, and list.
	HasApproverGrant(ctx context.Context, approverID, supplierID kernel.UUID) (bool, error)

	// GrantedSupplierIDs retrieves the supplier identifiers the given
	// approver holds grants for.
	GrantedSupplierIDs(ctx context.Context, approverID kernel.UUID) ([]kernel.UUID, error)
}
