package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment batches.
// It also satisfies the router's batch-store surface: FindOpen and Add carry
// the exact-key and duplicate-conflict semantics the router relies on.
type ShipmentRepository interface {
	// Add persists a new batch. Must fail with a Conflict error when an
	// Open batch with the same (supplier, delivery date) key already
	// exists; the router treats that as a lost insert race and re-reads.
	Add(ctx context.Context, batch *shipment.Batch) error

	// Update persists changes to an existing batch.
	Update(ctx context.Context, batch *shipment.Batch) error

	// Get retrieves a batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Batch, error)

	// FindOpen retrieves the Open batch keyed by supplier and delivery
	// date. A nil date only matches batches without a date.
	FindOpen(ctx context.Context, supplierID kernel.UUID, deliveryDate *time.Time) (*shipment.Batch, error)
}
