package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are loaded and stored with all their lines; line mutations flow
// through the aggregate and are persisted by Update.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// added, modified, and removed lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLine retrieves the order aggregate that owns the given line.
	GetByLine(ctx context.Context, lineID kernel.UUID) (*order.Order, error)

	// GetAllByBatch retrieves every order that has at least one line
	// attached to the given shipment batch. Used when releasing a batch
	// to promote the contained orders.
	GetAllByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error)
}
