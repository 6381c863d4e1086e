package ports

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"
)

// AuditRepository defines the append-only contract for activity records.
// Records are written in the same transaction as the change they describe.
type AuditRepository interface {
	// Add appends an activity record.
	Add(ctx context.Context, record audit.Record) error

	// GetAllByEntity retrieves the activity trail of one entity, newest
	// first.
	GetAllByEntity(ctx context.Context, entityType string, entityID kernel.UUID) ([]audit.Record, error)
}
