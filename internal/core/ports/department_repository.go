// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
)

// DepartmentRepository defines the read contract for the department
// hierarchy. Departments are master data maintained outside the ordering
// flow; commands only read them to build the organizational tree.
type DepartmentRepository interface {
	// Get retrieves a single department by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*department.Department, error)

	// GetAll retrieves every department, active and inactive. The full set
	// is needed to build the tree: inactive departments still anchor
	// parent chains and editable subtrees.
	GetAll(ctx context.Context) ([]*department.Department, error)
}
