// Package department contains the department entity and the hierarchy
// resolver. Departments form a forest of trees via parent-id links; the Tree
// type answers which departments a user may view or edit.
package department

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrDepartmentIsNotConstructed is returned when a Department was not created
// through NewDepartment or RestoreDepartment.
var ErrDepartmentIsNotConstructed = errors.New(
	"Department must be created via NewDepartment or RestoreDepartment")

// Department is an organizational unit that owns orders. It references its
// parent by id rather than by pointer: tree walks are index-based iteration
// over the Tree arena, never native object recursion.
type Department struct {
	id       kernel.UUID
	name     string
	parentID *kernel.UUID
	isActive bool

	guard guard.ConstructorGuard
}

// NewDepartment creates an active department. parentID is nil for roots.
func NewDepartment(id kernel.UUID, name string, parentID *kernel.UUID) (*Department, error) {
	return RestoreDepartment(id, name, parentID, true)
}

// RestoreDepartment reconstructs a department from persistence.
func RestoreDepartment(id kernel.UUID, name string, parentID *kernel.UUID, isActive bool) (*Department, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return nil, err
		}
		if parentID.IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause("parentId",
				errors.New("department cannot be its own parent"))
		}
	}

	return &Department{
		id:       id,
		name:     name,
		parentID: parentID,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the department was created through a constructor.
func (d *Department) Validate() error {
	if d == nil {
		return ErrDepartmentIsNotConstructed
	}
	return d.guard.Validate(ErrDepartmentIsNotConstructed)
}

// ID returns the department's unique identifier.
func (d *Department) ID() kernel.UUID {
	return d.id
}

// Name returns the department's display name.
func (d *Department) Name() string {
	return d.name
}

// ParentID returns the parent department id, or nil for a root.
func (d *Department) ParentID() *kernel.UUID {
	return d.parentID
}

// IsActive reports whether the department is active.
func (d *Department) IsActive() bool {
	return d.isActive
}

// IsRoot reports whether the department has no parent.
func (d *Department) IsRoot() bool {
	return d.parentID == nil
}
