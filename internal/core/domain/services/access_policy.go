package services

import (
	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
)

// OrderAccessPolicy is the canonical authorization function for order
// mutations. Every mutation path invokes it instead of scattering role and
// department checks; the role set is closed, so the dispatch here is
// exhaustive.
//
// Rules:
//   - Terminal orders (Placed, Cancelled) and inactive orders: nobody edits.
//   - Admin edits any Draft or Complete order.
//   - Otherwise the order's department must lie in the actor's editable
//     subtree (home department plus descendants, no upward reach), and
//     editing a Complete order additionally requires the Approver role.
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates the policy.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// AuthorizeEdit decides whether actor may mutate the given order.
// Returns nil when allowed, a Conflict error when the order's state permits
// no edits at all, and a Forbidden error when the actor lacks reach or role.
func (OrderAccessPolicy) AuthorizeEdit(
	actor staff.User,
	o *order.Order,
	tree *department.Tree,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.IsActive() {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}
	if o.Status().IsTerminal() {
		return errs.NewConflictError("order can no longer be edited")
	}
	if actor.IsAdmin() {
		return nil
	}

	editable, err := tree.EditableFrom(actor.DepartmentID())
	if err != nil {
		return err
	}
	if !editable.Contains(o.DepartmentID()) {
		return errs.NewForbiddenError("order's department is outside the editable subtree")
	}

	// Complete marks the order ready for approval; only approvers may still
	// adjust it before it is placed.
	if o.Status() == order.StatusComplete && actor.Role() != staff.RoleApprover {
		return errs.NewForbiddenError("only approvers may edit a completed order")
	}

	return nil
}

// AuthorizeCreate decides whether actor may create an order owned by
// targetDepartmentID. Admins reach every department; everyone else only
// departments within their own subtree (validated via parent-pointer walk).
func (OrderAccessPolicy) AuthorizeCreate(
	actor staff.User,
	targetDepartmentID kernel.UUID,
	tree *department.Tree,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if _, err := tree.Get(targetDepartmentID); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}

	ok, err := tree.IsDescendantOf(targetDepartmentID, actor.DepartmentID())
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewForbiddenError("no permission for the requested department")
	}
	return nil
}
