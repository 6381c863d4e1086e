// Package queries contains read operations over the persistence model.
// Queries bypass the aggregates and read projections straight from the
// database, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to the actor, optionally
// filtered by status and department. Visibility follows the organizational
// radius: the actor's home department, its parent, active siblings, and
// active direct children. Admins see every department.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actor, nil, nil)
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actor        staff.User
	status       *order.Status
	departmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's visible orders.
// Both filters are optional.
func NewGetOrdersQuery(actor staff.User, status *order.Status, departmentID *kernel.UUID) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if departmentID != nil {
		if err := departmentID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:        actor,
		status:       status,
		departmentID: departmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetOrdersQuery) Actor() staff.User {
	return q.actor
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// DepartmentID returns the optional department filter.
func (q GetOrdersQuery) DepartmentID() *kernel.UUID {
	return q.departmentID
}

// GetOrdersQueryResponse is one order row of the listing.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	DepartmentID kernel.UUID
	Status       order.Status
	DeliveryDate *time.Time
	DraftedAt    time.Time
	LineCount    int
}
