package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderActivityQueryIsNotConstructed = errors.New(
	"GetOrderActivityQuery must be created via NewGetOrderActivityQuery constructor",
)

// GetOrderActivityQuery retrieves the activity trail of one order, newest
// first. The order must lie inside the actor's visible department radius.
type GetOrderActivityQuery struct {
	actor   staff.User
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderActivityQuery creates a query for an order's activity trail.
func NewGetOrderActivityQuery(actor staff.User, orderID kernel.UUID) (GetOrderActivityQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderActivityQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderActivityQuery{}, err
	}

	return GetOrderActivityQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderActivityQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetOrderActivityQuery) Actor() staff.User {
	return q.actor
}

// OrderID returns the order whose trail is requested.
func (q GetOrderActivityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderActivityQueryResponse is one activity record row.
type GetOrderActivityQueryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Kind        string
	Description string
	OldValue    *string
	NewValue    *string
	RecordedAt  time.Time
}
