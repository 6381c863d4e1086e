package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetShipmentBatchesQueryIsNotConstructed = errors.New(
	"GetShipmentBatchesQuery must be created via NewGetShipmentBatchesQuery constructor",
)

// GetShipmentBatchesQuery retrieves shipment batches for the release
// console. Admins see every batch; approvers only batches of suppliers they
// hold a grant for. Requesters have no batch view at all.
type GetShipmentBatchesQuery struct {
	actor  staff.User
	status *shipment.Status

	guard guard.ConstructorGuard
}

// NewGetShipmentBatchesQuery creates a batch listing query. Requesters are
// rejected here rather than in the handler; the listing is an approver tool.
func NewGetShipmentBatchesQuery(actor staff.User, status *shipment.Status) (GetShipmentBatchesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetShipmentBatchesQuery{}, err
	}
	if !actor.IsAdmin() && actor.Role() != staff.RoleApprover {
		return GetShipmentBatchesQuery{}, errs.NewForbiddenError("only approvers may list shipment batches")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetShipmentBatchesQuery{}, err
		}
	}

	return GetShipmentBatchesQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentBatchesQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetShipmentBatchesQuery) Actor() staff.User {
	return q.actor
}

// Status returns the optional status filter.
func (q GetShipmentBatchesQuery) Status() *shipment.Status {
	return q.status
}

// GetShipmentBatchesQueryResponse is one batch row of the listing.
type GetShipmentBatchesQueryResponse struct {
	ID           kernel.UUID
	SupplierID   kernel.UUID
	SupplierName string
	DeliveryDate *time.Time
	Status       shipment.Status
	SentAt       *time.Time
	LineCount    int
}
