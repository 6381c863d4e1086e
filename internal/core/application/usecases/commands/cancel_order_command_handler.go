package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation. Draft and Complete
// orders can be cancelled; Placed orders cannot, they already left the
// building.
type CancelOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the cancel command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	tree, err := loadDepartmentTree(ctx, uow.DepartmentRepository())
	if err != nil {
		return err
	}
	if err = h.policy.AuthorizeEdit(cmd.Actor(), aggregate, tree); err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventOrderCancelled, "order cancelled",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
