package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/services"
)

// CloseOrderCommandHandler handles the draft-to-complete transition.
type CloseOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
}

// NewCloseOrderCommandHandler creates a handler for closing orders.
func NewCloseOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the close command. Closing requires at least one line;
// the domain rejects empty orders.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	if err = aggregate.Close(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventOrderCompleted, "order marked complete",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
