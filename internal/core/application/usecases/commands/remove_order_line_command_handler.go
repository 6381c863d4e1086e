package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/services"
)

// RemoveOrderLineCommandHandler handles line removal from a draft order.
// Shipment batches are never deleted, even when the removed line was the
// last one attached to them.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
}

// NewRemoveOrderLineCommandHandler creates a handler for line removal.
func NewRemoveOrderLineCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the line removal command.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
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
	aggregate, err := orderRepo.GetByLine(ctx, cmd.LineID())
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

	if err = aggregate.RemoveLine(cmd.LineID()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventLineRemoved, "order line removed",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
