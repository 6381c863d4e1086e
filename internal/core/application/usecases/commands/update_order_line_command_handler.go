package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/services"
)

// UpdateOrderLineCommandHandler handles quantity and note changes on a line.
// Only draft orders can be edited this way; the before/after value of the
// changed field is captured in the audit trail.
type UpdateOrderLineCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
}

// NewUpdateOrderLineCommandHandler creates a handler for line updates.
func NewUpdateOrderLineCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
) UpdateOrderLineCommandHandler {
	return UpdateOrderLineCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the line update command.
func (h *UpdateOrderLineCommandHandler) Handle(ctx context.Context, cmd UpdateOrderLineCommand) error {
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

	line, err := aggregate.EditableLine(cmd.LineID())
	if err != nil {
		return err
	}

	oldQuantity := line.Quantity().String()
	oldNote := line.Note()
	if cmd.Quantity() != nil {
		if err = line.SetQuantity(*cmd.Quantity()); err != nil {
			return err
		}
	}
	if cmd.Note() != nil {
		line.SetNote(*cmd.Note())
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventLineUpdated, "order line updated",
	)
	if err != nil {
		return err
	}
	switch {
	case cmd.Quantity() != nil:
		record = record.WithChange(oldQuantity, line.Quantity().String())
	case cmd.Note() != nil:
		record = record.WithChange(oldNote, line.Note())
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
