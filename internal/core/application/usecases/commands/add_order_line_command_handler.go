package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// AddOrderLineCommandHandler handles adding a line to an existing order.
// The new line is routed to its supplier and batch immediately.
type AddOrderLineCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
	router     services.ShipmentRouter
}

// NewAddOrderLineCommandHandler creates a handler for line addition.
func NewAddOrderLineCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
	router services.ShipmentRouter,
) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		router:     router,
	}
}

// Handle processes the line addition command.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	art, err := uow.ArticleRepository().Get(ctx, cmd.ArticleID())
	if err != nil {
		return err
	}
	if !art.IsActive() {
		return errs.NewObjectNotFoundError("articleId", cmd.ArticleID().String())
	}

	line, err := order.NewLine(cmd.LineID(), aggregate.ID(), cmd.ArticleID(), cmd.Quantity(), cmd.Note())
	if err != nil {
		return err
	}
	if err = aggregate.AddLine(line); err != nil {
		return err
	}
	if err = h.router.RouteLine(ctx, newRoutingCatalog(uow), uow.ShipmentRepository(), aggregate, line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventLineUpdated, "order line added",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
