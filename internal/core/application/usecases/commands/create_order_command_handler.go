package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Opens a draft order after checking department reach, then routes every
// requested line to its supplier and shipment batch.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
	router     services.ShipmentRouter
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
	router services.ShipmentRouter,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		router:     router,
	}
}

// Handle processes the order creation command. The order, its routed lines,
// any lazily created batches, and the audit record are committed atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	tree, err := loadDepartmentTree(ctx, uow.DepartmentRepository())
	if err != nil {
		return err
	}
	if err = h.policy.AuthorizeCreate(cmd.Actor(), cmd.DepartmentID(), tree); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.DepartmentID(),
		cmd.Actor().ID(),
		cmd.DeliveryDate(),
		cmd.AdditionalArticles(),
		cmd.DeliveryNotes(),
	)
	if err != nil {
		return err
	}

	catalog := newRoutingCatalog(uow)
	articleRepo := uow.ArticleRepository()
	for _, input := range cmd.Lines() {
		art, artErr := articleRepo.Get(ctx, input.ArticleID)
		if artErr != nil {
			return artErr
		}
		if !art.IsActive() {
			return errs.NewObjectNotFoundError("articleId", input.ArticleID.String())
		}

		line, lineErr := order.NewLine(input.LineID, aggregate.ID(), input.ArticleID, input.Quantity, input.Note)
		if lineErr != nil {
			return lineErr
		}
		if err = aggregate.AddLine(line); err != nil {
			return err
		}
		if err = h.router.RouteLine(ctx, catalog, uow.ShipmentRepository(), aggregate, line); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventOrderCreated,
		fmt.Sprintf("order drafted with %d lines", len(cmd.Lines())),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
