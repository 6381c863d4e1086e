package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles order-header changes. A changed
// delivery date re-routes every already-resolved line so its batch matches
// the new date.
type UpdateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
	router     services.ShipmentRouter
}

// NewUpdateOrderCommandHandler creates a handler for order-header updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
	router services.ShipmentRouter,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		router:     router,
	}
}

// Handle processes the order-header update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	dateChanged := false
	if cmd.DeliveryDate() != nil {
		if err = aggregate.SetDeliveryDate(*cmd.DeliveryDate()); err != nil {
			return err
		}
		dateChanged = true
	}
	if cmd.AdditionalArticles() != nil || cmd.DeliveryNotes() != nil {
		additionalArticles := aggregate.AdditionalArticles()
		if cmd.AdditionalArticles() != nil {
			additionalArticles = *cmd.AdditionalArticles()
		}
		deliveryNotes := aggregate.DeliveryNotes()
		if cmd.DeliveryNotes() != nil {
			deliveryNotes = *cmd.DeliveryNotes()
		}
		if err = aggregate.SetNotes(additionalArticles, deliveryNotes); err != nil {
			return err
		}
	}

	if dateChanged {
		catalog := newRoutingCatalog(uow)
		for _, line := range aggregate.Lines() {
			if line.SupplierID() == nil {
				continue
			}
			err = h.router.Resolve(ctx, catalog, uow.ShipmentRepository(), aggregate, line, *line.SupplierID())
			if err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventOrderUpdated, "order header updated",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
