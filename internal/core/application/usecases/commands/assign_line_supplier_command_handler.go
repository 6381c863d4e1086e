package commands

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// AssignLineSupplierCommandHandler handles the explicit supplier choice.
// Admins may assign any supplier; approvers only suppliers they hold a
// grant for. The line is re-batched through the router so the batch key
// stays consistent with automatic routing.
type AssignLineSupplierCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.OrderAccessPolicy
	router     services.ShipmentRouter
}

// NewAssignLineSupplierCommandHandler creates a handler for supplier assignment.
func NewAssignLineSupplierCommandHandler(
	uowFactory OrderingUoWFactory,
	policy services.OrderAccessPolicy,
	router services.ShipmentRouter,
) AssignLineSupplierCommandHandler {
	return AssignLineSupplierCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		router:     router,
	}
}

// Handle processes the supplier assignment command.
func (h *AssignLineSupplierCommandHandler) Handle(ctx context.Context, cmd AssignLineSupplierCommand) error {
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

	supplierRepo := uow.SupplierRepository()
	sup, err := supplierRepo.Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}
	if !sup.IsActive() {
		return errs.NewValueIsInvalidError("supplierId")
	}

	if !cmd.Actor().IsAdmin() {
		if cmd.Actor().Role() != staff.RoleApprover {
			return errs.NewForbiddenError("only approvers may assign suppliers")
		}
		granted, grantErr := supplierRepo.HasApproverGrant(ctx, cmd.Actor().ID(), cmd.SupplierID())
		if grantErr != nil {
			return grantErr
		}
		if !granted {
			return errs.NewForbiddenError("approver holds no grant for this supplier")
		}
	}

	line, err := aggregate.Line(cmd.LineID())
	if err != nil {
		return err
	}

	oldSupplier := ""
	if line.SupplierID() != nil {
		oldSupplier = line.SupplierID().String()
	}

	err = h.router.Resolve(ctx, newRoutingCatalog(uow), uow.ShipmentRepository(), aggregate, line, cmd.SupplierID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		"order", aggregate.ID(), cmd.Actor().ID(),
		audit.EventSupplierAssigned, "supplier assigned to order line",
	)
	if err != nil {
		return err
	}
	record = record.WithChange(oldSupplier, cmd.SupplierID().String())
	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
