package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
)

// ReleaseShipmentBatchCommandHandler handles sending a batch. The batch
// transitions Open to Sent, and every Complete order with a line in the
// batch is promoted to Placed in the same transaction. Draft orders keep
// their state; their lines ship with a later batch.
type ReleaseShipmentBatchCommandHandler struct {
	uowFactory OrderingUoWFactory
	now        func() time.Time
}

// NewReleaseShipmentBatchCommandHandler creates a handler for batch release.
// now supplies the send timestamp; pass time.Now outside of tests.
func NewReleaseShipmentBatchCommandHandler(
	uowFactory OrderingUoWFactory,
	now func() time.Time,
) ReleaseShipmentBatchCommandHandler {
	return ReleaseShipmentBatchCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the batch release command.
func (h *ReleaseShipmentBatchCommandHandler) Handle(ctx context.Context, cmd ReleaseShipmentBatchCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	batch, err := shipmentRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		if cmd.Actor().Role() != staff.RoleApprover {
			return errs.NewForbiddenError("only approvers may release shipment batches")
		}
		granted, grantErr := uow.SupplierRepository().HasApproverGrant(ctx, cmd.Actor().ID(), batch.SupplierID())
		if grantErr != nil {
			return grantErr
		}
		if !granted {
			return errs.NewForbiddenError("approver holds no grant for this batch's supplier")
		}
	}

	if err = batch.Release(cmd.Actor().ID(), h.now()); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, batch); err != nil {
		return err
	}

	auditRepo := uow.AuditRepository()
	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllByBatch(ctx, batch.ID())
	if err != nil {
		return err
	}
	for _, aggregate := range orders {
		if aggregate.Status() != order.StatusComplete {
			continue
		}
		if err = aggregate.Place(cmd.Actor().ID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		sent, recErr := audit.NewRecord(
			"order", aggregate.ID(), cmd.Actor().ID(),
			audit.EventOrderSent, "order placed with supplier",
		)
		if recErr != nil {
			return recErr
		}
		if err = auditRepo.Add(ctx, sent); err != nil {
			return err
		}
	}

	record, err := audit.NewRecord(
		"shipment_batch", batch.ID(), cmd.Actor().ID(),
		audit.EventBatchReleased, "shipment batch released",
	)
	if err != nil {
		return err
	}
	if err = auditRepo.Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
