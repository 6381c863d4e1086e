package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseShipmentBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleAdmin, hierarchy.restaurant)

	supplierID := kernel.NewUUID()
	deliveryDate := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	batch, err := shipment.NewBatch(kernel.NewUUID(), supplierID, &deliveryDate)
	require.NoError(t, err)

	complete := draftWithOneLine(t, hierarchy.kitchen)
	require.NoError(t, complete.Close())
	stillDraft := draftWithOneLine(t, hierarchy.service)

	cmd, err := commands.NewReleaseShipmentBatchCommand(batch.ID(), actor)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", ctx, batch.ID()).Return(batch, nil)
	shipmentRepo.On("Update", ctx, mock.MatchedBy(func(updated *shipment.Batch) bool {
		return updated.Status() == shipment.StatusSent && updated.SenderID() != nil
	})).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllByBatch", ctx, batch.ID()).Return([]*order.Order{complete, stillDraft}, nil)
	orderRepo.On("Update", ctx, mock.MatchedBy(func(updated *order.Order) bool {
		return updated.ID().IsEqual(complete.ID()) && updated.Status() == order.StatusPlaced
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(record audit.Record) bool {
		return record.Kind == audit.EventOrderSent
	})).Return(nil).Once()
	auditRepo.On("Add", ctx, mock.MatchedBy(func(record audit.Record) bool {
		return record.Kind == audit.EventBatchReleased
	})).Return(nil).Once()

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("AuditRepository").Return(auditRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseShipmentBatchCommandHandler(factory, testClock)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StatusDraft, stillDraft.Status())
	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseShipmentBatchCommandHandler_Handle_ApproverWithoutGrant(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleApprover, hierarchy.kitchen)

	supplierID := kernel.NewUUID()
	batch, err := shipment.NewBatch(kernel.NewUUID(), supplierID, nil)
	require.NoError(t, err)

	cmd, err := commands.NewReleaseShipmentBatchCommand(batch.ID(), actor)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", ctx, batch.ID()).Return(batch, nil)

	supplierRepo := new(MockSupplierRepository)
	supplierRepo.On("HasApproverGrant", ctx, actor.ID(), supplierID).Return(false, nil).Once()

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("SupplierRepository").Return(supplierRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseShipmentBatchCommandHandler(factory, testClock)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)

	require.Equal(t, shipment.StatusOpen, batch.Status())
	uow.AssertExpectations(t)
}

func TestReleaseShipmentBatchCommandHandler_Handle_PastDeliveryDate(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleAdmin, hierarchy.restaurant)

	pastDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	batch, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), &pastDate)
	require.NoError(t, err)

	cmd, err := commands.NewReleaseShipmentBatchCommand(batch.ID(), actor)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", ctx, batch.ID()).Return(batch, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("ShipmentRepository").Return(shipmentRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseShipmentBatchCommandHandler(factory, testClock)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)

	require.Equal(t, shipment.StatusOpen, batch.Status())
	uow.AssertExpectations(t)
}
