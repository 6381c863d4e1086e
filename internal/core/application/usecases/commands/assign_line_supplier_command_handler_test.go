package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/core/domain/model/supplier"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignLineSupplierCommandHandler_Handle_ApproverWithGrant(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleApprover, hierarchy.kitchen)

	aggregate := draftWithOneLine(t, hierarchy.kitchen)
	line := aggregate.Lines()[0]

	supplierID := kernel.NewUUID()
	sup, err := supplier.NewSupplier(supplierID, "Getränke Petersen", false)
	require.NoError(t, err)

	cmd, err := commands.NewAssignLineSupplierCommand(line.ID(), actor, supplierID)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByLine", ctx, line.ID()).Return(aggregate, nil)
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()

	supplierRepo := new(MockSupplierRepository)
	supplierRepo.On("Get", ctx, supplierID).Return(sup, nil)
	supplierRepo.On("HasApproverGrant", ctx, actor.ID(), supplierID).Return(true, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("FindOpen", ctx, supplierID, (*time.Time)(nil)).
		Return(nil, errs.NewObjectNotFoundError("supplierId", supplierID.String()))
	shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Batch")).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(record audit.Record) bool {
		return record.Kind == audit.EventSupplierAssigned &&
			record.NewValue != nil && *record.NewValue == supplierID.String()
	})).Return(nil).Once()

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ArticleRepository").Return(new(MockArticleRepository))
	uow.On("SupplierRepository").Return(supplierRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("AuditRepository").Return(auditRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignLineSupplierCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, line.IsRouted())
	require.True(t, line.SupplierID().IsEqual(supplierID))
	orderRepo.AssertExpectations(t)
	supplierRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignLineSupplierCommandHandler_Handle_ApproverWithoutGrant(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleApprover, hierarchy.kitchen)

	aggregate := draftWithOneLine(t, hierarchy.kitchen)
	line := aggregate.Lines()[0]

	supplierID := kernel.NewUUID()
	sup, err := supplier.NewSupplier(supplierID, "Getränke Petersen", false)
	require.NoError(t, err)

	cmd, err := commands.NewAssignLineSupplierCommand(line.ID(), actor, supplierID)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByLine", ctx, line.ID()).Return(aggregate, nil)

	supplierRepo := new(MockSupplierRepository)
	supplierRepo.On("Get", ctx, supplierID).Return(sup, nil)
	supplierRepo.On("HasApproverGrant", ctx, actor.ID(), supplierID).Return(false, nil).Once()

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("SupplierRepository").Return(supplierRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignLineSupplierCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)

	require.False(t, line.IsRouted())
	uow.AssertExpectations(t)
}

func TestAssignLineSupplierCommandHandler_Handle_RequesterForbidden(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)

	aggregate := draftWithOneLine(t, hierarchy.kitchen)
	line := aggregate.Lines()[0]

	supplierID := kernel.NewUUID()
	sup, err := supplier.NewSupplier(supplierID, "Getränke Petersen", false)
	require.NoError(t, err)

	cmd, err := commands.NewAssignLineSupplierCommand(line.ID(), actor, supplierID)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByLine", ctx, line.ID()).Return(aggregate, nil)

	supplierRepo := new(MockSupplierRepository)
	supplierRepo.On("Get", ctx, supplierID).Return(sup, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("SupplierRepository").Return(supplierRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignLineSupplierCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)

	uow.AssertExpectations(t)
}
