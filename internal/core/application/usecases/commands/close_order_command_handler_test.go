package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftWithOneLine(t *testing.T, departmentID kernel.UUID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), departmentID, kernel.NewUUID(), nil, "", "")
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), aggregate.ID(), kernel.NewUUID(), decimal.NewFromInt(2), "")
	require.NoError(t, err)
	require.NoError(t, aggregate.AddLine(line))
	return aggregate
}

func TestCloseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)
	aggregate := draftWithOneLine(t, hierarchy.kitchen)

	cmd, err := commands.NewCloseOrderCommand(aggregate.ID(), actor)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", ctx, mock.MatchedBy(func(updated *order.Order) bool {
		return updated.Status() == order.StatusComplete
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(record audit.Record) bool {
		return record.Kind == audit.EventOrderCompleted
	})).Return(nil).Once()

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AuditRepository").Return(auditRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseOrderCommandHandler(factory, services.NewOrderAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCloseOrderCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)

	aggregate, err := order.NewOrder(kernel.NewUUID(), hierarchy.kitchen, kernel.NewUUID(), nil, "", "")
	require.NoError(t, err)

	cmd, err := commands.NewCloseOrderCommand(aggregate.ID(), actor)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseOrderCommandHandler(factory, services.NewOrderAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)

	uow.AssertExpectations(t)
}
