package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/article"
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

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)

	articleID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	art, err := article.NewArticle(articleID, "Mehl Type 550", "kg")
	require.NoError(t, err)

	deliveryDate := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor, hierarchy.kitchen, &deliveryDate, "", "",
		[]commands.LineInput{{
			LineID:    kernel.NewUUID(),
			ArticleID: articleID,
			Quantity:  decimal.NewFromInt(25),
		}},
	)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	articleRepo := new(MockArticleRepository)
	articleRepo.On("Get", ctx, articleID).Return(art, nil)
	articleRepo.On("LinksByArticle", ctx, articleID).
		Return([]article.SupplierLink{{ArticleID: articleID, SupplierID: supplierID}}, nil)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("FindOpen", ctx, supplierID, &deliveryDate).
		Return(nil, errs.NewObjectNotFoundError("supplierId", supplierID.String()))
	shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Batch")).Return(nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(aggregate *order.Order) bool {
		return len(aggregate.Lines()) == 1 && aggregate.Lines()[0].IsRouted()
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(record audit.Record) bool {
		return record.Kind == audit.EventOrderCreated
	})).Return(nil).Once()

	supplierRepo := new(MockSupplierRepository)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ArticleRepository").Return(articleRepo)
	uow.On("SupplierRepository").Return(supplierRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("AuditRepository").Return(auditRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderingUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_ForeignDepartment(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.service)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor, hierarchy.kitchen, nil, "", "", nil,
	)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)

	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveArticle(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleAdmin, hierarchy.restaurant)

	articleID := kernel.NewUUID()
	art, err := article.RestoreArticle(articleID, "Altes Sortiment", "kg", false)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor, hierarchy.kitchen, nil, "", "",
		[]commands.LineInput{{
			LineID:    kernel.NewUUID(),
			ArticleID: articleID,
			Quantity:  decimal.NewFromInt(1),
		}},
	)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	articleRepo := new(MockArticleRepository)
	articleRepo.On("Get", ctx, articleID).Return(art, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("ArticleRepository").Return(articleRepo)
	uow.On("SupplierRepository").Return(new(MockSupplierRepository))

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}
