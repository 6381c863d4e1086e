package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderLineCommandHandler_Handle_InactiveArticle(t *testing.T) {
	ctx := t.Context()
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)

	aggregate := draftWithOneLine(t, hierarchy.kitchen)

	articleID := kernel.NewUUID()
	art, err := article.RestoreArticle(articleID, "Altes Sortiment", "kg", false)
	require.NoError(t, err)

	cmd, err := commands.NewAddOrderLineCommand(
		kernel.NewUUID(), actor, aggregate.ID(), articleID, decimal.NewFromInt(3), "",
	)
	require.NoError(t, err)

	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("GetAll", ctx).Return(hierarchy.departments, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	articleRepo := new(MockArticleRepository)
	articleRepo.On("Get", ctx, articleID).Return(art, nil)

	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("DepartmentRepository").Return(departmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ArticleRepository").Return(articleRepo)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory, services.NewOrderAccessPolicy(), newTestRouter())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)

	require.Len(t, aggregate.Lines(), 1)
	uow.AssertExpectations(t)
}
