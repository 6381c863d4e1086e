package commands

import (
	"context"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/supplier"
	"ordering/internal/core/ports"
)

// routingCatalog adapts the transaction-bound article and supplier
// repositories to the read surface the shipment router expects.
type routingCatalog struct {
	articles  ports.ArticleRepository
	suppliers ports.SupplierRepository
}

func newRoutingCatalog(uow OrderingUoW) routingCatalog {
	return routingCatalog{
		articles:  uow.ArticleRepository(),
		suppliers: uow.SupplierRepository(),
	}
}

func (c routingCatalog) LinksByArticle(ctx context.Context, articleID kernel.UUID) ([]article.SupplierLink, error) {
	return c.articles.LinksByArticle(ctx, articleID)
}

func (c routingCatalog) Supplier(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	return c.suppliers.Get(ctx, id)
}

func (c routingCatalog) DeliveryDays(ctx context.Context, supplierID kernel.UUID) (supplier.WeekdaySet, error) {
	return c.suppliers.DeliveryDays(ctx, supplierID)
}

// loadDepartmentTree builds the organizational tree from the full department
// set of the current transaction.
func loadDepartmentTree(ctx context.Context, departments ports.DepartmentRepository) (*department.Tree, error) {
	all, err := departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return department.NewTree(all)
}
