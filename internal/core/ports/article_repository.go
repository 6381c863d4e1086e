package ports

import (
	"context"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
)

// ArticleRepository defines the read contract for articles and their
// supplier links. Articles are master data; the ordering flow never
// mutates them.
type ArticleRepository interface {
	// Get retrieves an article by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*article.Article, error)

	// LinksByArticle retrieves all supplier links of the given article,
	// restricted to active suppliers. The link count drives supplier
	// resolution: zero links flag the line for manual assignment, one
	// resolves it, more than one leaves the decision to an approver.
	LinksByArticle(ctx context.Context, articleID kernel.UUID) ([]article.SupplierLink, error)
}
