package articlerepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormArticleRepository implements ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a new GORM article repository.
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// Get retrieves an article by ID.
func (r *GormArticleRepository) Get(ctx context.Context, id kernel.UUID) (*article.Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("articleId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LinksByArticle retrieves the article's supplier links, restricted to
// active suppliers.
func (r *GormArticleRepository) LinksByArticle(ctx context.Context, articleID kernel.UUID) ([]article.SupplierLink, error) {
	if err := articleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SupplierLinkDTO
	err := r.db.WithContext(ctx).
		Where("article_id = ? AND supplier_id IN (SELECT id FROM suppliers WHERE is_active)", articleID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	links := make([]article.SupplierLink, 0, len(dtos))
	for _, dto := range dtos {
		link, linkErr := linkToDomain(dto)
		if linkErr != nil {
			return nil, linkErr
		}
		links = append(links, link)
	}

	return links, nil
}
