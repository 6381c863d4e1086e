// Package articlerepo implements read-only persistence for articles and
// their supplier links.
package articlerepo

import (
	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticleDTO represents one article row.
type ArticleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255)"`
	Unit     string    `gorm:"type:varchar(32)"`
	IsActive bool
}

// TableName specifies the database table name for articles.
func (ArticleDTO) TableName() string {
	return "articles"
}

// SupplierLinkDTO represents one (article, supplier) price association.
type SupplierLinkDTO struct {
	ArticleID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SupplierID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SupplierArticleNumber string           `gorm:"type:varchar(64)"`
	Price                 *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Unit                  string           `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for article-supplier links.
func (SupplierLinkDTO) TableName() string {
	return "article_suppliers"
}

func toDomain(dto ArticleDTO) (*article.Article, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return article.RestoreArticle(id, dto.Name, dto.Unit, dto.IsActive)
}

func linkToDomain(dto SupplierLinkDTO) (article.SupplierLink, error) {
	articleID, err := kernel.UUIDFromBytes(dto.ArticleID[:])
	if err != nil {
		return article.SupplierLink{}, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return article.SupplierLink{}, err
	}

	return article.SupplierLink{
		ArticleID:             articleID,
		SupplierID:            supplierID,
		SupplierArticleNumber: dto.SupplierArticleNumber,
		Price:                 dto.Price,
		Unit:                  dto.Unit,
	}, nil
}
