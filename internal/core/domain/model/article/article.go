// Package article contains the orderable article and its supplier price
// links. An article can be linked to zero, one, or many suppliers; the
// shipment router resolves a line's supplier from exactly these links.
package article

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrArticleIsNotConstructed is returned when an Article was not created
// through NewArticle or RestoreArticle.
var ErrArticleIsNotConstructed = errors.New(
	"Article must be created via NewArticle or RestoreArticle")

// Article is an orderable item.
type Article struct {
	id       kernel.UUID
	name     string
	unit     string
	isActive bool

	guard guard.ConstructorGuard
}

// NewArticle creates an active article.
func NewArticle(id kernel.UUID, name, unit string) (*Article, error) {
	return RestoreArticle(id, name, unit, true)
}

// RestoreArticle reconstructs an article from persistence.
func RestoreArticle(id kernel.UUID, name, unit string, isActive bool) (*Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if unit == "" {
		return nil, errs.NewValueIsRequiredError("unit")
	}

	return &Article{
		id:       id,
		name:     name,
		unit:     unit,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the article was created through a constructor.
func (a *Article) Validate() error {
	if a == nil {
		return ErrArticleIsNotConstructed
	}
	return a.guard.Validate(ErrArticleIsNotConstructed)
}

// ID returns the article's unique identifier.
func (a *Article) ID() kernel.UUID {
	return a.id
}

// Name returns the article's display name.
func (a *Article) Name() string {
	return a.name
}

// Unit returns the unit the article is ordered in.
func (a *Article) Unit() string {
	return a.unit
}

// IsActive reports whether the article may still be ordered.
func (a *Article) IsActive() bool {
	return a.isActive
}

// SupplierLink is the (article, supplier) price and unit association. It is a
// read-only value loaded from persistence; the router counts and follows
// these links when resolving a line's supplier.
type SupplierLink struct {
	ArticleID             kernel.UUID
	SupplierID            kernel.UUID
	SupplierArticleNumber string
	Price                 *decimal.Decimal
	Unit                  string
}
