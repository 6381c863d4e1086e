package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to add one article line to an
// existing draft order.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID    kernel.UUID
	actor     staff.User
	orderID   kernel.UUID
	articleID kernel.UUID
	quantity  decimal.Decimal
	note      string

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// Validates identifiers and requires a positive quantity.
func NewAddOrderLineCommand(
	lineID kernel.UUID,
	actor staff.User,
	orderID, articleID kernel.UUID,
	quantity decimal.Decimal,
	note string,
) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setArticleID(articleID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// LineID returns the identifier the new line will carry.
func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user adding the line.
func (c AddOrderLineCommand) Actor() staff.User {
	return c.actor
}

// OrderID returns the order to extend.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ArticleID returns the requested article.
func (c AddOrderLineCommand) ArticleID() kernel.UUID {
	return c.articleID
}

// Quantity returns the requested quantity.
func (c AddOrderLineCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// Note returns the free-text line note.
func (c AddOrderLineCommand) Note() string {
	return c.note
}

func (c *AddOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddOrderLineCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}

	c.articleID = articleID
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
