package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineInput carries one requested order line. Supplier resolution happens
// during handling; callers never name a supplier here.
type LineInput struct {
	LineID    kernel.UUID
	ArticleID kernel.UUID
	Quantity  decimal.Decimal
	Note      string
}

// CreateOrderCommand represents a request to open a new draft order for a
// department, optionally pre-filled with lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, actor, departmentID, nil, "", "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy, router)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	actor              staff.User
	departmentID       kernel.UUID
	deliveryDate       *time.Time
	additionalArticles string
	deliveryNotes      string
	lines              []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new draft order.
// Validates identifiers and every line input; lines may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor staff.User,
	departmentID kernel.UUID,
	deliveryDate *time.Time,
	additionalArticles, deliveryNotes string,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryDate:       deliveryDate,
		additionalArticles: additionalArticles,
		deliveryNotes:      deliveryNotes,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setDepartmentID(departmentID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user creating the order.
func (c CreateOrderCommand) Actor() staff.User {
	return c.actor
}

// DepartmentID returns the department the order will belong to.
func (c CreateOrderCommand) DepartmentID() kernel.UUID {
	return c.departmentID
}

// DeliveryDate returns the requested delivery date, if any.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// AdditionalArticles returns the free-text wish list.
func (c CreateOrderCommand) AdditionalArticles() string {
	return c.additionalArticles
}

// DeliveryNotes returns the free-text delivery instructions.
func (c CreateOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setDepartmentID(departmentID kernel.UUID) error {
	if err := departmentID.Validate(); err != nil {
		return err
	}

	c.departmentID = departmentID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	for _, line := range lines {
		if err := line.LineID.Validate(); err != nil {
			return err
		}
		if err := line.ArticleID.Validate(); err != nil {
			return err
		}
		if !line.Quantity.IsPositive() {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = lines
	return nil
}
