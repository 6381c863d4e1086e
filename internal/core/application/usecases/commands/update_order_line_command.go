package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderLineCommandIsNotConstructed = errors.New(
	"UpdateOrderLineCommand must be created via NewUpdateOrderLineCommand constructor",
)

// UpdateOrderLineCommand represents a partial update of one order line.
// Nil fields are left unchanged; at least one field must be present.
type UpdateOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.UUID
	actor    staff.User
	quantity *decimal.Decimal
	note     *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderLineCommand creates a command to patch a line's quantity
// and/or note.
func NewUpdateOrderLineCommand(
	lineID kernel.UUID,
	actor staff.User,
	quantity *decimal.Decimal,
	note *string,
) (UpdateOrderLineCommand, error) {
	cmd := UpdateOrderLineCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if quantity == nil && note == nil {
		return UpdateOrderLineCommand{}, errs.NewValueIsRequiredError("quantity or note")
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setActor(actor),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderLineCommandIsNotConstructed)
}

// LineID returns the line to patch.
func (c UpdateOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user patching the line.
func (c UpdateOrderLineCommand) Actor() staff.User {
	return c.actor
}

// Quantity returns the new quantity, or nil when unchanged.
func (c UpdateOrderLineCommand) Quantity() *decimal.Decimal {
	return c.quantity
}

// Note returns the new note, or nil when unchanged.
func (c UpdateOrderLineCommand) Note() *string {
	return c.note
}

func (c *UpdateOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateOrderLineCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderLineCommand) setQuantity(quantity *decimal.Decimal) error {
	if quantity != nil && !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
