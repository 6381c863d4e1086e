package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's header:
// delivery date, additional-articles text, delivery notes. Nil fields are
// left unchanged. Setting the delivery date to the explicit null clears it.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	actor              staff.User
	deliveryDate       **time.Time
	additionalArticles *string
	deliveryNotes      *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order header. The
// double pointer on deliveryDate distinguishes "unchanged" (nil) from
// "cleared" (pointer to nil). At least one field must be present.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	actor staff.User,
	deliveryDate **time.Time,
	additionalArticles, deliveryNotes *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		deliveryDate:       deliveryDate,
		additionalArticles: additionalArticles,
		deliveryNotes:      deliveryNotes,
		guard:              guard.NewConstructorGuard(),
	}

	if deliveryDate == nil && additionalArticles == nil && deliveryNotes == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("at least one field")
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user patching the order.
func (c UpdateOrderCommand) Actor() staff.User {
	return c.actor
}

// DeliveryDate returns the new delivery date, nil when unchanged, and a
// pointer to nil when the date is to be cleared.
func (c UpdateOrderCommand) DeliveryDate() **time.Time {
	return c.deliveryDate
}

// AdditionalArticles returns the new wish-list text, or nil when unchanged.
func (c UpdateOrderCommand) AdditionalArticles() *string {
	return c.additionalArticles
}

// DeliveryNotes returns the new delivery instructions, or nil when unchanged.
func (c UpdateOrderCommand) DeliveryNotes() *string {
	return c.deliveryNotes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
