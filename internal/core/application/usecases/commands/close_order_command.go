package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents a request to mark a draft order as complete,
// handing it over to the approvers.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   staff.User

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close a draft order.
func NewCloseOrderCommand(orderID kernel.UUID, actor staff.User) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user closing the order.
func (c CloseOrderCommand) Actor() staff.User {
	return c.actor
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseOrderCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
