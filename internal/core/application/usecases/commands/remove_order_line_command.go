package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to delete one line from a
// draft order. The batch the line belonged to is left in place.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	actor  staff.User

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to remove a line.
func NewRemoveOrderLineCommand(lineID kernel.UUID, actor staff.User) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// LineID returns the line to remove.
func (c RemoveOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user removing the line.
func (c RemoveOrderLineCommand) Actor() staff.User {
	return c.actor
}

func (c *RemoveOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *RemoveOrderLineCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
