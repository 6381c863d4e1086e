package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrAssignLineSupplierCommandIsNotConstructed = errors.New(
	"AssignLineSupplierCommand must be created via NewAssignLineSupplierCommand constructor",
)

// AssignLineSupplierCommand represents an explicit supplier choice for one
// order line. Used when routing left the line unresolved, or to override a
// previous resolution.
type AssignLineSupplierCommand struct { //nolint:recvcheck //using for validation
	lineID     kernel.UUID
	actor      staff.User
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignLineSupplierCommand creates a command to assign a supplier to a line.
func NewAssignLineSupplierCommand(
	lineID kernel.UUID,
	actor staff.User,
	supplierID kernel.UUID,
) (AssignLineSupplierCommand, error) {
	cmd := AssignLineSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setActor(actor),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return AssignLineSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLineSupplierCommand) Validate() error {
	return c.guard.Validate(ErrAssignLineSupplierCommandIsNotConstructed)
}

// LineID returns the line receiving the supplier.
func (c AssignLineSupplierCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user assigning the supplier.
func (c AssignLineSupplierCommand) Actor() staff.User {
	return c.actor
}

// SupplierID returns the chosen supplier.
func (c AssignLineSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *AssignLineSupplierCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AssignLineSupplierCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignLineSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
