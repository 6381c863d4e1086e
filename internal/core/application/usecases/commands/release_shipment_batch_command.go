package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/guard"
)

var ErrReleaseShipmentBatchCommandIsNotConstructed = errors.New(
	"ReleaseShipmentBatchCommand must be created via NewReleaseShipmentBatchCommand constructor",
)

// ReleaseShipmentBatchCommand represents a request to send an open shipment
// batch to its supplier.
type ReleaseShipmentBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	actor   staff.User

	guard guard.ConstructorGuard
}

// NewReleaseShipmentBatchCommand creates a command to release a batch.
func NewReleaseShipmentBatchCommand(batchID kernel.UUID, actor staff.User) (ReleaseShipmentBatchCommand, error) {
	cmd := ReleaseShipmentBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setActor(actor),
	); err != nil {
		return ReleaseShipmentBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseShipmentBatchCommand) Validate() error {
	return c.guard.Validate(ErrReleaseShipmentBatchCommandIsNotConstructed)
}

// BatchID returns the batch to release.
func (c ReleaseShipmentBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Actor returns the user releasing the batch.
func (c ReleaseShipmentBatchCommand) Actor() staff.User {
	return c.actor
}

func (c *ReleaseShipmentBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ReleaseShipmentBatchCommand) setActor(actor staff.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
