package services

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/core/domain/model/supplier"
	"ordering/internal/pkg/errs"
)

// ManualAssignmentNote is appended to a line's note when no supplier is
// linked to its article.
const ManualAssignmentNote = "No supplier found! Requires manual assignment."

// SupplierCatalog is the read surface the router needs: article-supplier
// links and supplier master data. Satisfied by the transaction-bound
// repositories of the unit of work.
type SupplierCatalog interface {
	LinksByArticle(ctx context.Context, articleID kernel.UUID) ([]article.SupplierLink, error)
	Supplier(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)
	DeliveryDays(ctx context.Context, supplierID kernel.UUID) (supplier.WeekdaySet, error)
}

// BatchStore is the shipment-batch surface the router needs. FindOpen must
// match the (supplier, delivery date) key exactly, treating a nil date as a
// distinct value that only matches nil. Add must fail with a Conflict error
// when a concurrent transaction created the same Open key first; the router
// then re-reads instead of creating a duplicate batch.
type BatchStore interface {
	FindOpen(ctx context.Context, supplierID kernel.UUID, deliveryDate *time.Time) (*shipment.Batch, error)
	Add(ctx context.Context, batch *shipment.Batch) error
}

// ShipmentRouter resolves a supplier for each order line and places the line
// into the correct shipment batch. It is the routing heart of the system.
//
// Per line:
//   - zero supplier links: the line stays unresolved, a manual-assignment
//     marker is appended to its note, and no batch is touched;
//   - exactly one link: the line resolves to that supplier and is batched;
//   - more than one link: the line stays unresolved — the system never
//     guesses; an approver assigns the supplier explicitly later.
type ShipmentRouter struct {
	calculator DeliveryDateCalculator
	now        func() time.Time
}

// NewShipmentRouter creates a router. now supplies the routing day for
// delivery-date derivation; pass time.Now outside of tests.
func NewShipmentRouter(calculator DeliveryDateCalculator, now func() time.Time) ShipmentRouter {
	return ShipmentRouter{calculator: calculator, now: now}
}

// RouteLine runs the full per-line routing algorithm against the given order.
// The line must already belong to the order.
func (r ShipmentRouter) RouteLine(
	ctx context.Context,
	catalog SupplierCatalog,
	batches BatchStore,
	o *order.Order,
	line *order.Line,
) error {
	links, err := catalog.LinksByArticle(ctx, line.ArticleID())
	if err != nil {
		return err
	}

	switch len(links) {
	case 0:
		line.AppendNote(ManualAssignmentNote)
		return nil
	case 1:
		return r.Resolve(ctx, catalog, batches, o, line, links[0].SupplierID)
	default:
		// Ambiguous: a human picks the supplier via explicit assignment.
		return nil
	}
}

// Resolve assigns supplierID to the line, determines the effective delivery
// date, and attaches the line to the matching Open batch, creating one when
// none exists. Also invoked by explicit supplier assignment.
func (r ShipmentRouter) Resolve(
	ctx context.Context,
	catalog SupplierCatalog,
	batches BatchStore,
	o *order.Order,
	line *order.Line,
	supplierID kernel.UUID,
) error {
	deliveryDate := o.DeliveryDate()
	if deliveryDate == nil {
		sup, err := catalog.Supplier(ctx, supplierID)
		if err != nil {
			return err
		}
		if sup.HasFixedDeliveryDays() {
			days, err := catalog.DeliveryDays(ctx, supplierID)
			if err != nil {
				return err
			}
			if next, ok := r.calculator.NextDeliveryDate(r.now(), days); ok {
				deliveryDate = &next
			}
			// No eligible date within the horizon: the batch stays
			// unscheduled and is resolved manually downstream.
		}
	}

	if err := line.AssignSupplier(supplierID); err != nil {
		return err
	}

	batch, err := r.findOrCreateBatch(ctx, batches, supplierID, deliveryDate)
	if err != nil {
		return err
	}
	return line.AttachToBatch(batch.ID())
}

// findOrCreateBatch finds the Open batch for (supplierID, deliveryDate) or
// creates it. The store's unique key on (supplier, date, Open) makes the
// create race-safe: on a duplicate-key conflict the batch created by the
// concurrent writer is re-read and used.
func (r ShipmentRouter) findOrCreateBatch(
	ctx context.Context,
	batches BatchStore,
	supplierID kernel.UUID,
	deliveryDate *time.Time,
) (*shipment.Batch, error) {
	batch, err := batches.FindOpen(ctx, supplierID, deliveryDate)
	if err == nil {
		return batch, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	batch, err = shipment.NewBatch(kernel.NewUUID(), supplierID, deliveryDate)
	if err != nil {
		return nil, err
	}

	addErr := batches.Add(ctx, batch)
	if addErr == nil {
		return batch, nil
	}
	if errors.Is(addErr, errs.ErrConflict) {
		// Lost the race; the winner's batch must exist now.
		existing, findErr := batches.FindOpen(ctx, supplierID, deliveryDate)
		if findErr != nil {
			return nil, errs.NewInternalConsistencyErrorWithCause(
				"open shipment batch vanished after duplicate-key conflict", findErr)
		}
		return existing, nil
	}
	return nil, addErr
}
