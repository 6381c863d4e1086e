// Package services contains stateless domain services that coordinate
// multiple aggregates without owning state themselves:
//
//   - DeliveryDateCalculator finds the next eligible delivery date for a
//     supplier with fixed delivery days.
//   - OrderAccessPolicy is the one canonical authorization function every
//     mutation path invokes.
//   - ShipmentRouter resolves a line's supplier and places it into the
//     correct shipment batch.
//
// The services depend on narrow interfaces declared here; the persistence
// adapters satisfy them with transaction-bound repositories.
package services
