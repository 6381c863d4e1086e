// Package order contains the order aggregate: the Order root, its Lines, and
// the lifecycle Status state machine.
//
// An order is created in Draft by a requester for a department. Lines are
// added, changed, and removed only while Draft. Closing the order (requires
// at least one line) marks it Complete; releasing the shipment batch holding
// its lines marks it Placed. Cancelled is reachable from Draft and Complete.
// Placed and Cancelled are terminal.
package order
