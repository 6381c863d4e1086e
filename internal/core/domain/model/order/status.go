package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions; Placed and Cancelled are terminal.
//
// State transitions:
//
//	Draft ──> Complete ──> Placed
//	  │           │
//	  └───────────┴──> Cancelled
//
// Draft orders are still being assembled by a requester. Closing an order
// marks it Complete (ready for approval). Placed is reached when the shipment
// batch containing the order's lines is released.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial state; lines may only be added, changed,
	// or removed while Draft.
	StatusDraft

	// StatusComplete marks the order ready for approval. Only approvers
	// (or admins) may still adjust it.
	StatusComplete

	// StatusPlaced means the containing shipment batch was released.
	// Terminal.
	StatusPlaced

	// StatusCancelled is the explicit abort state, reachable from Draft
	// and Complete. Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusDraft:     "Draft",
		StatusComplete:  "Complete",
		StatusPlaced:    "Placed",
		StatusCancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as stored in persistence.
func StatusFromString(s string) (Status, error) {
	for st, name := range statusStrings() {
		if st != StatusUnknown && name == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the status name.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusComplete, StatusPlaced, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == StatusPlaced || s == StatusCancelled
}

// Close transitions Draft to Complete.
func (s Status) Close() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewConflictErrorWithCause("order is not in draft status",
			fmt.Errorf("cannot close order in status %s", s))
	}
	return StatusComplete, nil
}

// Place transitions Complete to Placed.
func (s Status) Place() (Status, error) {
	if s != StatusComplete {
		return 0, errs.NewConflictErrorWithCause("order is not complete",
			fmt.Errorf("cannot place order in status %s", s))
	}
	return StatusPlaced, nil
}

// Cancel transitions Draft or Complete to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusDraft && s != StatusComplete {
		return 0, errs.NewConflictErrorWithCause("order can no longer be cancelled",
			fmt.Errorf("cannot cancel order in status %s", s))
	}
	return StatusCancelled, nil
}
