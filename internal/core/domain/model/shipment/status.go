package shipment

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment batch.
//
// State transitions:
//
//	Open ──> Sent
//	  │
//	  └──> Cancelled
//
// Sent and Cancelled are terminal; a released batch never regresses to Open.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOpen means the batch still collects order lines.
	StatusOpen

	// StatusSent means the batch was released as an outbound consignment.
	StatusSent

	// StatusCancelled means the batch was aborted before release.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusOpen:      "Open",
		StatusSent:      "Sent",
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
		fmt.Errorf("%q is not a valid shipment batch status", s))
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
	case StatusOpen, StatusSent, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment batch status", s))
	}
}

// Send transitions Open to Sent.
func (s Status) Send() (Status, error) {
	if s != StatusOpen {
		return 0, errs.NewConflictErrorWithCause("shipment batch is not open",
			fmt.Errorf("cannot send batch in status %s", s))
	}
	return StatusSent, nil
}

// Cancel transitions Open to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusOpen {
		return 0, errs.NewConflictErrorWithCause("shipment batch is not open",
			fmt.Errorf("cannot cancel batch in status %s", s))
	}
	return StatusCancelled, nil
}
