// Package staff contains the authenticated user record and the closed set of
// roles the authorization rules dispatch on. Authentication itself happens
// outside the core; callers hand in an already-verified User.
package staff

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Role is the closed set of user roles. Every mutation path dispatches on it
// through one canonical authorization function rather than scattered checks.
//
// The German operational names are Freigeber (Approver) and Bedarfsmelder
// (Requester).
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin bypasses all department-scope checks.
	RoleAdmin

	// RoleApprover may edit completed orders and release shipment batches
	// for suppliers it holds a grant for.
	RoleApprover

	// RoleRequester may create and edit draft orders within its editable
	// department subtree.
	RoleRequester
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleAdmin:     "Admin",
		RoleApprover:  "Approver",
		RoleRequester: "Requester",
	}
}

// RoleFromString parses a role name as stored in persistence.
func RoleFromString(s string) (Role, error) {
	for r, name := range roleStrings() {
		if r != RoleUnknown && name == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the role name.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleApprover && r != RoleRequester {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
