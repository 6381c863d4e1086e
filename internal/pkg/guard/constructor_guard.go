// Package guard implements the constructor-guard pattern used by commands and
// entities to ensure instances are only created through their designated
// constructor functions. A zero-value struct fails validation, which prevents
// bypassing the invariant checks those constructors perform.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// was provided and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// field and set it with NewConstructorGuard inside the constructor; a struct
// literal or zero value then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor,
// otherwise the provided error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
