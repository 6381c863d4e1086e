// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the order-to-shipment core:
//   - ObjectNotFoundError: a referenced entity is absent or inactive
//   - ForbiddenError: the caller lacks the role or department reach
//   - ConflictError: an invalid lifecycle transition was attempted
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - InternalConsistencyError: a storage-level invariant was violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// All errors are raised synchronously to the immediate caller and are never
// retried internally. InternalConsistencyError is the only kind callers should
// log as unexpected; all others are expected, user-facing outcomes translated
// by the transport layer into protocol-appropriate responses.
package errs
