// Package errs provides standardized error types for the tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the service must report:
//   - ObjectNotFoundError: a referenced order or location report is absent
//   - ValueIsInvalidError / ValueIsOutOfRangeError / ValueIsRequiredError: validation failures
//   - AccessForbiddenError: the authorization gate rejected the principal
//   - PersistenceFailedError: the durable store was unavailable or errored
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All error kinds surface to callers verbatim; nothing in the core downgrades
// one kind into another.
package errs
