package errors

import "errors"

// This package defines a centralized set of sentinel errors for the
// application. Services return these recognizable errors without coupling
// themselves to HTTP status codes; the API layer checks them with
// `errors.Is()` and maps them to the correct responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// A chat id that fails the format check also resolves here: a malformed
	// id is indistinguishable from a missing chat as far as clients are
	// concerned. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation before any
	// work was done. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current
	// state of a resource, e.g. submitting to a chat that already has a
	// generation in flight. Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrGeneration is the uniform failure signal for any provider or
	// transport error at the Dispatcher boundary. The raw provider error is
	// logged but never crosses this boundary.
	ErrGeneration = errors.New("generation failed")

	// ErrInternal signifies an unexpected server-side error. Mapped to 500
	// Internal Server Error with a generic message so implementation details
	// never leak to the client.
	ErrInternal = errors.New("internal server error")
)
