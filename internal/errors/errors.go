package errors

import "errors"

// Sentinel errors shared across layers. The API layer maps them to HTTP status
// codes with errors.Is, so services never need to know about HTTP.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation, e.g. a
	// missing session_id or game_name. Mapped to 400.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence signifies that a QA record could not be saved. It is
	// logged and swallowed by the chat handler and never reaches the client.
	ErrPersistence = errors.New("persistence failed")

	// ErrInternal is the generic unexpected failure. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
