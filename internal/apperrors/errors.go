package apperrors

import "errors"

// Sentinel errors for the service/repository boundary. Repositories and
// services wrap these with fmt.Errorf("...: %w", err); handlers map them to
// HTTP statuses with errors.Is so raw storage errors never reach clients.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when a unique key (e.g. user email) already exists.
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned when a password comparison fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
