package port

import "errors"

var (
	// ErrNotFound covers both a missing row and an ownership mismatch;
	// callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an assignment pair already exists.
	// Duplicate assignments are rejected, never silently absorbed.
	ErrConflict = errors.New("already exists")
	// ErrUnauthenticated is returned before any service logic runs when
	// no valid session accompanies the request.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError reports a single malformed or out-of-range input field.
// The request is not applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}
