package velo

import "fmt"

// ValidationError reports an intent rejected before any mutation: bad or
// out-of-range input, an empty name, a limit exceeding the liquid pool.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// verrf builds a ValidationError with a formatted reason.
func verrf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an intent referencing an id or name that is not
// present in the current state.
type NotFoundError struct {
	Kind string // "envelope" or "archive"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}
