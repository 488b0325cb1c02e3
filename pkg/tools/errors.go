package tools

import "fmt"

// ValidationError reports a caller-input problem before any network call:
// a missing field, an out-of-bounds number, or an unrecognized enum value.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Constraint)
}
