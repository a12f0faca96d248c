// ABOUTME: Validation error type shared by constructors and domain operations
// ABOUTME: Identifies which required field was empty or malformed

package models

import "fmt"

// ValidationError reports an empty or malformed required field. Operations
// that return one have made no mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
