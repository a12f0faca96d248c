// ABOUTME: Error taxonomy for domain operations
// ABOUTME: Collision and not-found errors; validation comes from models

package state

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing post, profile, or conversation. Views render
// it as an inline placeholder, not a failure.
var ErrNotFound = errors.New("not found")

// CollisionError reports that a username is already claimed by a different
// profile. The caller decides: re-invoke with overwrite to remove the
// existing profile, or abort with no mutation.
type CollisionError struct {
	Username   string
	ExistingID string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("username @%s already claimed by another profile", e.Username)
}
