// ABOUTME: Username normalization and local-identity fallback
// ABOUTME: Handles @-prefixed input and the placeholder identity

package identity

import (
	"os"
	"strings"
)

// Placeholder identity used when no local profile has been created yet.
const (
	PlaceholderUsername    = "you"
	PlaceholderDisplayName = "You"
)

// Normalize canonicalizes a username: whitespace trimmed, one leading @ stripped.
// The result is the uniqueness key for profiles.
func Normalize(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	return strings.TrimSpace(username)
}

// Fallback returns the username to act as when no local profile is set.
// If override is provided, uses that. Otherwise uses $MOIREU_USER, then
// the fixed placeholder.
func Fallback(override string) string {
	username := Normalize(override)
	if username == "" {
		username = Normalize(os.Getenv("MOIREU_USER"))
	}
	if username == "" {
		username = PlaceholderUsername
	}
	return username
}

// FallbackDisplayName returns the display name to pair with a fallback
// username: the fixed placeholder keeps its capitalized form, any override
// displays as itself.
func FallbackDisplayName(username string) string {
	if username == PlaceholderUsername {
		return PlaceholderDisplayName
	}
	return username
}
