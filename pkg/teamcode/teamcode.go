// Package teamcode provides join-code generation and normalization for teams.
package teamcode

import (
	"math/rand"
	"strings"
)

// alphabet excludes ambiguous characters (0/O, 1/I/L) so codes stay
// human-typeable when read aloud or off a screen.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate returns a random join code of the given length. The top-level
// rand functions are safe for concurrent handlers.
//
//nolint:gosec // math/rand is sufficient for join codes, uniqueness is enforced by the store
func Generate(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return sb.String()
}

// Normalize trims surrounding whitespace and uppercases a user-supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
