package slugify

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Make converts a display name into a URL-safe slug: lowercase,
// non-alphanumeric runs collapsed to single dashes.
func Make(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// WithSuffix appends a random numeric suffix so generated slugs
// rarely collide. Uniqueness is still enforced by the database.
func WithSuffix(name string) string {
	s := Make(name)
	if s == "" {
		s = "profile"
	}
	return fmt.Sprintf("%s-%d", s, rand.Intn(1000))
}
