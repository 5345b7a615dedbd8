package minimarket

import "strings"

// Slugify normalizes a name into a category identifier: lowercase, words
// joined by single dashes, everything else dropped. "Personal Care" becomes
// "personal-care". Returns "" when nothing of the name survives.
func Slugify(name string) string {
	var b strings.Builder
	dash := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
