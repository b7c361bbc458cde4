package wordselect

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// disallowed matches every rune that does not survive normalization.
var disallowed = runes.Predicate(func(r rune) bool {
	return !keepRune(r)
})

func keepRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || unicode.IsSpace(r)
}

// Normalize lower-cases text and deletes every rune that is neither an
// English letter nor whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser carries state and is not safe for concurrent use.
	lowered := cases.Lower(language.Und).String(text)
	filtered, _, err := transform.String(runes.Remove(disallowed), lowered)
	if err != nil {
		return stripDisallowed(lowered)
	}
	return filtered
}

func stripDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Words returns the normalized words of text in order of appearance.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}
