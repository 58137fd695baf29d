package common

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dropNonAlphanumeric = runes.Remove(runes.Predicate(func(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
}))

// NormalizeKey maps text to the key used for topic grouping and answer
// matching: combining marks are split off, the text is lower-cased and
// everything except ASCII letters and digits is dropped.
func NormalizeKey(text string) string {
	folded := strings.ToLower(norm.NFKD.String(text))
	key, _, err := transform.String(dropNonAlphanumeric, folded)
	if err != nil {
		return ""
	}
	return key
}
