package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]`)

// Key folds user input into a comparison key: lower case, accents removed,
// punctuation and spaces dropped. "Región Metropolitana" and
// "region-metropolitana" share the key "regionmetropolitana".
func Key(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), lower)
	if err != nil {
		folded = lower
	}
	return nonAlphaNum.ReplaceAllString(folded, "")
}
