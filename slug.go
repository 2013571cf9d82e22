package authentic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugFallback is returned by Slugify when the input yields no usable
// characters at all.
const SlugFallback = "categoria"

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts an arbitrary category name into a URL and path safe
// identifier: diacritics are stripped, every run of non-alphanumeric
// characters collapses to a single hyphen, and the result is lowercased with
// leading and trailing hyphens trimmed. The function is total and idempotent;
// an input with no usable characters returns SlugFallback.
func Slugify(value string) string {
	plain, _, err := transform.String(deaccent, value)
	if err != nil {
		plain = value
	}

	var b strings.Builder
	b.Grow(len(plain))
	lastHyphen := false
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return SlugFallback
	}
	return slug
}
