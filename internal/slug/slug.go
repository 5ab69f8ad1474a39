// Package slug derives URL-safe identifiers from product display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes accented letters and strips the combining marks, so
// the Romanian diacritics used in product names (ă â î ș ț) fold to their
// plain ASCII base letters.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes a display name into a URL slug: lowercase, diacritics
// folded, everything outside [a-z0-9 space hyphen] dropped, whitespace runs
// collapsed to a single hyphen, hyphen runs collapsed, edges trimmed.
//
// No uniqueness check is performed; two names that normalize identically
// produce the same slug, and lookups resolve to the first match.
func Make(name string) string {
	s := strings.ToLower(name)
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}

	var kept strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', unicode.IsSpace(r):
			kept.WriteRune(r)
		}
	}

	s = strings.Join(strings.Fields(kept.String()), "-")

	var out strings.Builder
	lastHyphen := false
	for _, r := range s {
		if r == '-' {
			if lastHyphen {
				continue
			}
			lastHyphen = true
		} else {
			lastHyphen = false
		}
		out.WriteRune(r)
	}

	return strings.Trim(out.String(), "-")
}
