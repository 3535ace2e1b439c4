// Package nlu holds the deterministic text processing applied to voice slot
// values: normalization, quantity extraction, and category classification.
// Everything here is pure; the voice platform has already done the slot-filling.
package nlu

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s, strips diacritical marks, and trims whitespace.
// Applied before every fuzzy comparison so accent/case variants match
// ("Plátano" and "platano" normalize to the same string).
func Normalize(s string) string {
	// Transformers carry state, so build the chain per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
