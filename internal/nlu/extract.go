package nlu

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingQtyRe matches a leading integer followed by the product name
// ("3 cocacolas" → 3, "cocacolas").
var leadingQtyRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// digitsOnlyRe matches a slot that is nothing but a number.
var digitsOnlyRe = regexp.MustCompile(`^\d+$`)

// ExtractQuantityAndName splits a raw slot value into quantity and product name.
//
// Voice platforms sometimes put the numeral in the name slot instead of the
// quantity slot ("3 cocacolas"), so a leading integer is peeled off when
// present; otherwise the quantity falls back to defaultQty and the name is the
// trimmed input unchanged. A slot containing only a number yields an empty
// name — callers must treat that as a clarification-needed condition.
func ExtractQuantityAndName(raw string, defaultQty int) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultQty, ""
	}

	if m := leadingQtyRe.FindStringSubmatch(raw); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty < 1 {
			// Overflow or zero: keep the default, but the name is still the remainder.
			return defaultQty, strings.TrimSpace(m[2])
		}
		return qty, strings.TrimSpace(m[2])
	}

	if digitsOnlyRe.MatchString(raw) {
		if qty, err := strconv.Atoi(raw); err == nil && qty >= 1 {
			return qty, ""
		}
		return defaultQty, ""
	}

	return defaultQty, raw
}
