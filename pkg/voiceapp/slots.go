package voiceapp

import "unicode"

// SlotValue returns the value for key, accepting both the exact key and the
// variant with the first character's case flipped ("producto"/"Producto").
// Voice platforms are inconsistent about slot-key casing, so this shim must
// be used for every slot lookup. Missing slots yield "".
func (i *Intent) SlotValue(key string) string {
	if i == nil || len(i.Slots) == 0 || key == "" {
		return ""
	}
	if s, ok := i.Slots[key]; ok {
		return s.Value
	}
	if s, ok := i.Slots[flipFirst(key)]; ok {
		return s.Value
	}
	return ""
}

// flipFirst swaps the case of the first rune of s.
func flipFirst(s string) string {
	runes := []rune(s)
	if unicode.IsUpper(runes[0]) {
		runes[0] = unicode.ToLower(runes[0])
	} else {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
