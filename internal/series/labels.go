package series

import "strings"

// Translator resolves a localized string by key.
type Translator interface {
	Lookup(key string) (string, bool)
}

const disabilityTypePrefix = "disabilityTypes."

// NormalizeKey turns a free-text upstream label into a catalog key: runs of
// whitespace become a single dash and leading or trailing dashes are dropped.
func NormalizeKey(raw string) string {
	return strings.Trim(strings.Join(strings.Fields(raw), "-"), "-")
}

// DisabilityLabel resolves the display label of a disability type, falling
// back to the raw upstream label.
func DisabilityLabel(tr Translator, raw string) string {
	if tr == nil {
		return raw
	}
	if v, ok := tr.Lookup(disabilityTypePrefix + NormalizeKey(raw)); ok && v != "" {
		return v
	}
	return raw
}

func text(tr Translator, key string) string {
	if tr != nil {
		if v, ok := tr.Lookup(key); ok {
			return v
		}
	}
	return key
}
