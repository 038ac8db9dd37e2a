package charts

import "strings"

// SafeName converts a workload-type label into a filename fragment: every
// character outside [A-Za-z0-9_-] becomes '_'. Distinct labels that differ
// only in replaced characters collide after sanitization; artifact names are
// required to be deterministic, not unique.
func SafeName(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		}
		return '_'
	}, label)
}
