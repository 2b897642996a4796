package common

import "strings"

// UnknownStr is the display name for values outside a known enumeration.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first value that is not blank after trimming.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}
