package vars

import "strings"

// FirstNonZero returns the first argument that is not the zero value.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "1", "on":
		return true
	}
	return false
}
