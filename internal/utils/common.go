package utils

func Ref[T any](value T) *T {
	return &value
}

func Ptr[T any](value *T) T {
	if value == nil {
		return *new(T)
	}
	return *value
}

// Truncate cuts s to at most max bytes.
//
// Netaxept field limits are byte limits, so multi-byte input may be cut
// mid-rune at the boundary.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
