package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonBlank drops a supplied-but-blank string, so an empty form field never clears an attribute.
func NonBlank(ptr *string) *string {
	if ptr == nil || strings.TrimSpace(*ptr) == "" {
		return nil
	}
	return ptr
}
