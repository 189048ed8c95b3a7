package domain

// ValueOr returns the value behind the first non-nil pointer, or fallback.
// Partial updates use it to overlay optional fields on stored records.
func ValueOr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
