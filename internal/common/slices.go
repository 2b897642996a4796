package common

// Filter returns the elements of s for which keep returns true, in order.
// The result is never nil, so it encodes as an empty JSON array.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}
