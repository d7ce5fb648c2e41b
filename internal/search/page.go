package search

// Page returns the window of ordered starting at shift with at most amount
// elements. Out-of-range bounds are clamped; a shift at or past the end, or
// a non-positive amount, yields an empty slice.
func Page[T any](ordered []T, shift, amount int) []T {
	if shift < 0 {
		shift = 0
	}
	if amount <= 0 || shift >= len(ordered) {
		return []T{}
	}
	if amount > len(ordered)-shift {
		amount = len(ordered) - shift
	}
	return ordered[shift : shift+amount]
}
