package jsondb

// removeFirst removes the first element matching the predicate and reports
// whether anything was removed.
func removeFirst[T any](list []T, match func(T) bool) ([]T, bool) {
	for i, v := range list {
		if match(v) {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// filterCopy returns copies of the elements matching the predicate.
func filterCopy[T any](list []T, match func(T) bool) []T {
	out := []T{}
	for _, v := range list {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// findCopy returns a copy of the first element matching the predicate.
func findCopy[T any](list []T, match func(T) bool) (T, bool) {
	for _, v := range list {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
