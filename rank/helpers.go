package rank

// Helper functions shared by the sort implementations and their tests.

// IsSorted reports whether data is in non-descending order.
func IsSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}
