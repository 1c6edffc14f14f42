package cellmap

// NewWithBuckets exposes the sized constructor so tests can force every key
// into the same bucket.
func NewWithBuckets[V any](n int) *Map[V] {
	return newWithBuckets[V](n)
}
