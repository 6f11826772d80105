package invaders

// idAllocator issues unique entity identifiers for a single session.
// IDs start at 1, strictly increase, and are never reused. The session
// owns its allocator; there is no process-wide counter.
type idAllocator struct {
	last int
}

// Next returns the next unused identifier.
func (a *idAllocator) Next() int {
	a.last++
	return a.last
}
