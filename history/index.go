package history

// IndexSource hands out monotonically increasing step indices. A single
// source may be shared across several logs so that their steps interleave
// on one numbering, which is how an equation keeps its two sides and its
// own combined steps in a single sequence.
//
// IndexSource is not safe for concurrent use; a log and everything that
// shares its source belong to one goroutine.
type IndexSource struct {
	next int
}

// NewIndexSource returns a source whose first Take yields startAt.
func NewIndexSource(startAt int) *IndexSource {
	return &IndexSource{next: startAt}
}

// Take returns the next index and advances the source.
func (s *IndexSource) Take() int {
	n := s.next
	s.next++
	return n
}

// Peek returns the index the next Take would yield.
func (s *IndexSource) Peek() int { return s.next }
