package fixedarena

import "github.com/cespare/xxhash/v2"

// Offset returns the byte index of the next unallocated position. This is
// also the number of bytes consumed so far, internal alignment padding
// included.
func (a *Arena) Offset() int {
	return int(a.offset)
}

// Capacity returns the total capacity of the backing buffer in bytes.
// It is fixed for the arena's lifetime.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes left before the arena is exhausted,
// not accounting for padding a future aligned allocation may need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.offset)
}

// Utilization returns the ratio of bytes consumed to capacity (0.0 to 1.0).
// Returns 0.0 for an empty arena.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Fingerprint returns an xxhash digest of the entire backing buffer.
// Reset never touches buffer contents, so the fingerprint is stable across
// Reset; it changes only when something writes into the buffer. Useful for
// asserting that nothing mutated the region out of band.
func (a *Arena) Fingerprint() uint64 {
	return xxhash.Sum64(a.buf)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Offset:      int(a.offset),
		Capacity:    len(a.buf),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
		Allocs:      a.allocs,
		Fails:       a.fails,
		Resets:      a.resets,
		Padding:     a.padding,
	}
}

// Metrics contains statistical information about an arena. The counters are
// lifetime totals and survive Reset.
type Metrics struct {
	Offset      int     // Bytes consumed since the last Reset
	Capacity    int     // Fixed capacity in bytes
	Remaining   int     // Bytes left before exhaustion
	Utilization float64 // Ratio of consumed to capacity (0.0-1.0)
	Allocs      int     // Successful allocations
	Fails       int     // Allocations rejected with ErrNoSpace
	Resets      int     // Reset calls
	Padding     int     // Bytes lost to alignment padding
}

// Thread-safe metrics for SafeArena

// Offset thread-safely returns the byte index of the next unallocated position.
func (s *SafeArena) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Offset()
}

// Capacity thread-safely returns the total capacity of the backing buffer.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Remaining thread-safely returns the number of bytes left before exhaustion.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remaining()
}

// Utilization thread-safely returns the ratio of consumed bytes to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Fingerprint thread-safely returns an xxhash digest of the backing buffer.
func (s *SafeArena) Fingerprint() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Fingerprint()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
