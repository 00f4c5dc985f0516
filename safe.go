package fixedarena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// It is the external serialization the plain Arena's contract asks
// multi-threaded callers to provide.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a thread-safe arena that partitions buf.
func NewSafe(buf []byte) *SafeArena {
	return &SafeArena{a: New(buf)}
}

// NewSafeWithSize creates a thread-safe arena over a freshly allocated
// buffer of n bytes.
func NewSafeWithSize(n int) *SafeArena {
	return &SafeArena{a: NewWithSize(n)}
}

// AllocAligned thread-safely allocates size bytes at the requested
// power-of-two alignment. Same contract as Arena.AllocAligned.
func (s *SafeArena) AllocAligned(size int, align uintptr) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(size, align)
}

// Alloc thread-safely allocates size bytes aligned to DefaultAlignment.
func (s *SafeArena) Alloc(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size)
}

// Free is intentionally inert, matching Arena.Free.
func (s *SafeArena) Free(p []byte) {}

// Reset thread-safely rewinds the allocation offset to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the
// arena, aligned to T's natural alignment.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) (*T, error) {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with
// zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive
// on the underlying arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}

// Compile-time interface check
var _ Allocator = (*SafeArena)(nil)
