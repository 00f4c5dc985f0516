// Package fixedarena implements a fixed-capacity bump allocator (memory
// arena) over a caller-supplied buffer.
//
// # Overview
//
// A bump allocator carves successive regions from one contiguous buffer by
// advancing an offset. There is no per-allocation freeing and no growth:
// when the buffer is exhausted, allocation fails until Reset reclaims the
// whole region at once. This trades flexibility for completely predictable
// behavior, which suits:
//
//   - Environments without a general-purpose heap (embedded, freestanding)
//   - Scratch space with a hard memory ceiling
//   - Request- or frame-scoped allocations with batch cleanup
//   - Reducing garbage collection pressure on hot paths
//
// # Basic Usage
//
//	buf := make([]byte, 1<<16) // or any pre-existing region
//	a := fixedarena.New(buf)
//
//	// Allocate raw bytes at the default alignment
//	view, err := a.Alloc(1024)
//
//	// Allocate at an explicit power-of-two alignment
//	view, err = a.AllocAligned(256, 64)
//
//	// Allocate typed values
//	ptr, err := fixedarena.Alloc[MyStruct](a)
//	slice, err := fixedarena.AllocSlice[int](a, 100)
//
//	// Reclaim everything for reuse (O(1) operation)
//	a.Reset()
//
// # Ownership
//
// The arena owns the right to partition the buffer, not the buffer's
// storage: the caller decides whether it lives in a static region, on the
// stack, or on the heap, and must keep it reachable while any returned
// view is in use. Returned views are sub-slices of the buffer with
// capacity clamped to their size.
//
// # Thread Safety
//
// Arena is not thread-safe; concurrent use is a data race. For concurrent
// access, use SafeArena, which serializes every operation behind a mutex:
//
//	s := fixedarena.NewSafeWithSize(1 << 16)
//	view, err := s.Alloc(1024)
//	ptr, err := fixedarena.SafeAlloc[MyStruct](s)
//
// # Error Handling
//
// Exhaustion reports ErrNoSpace and leaves the arena untouched, so a
// smaller request can still succeed afterwards. A zero or non-power-of-two
// alignment reports ErrBadAlign. Both are wrapped with request context;
// match them with errors.Is.
//
// # Caller Obligations
//
// The allocator deliberately does not detect misuse. Writing past a
// returned view, dereferencing a view after Reset, and Free of arbitrary
// slices are all undefined behavior by contract and must be prevented by
// the caller. Free itself never reclaims memory; it exists only for
// generic Allocator interface parity.
//
// # Metrics and Monitoring
//
// The arena tracks consumption and lifetime counters:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Consumed: %d of %d bytes (%d padding)\n", m.Offset, m.Capacity, m.Padding)
//
// Fingerprint() hashes the backing buffer (xxhash) so callers can assert
// that Reset left the contents untouched or that nothing wrote to the
// region out of band.
package fixedarena
