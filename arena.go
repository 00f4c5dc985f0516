// Package fixedarena implements a fixed-capacity bump allocator (memory arena)
// over a caller-supplied buffer. Typical usage: wrap a pre-allocated region,
// carve many short-lived allocations from it, then Reset() for O(1) reuse.
package fixedarena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// DefaultAlignment is the alignment used by Alloc (4 bytes).
const DefaultAlignment uintptr = 4

// Arena is a fixed-capacity bump allocator. It hands out aligned sub-slices
// of a single backing buffer in monotonically increasing order and never
// reclaims individual allocations; Reset reclaims everything at once.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	buf    []byte  // backing memory, capacity fixed at construction
	offset uintptr // allocation offset within buf

	// lifetime counters, never rewound by Reset
	allocs  int
	fails   int
	resets  int
	padding int
}

// New creates an Arena that partitions buf. The arena takes over the right
// to hand out sub-regions of buf but not its storage lifetime: the caller
// must keep buf reachable for as long as any returned view is in use.
// A nil or empty buf is accepted; every allocation from it fails.
func New(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// NewWithSize creates an Arena over a freshly allocated buffer of n bytes.
// If n <= 0, the arena is empty and every allocation fails.
func NewWithSize(n int) *Arena {
	if n <= 0 {
		return &Arena{}
	}
	return &Arena{buf: make([]byte, n)}
}

// AllocAligned returns a view of size bytes starting at the next offset
// rounded up so that the view's address is a multiple of align. align must
// be a power of two; anything else fails with ErrBadAlign. When the rounded
// offset plus size would exceed the capacity the call fails with ErrNoSpace
// and the arena is left unchanged, so a smaller request can still succeed.
// Returns nil and no error if size <= 0.
//
// The returned slice has capacity == size, so growing it with append cannot
// bleed into a later allocation. Views stay valid until the next Reset.
func (a *Arena) AllocAligned(size int, align uintptr) ([]byte, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, errors.Wrapf(ErrBadAlign, "align=%d", align)
	}
	if size <= 0 {
		return nil, nil
	}
	if len(a.buf) == 0 {
		a.fails++
		return nil, errors.Wrapf(ErrNoSpace, "need %d bytes, arena is empty", size)
	}

	// Round the absolute address of the next free byte up to the alignment
	// boundary, then translate back to a buffer-relative offset.
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	addr := (base + a.offset + align - 1) &^ (align - 1)
	off := addr - base

	if off+uintptr(size) > uintptr(len(a.buf)) {
		a.fails++
		return nil, errors.Wrapf(ErrNoSpace, "need %d bytes, %d remaining", size, a.Remaining())
	}

	a.padding += int(off - a.offset)
	a.offset = off + uintptr(size)
	a.allocs++
	return a.buf[off:a.offset:a.offset], nil
}

// Alloc returns a view of size bytes aligned to DefaultAlignment.
// Same contract as AllocAligned.
func (a *Arena) Alloc(size int) ([]byte, error) {
	return a.AllocAligned(size, DefaultAlignment)
}

// Free is intentionally inert: individual deallocation is unsupported and
// only Reset reclaims memory. It exists so callers written against a
// generic Allocator interface work without modification. It performs no
// validation of p and has no effect on arena state.
func (a *Arena) Free(p []byte) {}

// Reset rewinds the allocation offset to zero so the whole buffer can be
// reused. Buffer contents are not cleared. All previously returned views
// become logically invalid; the caller must not touch them afterwards.
func (a *Arena) Reset() {
	a.offset = 0
	a.resets++
}

// Compile-time interface check
var _ Allocator = (*Arena)(nil)
