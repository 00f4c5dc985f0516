package fixedarena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator abstracts a bump-style allocator: allocate views, free is
// best-effort (possibly inert), and Reset reclaims everything at once.
// Arena, SafeArena and HeapAllocator implement it.
type Allocator interface {
	// Alloc returns a view of size bytes aligned to DefaultAlignment.
	Alloc(size int) ([]byte, error)
	// AllocAligned returns a view of size bytes whose address is a multiple
	// of align, which must be a power of two.
	AllocAligned(size int, align uintptr) ([]byte, error)
	// Free releases a single view where the implementation supports it.
	// Arena-backed implementations treat it as a no-op.
	Free(p []byte)
	// Reset invalidates all outstanding views and reclaims all memory.
	Reset()
}

// HeapAllocator satisfies the Allocator interface from the Go heap. It
// never runs out of space and Reset has nothing to reclaim; it is the
// baseline to compare arenas against and a drop-in fallback when a
// fixed-capacity region is not available.
type HeapAllocator struct{}

// Alloc returns a fresh zeroed slice of size bytes.
// Returns nil and no error if size <= 0.
func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return HeapAllocator{}.AllocAligned(size, DefaultAlignment)
}

// AllocAligned returns a fresh zeroed slice of size bytes whose address is
// a multiple of align. The heap only guarantees natural alignment, so the
// slice is over-allocated and the view starts at the first aligned byte.
func (HeapAllocator) AllocAligned(size int, align uintptr) ([]byte, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, errors.Wrapf(ErrBadAlign, "align=%d", align)
	}
	if size <= 0 {
		return nil, nil
	}
	buf := make([]byte, size+int(align)-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := ((base + align - 1) &^ (align - 1)) - base
	return buf[off : off+uintptr(size) : off+uintptr(size)], nil
}

// Free is a no-op; the garbage collector reclaims heap views.
func (HeapAllocator) Free(p []byte) {}

// Reset is a no-op; heap views are independent of each other.
func (HeapAllocator) Reset() {}

var _ Allocator = HeapAllocator{}
