package fixedarena

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// Alloc returns a pointer to a zeroed T stored inside the arena, aligned to
// T's natural alignment. The pointer is valid until the next Reset.
// Fails with ErrNoSpace when the arena cannot fit a T.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return new(T), nil
	}
	b, err := a.AllocAligned(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) (*T, error) {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc but the contents are whatever the buffer held,
// including leftovers from before a Reset. Initialize before use.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return new(T), nil
	}
	b, err := a.AllocAligned(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates a slice of n elements of type T inside the arena,
// aligned to T's natural alignment. The elements are not initialized.
// Returns nil and no error if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return make([]T, n), nil
	}
	elemSize := int(unsafe.Sizeof(zero))
	if n > math.MaxInt/elemSize {
		return nil, errors.Wrapf(ErrNoSpace, "%d elements of %d bytes overflow", n, elemSize)
	}
	b, err := a.AllocAligned(elemSize*n, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Slower than AllocSlice but the elements start clean.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return make([]T, n), nil
	}
	elemSize := int(unsafe.Sizeof(zero))
	if n > math.MaxInt/elemSize {
		return nil, errors.Wrapf(ErrNoSpace, "%d elements of %d bytes overflow", n, elemSize)
	}
	b, err := a.AllocAligned(elemSize*n, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena's buffer from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
