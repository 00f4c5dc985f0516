package fixedarena

import "errors"

var (
	// ErrNoSpace indicates that the rounded offset plus the requested size
	// would exceed the arena's capacity. The arena is unchanged; the caller
	// can Reset, retry with a smaller size, or escalate.
	ErrNoSpace = errors.New("fixedarena: out of space")

	// ErrBadAlign indicates an alignment that is zero or not a power of two.
	ErrBadAlign = errors.New("fixedarena: alignment must be a power of two")
)
