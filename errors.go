package uvector

import "errors"

var (
	// ErrNoMemory indicates that the allocator could not serve a request,
	// or that the requested size does not fit in an int.
	ErrNoMemory = errors.New("uvector: allocation failed")

	// ErrNoAllocator indicates a vector that must allocate but has no allocator.
	ErrNoAllocator = errors.New("uvector: no allocator assigned")

	// ErrOutOfRange indicates an index or length outside the valid range.
	ErrOutOfRange = errors.New("uvector: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("uvector: vector is empty")
)
