package uvector

import (
	"fmt"
	"math"

	"github.com/pavanmanishd/uvector/heap"
)

// Reserve grows the storage to hold at least n elements. It is a no-op when
// the capacity already suffices. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if len(v.buf) >= n {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit releases unused capacity. An empty vector gives its storage
// back entirely; otherwise the live elements move to a block of exactly
// Len() slots.
func (v *Vector[T]) ShrinkToFit() error {
	if v.n == len(v.buf) || len(v.buf) == 0 {
		return nil
	}
	if v.n == 0 {
		v.freeStorage()
		return nil
	}
	return v.reallocate(v.n)
}

// reallocate moves the live elements into a new block of n slots.
//
// The order is fixed: allocate, populate the new block, free the old block
// if its allocator still tracks it, then notify the relocation, then adopt.
// The allocator never sees a relocation onto a block that is not yet
// populated, and a failed allocation leaves nothing half done.
//
// The old block is always validated and freed through the allocator that
// issued it. When that is not the allocator serving the new block, the new
// allocator is notified as for a first placement.
func (v *Vector[T]) reallocate(n int) error {
	a := v.allocator()
	if a == nil {
		return ErrNoAllocator
	}
	p, err := allocFor[T](a, n)
	if err != nil {
		return err
	}
	buf, ok := makeBuf[T](n)
	if !ok {
		a.Free(p)
		return fmt.Errorf("%w: %d elements", ErrNoMemory, n)
	}

	for i := 0; i < v.n; i++ {
		v.constructIn(buf, i)
		v.assign(&buf[i], &v.buf[i])
		v.destroyIn(v.buf, i)
	}

	old := v.ptr
	if old != heap.Nil && v.owner != nil && v.owner.Validate(old) {
		v.owner.Free(old)
	}
	if v.owner != a {
		old = heap.Nil
	}
	a.Relocate(old, p)

	v.buf, v.ptr, v.owner = buf, p, a
	if old == heap.Nil {
		v.labelStorage()
	}
	return nil
}

// freeStorage returns the block to the allocator and forgets the buffer.
// Live elements must already be destroyed.
func (v *Vector[T]) freeStorage() {
	if v.ptr != heap.Nil && v.owner != nil && v.owner.Validate(v.ptr) {
		v.owner.Free(v.ptr)
	}
	v.buf, v.ptr, v.owner = nil, heap.Nil, nil
}

// growTarget is the capacity to reserve when length n does not fit.
func (v *Vector[T]) growTarget(n int) int {
	f := math.Ceil(float64(n) * v.factor())
	if f >= math.MaxInt || int(f) < n {
		return n
	}
	return int(f)
}

// makeBuf makes a slice of n slots. It reports false instead of panicking
// when the runtime rejects the length.
func makeBuf[T any](n int) (buf []T, ok bool) {
	defer func() {
		if recover() != nil {
			buf, ok = nil, false
		}
	}()
	return make([]T, n), true
}

// allocFor requests storage for n elements of T from a.
func allocFor[T any](a Allocator, n int) (heap.Ptr, error) {
	size, ok := heap.SizeFor[T](n)
	if !ok {
		return heap.Nil, fmt.Errorf("%w: %d elements overflow", ErrNoMemory, n)
	}
	p, ok := a.Alloc(size)
	if !ok || p == heap.Nil {
		return heap.Nil, fmt.Errorf("%w: %d bytes", ErrNoMemory, size)
	}
	return p, nil
}
