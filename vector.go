package uvector

import (
	"fmt"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/pavanmanishd/uvector/heap"
)

// Vector is a growable contiguous array whose storage is accounted for by
// an Allocator. The zero value is an empty vector with no allocator.
// Not goroutine-safe.
//
// Elements live in a Go slice so that pointers inside T stay visible to
// the garbage collector. The allocator block behind Handle is bookkeeping
// of the same size and is never written, so a vector costs its capacity
// twice: once in the slice and once in the allocator.
type Vector[T any] struct {
	buf   []T      // len(buf) is the capacity
	n     int      // live elements, buf[:n]
	ptr   heap.Ptr // allocator handle backing buf
	alloc Allocator

	// owner issued ptr. It differs from alloc after AssignAllocator until
	// the next reallocation.
	owner Allocator

	errVal T // returned by At for out-of-range indexes

	growth float64
	label  string
	logger *log.Logger

	constructFn func(*T)
	copyFn      func(dst, src *T)
	destroyFn   func(*T)
}

// New returns an empty vector bound to a. No storage is allocated.
func New[T any](a Allocator, opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{alloc: a}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSized returns a vector holding n default-constructed elements with
// room for ceil(n × growth factor). If the allocation fails the returned
// vector is empty and the error wraps ErrNoMemory.
func NewSized[T any](a Allocator, n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(a, opts...)
	if n < 0 {
		return v, fmt.Errorf("%w: negative length %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return v, nil
	}
	if err := v.Reserve(v.growTarget(n)); err != nil {
		return v, err
	}
	for i := 0; i < n; i++ {
		v.constructAt(i)
	}
	v.n = n
	return v, nil
}

// Clone returns a deep copy of v in fresh storage from v's allocator.
// The copy carries v's options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{
		alloc:       v.alloc,
		growth:      v.growth,
		label:       v.label,
		logger:      v.logger,
		constructFn: v.constructFn,
		copyFn:      v.copyFn,
		destroyFn:   v.destroyFn,
	}
	if err := c.CopyFrom(v, nil); err != nil {
		return c, err
	}
	return c, nil
}

// CopyFrom replaces the contents of v with a deep copy of src, stored in
// fresh storage from a, or from src's allocator when a is nil. v's own
// storage is released. On failure v is unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T], a Allocator) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrOutOfRange)
	}
	if src == v {
		return nil
	}
	if a == nil {
		a = src.alloc
	}

	var (
		buf   []T
		p     = heap.Nil
		owner Allocator
	)
	if src.n > 0 {
		target := a
		if target == nil {
			target = defaultAllocator()
		}
		if target == nil {
			return ErrNoAllocator
		}
		var err error
		if p, err = allocFor[T](target, src.n); err != nil {
			return err
		}
		var ok bool
		if buf, ok = makeBuf[T](src.n); !ok {
			target.Free(p)
			return fmt.Errorf("%w: %d elements", ErrNoMemory, src.n)
		}
		owner = target
		for i := 0; i < src.n; i++ {
			v.constructIn(buf, i)
			v.assign(&buf[i], &src.buf[i])
		}
	}

	v.Release()
	v.buf, v.ptr, v.n, v.alloc, v.owner = buf, p, src.n, a, owner
	v.labelStorage()
	return nil
}

// Release destroys every live element and returns the storage to the
// allocator. The vector stays usable and empty.
func (v *Vector[T]) Release() {
	for i := 0; i < v.n; i++ {
		v.destroyIn(v.buf, i)
	}
	v.n = 0
	v.freeStorage()
}

// At returns a pointer to element i. Out of range, it logs a diagnostic and
// returns the vector's sentinel, reset to the zero value.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		v.log().Warn("index out of range", "index", i, "len", v.n)
		var zero T
		v.errVal = zero
		return &v.errVal
	}
	return &v.buf[i]
}

// Get returns element i and whether i was in range. It logs nothing.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, false
	}
	return v.buf[i], true
}

// Front returns At(0).
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns At(Len()-1).
func (v *Vector[T]) Back() *T {
	return v.At(v.n - 1)
}

// Sentinel returns the value At hands out for out-of-range indexes.
func (v *Vector[T]) Sentinel() *T {
	return &v.errVal
}

// Data returns the live elements. The slice aliases the vector's storage
// and must not be retained across operations that change the capacity.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.n:v.n]
}

// All iterates over index/value pairs of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of slots backed by storage.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// Handle returns the allocator handle of the current storage, heap.Nil
// when there is none.
func (v *Vector[T]) Handle() heap.Ptr { return v.ptr }

// Allocator returns the allocator the vector is bound to.
func (v *Vector[T]) Allocator() Allocator { return v.alloc }

// AssignAllocator binds future allocations to a. Storage that already
// exists stays with the allocator that issued it and is returned there on
// the next reallocation or release.
func (v *Vector[T]) AssignAllocator(a Allocator) {
	if v.ptr != heap.Nil {
		v.log().Warn("allocator reassigned with live storage", "handle", v.ptr, "cap", len(v.buf))
	}
	v.alloc = a
}

// Info logs where the storage lives and how big it is.
func (v *Vector[T]) Info() {
	kv := []any{"handle", v.ptr, "len", v.n, "cap", len(v.buf), "bytes", v.bytes()}
	if ad, ok := v.owner.(Addresser); ok && v.ptr != heap.Nil {
		if addr, ok := ad.Addr(v.ptr); ok {
			kv = append(kv, "chunk", addr.Chunk, "offset", addr.Offset)
		}
	}
	v.log().Print("vector info", kv...)
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("uvector(len=%d cap=%d handle=%d bytes=%d)", v.n, len(v.buf), v.ptr, v.bytes())
}

func (v *Vector[T]) bytes() int {
	n, _ := heap.SizeFor[T](len(v.buf))
	return n
}

func (v *Vector[T]) allocator() Allocator {
	if v.alloc != nil {
		return v.alloc
	}
	return defaultAllocator()
}

func (v *Vector[T]) log() *log.Logger {
	if v.logger != nil {
		return v.logger
	}
	return defaultLogger
}

func (v *Vector[T]) factor() float64 {
	if v.growth < 1 {
		return DefaultGrowthFactor
	}
	return v.growth
}

// constructAt makes slot i of the current buffer live.
func (v *Vector[T]) constructAt(i int) {
	v.constructIn(v.buf, i)
}

func (v *Vector[T]) constructIn(buf []T, i int) {
	if v.constructFn != nil {
		v.constructFn(&buf[i])
	}
}

func (v *Vector[T]) assign(dst, src *T) {
	if v.copyFn != nil {
		v.copyFn(dst, src)
		return
	}
	*dst = *src
}

// destroyIn ends the life of buf[i] and zeroes the slot.
func (v *Vector[T]) destroyIn(buf []T, i int) {
	if v.destroyFn != nil {
		v.destroyFn(&buf[i])
	}
	var zero T
	buf[i] = zero
}

func (v *Vector[T]) labelStorage() {
	if v.label == "" || v.ptr == heap.Nil {
		return
	}
	if l, ok := v.owner.(Labeler); ok {
		l.Label(v.ptr, v.label)
	}
}
