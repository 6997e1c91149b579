package uvector

import "github.com/pavanmanishd/uvector/heap"

// Allocator is the heap manager a Vector draws its storage from.
//
// Blocks are identified by handle. Alloc never panics; it reports false
// when it cannot serve the request.
type Allocator interface {
	// Alloc reserves a block of at least size bytes.
	Alloc(size int) (heap.Ptr, bool)

	// Free releases a block previously returned by Alloc.
	Free(p heap.Ptr)

	// Validate reports whether p is still a live block of this allocator.
	Validate(p heap.Ptr) bool

	// Relocate tells the allocator that whatever it associates with old now
	// belongs to new, because the caller migrated its data and released old.
	Relocate(old, new heap.Ptr)
}

// Labeler is implemented by allocators that attach owner names to blocks.
type Labeler interface {
	Label(p heap.Ptr, owner string) bool
}

// Addresser is implemented by allocators that expose where a block lives.
type Addresser interface {
	Addr(p heap.Ptr) (heap.Addr, bool)
}

var (
	_ Allocator = (*heap.Heap)(nil)
	_ Allocator = (*heap.SafeHeap)(nil)
	_ Labeler   = (*heap.Heap)(nil)
	_ Addresser = (*heap.SafeHeap)(nil)
)
