// Package uvector implements a growable contiguous array for programs that
// manage memory through their own heap.
//
// # Overview
//
// A Vector keeps Len() live elements in storage sized for Cap() elements.
// The storage is accounted for by an Allocator, a heap manager with its own
// bookkeeping. Besides allocating and freeing, the allocator can tell
// whether a block is still live (Validate) and is told when a vector moves
// its data to a new block (Relocate), so metadata it keeps per block, such
// as owner labels for leak tracking, follows the data.
//
// The heap subpackage provides an allocator with all of that.
//
// # Basic Usage
//
//	h := heap.New(0)
//	v := uvector.New[int](h)
//	defer v.Release()
//
//	for i := 1; i <= 5; i++ {
//	    if err := v.PushBack(i); err != nil {
//	        return err // errors.Is(err, uvector.ErrNoMemory)
//	    }
//	}
//	v.RemoveAt(1)    // [1 3 4 5]
//	v.ShrinkToFit()  // Cap() == 4
//
// # Growth
//
// When a requested length L does not fit, the capacity becomes
// ceil(L × 1.2) (see WithGrowthFactor). Every reallocation follows the same
// steps: allocate the new block, populate it from the old one, free the old
// block if the allocator still tracks it, call Relocate(old, new), adopt the
// new block. A failed allocation leaves the vector as it was.
//
// # Element Lifecycle
//
// Slots past Len() hold zero values and are not live. WithConstruct,
// WithCopy and WithDestroy hook into the moments a slot becomes live, is
// copied, and dies, for element types that own resources.
//
// # Errors
//
// Operations that may allocate return an error wrapping ErrNoMemory or
// ErrNoAllocator. Nothing panics on allocation failure or bad indexes:
// At logs a diagnostic and returns a sentinel element instead.
//
// # Thread Safety
//
// A Vector is not goroutine-safe. Vectors used from different goroutines
// may share a heap.SafeHeap.
//
// # Default Heap
//
// Built with the uvector_globalheap tag, a vector without an allocator
// draws from heap.Global(). Otherwise such a vector fails to grow with
// ErrNoAllocator.
package uvector
