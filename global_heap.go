//go:build uvector_globalheap

package uvector

import "github.com/pavanmanishd/uvector/heap"

// defaultAllocator serves vectors that were never bound to an allocator.
func defaultAllocator() Allocator {
	return heap.Global()
}
