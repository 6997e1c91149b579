//go:build !uvector_globalheap

package uvector

// Without the uvector_globalheap tag an unbound vector cannot allocate.
func defaultAllocator() Allocator {
	return nil
}
