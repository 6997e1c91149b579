package heap

import "sync"

// SafeHeap is a mutex-protected wrapper around Heap for concurrent access.
// Vectors on different goroutines may share one SafeHeap.
type SafeHeap struct {
	mu sync.Mutex
	h  *Heap
}

// NewSafe creates a new thread-safe heap with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafe(chunkSize int, opts ...Option) *SafeHeap {
	return &SafeHeap{h: New(chunkSize, opts...)}
}

var global = sync.OnceValue(func() *SafeHeap { return NewSafe(0) })

// Global returns the process-wide heap.
func Global() *SafeHeap {
	return global()
}

// Alloc thread-safely reserves a block of at least size bytes.
func (s *SafeHeap) Alloc(size int) (Ptr, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Alloc(size)
}

// Free thread-safely releases the block behind p.
func (s *SafeHeap) Free(p Ptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Free(p)
}

// Validate thread-safely reports whether p is a live block.
func (s *SafeHeap) Validate(p Ptr) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Validate(p)
}

// Relocate thread-safely moves the bookkeeping of old onto new.
func (s *SafeHeap) Relocate(old, new Ptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Relocate(old, new)
}

// Label thread-safely attaches an owner name to a live block.
func (s *SafeHeap) Label(p Ptr, owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Label(p, owner)
}

// Owner thread-safely returns the owner label of a live block.
func (s *SafeHeap) Owner(p Ptr) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Owner(p)
}

// Addr thread-safely returns the current physical location of p.
func (s *SafeHeap) Addr(p Ptr) (Addr, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Addr(p)
}

// Leaks thread-safely returns every live block ordered by handle.
func (s *SafeHeap) Leaks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Leaks()
}

// Defragment thread-safely compacts every chunk.
func (s *SafeHeap) Defragment() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Defragment()
}

// Reset thread-safely drops every block for heap reuse.
func (s *SafeHeap) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Reset()
}

// Release thread-safely drops all chunks and blocks.
func (s *SafeHeap) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Release()
}
