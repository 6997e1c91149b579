package heap

// SizeInUse returns the total number of bytes held by live blocks.
// This includes internal fragmentation due to alignment.
func (h *Heap) SizeInUse() int {
	sum := 0
	for _, b := range h.blocks {
		sum += b.size
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the heap.
func (h *Heap) NumChunks() int {
	return len(h.chunks)
}

// NumBlocks returns the number of live blocks.
func (h *Heap) NumBlocks() int {
	return len(h.blocks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the heap.
func (h *Heap) Capacity() int {
	sum := 0
	for _, c := range h.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the heap has no capacity.
func (h *Heap) Utilization() float64 {
	capacity := h.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(h.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this heap.
func (h *Heap) ChunkSize() int {
	return h.chunkSize
}

// Limit returns the capacity limit in bytes, 0 when unbounded.
func (h *Heap) Limit() int {
	return h.limit
}

// MaxBlock returns the largest single request the heap serves.
func (h *Heap) MaxBlock() int {
	return h.maxBlock
}

// LargestFree returns the size of the largest contiguous free span in any chunk.
func (h *Heap) LargestFree() int {
	largest := 0
	for _, c := range h.chunks {
		prev := 0
		for _, s := range c.spans {
			largest = max(largest, s.off-prev)
			prev = s.off + s.size
		}
		largest = max(largest, len(c.buf)-prev)
	}
	return largest
}

// Metrics returns a snapshot of heap statistics.
func (h *Heap) Metrics() HeapMetrics {
	return HeapMetrics{
		SizeInUse:   h.SizeInUse(),
		Capacity:    h.Capacity(),
		NumChunks:   h.NumChunks(),
		NumBlocks:   h.NumBlocks(),
		ChunkSize:   h.ChunkSize(),
		LargestFree: h.LargestFree(),
		Utilization: h.Utilization(),
		Allocs:      h.allocs,
		Frees:       h.frees,
		Failed:      h.failed,
		Relocations: h.relocations,
	}
}

// HeapMetrics contains statistical information about a heap.
type HeapMetrics struct {
	SizeInUse   int     // Bytes held by live blocks
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	NumBlocks   int     // Number of live blocks
	ChunkSize   int     // Default chunk size
	LargestFree int     // Largest contiguous free span
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	Allocs      int     // Successful allocations
	Frees       int     // Blocks released
	Failed      int     // Allocations that could not be served
	Relocations int     // Relocation notifications received
}

// Thread-safe metrics for SafeHeap

// SizeInUse thread-safely returns the total number of bytes held by live blocks.
func (s *SafeHeap) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks currently allocated.
func (s *SafeHeap) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.NumChunks()
}

// NumBlocks thread-safely returns the number of live blocks.
func (s *SafeHeap) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.NumBlocks()
}

// Capacity thread-safely returns the total capacity of all chunks.
func (s *SafeHeap) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeHeap) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Utilization()
}

// Metrics thread-safely returns a snapshot of heap statistics.
func (s *SafeHeap) Metrics() HeapMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Metrics()
}
