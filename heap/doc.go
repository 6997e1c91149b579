// Package heap implements a chunked, handle-tracked heap for use as a
// uvector allocator.
//
// # Overview
//
// A Heap carves blocks out of large chunks with a first-fit policy and
// tracks every block it hands out by a stable handle (Ptr). The handle, not
// the address, is what callers hold on to: the heap is free to move a block
// inside its chunks (Defragment) and callers keep working.
//
// Besides Alloc and Free, the heap answers two bookkeeping questions that
// containers need when they migrate their storage:
//
//   - Validate(p): is p still a live block of this heap?
//   - Relocate(old, new): carry whatever was known about old (its owner
//     label) over to new.
//
// # Basic Usage
//
//	h := heap.New(0, heap.WithLimit(1<<20)) // 64 KiB chunks, 1 MiB cap
//	defer h.Release()
//
//	p, ok := h.Alloc(128)
//	if !ok {
//	    // out of memory
//	}
//	h.Label(p, "scratch")
//
//	q, _ := h.Alloc(256)
//	if h.Validate(p) {
//	    h.Free(p)
//	}
//	h.Relocate(p, q) // q is now owned by "scratch"
//
// A request larger than the heap's block ceiling (DefaultMaxBlock, or
// WithMaxBlock) fails like any other allocation instead of growing a chunk.
//
// # Storage Footprint
//
// A uvector keeps its elements in a Go slice and holds a heap block of the
// same size as accounting. The block's bytes are not written by the vector,
// so vector storage is paid for twice. Bytes gives direct access to a
// block for callers that want to use the memory itself.
//
// # Thread Safety
//
// The basic Heap type is not thread-safe. For concurrent access, use SafeHeap:
//
//	s := heap.NewSafe(0)
//	p, ok := s.Alloc(64)
//
// Global returns a process-wide SafeHeap. Owner labels are carried by
// Relocate from the most recently freed block only, so with concurrent
// users a label can be dropped when another Free lands between a
// container's Free and its Relocate.
//
// # Leak Tracking
//
// Leaks lists every live block with its owner label, so a test or a
// shutdown hook can verify that everything handed out was returned.
//
// # Metrics and Monitoring
//
//	m := h.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Relocations: %d\n", m.Relocations)
package heap
