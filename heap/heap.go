package heap

import (
	"math"
	"os"
	"slices"
	"unsafe"

	"github.com/charmbracelet/log"
)

// DefaultChunkSize is the default chunk size for new heaps (64 KiB).
const DefaultChunkSize = 1 << 16

// DefaultMaxBlock is the largest single request a heap serves unless
// WithMaxBlock says otherwise (1 GiB).
const DefaultMaxBlock = 1 << 30

// align is the allocation granularity inside a chunk.
const align = int(unsafe.Sizeof(uintptr(0)))

// Ptr is a stable handle to a block handed out by a Heap.
// The block may move inside the heap (see Defragment); the handle does not.
type Ptr uint32

// Nil is the absent handle. It is never returned by a successful Alloc.
const Nil Ptr = 0

// Addr is the physical location of a block: chunk index and byte offset.
type Addr struct {
	Chunk  int
	Offset int
}

// retirement remembers the owner of the most recently freed block.
type retirement struct {
	ptr   Ptr
	owner string
}

// span is a used region of a chunk, kept sorted by offset.
type span struct {
	ptr  Ptr
	off  int
	size int
}

// chunk represents a single memory chunk within a heap.
type chunk struct {
	buf   []byte // backing memory
	spans []span // used regions, sorted by off
}

// block is the bookkeeping record behind a Ptr.
type block struct {
	chunk int
	off   int
	size  int
	owner string
}

// Heap is a chunked first-fit allocator that tracks every block it hands
// out by handle. Not goroutine-safe; use SafeHeap for concurrent access.
type Heap struct {
	chunks    []chunk
	chunkSize int
	limit     int
	maxBlock  int

	blocks  map[Ptr]*block
	retired retirement // last freed block, until Relocate or reuse
	next    Ptr

	allocs      int
	frees       int
	failed      int
	relocations int

	logger *log.Logger
}

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "heap",
	Level:  log.WarnLevel,
})

// Option configures a Heap.
type Option func(*Heap)

// WithLimit caps the total chunk capacity of the heap in bytes.
// A limit <= 0 leaves the heap unbounded.
func WithLimit(bytes int) Option {
	return func(h *Heap) {
		if bytes > 0 {
			h.limit = bytes
		}
	}
}

// WithMaxBlock caps the size of a single request in bytes. Larger
// requests fail instead of growing a chunk. A value <= 0 keeps
// DefaultMaxBlock.
func WithMaxBlock(bytes int) Option {
	return func(h *Heap) {
		if bytes > 0 {
			h.maxBlock = bytes
		}
	}
}

// WithLogger sets the logger used for bookkeeping diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(h *Heap) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a new Heap with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func New(chunkSize int, opts ...Option) *Heap {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	h := &Heap{
		chunkSize: chunkSize,
		maxBlock:  DefaultMaxBlock,
		blocks:    make(map[Ptr]*block),
		logger:    defaultLogger,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.chunks = []chunk{}
	h.grow(align)
	return h
}

// Alloc reserves a block of at least size bytes and returns its handle.
// It reports false when the heap is released, when size exceeds the block
// ceiling, or when the heap cannot grow within its limit.
func (h *Heap) Alloc(size int) (Ptr, bool) {
	if h.chunks == nil || size < 0 || size > h.maxBlock || size > math.MaxInt-align {
		h.failed++
		h.logger.Debug("alloc rejected", "size", size, "max_block", h.maxBlock)
		return Nil, false
	}
	n := alignUp(max(size, 1))

	for ci := range h.chunks {
		if off, ok := h.chunks[ci].fit(n); ok {
			return h.place(ci, off, n), true
		}
	}

	// Slow path: need new chunk
	if !h.grow(n) {
		h.failed++
		h.logger.Debug("alloc failed", "size", size, "capacity", h.Capacity(), "limit", h.limit)
		return Nil, false
	}
	return h.place(len(h.chunks)-1, 0, n), true
}

// Free releases the block behind p. Unknown handles are ignored.
// The owner label of the most recently freed block is retained until
// Relocate hands it on or the handle is reused.
func (h *Heap) Free(p Ptr) {
	b, ok := h.blocks[p]
	if !ok {
		h.logger.Debug("free of untracked block", "ptr", p)
		return
	}
	c := &h.chunks[b.chunk]
	if i, found := c.index(b.off); found {
		c.spans = slices.Delete(c.spans, i, i+1)
	}
	delete(h.blocks, p)
	h.retired = retirement{ptr: p, owner: b.owner}
	h.frees++
}

// Validate reports whether p is a live block tracked by the heap.
func (h *Heap) Validate(p Ptr) bool {
	if p == Nil {
		return false
	}
	_, ok := h.blocks[p]
	return ok
}

// Relocate moves the bookkeeping associated with old onto new.
// old may be live, already freed, or Nil (first placement).
func (h *Heap) Relocate(old, new Ptr) {
	h.relocations++
	var owner string
	if old != Nil && h.retired.ptr == old {
		owner = h.retired.owner
		h.retired = retirement{}
	} else if b := h.blocks[old]; b != nil {
		owner = b.owner
		b.owner = ""
	}
	if nb := h.blocks[new]; nb != nil && owner != "" {
		nb.owner = owner
	}
	h.logger.Debug("relocate", "old", old, "new", new, "owner", owner)
}

// Label attaches an owner name to a live block. It reports false for
// untracked handles.
func (h *Heap) Label(p Ptr, owner string) bool {
	b, ok := h.blocks[p]
	if !ok {
		return false
	}
	b.owner = owner
	return true
}

// Owner returns the owner label of a live block.
func (h *Heap) Owner(p Ptr) string {
	if b, ok := h.blocks[p]; ok {
		return b.owner
	}
	return ""
}

// Addr returns the current physical location of p.
func (h *Heap) Addr(p Ptr) (Addr, bool) {
	b, ok := h.blocks[p]
	if !ok {
		return Addr{}, false
	}
	return Addr{Chunk: b.chunk, Offset: b.off}, true
}

// Bytes returns the backing memory of p. The slice is invalidated by
// Defragment, Reset and Release.
func (h *Heap) Bytes(p Ptr) []byte {
	b, ok := h.blocks[p]
	if !ok {
		return nil
	}
	buf := h.chunks[b.chunk].buf
	return buf[b.off : b.off+b.size : b.off+b.size]
}

// Block describes a live block.
type Block struct {
	Ptr   Ptr
	Addr  Addr
	Size  int
	Owner string
}

// Leaks returns every live block ordered by handle.
func (h *Heap) Leaks() []Block {
	out := make([]Block, 0, len(h.blocks))
	for p, b := range h.blocks {
		out = append(out, Block{
			Ptr:   p,
			Addr:  Addr{Chunk: b.chunk, Offset: b.off},
			Size:  b.size,
			Owner: b.owner,
		})
	}
	slices.SortFunc(out, func(a, b Block) int { return int(a.Ptr) - int(b.Ptr) })
	return out
}

// Defragment slides the blocks of every chunk toward offset 0, closing the
// holes left by Free. Handles stay valid; addresses change.
// Returns the number of bytes moved.
func (h *Heap) Defragment() int {
	h.panicIfReleased()
	moved := 0
	for ci := range h.chunks {
		c := &h.chunks[ci]
		off := 0
		for i := range c.spans {
			s := &c.spans[i]
			if s.off != off {
				copy(c.buf[off:off+s.size], c.buf[s.off:s.off+s.size])
				s.off = off
				h.blocks[s.ptr].off = off
				moved += s.size
			}
			off += s.size
		}
	}
	if moved > 0 {
		h.logger.Debug("defragment", "moved", moved)
	}
	return moved
}

// Reset drops every block but keeps allocated chunks for reuse.
func (h *Heap) Reset() {
	h.panicIfReleased()
	for i := range h.chunks {
		h.chunks[i].spans = h.chunks[i].spans[:0]
	}
	clear(h.blocks)
	h.retired = retirement{}
}

// Release drops all chunks and blocks. Alloc fails afterwards and Reset panics.
func (h *Heap) Release() {
	h.chunks = nil
	clear(h.blocks)
	h.retired = retirement{}
}

// place records a block of n bytes at off in chunk ci.
func (h *Heap) place(ci, off, n int) Ptr {
	p := h.nextPtr()
	if h.retired.ptr == p {
		h.retired = retirement{}
	}
	c := &h.chunks[ci]
	i, _ := c.index(off)
	c.spans = slices.Insert(c.spans, i, span{ptr: p, off: off, size: n})
	h.blocks[p] = &block{chunk: ci, off: off, size: n}
	h.allocs++
	return p
}

// nextPtr hands out the next unused non-Nil handle.
func (h *Heap) nextPtr() Ptr {
	for {
		h.next++
		if h.next == Nil {
			continue
		}
		if _, used := h.blocks[h.next]; !used {
			return h.next
		}
	}
}

// grow appends a new chunk of at least min bytes, honoring the limit.
func (h *Heap) grow(min int) bool {
	size := h.chunkSize
	if min > size {
		size = min
	}
	if h.limit > 0 {
		remaining := h.limit - h.Capacity()
		if remaining < min {
			return false
		}
		if size > remaining {
			size = remaining
		}
	}
	h.chunks = append(h.chunks, chunk{buf: make([]byte, size)})
	return true
}

// panicIfReleased panics if the heap has been released.
func (h *Heap) panicIfReleased() {
	if h.chunks == nil {
		panic("heap: use after Release()")
	}
}

// fit returns the first offset with n free bytes.
func (c *chunk) fit(n int) (int, bool) {
	prev := 0
	for _, s := range c.spans {
		if s.off-prev >= n {
			return prev, true
		}
		prev = s.off + s.size
	}
	if len(c.buf)-prev >= n {
		return prev, true
	}
	return 0, false
}

// index locates off among the chunk's spans.
func (c *chunk) index(off int) (int, bool) {
	return slices.BinarySearchFunc(c.spans, off, func(s span, off int) int { return s.off - off })
}

// alignUp aligns n up to pointer size alignment.
func alignUp(n int) int {
	mask := align - 1
	return (n + mask) &^ mask
}
