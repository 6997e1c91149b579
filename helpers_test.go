package uvector

import (
	"fmt"

	"github.com/pavanmanishd/uvector/heap"
)

// call is one allocator invocation seen by recordingAllocator.
type call struct {
	op  string
	a   heap.Ptr
	b   heap.Ptr
	ok  bool
	arg int
}

func (c call) String() string {
	switch c.op {
	case "alloc":
		return fmt.Sprintf("alloc(%d)=%d", c.arg, c.a)
	case "relocate":
		return fmt.Sprintf("relocate(%d,%d)", c.a, c.b)
	default:
		return fmt.Sprintf("%s(%d)", c.op, c.a)
	}
}

// recordingAllocator wraps a heap and logs every call in order.
type recordingAllocator struct {
	*heap.Heap
	calls []call
}

func newRecordingAllocator(opts ...heap.Option) *recordingAllocator {
	return &recordingAllocator{Heap: heap.New(0, opts...)}
}

func (r *recordingAllocator) Alloc(size int) (heap.Ptr, bool) {
	p, ok := r.Heap.Alloc(size)
	r.calls = append(r.calls, call{op: "alloc", a: p, ok: ok, arg: size})
	return p, ok
}

func (r *recordingAllocator) Free(p heap.Ptr) {
	r.calls = append(r.calls, call{op: "free", a: p})
	r.Heap.Free(p)
}

func (r *recordingAllocator) Validate(p heap.Ptr) bool {
	ok := r.Heap.Validate(p)
	r.calls = append(r.calls, call{op: "validate", a: p, ok: ok})
	return ok
}

func (r *recordingAllocator) Relocate(old, new heap.Ptr) {
	r.calls = append(r.calls, call{op: "relocate", a: old, b: new})
	r.Heap.Relocate(old, new)
}

func (r *recordingAllocator) relocations() []call {
	var out []call
	for _, c := range r.calls {
		if c.op == "relocate" {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingAllocator) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

func (r *recordingAllocator) reset() {
	r.calls = nil
}

// failingAllocator refuses every allocation.
type failingAllocator struct{}

func (failingAllocator) Alloc(int) (heap.Ptr, bool) { return heap.Nil, false }
func (failingAllocator) Free(heap.Ptr)              {}
func (failingAllocator) Validate(heap.Ptr) bool     { return false }
func (failingAllocator) Relocate(_, _ heap.Ptr)     {}

// permissiveAllocator approves every request with the same handle.
type permissiveAllocator struct {
	freed []heap.Ptr
}

func (p *permissiveAllocator) Alloc(int) (heap.Ptr, bool) { return 1, true }
func (p *permissiveAllocator) Free(ptr heap.Ptr)          { p.freed = append(p.freed, ptr) }
func (p *permissiveAllocator) Validate(heap.Ptr) bool     { return true }
func (p *permissiveAllocator) Relocate(_, _ heap.Ptr)     {}

// lifecycle counts hook invocations.
type lifecycle struct {
	constructed int
	copied      int
	destroyed   int
}

func (l *lifecycle) options() []Option[string] {
	return []Option[string]{
		WithConstruct(func(s *string) {
			l.constructed++
			*s = "new"
		}),
		WithCopy(func(dst, src *string) {
			l.copied++
			*dst = *src
		}),
		WithDestroy(func(s *string) {
			l.destroyed++
		}),
	}
}
