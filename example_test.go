package uvector_test

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/uvector"
	"github.com/pavanmanishd/uvector/heap"
)

// Example demonstrates basic vector usage
func Example() {
	h := heap.New(0)
	v := uvector.New[int](h)
	defer v.Release() // Always give storage back

	for i := 1; i <= 5; i++ {
		v.PushBack(i)
	}
	fmt.Printf("Elements: %v (len %d, cap %d)\n", v.Data(), v.Len(), v.Cap())

	v.RemoveAt(1)
	fmt.Printf("After RemoveAt(1): %v\n", v.Data())

	v.ShrinkToFit()
	fmt.Printf("After ShrinkToFit: cap %d\n", v.Cap())

	// Out-of-range access yields the sentinel instead of panicking
	fmt.Printf("Sentinel returned: %v\n", v.At(10) == v.Sentinel())

	// Output:
	// Elements: [1 2 3 4 5] (len 5, cap 6)
	// After RemoveAt(1): [1 3 4 5]
	// After ShrinkToFit: cap 4
	// Sentinel returned: true
}

// ExampleNewSized shows a pre-sized vector and growth headroom.
func ExampleNewSized() {
	v, err := uvector.NewSized[float64](heap.New(0), 10)
	if err != nil {
		panic(err)
	}
	fmt.Printf("len %d, cap %d\n", v.Len(), v.Cap())

	// Output:
	// len 10, cap 12
}

// ExampleVector_PushBack shows allocation failure on a bounded heap.
func ExampleVector_PushBack() {
	h := heap.New(64, heap.WithLimit(64))
	v := uvector.New[int64](h)

	var err error
	for i := 0; err == nil; i++ {
		err = v.PushBack(int64(i))
	}
	fmt.Println("out of memory:", errors.Is(err, uvector.ErrNoMemory))
	fmt.Printf("kept: %v\n", v.Data())

	// Output:
	// out of memory: true
	// kept: [0 1 2 3]
}

// ExampleWithLabel shows an owner label following the storage across
// reallocations.
func ExampleWithLabel() {
	h := heap.New(0)
	v := uvector.New(h, uvector.WithLabel[string]("names"))

	for _, name := range []string{"ada", "grace", "edsger", "barbara"} {
		v.PushBack(name)
	}
	for _, b := range h.Leaks() {
		fmt.Printf("live block owned by %q (%d bytes)\n", b.Owner, b.Size)
	}
	fmt.Println("relocations:", h.Metrics().Relocations)

	v.Release()
	fmt.Println("live blocks after release:", len(h.Leaks()))

	// Output:
	// live block owned by "names" (64 bytes)
	// relocations: 2
	// live blocks after release: 0
}
