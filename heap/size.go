package heap

import (
	"math"
	"unsafe"
)

// SizeFor returns the number of bytes needed to store n values of type T.
// It reports false for negative n or when the size overflows an int.
func SizeFor[T any](n int) (int, bool) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n < 0 {
		return 0, false
	}
	if elemSize != 0 && n > math.MaxInt/elemSize {
		return 0, false
	}
	return elemSize * n, true
}
