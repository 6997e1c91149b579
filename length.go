package uvector

import "fmt"

// Resize sets the number of live elements to n. Shrinking destroys the
// tail and keeps the storage. Growing default-constructs the new slots,
// reserving ceil(n × growth factor) first when the capacity is short.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrOutOfRange, n)
	case n == v.n:
		return nil
	case n < v.n:
		for i := n; i < v.n; i++ {
			v.destroyIn(v.buf, i)
		}
		v.n = n
		return nil
	}

	if n > len(v.buf) {
		if err := v.Reserve(v.growTarget(n)); err != nil {
			return err
		}
	}
	for i := v.n; i < n; i++ {
		v.constructAt(i)
	}
	v.n = n
	return nil
}

// ResizeFill is Resize followed by copying value into every new slot.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	old := v.n
	if err := v.Resize(n); err != nil {
		return err
	}
	for i := old; i < n; i++ {
		v.assign(&v.buf[i], &value)
	}
	return nil
}

// PushBack appends value, growing the storage when it is full.
func (v *Vector[T]) PushBack(value T) error {
	if len(v.buf) > v.n {
		v.constructAt(v.n)
		v.assign(&v.buf[v.n], &value)
		v.n++
		return nil
	}
	if err := v.Resize(v.n + 1); err != nil {
		return err
	}
	v.assign(&v.buf[v.n-1], &value)
	return nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.n == 0 {
		return ErrEmpty
	}
	v.n--
	v.destroyIn(v.buf, v.n)
	return nil
}

// RemoveAt destroys element i and moves every later element one slot down.
func (v *Vector[T]) RemoveAt(i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.n)
	}
	v.destroyIn(v.buf, i)
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--

	// The last slot was moved from; clear it without destroying.
	var zero T
	v.buf[v.n] = zero
	return nil
}

// Clear destroys every live element. The storage is kept.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.n; i++ {
		v.destroyIn(v.buf, i)
	}
	v.n = 0
}
