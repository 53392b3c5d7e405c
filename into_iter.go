package minivec

import (
	"iter"

	"github.com/hupe1980/minivec/internal/alloc"
)

// IntoIter owns the buffer of a consumed Vec and yields its elements by value
// from either end.
type IntoIter[T any] struct {
	buf   *alloc.Block[T]
	front int
	back  int
}

// IntoIter consumes the elements of v into an owning iterator. v is left empty
// and keeps its requested alignment.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{buf: v.buf, back: v.Len()}
	v.buf = nil
	return it
}

// Next yields the next element from the front.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	x := take(&it.buf.Elems[it.front])
	it.front++
	return x, true
}

// NextBack yields the next element from the back.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	return take(&it.buf.Elems[it.back]), true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.back - it.front
}

// AsSlice returns the elements not yet yielded.
func (it *IntoIter[T]) AsSlice() []T {
	if it.buf == nil {
		return nil
	}
	return it.buf.Elems[it.front:it.back:it.back]
}

// Clone returns an independent iterator over clones of the elements not yet
// yielded, in a new allocation with the same alignment.
func (it *IntoIter[T]) Clone() *IntoIter[T] {
	rest := it.AsSlice()
	if len(rest) == 0 {
		return &IntoIter[T]{}
	}

	b, err := alloc.Allocate[T](len(rest), it.buf.Layout.Align)
	if err != nil {
		panic(err)
	}
	for i := range rest {
		b.Elems[i] = cloneOf(&rest[i])
		b.Len = i + 1
	}
	return &IntoIter[T]{buf: b, back: len(rest)}
}

// All returns an iterator yielding the remaining elements. The IntoIter is closed
// when the loop ends, including by break or panic.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Close drops the elements not yet yielded and releases the buffer. Close is
// idempotent.
func (it *IntoIter[T]) Close() {
	if it.buf == nil {
		return
	}
	dropAll(it.buf.Elems[it.front:it.back])
	it.front = it.back
	alloc.Deallocate(it.buf)
	it.buf = nil
}
