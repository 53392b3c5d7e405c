package minivec

import "iter"

// Splice removes a sub-range like Drain and, when closed, inserts a replacement
// sequence in its place.
//
// The replacement is consumed only by Close. It first fills the removed range;
// any excess is collected, the tail is moved right once, and the excess is moved
// into the opening. Live tail elements are never overwritten.
type Splice[T any] struct {
	drain       *Drain[T]
	replaceWith iter.Seq[T]
}

// Splice removes [start, end) and returns an adapter yielding the removed
// elements. Closing the adapter inserts the values of replaceWith at start.
// A nil replaceWith inserts nothing.
func (v *Vec[T]) Splice(start, end int, replaceWith iter.Seq[T]) (*Splice[T], error) {
	d, err := v.drain("splice", start, end)
	if err != nil {
		return nil, err
	}
	return &Splice[T]{drain: d, replaceWith: replaceWith}, nil
}

// Next yields the next removed element from the front.
func (s *Splice[T]) Next() (T, bool) {
	return s.drain.Next()
}

// NextBack yields the next removed element from the back.
func (s *Splice[T]) NextBack() (T, bool) {
	return s.drain.NextBack()
}

// Len returns the number of removed elements not yet yielded.
func (s *Splice[T]) Len() int {
	return s.drain.Len()
}

// AsSlice returns the removed elements not yet yielded.
func (s *Splice[T]) AsSlice() []T {
	return s.drain.AsSlice()
}

// All returns an iterator yielding the remaining removed elements. The Splice is
// closed when the loop ends, including by break or panic.
func (s *Splice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Close()
		for {
			x, ok := s.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Collect moves the remaining removed elements into a new Vec and closes the
// Splice.
func (s *Splice[T]) Collect() *Vec[T] {
	out := &Vec[T]{}
	out.Extend(s.All())
	return out
}

// Close drops the removed elements that were not yielded, inserts the
// replacement and closes any remaining gap. Close is idempotent.
//
// If the replacement sequence panics, the values inserted so far stay and the
// tail is still moved down behind them.
func (s *Splice[T]) Close() {
	d := s.drain
	if d.closed {
		return
	}

	dropAll(d.vec.elems()[d.front:d.back])
	d.front = d.back
	defer d.Close()

	if s.replaceWith == nil {
		return
	}

	v := d.vec
	if d.tailLen == 0 {
		v.Extend(s.replaceWith)
		return
	}

	var rest Vec[T]
	defer rest.Free()

	for x := range s.replaceWith {
		if b := v.buf; b.Len < d.tailStart {
			b.Elems[b.Len] = x
			b.Len++
			continue
		}
		rest.Push(x)
	}

	if n := rest.Len(); n > 0 {
		d.moveTail(n)
		b := v.buf
		b.Len += copy(b.Elems[b.Len:d.tailStart], rest.AsSlice())
		clear(rest.buf.Elems[:n])
		rest.buf.Len = 0
	}
}
