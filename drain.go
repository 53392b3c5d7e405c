package minivec

import "iter"

// Drain yields the elements of a sub-range by value and closes the gap they leave.
//
// Creating a Drain shortens the source Vec to the start of the range, so a Drain
// that is never closed leaves the Vec short but valid: the range and everything
// after it is lost, nothing is dropped twice. Close (or exhausting All) drops the
// elements that were not yielded and moves the tail down.
//
// The source Vec must not be used while the Drain is open.
type Drain[T any] struct {
	vec       *Vec[T]
	front     int // next index yielded by Next
	back      int // one past the next index yielded by NextBack
	tailStart int
	tailLen   int
	closed    bool
}

// Drain removes the range [start, end) and returns an adapter yielding its
// elements in order. The range must satisfy 0 <= start <= end <= Len().
func (v *Vec[T]) Drain(start, end int) (*Drain[T], error) {
	return v.drain("drain", start, end)
}

func (v *Vec[T]) drain(op string, start, end int) (*Drain[T], error) {
	length := v.Len()
	if start < 0 || start > end || end > length {
		return nil, &RangeError{Op: op, Start: start, End: end, Len: length}
	}

	v.setLen(start)
	return &Drain[T]{
		vec:       v,
		front:     start,
		back:      end,
		tailStart: end,
		tailLen:   length - end,
	}, nil
}

// Next yields the next element from the front of the range.
func (d *Drain[T]) Next() (T, bool) {
	if d.front >= d.back {
		var zero T
		return zero, false
	}
	x := take(&d.vec.buf.Elems[d.front])
	d.front++
	return x, true
}

// NextBack yields the next element from the back of the range.
func (d *Drain[T]) NextBack() (T, bool) {
	if d.front >= d.back {
		var zero T
		return zero, false
	}
	d.back--
	return take(&d.vec.buf.Elems[d.back]), true
}

// Len returns the number of elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.back - d.front
}

// AsSlice returns the elements not yet yielded.
func (d *Drain[T]) AsSlice() []T {
	e := d.vec.elems()
	return e[d.front:d.back:d.back]
}

// All returns an iterator yielding the remaining elements. The Drain is closed
// when the loop ends, including by break or panic.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			x, ok := d.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Collect moves the remaining elements into a new Vec and closes the Drain.
func (d *Drain[T]) Collect() *Vec[T] {
	out := &Vec[T]{}
	if n := d.Len(); n > 0 {
		out.ReserveExact(n)
	}
	out.Extend(d.All())
	return out
}

// KeepRest closes the Drain, keeping the elements that were not yielded in the
// source Vec in their original order.
func (d *Drain[T]) KeepRest() {
	if d.closed {
		return
	}
	d.closed = true

	e := d.vec.elems()
	start := d.vec.Len()
	if d.front != start {
		copy(e[start:], e[d.front:d.back])
	}
	d.vec.setLen(start + d.back - d.front)
	d.front = d.back
	d.closeGap()
}

// Close drops the elements that were not yielded and moves the tail down so the
// source Vec holds Len()-(end-start) elements. Close is idempotent.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true

	e := d.vec.elems()
	dropAll(e[d.front:d.back])
	d.front = d.back
	d.closeGap()
}

// closeGap moves the tail to the current end of the Vec and clears the slots
// left behind.
func (d *Drain[T]) closeGap() {
	e := d.vec.elems()
	start := d.vec.Len()
	end := d.tailStart + d.tailLen
	if d.tailLen > 0 && d.tailStart != start {
		copy(e[start:start+d.tailLen], e[d.tailStart:end])
	}
	newLen := start + d.tailLen
	if newLen < end {
		clear(e[newLen:end])
	}
	d.vec.setLen(newLen)
	d.tailStart = start
}

// moveTail shifts the tail right by n slots, growing the buffer with the tail
// counted as used.
func (d *Drain[T]) moveTail(n int) {
	v := d.vec
	length := v.Len()
	used := d.tailStart + d.tailLen

	v.buf.Len = used
	func() {
		defer func() { v.buf.Len = length }()
		v.Reserve(n)
	}()

	e := v.buf.Elems
	newTail := d.tailStart + n
	copy(e[newTail:newTail+d.tailLen], e[d.tailStart:used])
	d.tailStart = newTail
}
