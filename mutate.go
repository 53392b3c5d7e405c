package minivec

import (
	"iter"
	"slices"
)

// Push appends x, growing the buffer when it is full. Amortized O(1).
func (v *Vec[T]) Push(x T) {
	if v.Len() == v.Cap() {
		v.Reserve(1)
	}
	b := v.buf
	b.Elems[b.Len] = x
	b.Len++
}

// Append moves values onto the end of the Vec.
func (v *Vec[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	v.Reserve(len(values))
	b := v.buf
	b.Len += copy(b.Elems[b.Len:], values)
}

// Pop removes and returns the last element, or false if the Vec is empty.
func (v *Vec[T]) Pop() (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	b := v.buf
	b.Len--
	return take(&b.Elems[b.Len]), true
}

// Insert places x at index i, shifting [i, Len()) one slot to the right.
// i must be in [0, Len()].
func (v *Vec[T]) Insert(i int, x T) error {
	length := v.Len()
	if i < 0 || i > length {
		return &IndexError{Op: "insert", Index: i, Len: length}
	}
	if length == v.Cap() {
		v.Reserve(1)
	}
	e := v.buf.Elems
	copy(e[i+1:length+1], e[i:length])
	e[i] = x
	v.buf.Len++
	return nil
}

// Remove removes and returns the element at index i, shifting [i+1, Len()) one
// slot to the left. i must be in [0, Len()).
func (v *Vec[T]) Remove(i int) (T, error) {
	length := v.Len()
	if i < 0 || i >= length {
		var zero T
		return zero, &IndexError{Op: "remove", Index: i, Len: length}
	}
	e := v.buf.Elems
	x := e[i]
	copy(e[i:length-1], e[i+1:length])
	var zero T
	e[length-1] = zero
	v.buf.Len--
	return x, nil
}

// SwapRemove removes and returns the element at index i, replacing it with the
// last element. O(1), does not preserve order.
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	length := v.Len()
	if i < 0 || i >= length {
		var zero T
		return zero, &IndexError{Op: "swap_remove", Index: i, Len: length}
	}
	e := v.buf.Elems
	x := e[i]
	e[i] = e[length-1]
	var zero T
	e[length-1] = zero
	v.buf.Len--
	return x, nil
}

// RemoveItem removes and returns the first element equal to x.
func RemoveItem[T comparable](v *Vec[T], x T) (T, bool) {
	i := slices.Index(v.AsSlice(), x)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed, _ := v.Remove(i)
	return removed, true
}

// Truncate drops the elements [n, Len()) in index order. It is a no-op when
// n >= Len(); n <= 0 drops everything.
func (v *Vec[T]) Truncate(n int) {
	n = max(n, 0)
	length := v.Len()
	if n >= length {
		return
	}
	// Shorten first so a panicking Drop cannot expose dropped slots.
	v.buf.Len = n
	dropAll(v.buf.Elems[n:length])
}

// Clear drops every element. The capacity is kept.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Resize grows the Vec to n elements by appending clones of value, or truncates
// it to n. When growing, the last new slot receives value itself; when not, value
// is dropped.
func (v *Vec[T]) Resize(n int, value T) {
	length := v.Len()
	if n <= length {
		v.Truncate(n)
		drop(&value)
		return
	}

	v.Reserve(n - length)
	b := v.buf
	for b.Len < n-1 {
		x := cloneOf(&value)
		b.Elems[b.Len] = x
		b.Len++
	}
	b.Elems[b.Len] = value
	b.Len++
}

// ResizeWith grows the Vec to n elements by appending successive results of
// producer, or truncates it to n.
func (v *Vec[T]) ResizeWith(n int, producer func() T) {
	length := v.Len()
	if n <= length {
		v.Truncate(n)
		return
	}

	v.Reserve(n - length)
	b := v.buf
	for b.Len < n {
		x := producer()
		b.Elems[b.Len] = x
		b.Len++
	}
}

// Retain keeps only the elements for which keep returns true. keep is called
// exactly once per element in index order; rejected elements are dropped
// immediately.
func (v *Vec[T]) Retain(keep func(T) bool) {
	v.RetainMut(func(p *T) bool { return keep(*p) })
}

// RetainMut is Retain with mutable access to each element.
//
// If keep panics, the element being examined and every later one are kept,
// shifted down over the rejected ones.
func (v *Vec[T]) RetainMut(keep func(*T) bool) {
	n := v.Len()
	if n == 0 {
		return
	}

	b := v.buf
	e := b.Elems
	processed, deleted := 0, 0
	b.Len = 0

	defer func() {
		if deleted > 0 && processed < n {
			copy(e[processed-deleted:], e[processed:n])
			clear(e[n-deleted : n])
		}
		b.Len = n - deleted
	}()

	for processed < n {
		cur := &e[processed]
		if !keep(cur) {
			processed++
			deleted++
			drop(cur)
			continue
		}
		if deleted > 0 {
			e[processed-deleted] = take(cur)
		}
		processed++
	}
}

// DedupFunc collapses runs of consecutive elements for which same reports true
// to their first member. same receives the candidate and the last kept element,
// in that order. Discarded elements are dropped immediately.
//
// If same panics, the candidate and every later element are kept.
func (v *Vec[T]) DedupFunc(same func(a, b *T) bool) {
	n := v.Len()
	if n <= 1 {
		return
	}

	b := v.buf
	e := b.Elems
	read, write := 1, 1

	defer func() {
		if read < n && read != write {
			copy(e[write:], e[read:n])
			clear(e[write+n-read : n])
		}
		b.Len = write + n - read
	}()

	for read < n {
		if same(&e[read], &e[write-1]) {
			drop(&e[read])
		} else {
			if read != write {
				e[write] = take(&e[read])
			}
			write++
		}
		read++
	}
}

// Dedup collapses runs of consecutive equal elements to their first member.
func Dedup[T comparable](v *Vec[T]) {
	v.DedupFunc(func(a, b *T) bool { return *a == *b })
}

// DedupByKey collapses runs of consecutive elements with equal keys.
func DedupByKey[T any, K comparable](v *Vec[T], key func(*T) K) {
	v.DedupFunc(func(a, b *T) bool { return key(a) == key(b) })
}

// ExtendFromSlice appends clones of s. The buffer grows to exactly the required
// capacity when it is too small.
func (v *Vec[T]) ExtendFromSlice(s []T) {
	if len(s) == 0 {
		return
	}
	v.ReserveExact(len(s))
	b := v.buf
	for i := range s {
		x := cloneOf(&s[i])
		b.Elems[b.Len] = x
		b.Len++
	}
}

// Extend appends every value produced by seq, growing with amortized doubling.
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// SplitOff moves [at, Len()) into a new Vec with the same requested alignment
// and truncates the receiver to at. at must be in [0, Len()].
func (v *Vec[T]) SplitOff(at int) (*Vec[T], error) {
	length := v.Len()
	if at < 0 || at > length {
		return nil, &IndexError{Op: "split_off", Index: at, Len: length}
	}

	other := &Vec[T]{align: v.align}
	n := length - at
	if n == 0 {
		return other, nil
	}
	if err := other.TryReserveExact(n); err != nil {
		return nil, err
	}

	src := v.buf.Elems[at:length]
	other.buf.Len = copy(other.buf.Elems, src)
	clear(src)
	v.buf.Len = at
	return other, nil
}
