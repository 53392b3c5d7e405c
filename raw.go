package minivec

import (
	"unsafe"

	"github.com/hupe1980/minivec/internal/alloc"
	"github.com/hupe1980/minivec/internal/layout"
)

// IntoRawParts transfers ownership of the buffer to the caller as a pointer to the
// first element, the length and the capacity. v is left empty. An empty Vec yields
// a nil pointer and zero capacity.
func (v *Vec[T]) IntoRawParts() (ptr *T, length, capacity int) {
	if v.buf == nil {
		return nil, 0, 0
	}
	ptr, length, capacity = v.buf.Data(), v.buf.Len, v.buf.Cap
	v.buf = nil
	return ptr, length, capacity
}

// FromRawParts rebuilds a Vec from the parts returned by IntoRawParts.
//
// It is unchecked: the caller guarantees that the triple came from IntoRawParts
// of a Vec[T] and that it is not used again. The rebuilt Vec grows with the
// natural alignment of T. It panics with an *AllocationError if length and
// capacity describe no valid buffer.
func FromRawParts[T any](ptr *T, length, capacity int) *Vec[T] {
	v := &Vec[T]{}
	if capacity == 0 {
		return v
	}
	b, err := alloc.Adopt(ptr, length, capacity, v.alignment())
	if err != nil {
		panic(err)
	}
	v.buf = b
	return v
}

// IntoRawPart transfers ownership of the whole allocation to the caller as a
// single pointer addressing its header. v is left empty. An empty Vec yields nil.
//
// The handle is not the element pointer: it differs from Ptr and must only be
// passed to FromRawPart.
func (v *Vec[T]) IntoRawPart() unsafe.Pointer {
	if v.buf == nil {
		return nil
	}
	p := unsafe.Pointer(v.buf)
	v.buf = nil
	return p
}

// FromRawPart rebuilds a Vec from a pointer returned by IntoRawPart, recovering
// length, capacity and alignment from the header it addresses.
//
// It is unchecked: p must come from IntoRawPart of a Vec[T] and must not be
// used again. A pointer obtained from Ptr or IntoRawParts is not a valid
// argument.
func FromRawPart[T any](p unsafe.Pointer) *Vec[T] {
	if p == nil || (*layout.Header)(p).Cap == 0 {
		return &Vec[T]{}
	}
	b := (*alloc.Block[T])(p)
	return &Vec[T]{buf: b, align: b.Layout.Align}
}
