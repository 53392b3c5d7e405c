package minivec

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/minivec/internal/alloc"
	"github.com/hupe1980/minivec/internal/layout"
)

// CacheLineAlignment is the cache line size of the target architecture. Buffers
// aligned to it never share their first cache line with another allocation.
const CacheLineAlignment = unsafe.Sizeof(cpu.CacheLinePad{})

// MaxAlignment is the largest alignment a buffer can be allocated with.
const MaxAlignment = alloc.MaxAlignment

// Vec is a growable contiguous sequence backed by a single owned allocation.
//
// The zero value is an empty Vec ready to use. A Vec must not be copied after
// first use; pass *Vec instead. Vec is not safe for concurrent mutation.
type Vec[T any] struct {
	buf   *alloc.Block[T] // nil is the empty sentinel
	align uintptr         // requested alignment, 0 selects the natural alignment
}

// New returns an empty Vec. It does not allocate.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty Vec with room for exactly n elements.
// n == 0 does not allocate.
func WithCapacity[T any](n int) (*Vec[T], error) {
	v := &Vec[T]{}
	if err := v.TryReserveExact(n); err != nil {
		return nil, err
	}
	return v, nil
}

// WithAlignment returns an empty Vec with room for exactly n elements whose buffer
// address is a multiple of alignment. The alignment is kept across growth.
//
// alignment must be a power of two no smaller than pointer alignment, otherwise an
// *AlignmentError is returned and nothing is allocated.
// An alignment above MaxAlignment is valid but cannot be allocated: it fails with
// an *AllocationError once capacity is requested.
func WithAlignment[T any](n int, alignment uintptr) (*Vec[T], error) {
	if !layout.ValidAlignment(alignment) {
		return nil, &AlignmentError{Alignment: alignment}
	}
	v := &Vec[T]{align: alignment}
	if err := v.TryReserveExact(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Repeat returns a Vec holding n copies of value. The last slot receives value
// itself; the others receive clones. It panics if n is negative or the buffer
// cannot be allocated.
func Repeat[T any](value T, n int) *Vec[T] {
	if n < 0 {
		panic("minivec: negative Repeat count")
	}
	v := &Vec[T]{}
	v.Resize(n, value)
	return v
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Len
}

// Cap returns the number of elements the buffer can hold without growing.
func (v *Vec[T]) Cap() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Cap
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Alignment returns the effective alignment of the buffer:
// max(requested, alignof(T), alignof(Header)).
func (v *Vec[T]) Alignment() uintptr {
	if v.buf != nil {
		return v.buf.Layout.Align
	}
	return v.alignment()
}

func (v *Vec[T]) alignment() uintptr {
	return layout.EffectiveAlignment(v.align, alloc.ElemAlign[T]())
}

// AsSlice returns the live elements. The slice aliases the buffer and is
// invalidated by any operation that reallocates.
func (v *Vec[T]) AsSlice() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Elems[:v.buf.Len:v.buf.Len]
}

// Ptr returns a pointer to the first element slot, or nil for an empty sentinel.
func (v *Vec[T]) Ptr() *T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Data()
}

// All returns an iterator over index-value pairs of the live elements.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.AsSlice())
}

// Values returns an iterator over the live elements.
func (v *Vec[T]) Values() iter.Seq[T] {
	return slices.Values(v.AsSlice())
}

func (v *Vec[T]) elems() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Elems
}

func (v *Vec[T]) setLen(n int) {
	if v.buf != nil {
		v.buf.Len = n
	}
}

// Reserve ensures room for at least additional more elements, growing by the
// amortized doubling policy. It panics with an *AllocationError on failure.
func (v *Vec[T]) Reserve(additional int) {
	if err := v.TryReserve(additional); err != nil {
		panic(err)
	}
}

// ReserveExact ensures room for exactly additional more elements when growth is
// needed. It panics with an *AllocationError on failure.
func (v *Vec[T]) ReserveExact(additional int) {
	if err := v.TryReserveExact(additional); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve returning the allocation error instead of panicking.
func (v *Vec[T]) TryReserve(additional int) error {
	return v.reserve(additional, false)
}

// TryReserveExact is ReserveExact returning the allocation error instead of
// panicking.
func (v *Vec[T]) TryReserveExact(additional int) error {
	return v.reserve(additional, true)
}

func (v *Vec[T]) reserve(additional int, exact bool) error {
	length, capacity := v.Len(), v.Cap()
	if additional < 0 || length > math.MaxInt-additional {
		return fmt.Errorf("%w: cannot reserve %d more elements at length %d", ErrAllocation, additional, length)
	}
	if capacity-length >= additional {
		return nil
	}

	required := length + additional
	newCap := required
	if !exact {
		if next, err := layout.GrowthCapacity(capacity, alloc.ElemSize[T]()); err == nil && next > required {
			newCap = next
		}
	}
	return v.realloc(newCap)
}

// realloc moves the buffer to one of exactly newCap slots. newCap > 0.
func (v *Vec[T]) realloc(newCap int) error {
	if v.buf == nil {
		b, err := alloc.Allocate[T](newCap, v.alignment())
		if err != nil {
			return err
		}
		v.buf = b
		return nil
	}

	b, err := alloc.Reallocate(v.buf, newCap)
	if err != nil {
		return err
	}
	v.buf = b
	return nil
}

// ShrinkTo reduces the capacity to max(minCapacity, Len()) when that is below the
// current capacity. It returns a *ShrinkError if minCapacity < Len().
func (v *Vec[T]) ShrinkTo(minCapacity int) error {
	length := v.Len()
	if minCapacity < length {
		return &ShrinkError{MinCapacity: minCapacity, Len: length}
	}
	if minCapacity >= v.Cap() {
		return nil
	}
	if minCapacity == 0 {
		alloc.Deallocate(v.buf)
		v.buf = nil
		return nil
	}
	return v.realloc(minCapacity)
}

// ShrinkToFit reduces the capacity to the current length.
func (v *Vec[T]) ShrinkToFit() {
	if err := v.ShrinkTo(v.Len()); err != nil {
		panic(err)
	}
}

// SpareCapacity returns the unused slots [Len(), Cap()) for direct writes.
// Pair it with SetLen to publish written elements.
func (v *Vec[T]) SpareCapacity() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Elems[v.buf.Len:v.buf.Cap:v.buf.Cap]
}

// SetLen sets the length without touching any element.
//
// It is unchecked: the caller guarantees n <= Cap() and that every slot in
// [Len(), n) holds a valid element. Shrinking with SetLen does not drop elements.
func (v *Vec[T]) SetLen(n int) {
	if v.buf == nil && n == 0 {
		return
	}
	v.buf.Len = n
}

// Leak hands the live elements to the caller and resets the Vec to empty without
// dropping or releasing anything. The returned slice stays valid for as long as
// the caller references it.
func (v *Vec[T]) Leak() []T {
	s := v.AsSlice()
	v.buf = nil
	return s
}

// Free drops every element in index order and releases the buffer. The Vec is
// empty and reusable afterwards.
func (v *Vec[T]) Free() {
	v.Clear()
	alloc.Deallocate(v.buf)
	v.buf = nil
}
