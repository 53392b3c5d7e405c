package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/minivec/internal/conv"
	"github.com/hupe1980/minivec/internal/layout"
)

// largeObjectSize is the size from which the Go runtime hands out page-aligned
// spans.
const largeObjectSize = 32 << 10

// MaxAlignment is the largest alignment Allocate accepts. Reaching an alignment
// costs up to that many bytes of slack per allocation.
const MaxAlignment = 1 << 30

// Block is a single owned allocation: header, layout and element storage.
type Block[T any] struct {
	layout.Header

	// Layout is the layout the block was sized with.
	Layout layout.Layout
	// Elems is the aligned element window. len(Elems) == Cap.
	Elems []T

	slab []T // backing allocation including alignment slack
}

// Data returns a pointer to the first element slot.
func (b *Block[T]) Data() *T {
	return unsafe.SliceData(b.Elems)
}

// ElemSize returns the size of T in bytes.
func ElemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// ElemAlign returns the natural alignment of T.
func ElemAlign[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// Allocate returns a block with room for capacity elements whose first slot is
// aligned to align. capacity must be positive: empty containers use the sentinel.
func Allocate[T any](capacity int, align uintptr) (*Block[T], error) {
	size := ElemSize[T]()
	if capacity <= 0 {
		return nil, newError(capacity, size, align, errZeroCapacity)
	}

	l, err := layout.Compute(capacity, size, align)
	if err != nil {
		return nil, newError(capacity, size, align, err)
	}

	slab, off, err := alignedSlab[T](capacity, size, align)
	if err != nil {
		return nil, newError(capacity, size, align, err)
	}

	b := &Block[T]{
		Header: layout.Header{Cap: capacity},
		Layout: l,
		Elems:  slab[off : off+capacity : off+capacity],
		slab:   slab,
	}
	logAllocate(b)
	return b, nil
}

// Reallocate moves the live elements of b into a new block of newCap slots with
// the same alignment, releases b and returns the new block. newCap must be at
// least b.Len.
func Reallocate[T any](b *Block[T], newCap int) (*Block[T], error) {
	if newCap < b.Len {
		return nil, newError(newCap, ElemSize[T](), b.Layout.Align,
			fmt.Errorf("capacity %d below length %d", newCap, b.Len))
	}

	n, err := Allocate[T](newCap, b.Layout.Align)
	if err != nil {
		return nil, err
	}

	copy(n.Elems, b.Elems[:b.Len])
	n.Len = b.Len

	logGrow(b, n)
	Deallocate(b)
	return n, nil
}

// Deallocate releases the storage of b. It is a no-op for a nil or empty block.
// Elements are not dropped; that is the owner's responsibility.
func Deallocate[T any](b *Block[T]) {
	if b == nil || b.Cap == 0 {
		return
	}
	logRelease(b)
	b.Header = layout.Header{}
	b.Elems = nil
	b.slab = nil
}

// Adopt wraps an element buffer previously taken out of a block.
//
// The caller guarantees that ptr addresses capacity slots obtained from Allocate
// with the given alignment and that the first length slots are live. Only the
// arithmetic is checked: a triple that describes no valid layout is rejected.
func Adopt[T any](ptr *T, length, capacity int, align uintptr) (*Block[T], error) {
	size := ElemSize[T]()
	if length < 0 || length > capacity {
		return nil, newError(capacity, size, align, fmt.Errorf("length %d outside capacity %d", length, capacity))
	}
	l, err := layout.Compute(capacity, size, align)
	if err != nil {
		return nil, newError(capacity, size, align, err)
	}
	elems := unsafe.Slice(ptr, capacity)
	return &Block[T]{
		Header: layout.Header{Len: length, Cap: capacity},
		Layout: l,
		Elems:  elems,
		slab:   elems,
	}, nil
}

// alignedSlab allocates capacity slots plus slack and returns the index of the
// first slot aligned to align.
func alignedSlab[T any](capacity int, size, align uintptr) (slab []T, off int, err error) {
	defer func() {
		if r := recover(); r != nil {
			slab, off, err = nil, 0, fmt.Errorf("runtime rejected allocation: %v", r)
		}
	}()

	if size == 0 {
		return make([]T, capacity), 0, nil
	}
	if align > MaxAlignment {
		return nil, 0, fmt.Errorf("alignment %d exceeds %d", align, MaxAlignment)
	}

	slack, err := slackFor(size, align)
	if err != nil {
		return nil, 0, err
	}
	if err := checkSlab(capacity, slack, size); err != nil {
		return nil, 0, err
	}
	if s, i, ok := placeAligned[T](capacity, slack, size, align); ok {
		return s, i, nil
	}

	// Large allocations start on a page boundary.
	if minSlots := int(largeObjectSize/size) + 1; capacity+slack < minSlots {
		slack = minSlots - capacity
	}
	if s, i, ok := placeAligned[T](capacity, slack, size, align); ok {
		return s, i, nil
	}
	return nil, 0, fmt.Errorf("no %d-byte aligned slot for %d-byte elements", align, size)
}

// slackFor returns how many extra slots guarantee that some slot is aligned,
// assuming the runtime aligns the slab to the element's lowest set bit.
func slackFor(size, align uintptr) (int, error) {
	low := size & -size
	if low >= align {
		return 0, nil
	}
	n, err := conv.UintptrToInt(align / low)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// checkSlab verifies that capacity+slack slots of size bytes fit in an int.
func checkSlab(capacity, slack int, size uintptr) error {
	c, err := conv.IntToUintptr(capacity)
	if err != nil {
		return err
	}
	sl, err := conv.IntToUintptr(slack)
	if err != nil {
		return err
	}
	slots, err := conv.AddUintptr(c, sl)
	if err != nil {
		return err
	}
	n, err := conv.MulUintptr(slots, size)
	if err != nil {
		return err
	}
	if n > math.MaxInt {
		return fmt.Errorf("slab of %d bytes exceeds address space", n)
	}
	return nil
}

func placeAligned[T any](capacity, slack int, size, align uintptr) ([]T, int, bool) {
	slab := make([]T, capacity+slack)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(slab)))
	for i := 0; i <= slack; i++ {
		if (base+uintptr(i)*size)&(align-1) == 0 {
			return slab, i, true
		}
	}
	return nil, 0, false
}
