package layout

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/minivec/internal/conv"
)

// ErrOverflow is returned when a capacity cannot be expressed as a byte size.
var ErrOverflow = errors.New("layout: size overflows address space")

// Header is the metadata stored at the start of every allocation.
type Header struct {
	Len int
	Cap int
}

const (
	// HeaderSize is the unpadded size of Header in bytes.
	HeaderSize = unsafe.Sizeof(Header{})
	// HeaderAlign is the natural alignment of Header.
	HeaderAlign = unsafe.Alignof(Header{})
	// PointerAlign is the minimum alignment a caller may request.
	PointerAlign = unsafe.Alignof(uintptr(0))
)

// Seed capacities for the first growth of an empty buffer.
const (
	seedTiny  = 8
	seedSmall = 4
	seedLarge = 1

	smallElemLimit = 1024
)

// Layout describes a single allocation.
type Layout struct {
	// Size is the total number of bytes including the header region.
	Size uintptr
	// Align is the alignment of both the allocation and its element region.
	Align uintptr
	// Offset is the byte offset of the first element slot.
	Offset uintptr
}

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// AlignTo returns the smallest multiple of align that is >= n.
// align must be a power of two.
func AlignTo(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// alignToChecked is AlignTo with overflow detection.
func alignToChecked(n, align uintptr) (uintptr, error) {
	sum, err := conv.AddUintptr(n, align-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return sum &^ (align - 1), nil
}

// ValidAlignment reports whether a caller-supplied alignment is acceptable:
// a power of two no smaller than pointer alignment.
func ValidAlignment(a uintptr) bool {
	return IsPowerOfTwo(a) && a >= PointerAlign
}

// EffectiveAlignment returns max(requested, elemAlign, HeaderAlign).
// A zero request selects the natural alignment.
func EffectiveAlignment(requested, elemAlign uintptr) uintptr {
	return max(requested, elemAlign, HeaderAlign)
}

// GrowthCapacity returns the capacity to grow to from oldCap.
//
// An empty buffer is seeded with fewer elements as elements get larger, which bounds
// the initial memory and copy cost. Later growth doubles.
func GrowthCapacity(oldCap int, elemSize uintptr) (int, error) {
	var next int
	switch {
	case oldCap == 0 && elemSize == 1:
		next = seedTiny
	case oldCap == 0 && elemSize >= 2 && elemSize <= smallElemLimit:
		next = seedSmall
	case oldCap == 0:
		next = seedLarge
	case oldCap > math.MaxInt/2:
		return 0, fmt.Errorf("%w: cannot double capacity %d", ErrOverflow, oldCap)
	default:
		next = 2 * oldCap
	}

	if _, err := bytesFor(next, elemSize); err != nil {
		return 0, err
	}
	return next, nil
}

// Compute returns the layout of a buffer holding capacity elements of elemSize bytes
// aligned to align. align must be a power of two.
func Compute(capacity int, elemSize, align uintptr) (Layout, error) {
	if !IsPowerOfTwo(align) {
		return Layout{}, fmt.Errorf("layout: alignment %d is not a power of two", align)
	}

	offset := AlignTo(HeaderSize, align)
	l := Layout{Size: offset, Align: align, Offset: offset}
	if capacity == 0 {
		return l, nil
	}

	n, err := bytesFor(capacity, elemSize)
	if err != nil {
		return Layout{}, err
	}
	region, err := alignToChecked(n, align)
	if err != nil {
		return Layout{}, err
	}
	size, err := conv.AddUintptr(offset, region)
	if err != nil || size > math.MaxInt {
		return Layout{}, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, capacity, elemSize)
	}
	l.Size = size
	return l, nil
}

// bytesFor returns capacity*elemSize bounded by math.MaxInt.
func bytesFor(capacity int, elemSize uintptr) (uintptr, error) {
	c, err := conv.IntToUintptr(capacity)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	n, err := conv.MulUintptr(c, elemSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, capacity, elemSize)
	}
	return n, nil
}
