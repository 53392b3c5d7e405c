package minivec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/minivec/internal/alloc"
	"github.com/hupe1980/minivec/internal/layout"
)

var (
	// ErrAllocation is returned when a buffer layout cannot be satisfied.
	ErrAllocation = alloc.ErrAllocation
	// ErrAlignment is returned when a requested alignment is not a power of two or
	// is below pointer alignment.
	ErrAlignment = errors.New("invalid alignment")
	// ErrOutOfBounds is returned when an index or range lies outside the container.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrShrink is returned when shrinking below the current length is requested.
	ErrShrink = errors.New("shrink below length")
)

// AllocationError describes a failed allocation. It matches ErrAllocation.
type AllocationError = alloc.Error

// AlignmentError indicates an invalid caller-supplied alignment.
type AlignmentError struct {
	Alignment uintptr
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("invalid alignment: %d is not a power of two >= %d", e.Alignment, layout.PointerAlign)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// IndexError indicates an index argument outside the valid range of an operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// RangeError indicates a range argument outside the container.
type RangeError struct {
	Op    string
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: range [%d, %d) out of bounds for length %d", e.Op, e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfBounds }

// ShrinkError indicates a shrink request below the current length.
type ShrinkError struct {
	MinCapacity int
	Len         int
}

func (e *ShrinkError) Error() string {
	return fmt.Sprintf("shrink: capacity %d below length %d", e.MinCapacity, e.Len)
}

func (e *ShrinkError) Unwrap() error { return ErrShrink }
