package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when a layout cannot be satisfied.
	ErrAllocation = errors.New("allocation failed")

	errZeroCapacity = errors.New("zero capacity must use the empty sentinel")
)

// Error describes a failed allocation request.
//
// errors.Is(err, ErrAllocation) reports true for every *Error. The underlying
// cause (if any) can be accessed via errors.Unwrap.
type Error struct {
	Capacity  int
	ElemSize  uintptr
	Alignment uintptr
	cause     error
}

func newError(capacity int, elemSize, align uintptr, cause error) *Error {
	return &Error{Capacity: capacity, ElemSize: elemSize, Alignment: align, cause: cause}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("allocation failed: %d elements of %d bytes aligned to %d", e.Capacity, e.ElemSize, e.Alignment)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is ErrAllocation.
func (e *Error) Is(target error) bool { return target == ErrAllocation }
