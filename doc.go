// Package minivec provides Vec, a growable contiguous sequence whose length,
// capacity and elements live in one owned allocation with caller-controlled
// alignment.
//
// # Quick Start
//
//	v := minivec.New[int]()
//	v.Push(1)
//	v.Push(2)
//	x, _ := v.Pop()
//
// Aligned buffers, e.g. for SIMD loads:
//
//	v, err := minivec.WithAlignment[float32](64, 32)
//	if err != nil {
//	    // not a power of two, or below pointer alignment
//	}
//	n := copy(v.SpareCapacity(), src)
//	v.SetLen(n)
//
// # Growth
//
// An empty Vec does not allocate. The first growth reserves 8 slots for 1-byte
// elements, 4 for elements of 2 bytes up to 1 KiB and 1 for larger or zero-sized
// ones; every later growth doubles the capacity. ExtendFromSlice and WithCapacity size the buffer exactly.
// Capacity only shrinks through ShrinkTo and ShrinkToFit, never below Len.
//
// # Element Ownership
//
// Elements implementing Dropper (through a pointer) are told when the container
// discards them, exactly once. Elements implementing Cloner are deep-copied when
// the container duplicates them. Vacated slots are reset to the zero value so the
// garbage collector does not retain them.
//
// # Adapters
//
// Drain, Splice and IntoIter move elements out by value. They leave the source in
// a valid state however they end: exhausted, abandoned, or torn down by a panic
// in a caller callback. Close them explicitly, or range over All, which closes on
// every exit path:
//
//	d, _ := v.Drain(1, 4)
//	for x := range d.All() {
//	    use(x)
//	}
//
// # Raw Parts
//
// IntoRawParts/FromRawParts and IntoRawPart/FromRawPart transfer ownership of the
// buffer across API boundaries. Reconstruction is unchecked and trusts the caller.
//
// # Diagnostics
//
// Allocation events are logged at debug level through SetLogger; logging is off by
// default.
package minivec
