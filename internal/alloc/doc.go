// Package alloc owns the single allocation behind a container.
//
// A Block carries the container Header (length and capacity), the Layout it was
// sized with, and the aligned element window. The element storage is an ordinary
// typed Go slice so that the garbage collector keeps scanning pointers held by the
// elements; alignment beyond what the runtime guarantees is obtained by
// over-allocating a few slots and starting the window at the first aligned slot.
//
// # Growth
//
// Reallocate moves the live prefix [0, Len) into a fresh block in index order and
// releases the old one. Moves are plain copies and cannot fail, so a block is never
// observed half transferred.
package alloc
