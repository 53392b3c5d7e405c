// Package layout computes allocation layouts for header-prefixed element buffers.
//
// Every buffer is described by a Layout: the header region is rounded up to the
// buffer alignment so that the element region that follows it always starts on an
// aligned address, independent of the header size.
//
//	┌──────────────────────────┬──────────────────────────────────────┐
//	│ Header {Len, Cap} + pad  │ Cap × elemSize elements + pad        │
//	│ AlignTo(HeaderSize, a)   │ AlignTo(Cap × elemSize, a)           │
//	└──────────────────────────┴──────────────────────────────────────┘
//
// All functions are pure arithmetic. Overflow is reported as ErrOverflow and never
// wraps silently.
package layout
