// Package testutil provides testing utilities for minivec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Input
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ints(1000, 100) // values in [0, 100)
//
// # Ownership Accounting
//
// A Ledger hands out Tracked elements and records every Drop and Clone, so tests
// can assert that each element was dropped exactly once and in which order:
//
//	l := testutil.NewLedger()
//	v.Push(l.New(1))
//	v.Free()
//	l.DroppedValues() // [1]
//	l.DoubleDropped() // []
package testutil
