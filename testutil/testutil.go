package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num pseudo-random numbers in [0,n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(num, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// Ledger records drops and clones of Tracked elements.
type Ledger struct {
	mu          sync.Mutex
	next        int
	drops       map[int]int
	dropped     []int
	clones      int
	panicOnNext int // clone number that panics, 0 disables
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{drops: make(map[int]int)}
}

// Tracked is an element whose Drop and Clone are recorded in its Ledger.
// Every Tracked carries a unique serial; clones receive a fresh one.
type Tracked struct {
	Value  int
	serial int
	ledger *Ledger
}

// New returns a Tracked element holding value.
func (l *Ledger) New(value int) Tracked {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	return Tracked{Value: value, serial: l.next, ledger: l}
}

// NewSlice returns Tracked elements holding values, in order.
func (l *Ledger) NewSlice(values ...int) []Tracked {
	out := make([]Tracked, len(values))
	for i, v := range values {
		out[i] = l.New(v)
	}
	return out
}

// PanicOnClone makes the n-th subsequent Clone panic. n <= 0 disables it.
func (l *Ledger) PanicOnClone(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		l.panicOnNext = 0
		return
	}
	l.panicOnNext = l.clones + n
}

// Drop records the drop of t.
func (t *Tracked) Drop() {
	if t.ledger == nil {
		return
	}
	l := t.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drops[t.serial]++
	l.dropped = append(l.dropped, t.Value)
}

// Clone returns a copy of t with a fresh serial.
func (t *Tracked) Clone() Tracked {
	if t.ledger == nil {
		return Tracked{Value: t.Value}
	}
	l := t.ledger
	l.mu.Lock()
	l.clones++
	if l.panicOnNext != 0 && l.clones == l.panicOnNext {
		l.mu.Unlock()
		panic("testutil: clone failure")
	}
	l.next++
	c := Tracked{Value: t.Value, serial: l.next, ledger: l}
	l.mu.Unlock()
	return c
}

// DroppedValues returns the values of dropped elements in drop order.
func (l *Ledger) DroppedValues() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.dropped...)
}

// Drops returns the total number of drops.
func (l *Ledger) Drops() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.dropped)
}

// Clones returns the total number of clones attempted.
func (l *Ledger) Clones() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clones
}

// Live returns the number of elements created but not yet dropped.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next - len(l.drops)
}

// DoubleDropped returns the serials of elements dropped more than once.
func (l *Ledger) DoubleDropped() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []int{}
	for serial, n := range l.drops {
		if n > 1 {
			out = append(out, serial)
		}
	}
	return out
}

// Values extracts the values of ts.
func Values(ts []Tracked) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.Value
	}
	return out
}
