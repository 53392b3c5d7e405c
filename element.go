package minivec

// Dropper is implemented by elements that release resources when the container
// discards them. Drop is called exactly once per discarded element, through a
// pointer to the slot, before the slot is reset to the zero value.
//
// Elements moved out to the caller (Pop, Remove, adapter yields) are not dropped.
type Dropper interface {
	Drop()
}

// Cloner is implemented by elements that need a deep copy whenever the container
// duplicates a value (Resize, Repeat, ExtendFromSlice, IntoIter.Clone). Elements
// without it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

func drop[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero
}

// dropAll drops s in index order.
func dropAll[T any](s []T) {
	for i := range s {
		drop(&s[i])
	}
}

// take moves the value out of p and leaves the zero value behind.
func take[T any](p *T) T {
	x := *p
	var zero T
	*p = zero
	return x
}

func cloneOf[T any](p *T) T {
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p
}
