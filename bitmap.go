package minivec

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/minivec/internal/conv"
)

// RemoveIndices removes every element whose index is in indices, in one
// compacting pass over the Vec, and returns how many were removed. Removed
// elements are dropped. Only the first 2^32 positions are addressable.
func (v *Vec[T]) RemoveIndices(indices *roaring.Bitmap) int {
	if indices == nil || indices.IsEmpty() {
		return 0
	}

	before := v.Len()
	i := 0
	v.RetainMut(func(*T) bool {
		idx, err := conv.IntToUint32(i)
		i++
		return err != nil || !indices.Contains(idx)
	})
	return before - v.Len()
}

// IndicesFunc returns the positions of the elements for which match returns true.
func (v *Vec[T]) IndicesFunc(match func(T) bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, x := range v.AsSlice() {
		idx, err := conv.IntToUint32(i)
		if err != nil {
			break
		}
		if match(x) {
			bm.Add(idx)
		}
	}
	return bm
}
