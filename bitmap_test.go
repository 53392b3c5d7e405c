package minivec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/minivec/testutil"
)

func TestRemoveIndices(t *testing.T) {
	v := vecOf(10, 11, 12, 13, 14)

	n := v.RemoveIndices(roaring.BitmapOf(1, 3, 99))
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{10, 12, 14}, v.AsSlice())

	assert.Zero(t, v.RemoveIndices(nil))
	assert.Zero(t, v.RemoveIndices(roaring.New()))
	assert.Equal(t, 3, v.Len())

	t.Run("drops removed", func(t *testing.T) {
		l := testutil.NewLedger()
		v := trackedVec(l, 1, 2, 3, 4)

		assert.Equal(t, 2, v.RemoveIndices(roaring.BitmapOf(0, 2)))
		assert.Equal(t, []int{2, 4}, trackedValues(v))
		assert.Equal(t, []int{1, 3}, l.DroppedValues())
	})
}

func TestIndicesFunc(t *testing.T) {
	v := vecOf(10, 11, 12, 13, 14)

	bm := v.IndicesFunc(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []uint32{0, 2, 4}, bm.ToArray())

	v.RemoveIndices(bm)
	assert.Equal(t, []int{11, 13}, v.AsSlice())

	assert.True(t, New[int]().IndicesFunc(func(int) bool { return true }).IsEmpty())
}
