package minivec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minivec/testutil"
)

func TestIntoIter(t *testing.T) {
	t.Run("double ended", func(t *testing.T) {
		v := vecOf(1, 2, 3, 4, 5)
		it := v.IntoIter()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.Equal(t, 5, it.Len())

		var got []int
		for {
			x, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, x)
			if y, ok := it.NextBack(); ok {
				got = append(got, y)
			}
		}
		assert.Equal(t, []int{1, 5, 2, 4, 3}, got)
		assert.Equal(t, 0, it.Len())

		_, ok := it.NextBack()
		assert.False(t, ok)
		it.Close()
		it.Close()
	})

	t.Run("as slice", func(t *testing.T) {
		it := vecOf(1, 2, 3, 4).IntoIter()
		_, _ = it.Next()
		_, _ = it.NextBack()
		assert.Equal(t, []int{2, 3}, it.AsSlice())
	})

	t.Run("range loop", func(t *testing.T) {
		it := vecOf("a", "b", "c").IntoIter()
		var got []string
		for x := range it.All() {
			got = append(got, x)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Nil(t, it.AsSlice())
	})

	t.Run("empty", func(t *testing.T) {
		it := New[int]().IntoIter()
		_, ok := it.Next()
		assert.False(t, ok)
		assert.Nil(t, it.AsSlice())
		assert.Equal(t, 0, it.Clone().Len())
		it.Close()
	})

	t.Run("source reusable", func(t *testing.T) {
		v, err := WithAlignment[int](4, 64)
		require.NoError(t, err)
		v.Append(1, 2)

		it := v.IntoIter()
		defer it.Close()

		v.Push(3)
		assert.Equal(t, []int{3}, v.AsSlice())
		assert.Zero(t, addrOf(v)%64)
		assert.Equal(t, []int{1, 2}, it.AsSlice())
	})
}

func TestIntoIterClone(t *testing.T) {
	v, err := WithAlignment[int32](8, 128)
	require.NoError(t, err)
	v.Append(1, 2, 3, 4, 5)

	it := v.IntoIter()
	_, _ = it.Next()
	_, _ = it.Next()

	c := it.Clone()
	assert.Equal(t, []int32{3, 4, 5}, c.AsSlice())
	assert.Zero(t, uintptr(unsafe.Pointer(&c.AsSlice()[0]))%128)

	x, _ := c.Next()
	assert.Equal(t, int32(3), x)
	assert.Equal(t, []int32{3, 4, 5}, it.AsSlice())
	assert.Equal(t, []int32{4, 5}, c.AsSlice())

	t.Run("clones elements", func(t *testing.T) {
		l := testutil.NewLedger()
		it := trackedVec(l, 1, 2, 3).IntoIter()
		_, _ = it.NextBack()

		c := it.Clone()
		assert.Equal(t, 2, l.Clones())
		assert.Equal(t, []int{1, 2}, testutil.Values(c.AsSlice()))

		c.Close()
		it.Close()
		assert.Equal(t, []int{1, 2, 1, 2}, l.DroppedValues())
		assert.Empty(t, l.DoubleDropped())
	})
}

func TestIntoIterDrops(t *testing.T) {
	l := testutil.NewLedger()
	it := trackedVec(l, 1, 2, 3, 4, 5).IntoIter()

	x, _ := it.Next()
	y, _ := it.NextBack()
	assert.Equal(t, 0, l.Drops())

	it.Close()
	assert.Equal(t, []int{2, 3, 4}, l.DroppedValues())

	x.Drop()
	y.Drop()
	assert.Equal(t, 0, l.Live())
	assert.Empty(t, l.DoubleDropped())
}
