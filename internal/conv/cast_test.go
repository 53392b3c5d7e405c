//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestIntToUintptr(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUintptr(123)
		assert.NoError(t, err)
		assert.Equal(t, uintptr(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUintptr(-1)
		assert.ErrorContains(t, err, "integer overflow")
	})
}

func TestUintptrToInt(t *testing.T) {
	t.Run("valid max int", func(t *testing.T) {
		got, err := UintptrToInt(uintptr(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintptrToInt(uintptr(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}

func TestMulUintptr(t *testing.T) {
	got, err := MulUintptr(1024, 8)
	assert.NoError(t, err)
	assert.Equal(t, uintptr(8192), got)

	got, err = MulUintptr(0, math.MaxUint64)
	assert.NoError(t, err)
	assert.Equal(t, uintptr(0), got)

	_, err = MulUintptr(math.MaxUint64/2+1, 2)
	assert.Error(t, err)
}

func TestAddUintptr(t *testing.T) {
	got, err := AddUintptr(16, 48)
	assert.NoError(t, err)
	assert.Equal(t, uintptr(64), got)

	_, err = AddUintptr(math.MaxUint64, 1)
	assert.Error(t, err)
}
