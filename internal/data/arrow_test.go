package data_test

import (
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/factset/go-arrowprime/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64Arrow(t *testing.T) {
	values := []uint64{0, 1, 2, 97, math.MaxUint64}

	arr, err := data.NewUint64Array(arrow.Uint64Traits.CastToBytes(values), false)
	require.NoError(t, err)
	defer arr.Release()

	assert.IsType(t, arrow.PrimitiveTypes.Uint64, arr.DataType())
	assert.Equal(t, len(values), arr.Len())
	assert.Zero(t, arr.NullN())
	assert.Equal(t, values, arr.Uint64Values())
}

func TestOptionalUint64Arrow(t *testing.T) {
	for _, N := range []int{8, 15} {
		values := make([]uint64, N)
		bytemap := make([]byte, N)
		for i := range values {
			values[i] = uint64(i * 3)
			bytemap[i] = byte(i % 2)
		}

		arr, err := data.NewUint64Array(append(bytemap, arrow.Uint64Traits.CastToBytes(values)...), true)
		require.NoError(t, err)

		assert.Equal(t, N, arr.Len())
		assert.EqualValues(t, math.Ceil(float64(N)/2), arr.NullN())
		for i := 0; i < N; i++ {
			assert.Exactly(t, i%2 == 0, arr.IsNull(i))
			if i%2 == 1 {
				assert.EqualValues(t, i*3, arr.Value(i))
			}
		}
		arr.Release()
	}
}

func TestEmptyUint64Arrow(t *testing.T) {
	for _, nullable := range []bool{true, false} {
		arr, err := data.NewUint64Array(nil, nullable)
		require.NoError(t, err)
		assert.Zero(t, arr.Len())
		arr.Release()
	}
}

func TestUint64ArrowInvalidLength(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		nullable bool
	}{
		{"required short", make([]byte, 7), false},
		{"required extra", make([]byte, 17), false},
		{"optional missing bytemap", make([]byte, 16), true},
		{"optional short", make([]byte, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := data.NewUint64Array(tt.raw, tt.nullable)
			assert.ErrorIs(t, err, data.ErrInvalidBufferLength)
			assert.Nil(t, arr)
		})
	}
}

func TestBoolsToBits(t *testing.T) {
	assert.Empty(t, data.BoolsToBits(nil))
	assert.Equal(t, []byte{0xaa}, data.BoolsToBits([]bool{false, true, false, true, false, true, false, true}))
	// 0x05 is 00000101 so only the first and third slots of the second byte are set
	assert.Equal(t, []byte{0x00, 0x05}, data.BoolsToBits([]bool{false, false, false, false, false, false, false, false, true, false, true}))
}

func TestBooleanArrow(t *testing.T) {
	const N = 15
	mask := make([]bool, N)
	for i := range mask {
		mask[i] = i%3 == 0
	}

	arr := data.NewBooleanArray(mask)
	defer arr.Release()

	assert.IsType(t, arrow.FixedWidthTypes.Boolean, arr.DataType())
	assert.Equal(t, N, arr.Len())
	assert.Zero(t, arr.NullN())
	for i := 0; i < N; i++ {
		assert.True(t, arr.IsValid(i))
		assert.Exactly(t, i%3 == 0, arr.Value(i))
	}
}
