package arrowprime_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/factset/go-arrowprime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUint64(t *testing.T, mem memory.Allocator, vals []uint64, valid []bool) *array.Uint64 {
	t.Helper()

	bldr := array.NewUint64Builder(mem)
	defer bldr.Release()

	bldr.AppendValues(vals, valid)
	return bldr.NewUint64Array()
}

func TestUint64Column(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := buildUint64(t, mem, []uint64{4, 0, 7}, []bool{true, false, true})
	defer arr.Release()

	col, err := arrowprime.Uint64Column(arr)
	require.NoError(t, err)
	assert.Same(t, arr, col)
	assert.Equal(t, []bool{false, false, true}, arrowprime.IsPrimeMask(col))
}

func TestUint64ColumnTypeMismatch(t *testing.T) {
	bldr := array.NewInt64Builder(memory.DefaultAllocator)
	defer bldr.Release()

	bldr.AppendValues([]int64{2, 3}, nil)
	arr := bldr.NewInt64Array()
	defer arr.Release()

	col, err := arrowprime.Uint64Column(arr)
	assert.Nil(t, col)

	var mismatch *arrowprime.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, arrow.UINT64, mismatch.Expected.ID())
	assert.Equal(t, arrow.INT64, mismatch.Actual.ID())
	assert.EqualError(t, err, "array type must be uint64, got int64")

	_, err = arrowprime.IsPrimeArrow(arr)
	assert.ErrorAs(t, err, &mismatch)

	ok, err := arrowprime.AreAllPrimesArrow(arr)
	assert.ErrorAs(t, err, &mismatch)
	assert.False(t, ok)
}

func TestIsPrimeArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := buildUint64(t, mem, []uint64{4, 0, 7, 25, 97}, []bool{true, false, true, true, true})
	defer arr.Release()

	mask, err := arrowprime.IsPrimeArrow(arr)
	require.NoError(t, err)
	defer mask.Release()

	assert.True(t, arrow.TypeEqual(arrowprime.IsPrimeField.Type, mask.DataType()))
	assert.Equal(t, arr.Len(), mask.Len())
	assert.Zero(t, mask.NullN())

	expected := []bool{false, false, true, false, true}
	for i, e := range expected {
		assert.Equal(t, e, mask.Value(i), "slot %d", i)
	}
}

func TestAreAllPrimesArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	tests := []struct {
		name     string
		vals     []uint64
		valid    []bool
		expected bool
	}{
		{"empty", nil, nil, true},
		{"all null", []uint64{0, 0}, []bool{false, false}, true},
		{"primes with nulls", []uint64{2, 4, 11}, []bool{true, false, true}, true},
		{"composite", []uint64{4, 7}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr := buildUint64(t, mem, tt.vals, tt.valid)
			defer arr.Release()

			ok, err := arrowprime.AreAllPrimesArrow(arr)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestMaskToArrow(t *testing.T) {
	mask := arrowprime.MaskToArrow([]bool{})
	defer mask.Release()
	assert.Zero(t, mask.Len())

	mask2 := arrowprime.MaskToArrow([]bool{true, false, true})
	defer mask2.Release()
	assert.Equal(t, 3, mask2.Len())
	assert.True(t, mask2.Value(0))
	assert.False(t, mask2.Value(1))
	assert.True(t, mask2.Value(2))
}

func TestIsPrimeChunked(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	c1 := buildUint64(t, mem, []uint64{2, 4, 5}, nil)
	c2 := buildUint64(t, mem, []uint64{0, 9}, []bool{false, true})
	c3 := buildUint64(t, mem, []uint64{}, nil)
	col := arrow.NewChunked(arrow.PrimitiveTypes.Uint64, []arrow.Array{c1, c2, c3})
	c1.Release()
	c2.Release()
	c3.Release()
	defer col.Release()

	out, err := arrowprime.IsPrimeChunked(col)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, col.Len(), out.Len())
	require.Len(t, out.Chunks(), 3)

	var got []bool
	for i, c := range out.Chunks() {
		assert.Equal(t, col.Chunk(i).Len(), c.Len())
		b := c.(*array.Boolean)
		for j := 0; j < b.Len(); j++ {
			got = append(got, b.Value(j))
		}
	}
	assert.Equal(t, []bool{true, false, true, false, false}, got)

	ok, err := arrowprime.AreAllPrimesChunked(col)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAreAllPrimesChunked(t *testing.T) {
	c1 := buildUint64(t, memory.DefaultAllocator, []uint64{2, 3}, nil)
	c2 := buildUint64(t, memory.DefaultAllocator, []uint64{0, 13}, []bool{false, true})
	col := arrow.NewChunked(arrow.PrimitiveTypes.Uint64, []arrow.Array{c1, c2})
	c1.Release()
	c2.Release()
	defer col.Release()

	ok, err := arrowprime.AreAllPrimesChunked(col)
	assert.NoError(t, err)
	assert.True(t, ok)

	empty := arrow.NewChunked(arrow.PrimitiveTypes.Uint64, nil)
	defer empty.Release()
	ok, err = arrowprime.AreAllPrimesChunked(empty)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestChunkedTypeMismatch(t *testing.T) {
	col := arrow.NewChunked(arrow.BinaryTypes.String, nil)
	defer col.Release()

	var mismatch *arrowprime.TypeMismatchError
	_, err := arrowprime.IsPrimeChunked(col)
	assert.ErrorAs(t, err, &mismatch)

	_, err = arrowprime.AreAllPrimesChunked(col)
	assert.ErrorAs(t, err, &mismatch)
}
