package data

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/bitutil"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

const uint64Width = 8

var ErrInvalidBufferLength = errors.New("buffer length is not a whole number of slots")

func nullBytesToBits(bytemap []byte) []byte {
	ret := make([]byte, bitutil.BytesForBits(int64(len(bytemap))))
	for idx, b := range bytemap {
		if b != 0 {
			bitutil.SetBit(ret, idx)
		}
	}
	return ret
}

// BoolsToBits packs a mask into an Arrow bitmap, least significant bit first.
func BoolsToBits(mask []bool) []byte {
	ret := make([]byte, bitutil.BytesForBits(int64(len(mask))))
	for idx, b := range mask {
		if b {
			bitutil.SetBit(ret, idx)
		}
	}
	return ret
}

// NewBooleanArray wraps a mask as an Arrow boolean array with no validity
// buffer, every slot holds a definite value.
func NewBooleanArray(mask []bool) *array.Boolean {
	buffers := []*memory.Buffer{nil, memory.NewBufferBytes(BoolsToBits(mask))}

	data := array.NewData(arrow.FixedWidthTypes.Boolean, len(mask), buffers, nil, 0, 0)
	defer data.Release()
	return array.NewBooleanData(data)
}

// NewUint64Array reads a Drill UINT8 value vector as an Arrow uint64 array.
//
// A nullable vector is the null bytemap followed by the little-endian
// values, a required one only has the values. The slot count is derived
// from the length of rawData.
func NewUint64Array(rawData []byte, nullable bool) (*array.Uint64, error) {
	width := uint64Width
	if nullable {
		width++
	}
	if len(rawData)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %d byte slots", ErrInvalidBufferLength, len(rawData), width)
	}

	count := len(rawData) / width
	remaining := rawData
	buffers := make([]*memory.Buffer, 2)
	nullCount := 0
	if nullable {
		nulls := nullByteMap{rawData[:count]}
		buffers[0] = memory.NewBufferBytes(nullBytesToBits(nulls.GetNullBytemap()))
		nullCount = nulls.NullN()
		remaining = rawData[count:]

		// the values follow the bytemap so they are only 8 byte aligned
		// when the count is
		if count%uint64Width != 0 {
			remaining = append(make([]byte, 0, len(remaining)), remaining...)
		}
	}
	buffers[1] = memory.NewBufferBytes(remaining)

	data := array.NewData(arrow.PrimitiveTypes.Uint64, count, buffers, nil, nullCount, 0)
	defer data.Release()
	return array.NewUint64Data(data), nil
}
