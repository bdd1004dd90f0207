package arrowprime

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/factset/go-arrowprime/internal/data"
	"github.com/factset/go-arrowprime/internal/log"
)

// IsPrimeField describes the column produced by the mask functions.
var IsPrimeField = arrow.Field{
	Name:     "is_prime",
	Type:     arrow.FixedWidthTypes.Boolean,
	Nullable: false,
}

func checkUint64(dt arrow.DataType) error {
	if dt.ID() != arrow.UINT64 {
		log.Debug().Str("type", dt.String()).Msg("rejecting column")
		return &TypeMismatchError{Expected: arrow.PrimitiveTypes.Uint64, Actual: dt}
	}
	return nil
}

// Uint64Column returns arr as a uint64 array without copying its buffers,
// or a *TypeMismatchError if it holds anything else.
func Uint64Column(arr arrow.Array) (*array.Uint64, error) {
	if err := checkUint64(arr.DataType()); err != nil {
		return nil, err
	}

	col, ok := arr.(*array.Uint64)
	if !ok {
		return nil, &TypeMismatchError{Expected: arrow.PrimitiveTypes.Uint64, Actual: arr.DataType()}
	}
	return col, nil
}

// MaskToArrow converts a mask to an Arrow boolean array with no nulls.
// The caller owns the result and must Release it.
func MaskToArrow(mask []bool) *array.Boolean {
	return data.NewBooleanArray(mask)
}

// IsPrimeArrow evaluates IsPrimeMask over a uint64 Arrow array.
func IsPrimeArrow(arr arrow.Array) (*array.Boolean, error) {
	col, err := Uint64Column(arr)
	if err != nil {
		return nil, err
	}
	return MaskToArrow(IsPrimeMask(col)), nil
}

// AreAllPrimesArrow evaluates AreAllPrimes over a uint64 Arrow array.
func AreAllPrimesArrow(arr arrow.Array) (bool, error) {
	col, err := Uint64Column(arr)
	if err != nil {
		return false, err
	}
	return AreAllPrimes(col), nil
}

// IsPrimeChunked evaluates every chunk of col, the result has the same
// chunk layout. The caller owns the result and must Release it.
func IsPrimeChunked(col *arrow.Chunked) (*arrow.Chunked, error) {
	if err := checkUint64(col.DataType()); err != nil {
		return nil, err
	}

	masks := make([]arrow.Array, 0, len(col.Chunks()))
	defer func() {
		for _, m := range masks {
			m.Release()
		}
	}()

	for _, c := range col.Chunks() {
		vals, err := Uint64Column(c)
		if err != nil {
			return nil, err
		}
		masks = append(masks, MaskToArrow(IsPrimeMask(vals)))
	}

	log.Debug().Int("chunks", len(masks)).Int("rows", col.Len()).Msg("evaluated chunked column")
	return arrow.NewChunked(IsPrimeField.Type, masks), nil
}

// AreAllPrimesChunked evaluates AreAllPrimes over the chunks of col in
// order, stopping at the first chunk holding a non-prime value.
func AreAllPrimesChunked(col *arrow.Chunked) (bool, error) {
	if err := checkUint64(col.DataType()); err != nil {
		return false, err
	}

	for _, c := range col.Chunks() {
		vals, err := Uint64Column(c)
		if err != nil {
			return false, err
		}
		if !AreAllPrimes(vals) {
			return false, nil
		}
	}
	return true, nil
}
