package arrowprime

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// NullableUint64s is a fixed length column of unsigned 64-bit integers in
// which any slot may be null. *array.Uint64 satisfies it directly, so Arrow
// data is evaluated in place.
type NullableUint64s interface {
	Len() int
	IsNull(i int) bool
	Value(i int) uint64
}

// Values is a slice backed NullableUint64s, a nil entry marks a null slot.
type Values []*uint64

func (v Values) Len() int { return len(v) }

func (v Values) IsNull(i int) bool { return v[i] == nil }

func (v Values) Value(i int) uint64 {
	if v[i] == nil {
		return 0
	}
	return *v[i]
}

// Uint64s builds Values with no null slots.
func Uint64s(vals ...uint64) Values {
	ret := make(Values, len(vals))
	for i := range vals {
		ret[i] = &vals[i]
	}
	return ret
}

// IsPrimeMask returns the primality of every slot in order. Null slots are
// never prime, so the mask itself has no nulls.
func IsPrimeMask(values NullableUint64s) []bool {
	mask := make([]bool, values.Len())
	fillMask(values, mask, 0)
	return mask
}

// fillMask writes the primality of values[offset:offset+len(mask)] into mask.
func fillMask(values NullableUint64s, mask []bool, offset int) {
	for i := range mask {
		if values.IsNull(offset + i) {
			mask[i] = false
			continue
		}
		mask[i] = IsPrime(values.Value(offset + i))
	}
}

// AreAllPrimes reports whether every non-null value is prime, stopping at
// the first one that isn't. Null slots are skipped rather than counted as
// non-prime, so an empty or all-null column is vacuously all primes.
func AreAllPrimes(values NullableUint64s) bool {
	return allPrimes(values, 0, values.Len())
}

func allPrimes(values NullableUint64s, start, end int) bool {
	for i := start; i < end; i++ {
		if values.IsNull(i) {
			continue
		}
		if !IsPrime(values.Value(i)) {
			return false
		}
	}
	return true
}

// PrimePositions returns the indexes of the slots holding a prime, which is
// the mask from IsPrimeMask in selection vector form.
func PrimePositions(values NullableUint64s) *roaring64.Bitmap {
	ret := roaring64.New()
	addPrimePositions(ret, values, 0, values.Len())
	return ret
}

func addPrimePositions(bm *roaring64.Bitmap, values NullableUint64s, start, end int) {
	for i := start; i < end; i++ {
		if !values.IsNull(i) && IsPrime(values.Value(i)) {
			bm.Add(uint64(i))
		}
	}
}
