package arrowprime

import "math"

// IsPrime returns whether n is prime using trial division by 6k±1.
//
// Primality of 0 and 1 is undefined, both are reported as not prime.
func IsPrime(n uint64) bool {
	if n == 0 || n == 1 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// strictly above floor(sqrt(n)) so that the root of a perfect square is tested
	limit := isqrt(n) + 1
	for i := uint64(5); i < limit; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)). The float64 estimate can be off by one
// above 2^52, so it is corrected with integer arithmetic.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}

	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
