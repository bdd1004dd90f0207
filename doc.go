// Package arrowprime computes the primality of columns of unsigned 64-bit
// integers, typically Arrow uint64 arrays handed over by another runtime.
//
// Two operations are provided. IsPrimeMask returns one boolean per slot,
// with null slots reported as not prime. AreAllPrimes returns whether every
// non-null value is prime and stops at the first one that is not.
//
//	arr := bldr.NewUint64Array() // *array.Uint64 from arrow-go
//	mask := arrowprime.IsPrimeMask(arr)
//
//	ok, err := arrowprime.AreAllPrimesArrow(column)
//	if err != nil {
//		// column was not uint64
//	}
//
// Hosts that load the functions by name create a Registry and install them
// with RegisterFunctions, the ffi subpackage does this for the Arrow C data
// interface.
package arrowprime
