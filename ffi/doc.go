// Package ffi exposes the primality functions to a host runtime through
// the Arrow C data interface.
//
// A host exports its column with the C data interface (pyarrow does this
// with Array._export_to_c), hands the two struct addresses over, and gets
// the result back the same way. Column buffers are never copied.
//
//	m, err := ffi.NewModule()
//	if err != nil {
//		return err
//	}
//
//	err = m.IsPrime(in, inSchema, out, outSchema)
//
// The package requires cgo.
package ffi
