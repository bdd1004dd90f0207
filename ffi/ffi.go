//go:build cgo

package ffi

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/cdata"
	"github.com/factset/go-arrowprime"
)

// Import moves the array out of arr and schema, the host structs are left
// released.
func Import(arr *cdata.CArrowArray, schema *cdata.CArrowSchema) (arrow.Array, error) {
	_, ret, err := cdata.ImportCArray(arr, schema)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ImportAddr is Import for hosts that pass the struct addresses as integers.
func ImportAddr(arrayAddr, schemaAddr uintptr) (arrow.Array, error) {
	return Import((*cdata.CArrowArray)(unsafe.Pointer(arrayAddr)), (*cdata.CArrowSchema)(unsafe.Pointer(schemaAddr)))
}

// Export fills out and outSchema with arr. Ownership passes to whoever
// calls the release callback of out.
func Export(arr arrow.Array, out *cdata.CArrowArray, outSchema *cdata.CArrowSchema) {
	cdata.ExportArrowArray(arr, out, outSchema)
}

// A Module is the set of functions a host loads. NewModule is its one time
// initialization step.
type Module struct {
	reg *arrowprime.Registry
}

func NewModule() (*Module, error) {
	reg := arrowprime.NewRegistry()
	if err := arrowprime.RegisterFunctions(reg); err != nil {
		return nil, err
	}
	return &Module{reg: reg}, nil
}

// Functions lists the names the module exposes.
func (m *Module) Functions() []string {
	return m.reg.Names()
}

// IsPrime imports the uint64 column from in, and exports its primality
// mask into out. outSchema describes the mask as arrowprime.IsPrimeField.
func (m *Module) IsPrime(in *cdata.CArrowArray, inSchema *cdata.CArrowSchema, out *cdata.CArrowArray, outSchema *cdata.CArrowSchema) error {
	fn, err := m.reg.Mask(arrowprime.IsPrimeName)
	if err != nil {
		return err
	}

	arr, err := Import(in, inSchema)
	if err != nil {
		return err
	}
	defer arr.Release()

	mask, err := fn(arr)
	if err != nil {
		return err
	}
	defer mask.Release()

	cdata.ExportArrowArray(mask, out, nil)
	ExportField(arrowprime.IsPrimeField, outSchema)
	return nil
}

// AreAllPrimes imports the uint64 column from in and reports whether all
// of its values are prime.
func (m *Module) AreAllPrimes(in *cdata.CArrowArray, inSchema *cdata.CArrowSchema) (bool, error) {
	fn, err := m.reg.Scalar(arrowprime.AreAllPrimesName)
	if err != nil {
		return false, err
	}

	arr, err := Import(in, inSchema)
	if err != nil {
		return false, err
	}
	defer arr.Release()

	return fn(arr)
}
