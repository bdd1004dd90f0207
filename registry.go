package arrowprime

import (
	"fmt"
	"sort"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/factset/go-arrowprime/internal/log"
)

// Names of the functions installed by RegisterFunctions.
const (
	IsPrimeName      = "is_prime"
	AreAllPrimesName = "are_all_primes"
)

// A MaskKernel evaluates a column to one boolean per slot.
type MaskKernel func(arrow.Array) (*array.Boolean, error)

// A ScalarKernel evaluates a column to a single boolean.
type ScalarKernel func(arrow.Array) (bool, error)

// A Registry holds the functions a host exposes by name. There is no
// package level registry, whatever embeds this package creates one at
// startup and installs the functions with RegisterFunctions.
type Registry struct {
	mu     sync.RWMutex
	mask   map[string]MaskKernel
	scalar map[string]ScalarKernel
}

func NewRegistry() *Registry {
	return &Registry{
		mask:   make(map[string]MaskKernel),
		scalar: make(map[string]ScalarKernel),
	}
}

func (r *Registry) registered(name string) bool {
	_, isMask := r.mask[name]
	_, isScalar := r.scalar[name]
	return isMask || isScalar
}

func (r *Registry) RegisterMask(name string, fn MaskKernel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registered(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	r.mask[name] = fn
	return nil
}

func (r *Registry) RegisterScalar(name string, fn ScalarKernel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registered(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	r.scalar[name] = fn
	return nil
}

// Mask returns the mask function registered under name.
func (r *Registry) Mask(name string) (MaskKernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.mask[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Scalar returns the scalar function registered under name.
func (r *Registry) Scalar(name string) (ScalarKernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.scalar[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Names lists every registered function in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mask)+len(r.scalar))
	for n := range r.mask {
		names = append(names, n)
	}
	for n := range r.scalar {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RegisterFunctions installs is_prime and are_all_primes into r.
func RegisterFunctions(r *Registry) error {
	if err := r.RegisterMask(IsPrimeName, IsPrimeArrow); err != nil {
		return err
	}
	if err := r.RegisterScalar(AreAllPrimesName, AreAllPrimesArrow); err != nil {
		return err
	}

	log.Debug().Strs("functions", []string{IsPrimeName, AreAllPrimesName}).Msg("registered functions")
	return nil
}
