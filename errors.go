package arrowprime

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	// ErrDuplicateFunction is returned when a name is registered twice.
	ErrDuplicateFunction = errors.New("function already registered")
	// ErrUnknownFunction is returned when looking up a name nobody registered.
	ErrUnknownFunction = errors.New("unknown function")
)

// TypeMismatchError is returned when a column handed over by a caller does
// not hold the type a function evaluates.
type TypeMismatchError struct {
	Expected arrow.DataType
	Actual   arrow.DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("array type must be %s, got %s", e.Expected, e.Actual)
}
