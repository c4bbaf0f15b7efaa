package expected

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors produced by this package.
var Error = errs.Class("expected")

var (
	// ErrBadAccess is the cause of every ValueAccessError and ErrorAccessError.
	ErrBadAccess = Error.New("bad variant access")
	// ErrNotComparable is returned by Equals for operands of a different type.
	ErrNotComparable = Error.New("not comparable")
)

// ValueAccessError is returned when the value of an error-state container
// is requested. It carries the stored error.
type ValueAccessError[E any] struct {
	err E
}

func (e *ValueAccessError[E]) Payload() E {
	return e.err
}

func (e *ValueAccessError[E]) Error() string {
	return fmt.Sprintf("expected: value accessed on error state: %v", e.err)
}

func (e *ValueAccessError[E]) Unwrap() error {
	return ErrBadAccess
}

// ErrorAccessError is returned when the error of a value-state container
// is requested. It carries the stored value.
type ErrorAccessError[T any] struct {
	value T
}

func (e *ErrorAccessError[T]) Payload() T {
	return e.value
}

func (e *ErrorAccessError[T]) Error() string {
	return fmt.Sprintf("expected: error accessed on value state: %v", e.value)
}

func (e *ErrorAccessError[T]) Unwrap() error {
	return ErrBadAccess
}
