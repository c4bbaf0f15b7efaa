package expected

import "fmt"

// Expected holds either a value of type T or an error of type E.
// The zero Expected is in the value state with the zero T.
type Expected[T, E any] struct {
	value    T
	err      E
	hasError bool
}

// Ok creates a value-state container. Only E needs to be given explicitly;
// T is inferred from v.
func Ok[E, T any](v T) Expected[T, E] {
	return Value[T, E](v)
}

func Value[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{value: v}
}

// FromError creates an error-state container. T must be given explicitly.
func FromError[T, E any](err E) Expected[T, E] {
	return FromUnexpected[T](Unexpect(err))
}

func FromUnexpected[T, E any](u Unexpected[E]) Expected[T, E] {
	return Expected[T, E]{err: u.err, hasError: true}
}

// FromPair adapts the (T, error) convention. A non-nil err wins over v.
func FromPair[T any](v T, err error) Expected[T, error] {
	if err != nil {
		return FromError[T](err)
	}
	return Value[T, error](v)
}

func (x Expected[T, E]) HasValue() bool {
	return !x.hasError
}

func (x Expected[T, E]) HasError() bool {
	return x.hasError
}

// Value returns the stored value, or a *ValueAccessError carrying the
// stored error when x is in the error state.
func (x Expected[T, E]) Value() (T, error) {
	if x.hasError {
		var zero T
		return zero, &ValueAccessError[E]{err: x.err}
	}
	return x.value, nil
}

// Err returns the stored error, or an *ErrorAccessError carrying the
// stored value when x is in the value state.
func (x Expected[T, E]) Err() (E, error) {
	if !x.hasError {
		var zero E
		return zero, &ErrorAccessError[T]{value: x.value}
	}
	return x.err, nil
}

// MustValue is like Value but panics with the *ValueAccessError.
func (x Expected[T, E]) MustValue() T {
	v, err := x.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// MustErr is like Err but panics with the *ErrorAccessError.
func (x Expected[T, E]) MustErr() E {
	e, err := x.Err()
	if err != nil {
		panic(err)
	}
	return e
}

func (x Expected[T, E]) TryValue() (T, bool) {
	return x.value, !x.hasError
}

func (x Expected[T, E]) TryErr() (E, bool) {
	return x.err, x.hasError
}

// Get returns both payload slots and whether the value is the live one.
// The absent slot is its zero value.
func (x Expected[T, E]) Get() (T, E, bool) {
	return x.value, x.err, !x.hasError
}

func (x Expected[T, E]) ValueOr(def T) T {
	if x.hasError {
		return def
	}
	return x.value
}

// ValueOrElse calls orElse with the stored error only in the error state.
func (x Expected[T, E]) ValueOrElse(orElse func(err E) T) T {
	if x.hasError {
		return orElse(x.err)
	}
	return x.value
}

func (x Expected[T, E]) String() string {
	if x.hasError {
		return fmt.Sprintf("Expected(error: %v)", x.err)
	}
	return fmt.Sprintf("Expected(value: %v)", x.value)
}
