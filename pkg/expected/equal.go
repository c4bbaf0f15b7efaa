package expected

import "reflect"

// Equal reports whether a and b are in the same state with equal live
// payloads.
func Equal[T, E comparable](a, b Expected[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc compares a and b with eqValue or eqError depending on their
// state. Containers in different states are never equal.
func EqualFunc[T, E any](a, b Expected[T, E],
	eqValue func(x, y T) bool,
	eqError func(x, y E) bool) bool {

	if a.hasError != b.hasError {
		return false
	}
	if a.hasError {
		return eqError(a.err, b.err)
	}
	return eqValue(a.value, b.value)
}

// Equals compares x with an arbitrary operand. It returns ErrNotComparable
// unless other is an Expected[T, E] (or a pointer to one) with the same type
// parameters. Payloads are compared with reflect.DeepEqual.
func (x Expected[T, E]) Equals(other any) (bool, error) {
	var y Expected[T, E]
	switch o := other.(type) {
	case Expected[T, E]:
		y = o
	case *Expected[T, E]:
		if o == nil {
			return false, ErrNotComparable
		}
		y = *o
	default:
		return false, ErrNotComparable
	}
	return EqualFunc(x, y,
		func(a, b T) bool { return reflect.DeepEqual(a, b) },
		func(a, b E) bool { return reflect.DeepEqual(a, b) }), nil
}
