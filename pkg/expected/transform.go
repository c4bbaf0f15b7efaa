package expected

// Transform applies f to the value of x. An error-state x is re-typed
// with its error unchanged and f is not called.
func Transform[T, E, U any](x Expected[T, E], f func(v T) U) Expected[U, E] {
	if x.hasError {
		return FromError[U](x.err)
	}
	return Value[U, E](f(x.value))
}

// TransformError applies f to the error of x. A value-state x is re-typed
// with its value unchanged and f is not called.
func TransformError[T, E, F any](x Expected[T, E], f func(err E) F) Expected[T, F] {
	if !x.hasError {
		return Value[T, F](x.value)
	}
	return FromError[T](f(x.err))
}

// Fold collapses x into a single value using the handler for its state.
func Fold[T, E, Out any](x Expected[T, E],
	onValue func(v T) Out,
	onError func(err E) Out) Out {

	if x.hasError {
		return onError(x.err)
	}
	return onValue(x.value)
}
