// Package expected provides Expected[T, E], a container that holds either a
// value of type T or an error of type E, never both.
//
// The outcome of an operation becomes an ordinary value the caller inspects
// instead of a control-flow jump.
//
// Highlights:
// - Ok/Value/FromError/FromUnexpected/FromPair: construct a container
// - HasValue/HasError/Get: inspect the discriminant
// - Value/Err/MustValue/MustErr: access a payload, failing on the absent variant
// - TryValue/TryErr/ValueOr/ValueOrElse: access a payload without failing
// - Transform/TransformError: map one side, re-typing the container
// - Fold: reduce a container to a single value
// - Equal/EqualFunc/Equals: structural equality
package expected
