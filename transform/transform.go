// SPDX-License-Identifier: MIT

// Package transform provides elementwise scalar functions and a lazy
// transformed-vector wrapper. A Transformed value pairs a read-only vector
// with a function and evaluates it only when an element is read; nothing is
// allocated until the result is assigned into a mutable vector (see
// ops.AddTransformedUpdate and ops.TransformSet) or materialized with ToArray.
package transform

import (
	"math"

	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

// Func maps one element to another.
type Func[E strided.Float] func(E) E

// Transformed is a read-only vector whose elements are fn(v[i]).
type Transformed[E strided.Float] struct {
	v  vector.ConstRef[E]
	fn Func[E]
}

// Vector wraps v lazily with fn.
func Vector[E strided.Float](v vector.ConstRef[E], fn Func[E]) Transformed[E] {
	return Transformed[E]{v: v, fn: fn}
}

// Size returns the number of elements.
func (t Transformed[E]) Size() int { return t.v.Size() }

// Orientation returns the orientation of the wrapped vector.
func (t Transformed[E]) Orientation() vector.Orientation { return t.v.Orientation() }

// Source returns the wrapped vector.
func (t Transformed[E]) Source() vector.ConstRef[E] { return t.v }

// Func returns the transformation.
func (t Transformed[E]) Func() Func[E] { return t.fn }

// At evaluates element i.
func (t Transformed[E]) At(i int) (E, error) {
	x, err := t.v.At(i)
	if err != nil {
		return 0, err
	}

	return t.fn(x), nil
}

// Do calls f with each transformed element until f returns false.
func (t Transformed[E]) Do(f func(i int, x E) bool) {
	t.v.Do(func(i int, x E) bool { return f(i, t.fn(x)) })
}

// ToArray evaluates every element into a new slice.
func (t Transformed[E]) ToArray() []E {
	out := make([]E, t.Size())
	t.Do(func(i int, x E) bool {
		out[i] = x
		return true
	})

	return out
}

// Transpose returns the same transformation over the transposed vector.
func (t Transformed[E]) Transpose() Transformed[E] {
	return Transformed[E]{v: t.v.Transpose(), fn: t.fn}
}

// Square wraps v with x*x.
func Square[E strided.Float](v vector.ConstRef[E]) Transformed[E] { return Vector(v, SquareOf[E]) }

// Sqrt wraps v with the square root.
func Sqrt[E strided.Float](v vector.ConstRef[E]) Transformed[E] { return Vector(v, SquareRoot[E]) }

// Abs wraps v with the absolute value.
func Abs[E strided.Float](v vector.ConstRef[E]) Transformed[E] { return Vector(v, AbsoluteValue[E]) }

// Scale wraps v with s*x.
func Scale[E strided.Float](s E, v vector.ConstRef[E]) Transformed[E] {
	return Vector(v, ScaleFunction(s))
}

// ScaleFunction returns x -> s*x.
func ScaleFunction[E strided.Float](s E) Func[E] {
	return func(x E) E { return s * x }
}

// Named elementwise functions.

func SquareOf[E strided.Float](x E) E      { return x * x }
func SquareRoot[E strided.Float](x E) E    { return E(math.Sqrt(float64(x))) }
func CubicRoot[E strided.Float](x E) E     { return E(math.Cbrt(float64(x))) }
func AbsoluteValue[E strided.Float](x E) E { return E(math.Abs(float64(x))) }
func Floor[E strided.Float](x E) E         { return E(math.Floor(float64(x))) }
func Ceiling[E strided.Float](x E) E       { return E(math.Ceil(float64(x))) }
func Round[E strided.Float](x E) E         { return E(math.Round(float64(x))) }
func Exponent[E strided.Float](x E) E      { return E(math.Exp(float64(x))) }
func Base2Exponent[E strided.Float](x E) E { return E(math.Exp2(float64(x))) }
func NaturalLog[E strided.Float](x E) E    { return E(math.Log(float64(x))) }
func Base2Log[E strided.Float](x E) E      { return E(math.Log2(float64(x))) }
func Base10Log[E strided.Float](x E) E     { return E(math.Log10(float64(x))) }
func Sine[E strided.Float](x E) E          { return E(math.Sin(float64(x))) }
func Cosine[E strided.Float](x E) E        { return E(math.Cos(float64(x))) }
func Tangent[E strided.Float](x E) E       { return E(math.Tan(float64(x))) }
