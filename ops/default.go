// SPDX-License-Identifier: MIT

package ops

import (
	"context"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/transform"
	"github.com/katalvlaran/linalg/vector"
)

// The functions below run on Default[E](); each Engine method of the same
// name documents the full semantics.

// AddScalarUpdate sets v[i] += s on the default engine.
func AddScalarUpdate[E Float](s E, v vector.Ref[E]) { Default[E]().AddScalarUpdate(s, v) }

// AddUpdate sets b += a on the default engine.
func AddUpdate[E Float](a vector.ConstRef[E], b vector.Ref[E]) error {
	return Default[E]().AddUpdate(a, b)
}

// AddScalarSet sets out = a + s on the default engine.
func AddScalarSet[E Float](s E, a vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().AddScalarSet(s, a, out)
}

// AddSet sets out = a + b on the default engine.
func AddSet[E Float](a, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().AddSet(a, b, out)
}

// SubtractScalarUpdate sets v[i] -= s on the default engine.
func SubtractScalarUpdate[E Float](s E, v vector.Ref[E]) { Default[E]().SubtractScalarUpdate(s, v) }

// SubtractUpdate sets b -= a on the default engine.
func SubtractUpdate[E Float](a vector.ConstRef[E], b vector.Ref[E]) error {
	return Default[E]().SubtractUpdate(a, b)
}

// ScaleUpdate sets v = s·v on the default engine.
func ScaleUpdate[E Float](s E, v vector.Ref[E]) { Default[E]().ScaleUpdate(s, v) }

// ScaleSet sets out = s·a on the default engine.
func ScaleSet[E Float](s E, a vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().ScaleSet(s, a, out)
}

// DivideScalarUpdate sets v = v/s on the default engine.
func DivideScalarUpdate[E Float](s E, v vector.Ref[E]) error {
	return Default[E]().DivideScalarUpdate(s, v)
}

// ElementwiseMultiplySet sets out[i] = a[i]·b[i] on the default engine.
func ElementwiseMultiplySet[E Float](a, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().ElementwiseMultiplySet(a, b, out)
}

// ScaleAddUpdate sets b = sA·a + sB·b on the default engine.
func ScaleAddUpdate[E Float](sA E, a vector.ConstRef[E], sB E, b vector.Ref[E]) error {
	return Default[E]().ScaleAddUpdate(sA, a, sB, b)
}

// ScaleAddUpdateOne sets b = sA·a + b on the default engine.
func ScaleAddUpdateOne[E Float](sA E, a vector.ConstRef[E], b vector.Ref[E]) error {
	return Default[E]().ScaleAddUpdateOne(sA, a, b)
}

// OneAddUpdate sets b = a + sB·b on the default engine.
func OneAddUpdate[E Float](a vector.ConstRef[E], sB E, b vector.Ref[E]) error {
	return Default[E]().OneAddUpdate(a, sB, b)
}

// OnesScaleAddUpdate sets b[i] = sA + sB·b[i] on the default engine.
func OnesScaleAddUpdate[E Float](sA, sB E, b vector.Ref[E]) {
	Default[E]().OnesScaleAddUpdate(sA, sB, b)
}

// ScaleAddSet sets out = sA·a + sB·b on the default engine.
func ScaleAddSet[E Float](sA E, a vector.ConstRef[E], sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().ScaleAddSet(sA, a, sB, b, out)
}

// ScaleAddSetOne sets out = sA·a + b on the default engine.
func ScaleAddSetOne[E Float](sA E, a, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().ScaleAddSetOne(sA, a, b, out)
}

// OneAddSet sets out = a + sB·b on the default engine.
func OneAddSet[E Float](a vector.ConstRef[E], sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().OneAddSet(a, sB, b, out)
}

// OnesScaleAddSet sets out[i] = sA + sB·b[i] on the default engine.
func OnesScaleAddSet[E Float](sA, sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().OnesScaleAddSet(sA, sB, b, out)
}

// Dot returns the inner product u·v on the default engine.
func Dot[E Float](u, v vector.ConstRef[E]) (E, error) { return Default[E]().Dot(u, v) }

// OuterProduct sets A = x·y on the default engine.
func OuterProduct[E Float](x, y vector.ConstRef[E], a matrix.Ref[E]) error {
	return Default[E]().OuterProduct(x, y, a)
}

// OuterProductAddUpdate sets A = s·x·y + A on the default engine.
func OuterProductAddUpdate[E Float](s E, x, y vector.ConstRef[E], a matrix.Ref[E]) error {
	return Default[E]().OuterProductAddUpdate(s, x, y, a)
}

// CumulativeSumUpdate replaces v with its running sums on the default engine.
func CumulativeSumUpdate[E Float](v vector.Ref[E]) { Default[E]().CumulativeSumUpdate(v) }

// ConsecutiveDifferenceUpdate replaces v[i] with v[i] - v[i-1] on the default engine.
func ConsecutiveDifferenceUpdate[E Float](v vector.Ref[E]) {
	Default[E]().ConsecutiveDifferenceUpdate(v)
}

// AddTransformedUpdate adds the materialized transform t to b on the default engine.
func AddTransformedUpdate[E Float](t transform.Transformed[E], b vector.Ref[E]) error {
	return Default[E]().AddTransformedUpdate(t, b)
}

// TransformUpdate sets v[i] = fn(v[i]) on the default engine.
func TransformUpdate[E Float](fn transform.Func[E], v vector.Ref[E]) {
	Default[E]().TransformUpdate(fn, v)
}

// TransformSet sets out[i] = fn(a[i]) on the default engine.
func TransformSet[E Float](fn transform.Func[E], a vector.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().TransformSet(fn, a, out)
}

// MultiplyScaleAddUpdate sets y = s·A·x + t·y (or its row form) on the default engine.
func MultiplyScaleAddUpdate[E Float](s E, a matrix.ConstRef[E], x vector.ConstRef[E], t E, y vector.Ref[E]) error {
	return Default[E]().MultiplyScaleAddUpdate(s, a, x, t, y)
}

// MatrixMultiplyScaleAddUpdate sets C = s·A·B + t·C on the default engine.
func MatrixMultiplyScaleAddUpdate[E Float](s E, a, b matrix.ConstRef[E], t E, c matrix.Ref[E]) error {
	return Default[E]().MatrixMultiplyScaleAddUpdate(s, a, b, t, c)
}

// MatrixScaleUpdate sets M = s·M on the default engine.
func MatrixScaleUpdate[E Float](s E, m matrix.Ref[E]) { Default[E]().MatrixScaleUpdate(s, m) }

// MatrixScaleAddUpdate sets B = sA·A + sB·B on the default engine.
func MatrixScaleAddUpdate[E Float](sA E, a matrix.ConstRef[E], sB E, b matrix.Ref[E]) error {
	return Default[E]().MatrixScaleAddUpdate(sA, a, sB, b)
}

// RowwiseSum writes the row sums of A into out on the default engine.
func RowwiseSum[E Float](a matrix.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().RowwiseSum(a, out)
}

// ColumnwiseSum writes the column sums of A into out on the default engine.
func ColumnwiseSum[E Float](a matrix.ConstRef[E], out vector.Ref[E]) error {
	return Default[E]().ColumnwiseSum(a, out)
}

// ParallelTransformUpdate applies fn to every element of M in parallel on the default engine.
func ParallelTransformUpdate[E Float](ctx context.Context, fn func(E) E, m matrix.Ref[E]) error {
	return Default[E]().ParallelTransformUpdate(ctx, fn, m)
}
