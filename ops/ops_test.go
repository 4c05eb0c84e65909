// SPDX-License-Identifier: MIT

package ops_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/ops"
	"github.com/katalvlaran/linalg/transform"
	"github.com/katalvlaran/linalg/vector"
)

const tol = 1e-12

func engines() map[string]*ops.Engine[float64] {
	return map[string]*ops.Engine[float64]{
		"native":    ops.New[float64](ops.WithNative()),
		"optimized": ops.New[float64](ops.WithOptimized()),
	}
}

func col(xs ...float64) *vector.Vector[float64] { return vector.ColumnFrom(xs...) }
func row(xs ...float64) *vector.Vector[float64] { return vector.RowFrom(xs...) }

// stridedCol returns a column reference over every other element of a fresh buffer.
func stridedCol(t *testing.T, xs ...float64) vector.Ref[float64] {
	t.Helper()
	data := make([]float64, 2*len(xs))
	for i, x := range xs {
		data[2*i] = x
		data[2*i+1] = -999
	}
	r, err := vector.NewRef(data, 0, len(xs), 2, vector.Column)
	require.NoError(t, err)

	return r
}

func assertVec(t *testing.T, want []float64, got vector.ConstRef[float64], msgAndArgs ...any) {
	t.Helper()
	arr := got.ToArray()
	require.Len(t, arr, len(want), msgAndArgs...)
	for i := range want {
		assert.InDelta(t, want[i], arr[i], tol, msgAndArgs...)
	}
}

func TestDefaultImplementation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ops.DefaultImplementation, ops.Default[float64]().Implementation())
	assert.Equal(t, ops.DefaultImplementation, ops.Default[float32]().Implementation())
	assert.Equal(t, kernel.Native, ops.New[float32](ops.WithNative()).Kernel().Implementation())
	assert.Panics(t, func() { ops.WithImplementation(kernel.Implementation(9)) })
}

func TestScaleAddUpdateFastPaths(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		a := col(1, 2, 3)

		b := col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(0, a.Const(), 1, b.Ref))
		assertVec(t, []float64{4, 5, 6}, b.Const(), name)

		b = col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(1, a.Const(), 0, b.Ref))
		assertVec(t, []float64{1, 2, 3}, b.Const(), name)

		b = col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(2.5, a.Const(), 1, b.Ref))
		assertVec(t, []float64{6.5, 10, 13.5}, b.Const(), name)

		b = col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(2, a.Const(), -1, b.Ref))
		assertVec(t, []float64{-2, -1, 0}, b.Const(), name)

		b = col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(1, a.Const(), 3, b.Ref))
		assertVec(t, []float64{13, 17, 21}, b.Const(), name)

		b = col(4, 5, 6)
		require.NoError(t, e.ScaleAddUpdate(0, a.Const(), 0, b.Ref))
		assertVec(t, []float64{0, 0, 0}, b.Const(), name)
	}
}

func TestScaleAddSkipsZeroCoefficient(t *testing.T) {
	t.Parallel()

	// A zero coefficient never touches its operand, so NaN does not leak.
	for name, e := range engines() {
		a := col(math.NaN(), math.Inf(1))
		b := col(1, 2)
		require.NoError(t, e.ScaleAddUpdate(0, a.Const(), 1, b.Ref))
		assertVec(t, []float64{1, 2}, b.Const(), name)

		require.NoError(t, e.ScaleAddUpdateOne(0, a.Const(), b.Ref))
		assertVec(t, []float64{1, 2}, b.Const(), name)
	}
}

func TestScaleAddVariants(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		b := col(1, 2)
		require.NoError(t, e.ScaleAddUpdateOne(3, col(1, -1).Const(), b.Ref))
		assertVec(t, []float64{4, -1}, b.Const(), name)

		b = col(1, 2)
		require.NoError(t, e.OneAddUpdate(col(1, -1).Const(), 3, b.Ref))
		assertVec(t, []float64{4, 5}, b.Const(), name)

		b = col(1, 2)
		e.OnesScaleAddUpdate(2, 3, b.Ref)
		assertVec(t, []float64{5, 8}, b.Const(), name)

		b = col(1, 2)
		e.OnesScaleAddUpdate(2, 0, b.Ref)
		assertVec(t, []float64{2, 2}, b.Const(), name)

		b = col(1, 2)
		e.OnesScaleAddUpdate(-1, 1, b.Ref)
		assertVec(t, []float64{0, 1}, b.Const(), name)
	}
}

// TestScaleAddSetAliasing checks every Set form against a direct computation
// with out distinct from, or identical to, each input.
func TestScaleAddSetAliasing(t *testing.T) {
	t.Parallel()

	av, bv := []float64{1, -2, 3}, []float64{0.5, 4, -1}
	coefficients := []float64{0, 1, -2, 0.5}

	type setFn func(e *ops.Engine[float64], sA, sB float64, a, b vector.ConstRef[float64], out vector.Ref[float64]) error
	forms := map[string]struct {
		fn   setFn
		want func(sA, sB, a, b float64) float64
	}{
		"ScaleAddSet": {
			fn: func(e *ops.Engine[float64], sA, sB float64, a, b vector.ConstRef[float64], out vector.Ref[float64]) error {
				return e.ScaleAddSet(sA, a, sB, b, out)
			},
			want: func(sA, sB, a, b float64) float64 { return sA*a + sB*b },
		},
		"ScaleAddSetOne": {
			fn: func(e *ops.Engine[float64], sA, _ float64, a, b vector.ConstRef[float64], out vector.Ref[float64]) error {
				return e.ScaleAddSetOne(sA, a, b, out)
			},
			want: func(sA, _, a, b float64) float64 { return sA*a + b },
		},
		"OneAddSet": {
			fn: func(e *ops.Engine[float64], _, sB float64, a, b vector.ConstRef[float64], out vector.Ref[float64]) error {
				return e.OneAddSet(a, sB, b, out)
			},
			want: func(_, sB, a, b float64) float64 { return a + sB*b },
		},
		"OnesScaleAddSet": {
			fn: func(e *ops.Engine[float64], sA, sB float64, _, b vector.ConstRef[float64], out vector.Ref[float64]) error {
				return e.OnesScaleAddSet(sA, sB, b, out)
			},
			want: func(sA, sB, _, b float64) float64 { return sA + sB*b },
		},
	}

	for engineName, e := range engines() {
		for formName, form := range forms {
			for _, sA := range coefficients {
				for _, sB := range coefficients {
					want := make([]float64, len(av))
					for i := range want {
						want[i] = form.want(sA, sB, av[i], bv[i])
					}
					msg := []any{"%s %s sA=%v sB=%v", engineName, formName, sA, sB}

					a, b, out := col(av...), col(bv...), col(9, 9, 9)
					require.NoError(t, form.fn(e, sA, sB, a.Const(), b.Const(), out.Ref))
					assertVec(t, want, out.Const(), msg...)
					assertVec(t, av, a.Const(), msg...)
					assertVec(t, bv, b.Const(), msg...)

					a, b = col(av...), col(bv...)
					require.NoError(t, form.fn(e, sA, sB, a.Const(), b.Const(), a.Ref))
					assertVec(t, want, a.Const(), msg...)

					a, b = col(av...), col(bv...)
					require.NoError(t, form.fn(e, sA, sB, a.Const(), b.Const(), b.Ref))
					assertVec(t, want, b.Const(), msg...)

					sa, sb, sout := stridedCol(t, av...), stridedCol(t, bv...), stridedCol(t, 0, 0, 0)
					require.NoError(t, form.fn(e, sA, sB, sa.Const(), sb.Const(), sout))
					assertVec(t, want, sout.Const(), msg...)
				}
			}
		}
	}
}

func TestShapeErrorsLeaveOperandsUntouched(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		b := col(1, 2, 3)

		err := e.ScaleAddUpdate(2, row(1, 1, 1).Const(), 3, b.Ref)
		require.ErrorIs(t, err, errs.ErrTypeMismatch, name)
		require.ErrorIs(t, err, vector.ErrOrientationMismatch, name)

		err = e.AddUpdate(col(1, 1).Const(), b.Ref)
		require.ErrorIs(t, err, errs.ErrSizeMismatch, name)
		category, ok := errs.CategoryOf(err)
		require.True(t, ok)
		assert.Equal(t, errs.Input, category)

		require.ErrorIs(t, e.AddSet(col(1, 1, 1).Const(), col(1, 1).Const(), b.Ref), errs.ErrSizeMismatch)
		require.ErrorIs(t, e.ScaleAddSet(2, col(1, 1, 1).Const(), 2, col(1, 1, 1).Const(), row(0, 0, 0).Ref), errs.ErrTypeMismatch)
		require.ErrorIs(t, e.ElementwiseMultiplySet(col(1).Const(), col(1).Const(), b.Ref), errs.ErrSizeMismatch)

		assertVec(t, []float64{1, 2, 3}, b.Const(), name)
	}
}

func TestElementaryUpdates(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		v := col(1, 2, 3)
		e.AddScalarUpdate(1, v.Ref)
		e.SubtractScalarUpdate(0.5, v.Ref)
		assertVec(t, []float64{1.5, 2.5, 3.5}, v.Const(), name)

		e.ScaleUpdate(2, v.Ref)
		assertVec(t, []float64{3, 5, 7}, v.Const(), name)

		require.NoError(t, e.SubtractUpdate(col(1, 1, 1).Const(), v.Ref))
		assertVec(t, []float64{2, 4, 6}, v.Const(), name)

		require.NoError(t, e.DivideScalarUpdate(4, v.Ref))
		assertVec(t, []float64{0.5, 1, 1.5}, v.Const(), name)

		err := e.DivideScalarUpdate(0, v.Ref)
		require.ErrorIs(t, err, errs.ErrDivideByZero)
		category, ok := errs.CategoryOf(err)
		require.True(t, ok)
		assert.Equal(t, errs.Numeric, category)
		assertVec(t, []float64{0.5, 1, 1.5}, v.Const(), name)

		out := col(0, 0, 0)
		require.NoError(t, e.AddScalarSet(10, v.Const(), out.Ref))
		assertVec(t, []float64{10.5, 11, 11.5}, out.Const(), name)

		require.NoError(t, e.ScaleSet(-2, v.Const(), out.Ref))
		assertVec(t, []float64{-1, -2, -3}, out.Const(), name)

		require.NoError(t, e.ElementwiseMultiplySet(v.Const(), out.Const(), out.Ref))
		assertVec(t, []float64{-0.5, -2, -4.5}, out.Const(), name)

		e.ScaleUpdate(0, out.Ref)
		assertVec(t, []float64{0, 0, 0}, out.Const(), name)
	}
}

func TestProducts(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		d, err := e.Dot(row(1, 2, 3).Const(), col(4, 5, 6).Const())
		require.NoError(t, err)
		assert.InDelta(t, 32.0, d, tol, name)

		_, err = e.Dot(col(1).Const(), col(1).Const())
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		_, err = e.Dot(row(1, 2).Const(), col(1).Const())
		require.ErrorIs(t, err, errs.ErrSizeMismatch)

		for _, layout := range []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor} {
			m, err := matrix.New[float64](2, 3, layout)
			require.NoError(t, err)
			m.Fill(7)
			require.NoError(t, e.OuterProduct(col(1, 2).Const(), row(1, 0, -1).Const(), m.Ref))
			assert.Equal(t, []float64{1, 0, -1, 2, 0, -2}, m.RowMajorArray(), name)

			require.NoError(t, e.OuterProductAddUpdate(2, col(1, 1).Const(), row(1, 1, 1).Const(), m.Ref))
			assert.Equal(t, []float64{3, 2, 1, 4, 2, 0}, m.RowMajorArray(), name)

			require.ErrorIs(t, e.OuterProduct(col(1).Const(), row(1, 0, -1).Const(), m.Ref), errs.ErrSizeMismatch)
			require.ErrorIs(t, e.OuterProduct(row(1, 2).Const(), row(1, 0, -1).Const(), m.Ref), errs.ErrTypeMismatch)
		}

		v := col(1, 2, 3, 4)
		e.CumulativeSumUpdate(v.Ref)
		assertVec(t, []float64{1, 3, 6, 10}, v.Const(), name)
		e.ConsecutiveDifferenceUpdate(v.Ref)
		assertVec(t, []float64{1, 2, 3, 4}, v.Const(), name)

		empty := col()
		e.CumulativeSumUpdate(empty.Ref)
		e.ConsecutiveDifferenceUpdate(empty.Ref)
		assert.Zero(t, empty.Size())
	}
}

func TestTransformOps(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		a := col(1, -2, 3)
		b := col(10, 10, 10)
		require.NoError(t, e.AddTransformedUpdate(transform.Square(a.Const()), b.Ref))
		assertVec(t, []float64{11, 14, 19}, b.Const(), name)

		require.NoError(t, e.AddTransformedUpdate(transform.Scale(-1.0, a.Const()), b.Ref))
		assertVec(t, []float64{10, 16, 16}, b.Const(), name)

		require.ErrorIs(t, e.AddTransformedUpdate(transform.Abs(row(1, 2, 3).Const()), b.Ref), errs.ErrTypeMismatch)

		out := col(0, 0, 0)
		require.NoError(t, e.TransformSet(transform.AbsoluteValue[float64], a.Const(), out.Ref))
		assertVec(t, []float64{1, 2, 3}, out.Const(), name)

		e.TransformUpdate(transform.SquareOf[float64], out.Ref)
		assertVec(t, []float64{1, 4, 9}, out.Const(), name)
	}
}

func TestMatrixVectorProduct(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for name, e := range engines() {
		for _, layout := range []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor} {
			a, err := matrix.FromRows(layout, rows)
			require.NoError(t, err)

			y := col(1, 1)
			require.NoError(t, e.MultiplyScaleAddUpdate(2, a.Const(), col(1, 0, -1).Const(), 3, y.Ref))
			assertVec(t, []float64{-1, -1}, y.Const(), name, layout)

			yr := row(1, 1, 1)
			require.NoError(t, e.MultiplyScaleAddUpdate(1, a.Const(), row(1, 1).Const(), 0, yr.Ref))
			assertVec(t, []float64{5, 7, 9}, yr.Const(), name, layout)

			y = col(1, 2)
			require.NoError(t, e.MultiplyScaleAddUpdate(0, a.Const(), col(1, 1, 1).Const(), 2, y.Ref))
			assertVec(t, []float64{2, 4}, y.Const(), name, layout)

			require.ErrorIs(t, e.MultiplyScaleAddUpdate(1, a.Const(), col(1, 1).Const(), 0, y.Ref), errs.ErrSizeMismatch)
			require.ErrorIs(t, e.MultiplyScaleAddUpdate(1, a.Const(), row(1, 1).Const(), 0, y.Ref), errs.ErrTypeMismatch)

			sums := col(0, 0)
			require.NoError(t, e.RowwiseSum(a.Const(), sums.Ref))
			assertVec(t, []float64{6, 15}, sums.Const(), name, layout)

			csums := row(0, 0, 0)
			require.NoError(t, e.ColumnwiseSum(a.Const(), csums.Ref))
			assertVec(t, []float64{5, 7, 9}, csums.Const(), name, layout)

			require.ErrorIs(t, e.RowwiseSum(a.Const(), csums.Ref), errs.ErrTypeMismatch)
			require.ErrorIs(t, e.ColumnwiseSum(a.Const(), row(0, 0).Ref), errs.ErrSizeMismatch)
		}
	}
}

func TestMatrixMultiply(t *testing.T) {
	t.Parallel()

	layouts := []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor}
	for name, e := range engines() {
		for _, la := range layouts {
			for _, lb := range layouts {
				for _, lc := range layouts {
					a, err := matrix.FromRows(la, [][]float64{{1, 2, 3}, {4, 5, 6}})
					require.NoError(t, err)
					b, err := matrix.FromRows(lb, [][]float64{{7, 8}, {9, 10}, {11, 12}})
					require.NoError(t, err)
					c, err := matrix.FromRows(lc, [][]float64{{1, 1}, {1, 1}})
					require.NoError(t, err)

					require.NoError(t, e.MatrixMultiplyScaleAddUpdate(1, a.Const(), b.Const(), -1, c.Ref))
					assert.Equal(t, []float64{57, 63, 138, 153}, c.RowMajorArray(), "%s %s %s %s", name, la, lb, lc)

					require.NoError(t, e.MatrixMultiplyScaleAddUpdate(0, a.Const(), b.Const(), 2, c.Ref))
					assert.Equal(t, []float64{114, 126, 276, 306}, c.RowMajorArray())

					require.ErrorIs(t, e.MatrixMultiplyScaleAddUpdate(1, b.Const(), b.Const(), 0, c.Ref), errs.ErrSizeMismatch)
				}
			}
		}
	}
}

func TestMatrixScaleAddUpdate(t *testing.T) {
	t.Parallel()

	for name, e := range engines() {
		for _, la := range []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor} {
			for _, lb := range []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor} {
				a, err := matrix.FromRows(la, [][]float64{{1, 2}, {3, 4}, {5, 6}})
				require.NoError(t, err)
				b, err := matrix.FromRows(lb, [][]float64{{1, 1}, {1, 1}, {1, 1}})
				require.NoError(t, err)

				require.NoError(t, e.MatrixScaleAddUpdate(2, a.Const(), 3, b.Ref))
				assert.Equal(t, []float64{5, 7, 9, 11, 13, 15}, b.RowMajorArray(), name)

				e.MatrixScaleUpdate(0.5, b.Ref)
				assert.Equal(t, []float64{2.5, 3.5, 4.5, 5.5, 6.5, 7.5}, b.RowMajorArray(), name)

				require.ErrorIs(t, e.MatrixScaleAddUpdate(1, a.Const().Transpose(), 1, b.Ref), errs.ErrSizeMismatch)
			}
		}
	}
}

func TestParallelTransformUpdate(t *testing.T) {
	t.Parallel()

	e := ops.New[float64](ops.WithMaxTasks(2))
	m, err := matrix.FromRows(matrix.ColumnMajor, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.NoError(t, e.ParallelTransformUpdate(context.Background(), func(x float64) float64 { return x * 10 }, m.Ref))
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60}, m.RowMajorArray())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ops.ParallelTransformUpdate(ctx, func(x float64) float64 { return x }, m.Ref)
	require.True(t, errors.Is(err, context.Canceled))
}
