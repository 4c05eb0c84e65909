// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/ops"
	"github.com/katalvlaran/linalg/transform"
)

func TestPackageLevelVectorFunctions(t *testing.T) {
	t.Parallel()

	a := col(1, 2, 3)
	b := col(4, 5, 6)

	ops.AddScalarUpdate(1, b.Ref)
	assertVec(t, []float64{5, 6, 7}, b.Const())
	ops.SubtractScalarUpdate(1, b.Ref)
	require.NoError(t, ops.AddUpdate(a.Const(), b.Ref))
	assertVec(t, []float64{5, 7, 9}, b.Const())
	require.NoError(t, ops.SubtractUpdate(a.Const(), b.Ref))
	ops.ScaleUpdate(2, b.Ref)
	assertVec(t, []float64{8, 10, 12}, b.Const())
	require.NoError(t, ops.DivideScalarUpdate(2, b.Ref))
	require.ErrorIs(t, ops.DivideScalarUpdate(0, b.Ref), errs.ErrDivideByZero)
	assertVec(t, []float64{4, 5, 6}, b.Const())

	out := col(0, 0, 0)
	require.NoError(t, ops.AddScalarSet(1, a.Const(), out.Ref))
	assertVec(t, []float64{2, 3, 4}, out.Const())
	require.NoError(t, ops.AddSet(a.Const(), b.Const(), out.Ref))
	assertVec(t, []float64{5, 7, 9}, out.Const())
	require.NoError(t, ops.ScaleSet(3, a.Const(), out.Ref))
	assertVec(t, []float64{3, 6, 9}, out.Const())
	require.NoError(t, ops.ElementwiseMultiplySet(a.Const(), b.Const(), out.Ref))
	assertVec(t, []float64{4, 10, 18}, out.Const())

	require.NoError(t, ops.ScaleAddSet(2, a.Const(), -1, b.Const(), out.Ref))
	assertVec(t, []float64{-2, -1, 0}, out.Const())
	require.NoError(t, ops.ScaleAddSetOne(2, a.Const(), b.Const(), out.Ref))
	assertVec(t, []float64{6, 9, 12}, out.Const())
	require.NoError(t, ops.OneAddSet(a.Const(), 2, b.Const(), out.Ref))
	assertVec(t, []float64{9, 12, 15}, out.Const())
	require.NoError(t, ops.OnesScaleAddSet(1, 2, b.Const(), out.Ref))
	assertVec(t, []float64{9, 11, 13}, out.Const())

	require.NoError(t, ops.ScaleAddUpdate(2, a.Const(), 1, b.Ref))
	assertVec(t, []float64{6, 9, 12}, b.Const())
	require.NoError(t, ops.ScaleAddUpdateOne(-2, a.Const(), b.Ref))
	assertVec(t, []float64{4, 5, 6}, b.Const())
	require.NoError(t, ops.OneAddUpdate(a.Const(), 2, b.Ref))
	assertVec(t, []float64{9, 12, 15}, b.Const())
	ops.OnesScaleAddUpdate(1, -1, b.Ref)
	assertVec(t, []float64{-8, -11, -14}, b.Const())

	c := col(1, 3, 6)
	ops.ConsecutiveDifferenceUpdate(c.Ref)
	assertVec(t, []float64{1, 2, 3}, c.Const())
	ops.CumulativeSumUpdate(c.Ref)
	assertVec(t, []float64{1, 3, 6}, c.Const())

	require.NoError(t, ops.AddTransformedUpdate(transform.Square(a.Const()), c.Ref))
	assertVec(t, []float64{2, 7, 15}, c.Const())
	ops.TransformUpdate(transform.SquareOf[float64], c.Ref)
	assertVec(t, []float64{4, 49, 225}, c.Const())
	require.NoError(t, ops.TransformSet(transform.SquareOf[float64], a.Const(), out.Ref))
	assertVec(t, []float64{1, 4, 9}, out.Const())

	d, err := ops.Dot(row(1, 2, 3).Const(), a.Const())
	require.NoError(t, err)
	assert.InDelta(t, 14.0, d, tol)
	_, err = ops.Dot(a.Const(), a.Const())
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestPackageLevelMatrixFunctions(t *testing.T) {
	t.Parallel()

	m, err := matrix.New[float64](2, 3, matrix.RowMajor)
	require.NoError(t, err)
	require.NoError(t, ops.OuterProduct(col(1, 2).Const(), row(1, 2, 3).Const(), m.Ref))
	assert.Equal(t, []float64{1, 2, 3, 2, 4, 6}, m.RowMajorArray())
	require.NoError(t, ops.OuterProductAddUpdate(-1, col(1, 1).Const(), row(1, 1, 1).Const(), m.Ref))
	assert.Equal(t, []float64{0, 1, 2, 1, 3, 5}, m.RowMajorArray())

	ops.MatrixScaleUpdate(2, m.Ref)
	assert.Equal(t, []float64{0, 2, 4, 2, 6, 10}, m.RowMajorArray())

	ones, err := matrix.FromRows(matrix.ColumnMajor, [][]float64{{1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	require.NoError(t, ops.MatrixScaleAddUpdate(1, ones.Const(), 0.5, m.Ref))
	assert.Equal(t, []float64{1, 2, 3, 2, 4, 6}, m.RowMajorArray())

	y := col(0, 0)
	require.NoError(t, ops.MultiplyScaleAddUpdate(1, m.Const(), col(1, 1, 1).Const(), 0, y.Ref))
	assertVec(t, []float64{6, 12}, y.Const())

	sums := col(0, 0)
	require.NoError(t, ops.RowwiseSum(m.Const(), sums.Ref))
	assertVec(t, []float64{6, 12}, sums.Const())
	csums := row(0, 0, 0)
	require.NoError(t, ops.ColumnwiseSum(m.Const(), csums.Ref))
	assertVec(t, []float64{3, 6, 9}, csums.Const())

	id, err := matrix.FromRows(matrix.RowMajor, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	c, err := matrix.New[float64](2, 3, matrix.ColumnMajor)
	require.NoError(t, err)
	require.NoError(t, ops.MatrixMultiplyScaleAddUpdate(1, id.Const(), m.Const(), 0, c.Ref))
	assert.Equal(t, []float64{1, 2, 3, 2, 4, 6}, c.RowMajorArray())
}
