// SPDX-License-Identifier: MIT

package ops

import (
	"context"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/parallel"
	"github.com/katalvlaran/linalg/vector"
)

// MultiplyScaleAddUpdate computes a matrix-vector product.
//
// For column vectors x and y it sets y = s·A·x + t·y (len(x) = columns,
// len(y) = rows). For row vectors it sets y = s·x·A + t·y (len(x) = rows,
// len(y) = columns). Mixed orientations fail with errs.ErrTypeMismatch.
func (e *Engine[E]) MultiplyScaleAddUpdate(s E, a matrix.ConstRef[E], x vector.ConstRef[E], t E, y vector.Ref[E]) error {
	if err := vector.ValidateOrientation(y.Const(), x.Orientation()); err != nil {
		return opErrorf(opMultiplyScaleAdd, err)
	}
	if x.Orientation() == vector.Row {
		a = a.Transpose()
	}
	if err := matrix.ValidateMulVec(a, x.Size(), y.Size()); err != nil {
		return opErrorf(opMultiplyScaleAdd, err)
	}
	if s == 0 {
		e.ScaleUpdate(t, y)
		return nil
	}
	e.k.Gemv(s, a.Grid(), x.View(), t, y.View())

	return nil
}

// MatrixMultiplyScaleAddUpdate sets C = s·A·B + t·C.
func (e *Engine[E]) MatrixMultiplyScaleAddUpdate(s E, a, b matrix.ConstRef[E], t E, c matrix.Ref[E]) error {
	if err := matrix.ValidateMulMat(a, b, c.Const()); err != nil {
		return opErrorf(opMatrixMultiply, err)
	}
	if s == 0 {
		e.MatrixScaleUpdate(t, c)
		return nil
	}
	e.k.Gemm(s, a.Grid(), b.Grid(), t, c.Grid())

	return nil
}

// MatrixScaleUpdate sets M = s·M, one major vector at a time.
func (e *Engine[E]) MatrixScaleUpdate(s E, m matrix.Ref[E]) {
	for i := 0; i < m.MinorSize(); i++ {
		mv, _ := m.GetMajorVector(i)
		e.ScaleUpdate(s, mv)
	}
}

// MatrixScaleAddUpdate sets B = sA·A + sB·B. Matching layouts are processed
// major vector by major vector, mixed layouts row by row; either way the
// vector fast paths of ScaleAddUpdate apply.
func (e *Engine[E]) MatrixScaleAddUpdate(sA E, a matrix.ConstRef[E], sB E, b matrix.Ref[E]) error {
	if err := matrix.ValidateSameShape(a, b.Const()); err != nil {
		return opErrorf(opMatrixScaleAdd, err)
	}
	if a.Layout() == b.Layout() {
		for i := 0; i < b.MinorSize(); i++ {
			av, _ := a.GetMajorVector(i)
			bv, _ := b.GetMajorVector(i)
			if err := e.ScaleAddUpdate(sA, av, sB, bv); err != nil {
				return opErrorf(opMatrixScaleAdd, err)
			}
		}
		return nil
	}
	for i := 0; i < b.NumRows(); i++ {
		av, _ := a.GetRow(i)
		bv, _ := b.GetRow(i)
		if err := e.ScaleAddUpdate(sA, av, sB, bv); err != nil {
			return opErrorf(opMatrixScaleAdd, err)
		}
	}

	return nil
}

// RowwiseSum writes the sum of each row of A into the column vector out.
func (e *Engine[E]) RowwiseSum(a matrix.ConstRef[E], out vector.Ref[E]) error {
	if err := vector.ValidateOrientation(out.Const(), vector.Column); err != nil {
		return opErrorf(opRowwiseSum, err)
	}
	if err := matrix.ValidateMulVec(a, a.NumColumns(), out.Size()); err != nil {
		return opErrorf(opRowwiseSum, err)
	}
	ones := vector.Ones[E](a.NumColumns(), vector.Column)
	e.k.Gemv(1, a.Grid(), ones.View(), 0, out.View())

	return nil
}

// ColumnwiseSum writes the sum of each column of A into the row vector out.
func (e *Engine[E]) ColumnwiseSum(a matrix.ConstRef[E], out vector.Ref[E]) error {
	if err := vector.ValidateOrientation(out.Const(), vector.Row); err != nil {
		return opErrorf(opColumnwiseSum, err)
	}
	at := a.Transpose()
	if err := matrix.ValidateMulVec(at, at.NumColumns(), out.Size()); err != nil {
		return opErrorf(opColumnwiseSum, err)
	}
	ones := vector.Ones[E](at.NumColumns(), vector.Column)
	e.k.Gemv(1, at.Grid(), ones.View(), 0, out.View())

	return nil
}

// ParallelTransformUpdate sets M(i, j) = fn(M(i, j)), handing disjoint major
// vectors to concurrent workers. fn must be safe for concurrent use.
// Cancelling ctx stops issuing new major vectors; those already started finish.
func (e *Engine[E]) ParallelTransformUpdate(ctx context.Context, fn func(E) E, m matrix.Ref[E]) error {
	err := parallel.ForEach(ctx, m.MinorSize(), func(_ context.Context, i int) error {
		mv, err := m.GetMajorVector(i)
		if err != nil {
			return err
		}
		mv.Transform(fn)
		return nil
	}, parallel.WithMaxTasks(e.maxTasks))
	if err != nil {
		return opErrorf(opParallelTransform, err)
	}

	return nil
}
