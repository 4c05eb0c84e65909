// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/ops"
	"github.com/katalvlaran/linalg/vector"
)

// identity allocates the n×n identity in the given layout.
func identity[E matrix.Float](n int, layout matrix.Layout) *matrix.Matrix[E] {
	m, _ := matrix.New[E](n, n, layout)
	m.GetDiagonal().Fill(1)

	return m
}

func at[E matrix.Float](m matrix.ConstRef[E], i, j int) E {
	x, _ := m.At(i, j)
	return x
}

// dotPrefix returns the inner product of the first k elements of row and col.
func dotPrefix[E matrix.Float](row, col vector.ConstRef[E], k int) (E, error) {
	if k == 0 {
		return 0, nil
	}
	r, err := row.GetSubVector(0, k)
	if err != nil {
		return 0, err
	}
	c, err := col.GetSubVector(0, k)
	if err != nil {
		return 0, err
	}

	return ops.Dot(r, c)
}

// LU performs Doolittle LU decomposition on a square matrix a.
// It returns L (unit lower triangular) and U (upper triangular) with a = L·U.
//
// Errors:
//   - ErrNotSquare if a is not square.
//   - ErrSingular if a leading principal minor is singular (zero pivot);
//     no row exchanges are attempted.
//
// Complexity: O(n³) time, O(n²) memory for L and U.
func LU[E matrix.Float](a matrix.ConstRef[E]) (l, u *matrix.Matrix[E], err error) {
	if err = squareOrFail("LU", a); err != nil {
		return nil, nil, err
	}
	n := a.NumRows()
	l = identity[E](n, a.Layout())
	u, _ = matrix.New[E](n, n, a.Layout())

	for i := 0; i < n; i++ {
		lRow, _ := l.GetRow(i)
		// U[i][j] = A[i][j] - L[i,:i]·U[:i,j] for j >= i
		for j := i; j < n; j++ {
			uCol, _ := u.GetColumn(j)
			s, err := dotPrefix(lRow.Const(), uCol.Const(), i)
			if err != nil {
				return nil, nil, decomposeErrorf("LU", err)
			}
			_ = u.Set(i, j, at(a, i, j)-s)
		}

		pivot := at(u.Const(), i, i)
		if pivot == 0 {
			return nil, nil, decomposeErrorf("LU", errs.New(errs.DivideByZero, "zero pivot at %d", i))
		}
		uCol, _ := u.GetColumn(i)
		// L[j][i] = (A[j][i] - L[j,:i]·U[:i,i]) / U[i][i] for j > i
		for j := i + 1; j < n; j++ {
			lRowJ, _ := l.GetRow(j)
			s, err := dotPrefix(lRowJ.Const(), uCol.Const(), i)
			if err != nil {
				return nil, nil, decomposeErrorf("LU", err)
			}
			_ = l.Set(j, i, (at(a, j, i)-s)/pivot)
		}
	}

	return l, u, nil
}

// Solve writes into x the solution of L·U·x = b, where l and u come from LU.
// b and x must be column vectors of size n; they may not alias.
//
// Errors:
//   - ErrNotSquare or a size mismatch for inconsistent shapes.
//   - ErrSingular if u has a zero on its diagonal.
func Solve[E matrix.Float](l, u matrix.ConstRef[E], b vector.ConstRef[E], x vector.Ref[E]) error {
	if err := squareOrFail("Solve", l); err != nil {
		return err
	}
	if err := matrix.ValidateSameShape(l, u); err != nil {
		return decomposeErrorf("Solve", err)
	}
	if err := vector.ValidateOrientation(b, vector.Column); err != nil {
		return decomposeErrorf("Solve", err)
	}
	if err := vector.ValidateSameShape(b, x.Const()); err != nil {
		return decomposeErrorf("Solve", err)
	}
	if err := matrix.ValidateMulVec(l, x.Size(), b.Size()); err != nil {
		return decomposeErrorf("Solve", err)
	}
	n := l.NumRows()

	// forward substitution: L·y = b, y stored in x
	for i := 0; i < n; i++ {
		row, _ := l.GetRow(i)
		s, err := dotPrefix(row, x.Const(), i)
		if err != nil {
			return decomposeErrorf("Solve", err)
		}
		bi, _ := b.At(i)
		_ = x.Set(i, (bi-s)/at(l, i, i))
	}

	// backward substitution: U·x = y
	for i := n - 1; i >= 0; i-- {
		pivot := at(u, i, i)
		if pivot == 0 {
			return decomposeErrorf("Solve", errs.New(errs.DivideByZero, "zero pivot at %d", i))
		}
		var s E
		if tail := n - i - 1; tail > 0 {
			row, _ := u.GetRow(i)
			r, _ := row.GetSubVector(i+1, tail)
			c, _ := x.Const().GetSubVector(i+1, tail)
			var err error
			if s, err = ops.Dot(r, c); err != nil {
				return decomposeErrorf("Solve", err)
			}
		}
		yi, _ := x.At(i)
		_ = x.Set(i, (yi-s)/pivot)
	}

	return nil
}

// Inverse returns the inverse of the square matrix a, solving L·U·x = eᵢ for
// every column of the identity.
//
// Errors:
//   - ErrNotSquare if a is not square.
//   - ErrSingular on a zero pivot.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse[E matrix.Float](a matrix.ConstRef[E]) (*matrix.Matrix[E], error) {
	l, u, err := LU(a)
	if err != nil {
		return nil, decomposeErrorf("Inverse", err)
	}
	n := a.NumRows()
	inv, _ := matrix.New[E](n, n, a.Layout())
	e := vector.NewColumn[E](n)

	for col := 0; col < n; col++ {
		if col > 0 {
			_ = e.Set(col-1, 0)
		}
		_ = e.Set(col, 1)
		x, _ := inv.GetColumn(col)
		if err = Solve(l.Const(), u.Const(), e.Const(), x); err != nil {
			return nil, decomposeErrorf("Inverse", err)
		}
	}

	return inv, nil
}
