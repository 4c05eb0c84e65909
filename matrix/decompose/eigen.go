// SPDX-License-Identifier: MIT

package decompose

import (
	"math"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/logger"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/ops"
	"github.com/katalvlaran/linalg/vector"
)

// rotate replaces (x, y) with (c·x - s·y, s·x + c·y).
func rotate[E matrix.Float](x, y vector.Ref[E], c, s E) error {
	old := vector.Clone(x.Const())
	if err := ops.ScaleAddUpdate(-s, y.Const(), c, x); err != nil {
		return err
	}

	return ops.ScaleAddUpdate(s, old.Const(), c, y)
}

// largestOffDiagonal returns the position and magnitude of the largest
// |A[p][q]| with p < q.
func largestOffDiagonal[E matrix.Float](a matrix.ConstRef[E]) (p, q int, off E) {
	n := a.NumRows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if x := E(math.Abs(float64(at(a, i, j)))); x > off {
				p, q, off = i, j, x
			}
		}
	}

	return p, q, off
}

// Eigen computes the eigenvalues and eigenvectors of the real symmetric
// matrix a with classical Jacobi rotations. Column i of vectors is the unit
// eigenvector for values[i]; values follow the order of the diagonal.
// Iteration stops once every off-diagonal entry is at most tol.
//
// Errors:
//   - ErrNotSquare if a is not square.
//   - ErrNotSymmetric if |A[i][j] - A[j][i]| > tol for some i, j.
//   - ErrEigenFailed if maxIter rotations do not reach tol.
//
// Complexity: O(n) per rotation plus an O(n²) pivot search; O(n²) memory.
func Eigen[E matrix.Float](a matrix.ConstRef[E], tol E, maxIter int) (values *vector.Vector[E], vectors *matrix.Matrix[E], err error) {
	if err = squareOrFail("Eigen", a); err != nil {
		return nil, nil, err
	}
	n := a.NumRows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := at(a, i, j) - at(a, j, i); E(math.Abs(float64(d))) > tol {
				return nil, nil, decomposeErrorf("Eigen",
					errs.New(errs.InvalidArgument, "not symmetric at (%d,%d)", i, j))
			}
		}
	}

	w := matrix.NewFrom(a, a.Layout())
	v := identity[E](n, a.Layout())

	iter := 0
	for ; ; iter++ {
		p, q, off := largestOffDiagonal(w.Const())
		if off <= tol {
			break
		}
		if iter == maxIter {
			return nil, nil, decomposeErrorf("Eigen",
				errs.New(errs.DidNotConverge, "off-diagonal %v after %d rotations", off, maxIter))
		}

		app, aqq, apq := at(w.Const(), p, p), at(w.Const(), q, q), at(w.Const(), p, q)
		theta := float64(aqq-app) / float64(2*apq)
		t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta < 0 {
			t = -t
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// W ← Jᵀ·W·J, rows then columns; V ← V·J
		rowP, _ := w.GetRow(p)
		rowQ, _ := w.GetRow(q)
		if err = rotate(rowP, rowQ, E(c), E(s)); err != nil {
			return nil, nil, decomposeErrorf("Eigen", err)
		}
		colP, _ := w.GetColumn(p)
		colQ, _ := w.GetColumn(q)
		if err = rotate(colP, colQ, E(c), E(s)); err != nil {
			return nil, nil, decomposeErrorf("Eigen", err)
		}
		_ = w.Set(p, q, 0)
		_ = w.Set(q, p, 0)

		vecP, _ := v.GetColumn(p)
		vecQ, _ := v.GetColumn(q)
		if err = rotate(vecP, vecQ, E(c), E(s)); err != nil {
			return nil, nil, decomposeErrorf("Eigen", err)
		}
	}
	logger.Sugar().Debugw("decompose.Eigen converged", "n", n, "rotations", iter)

	return vector.CloneAs(w.GetDiagonal().Const(), vector.Column), v, nil
}
