// SPDX-License-Identifier: MIT

package decompose

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/ops"
	"github.com/katalvlaran/linalg/vector"
)

// reflect applies the Householder reflection I - tau·v·vᵀ to rows
// [k, k+len(v)) of every column of m from column `from` on.
func reflect[E matrix.Float](v vector.ConstRef[E], tau E, m *matrix.Matrix[E], k, from int) error {
	for j := from; j < m.NumColumns(); j++ {
		col, _ := m.GetColumn(j)
		tail, err := col.GetSubVector(k, v.Size())
		if err != nil {
			return err
		}
		s, err := ops.Dot(v, tail.Const())
		if err != nil {
			return err
		}
		if s == 0 {
			continue
		}
		if err = ops.ScaleAddUpdateOne(-tau*s, v.Transpose(), tail); err != nil {
			return err
		}
	}

	return nil
}

// QR returns Q (orthogonal) and R (upper triangular) with a = Q·R, using
// Householder reflections. Entries of R below the diagonal are exactly zero.
//
// Errors:
//   - ErrNotSquare if a is not square.
//
// Complexity: O(n³) time, O(n²) memory.
func QR[E matrix.Float](a matrix.ConstRef[E]) (q, r *matrix.Matrix[E], err error) {
	if err = squareOrFail("QR", a); err != nil {
		return nil, nil, err
	}
	n := a.NumRows()
	r = matrix.NewFrom(a, a.Layout())
	// qt accumulates Hₙ₋₁⋯H₀, which is Qᵀ
	qt := identity[E](n, a.Layout())
	house := vector.NewRow[E](n)

	for k := 0; k < n; k++ {
		col, _ := r.GetColumn(k)
		tail, _ := col.GetSubVector(k, n-k)
		norm := tail.Norm2()
		if norm == 0 {
			continue
		}
		pivot, _ := tail.At(0)
		alpha := E(-math.Copysign(float64(norm), float64(pivot)))

		v, _ := house.GetSubVector(k, n-k)
		if err = v.CopyFrom(tail.Const().Transpose()); err != nil {
			return nil, nil, decomposeErrorf("QR", err)
		}
		_ = v.Set(0, pivot-alpha)
		tau := 2 / v.Norm2Squared()

		if err = reflect(v.Const(), tau, r, k, k+1); err != nil {
			return nil, nil, decomposeErrorf("QR", err)
		}
		if err = reflect(v.Const(), tau, qt, k, 0); err != nil {
			return nil, nil, decomposeErrorf("QR", err)
		}
		tail.Reset()
		_ = tail.Set(0, alpha)
	}

	return matrix.NewFrom(qt.Const().Transpose(), a.Layout()), r, nil
}
