// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Dot returns the inner product u·v of a row vector u and a column vector v.
func (e *Engine[E]) Dot(u, v vector.ConstRef[E]) (E, error) {
	if err := vector.ValidateOrientation(u, vector.Row); err != nil {
		return 0, opErrorf(opDot, err)
	}
	if err := vector.ValidateOrientation(v, vector.Column); err != nil {
		return 0, opErrorf(opDot, err)
	}
	if err := vector.ValidateSameSize(u, v); err != nil {
		return 0, opErrorf(opDot, err)
	}

	return e.k.Dot(u.View(), v.View()), nil
}

// OuterProduct sets A = x·y for a column vector x of size rows and a row
// vector y of size columns.
func (e *Engine[E]) OuterProduct(x, y vector.ConstRef[E], a matrix.Ref[E]) error {
	if err := validateOuter(x, y, a); err != nil {
		return opErrorf(opOuterProduct, err)
	}
	a.Reset()
	e.k.Ger(1, x.View(), y.View(), a.Grid())

	return nil
}

// OuterProductAddUpdate sets A = s·x·y + A.
func (e *Engine[E]) OuterProductAddUpdate(s E, x, y vector.ConstRef[E], a matrix.Ref[E]) error {
	if err := validateOuter(x, y, a); err != nil {
		return opErrorf(opOuterProduct, err)
	}
	e.k.Ger(s, x.View(), y.View(), a.Grid())

	return nil
}

func validateOuter[E Float](x, y vector.ConstRef[E], a matrix.Ref[E]) error {
	if err := vector.ValidateOrientation(x, vector.Column); err != nil {
		return err
	}
	if err := vector.ValidateOrientation(y, vector.Row); err != nil {
		return err
	}

	return matrix.ValidateOuter(a.Const(), x.Size(), y.Size())
}

// CumulativeSumUpdate replaces v with its running sums: v[i] = v[0] + ... + v[i].
func (e *Engine[E]) CumulativeSumUpdate(v vector.Ref[E]) {
	w := v.View()
	var sum E
	for i := 0; i < w.Len(); i++ {
		sum += w.Get(i)
		w.Put(i, sum)
	}
}

// ConsecutiveDifferenceUpdate replaces v[i] with v[i] - v[i-1] for i > 0;
// v[0] is kept. It inverts CumulativeSumUpdate.
func (e *Engine[E]) ConsecutiveDifferenceUpdate(v vector.Ref[E]) {
	w := v.View()
	var previous E
	for i := 0; i < w.Len(); i++ {
		x := w.Get(i)
		w.Put(i, x-previous)
		previous = x
	}
}
