// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/vector"
)

// AddScalarUpdate sets v[i] += s.
func (e *Engine[E]) AddScalarUpdate(s E, v vector.Ref[E]) {
	if s == 0 {
		return
	}
	addScalar(s, v.View())
}

// AddUpdate sets b += a.
func (e *Engine[E]) AddUpdate(a vector.ConstRef[E], b vector.Ref[E]) error {
	if err := sameShape(a, b.Const()); err != nil {
		return opErrorf(opAddUpdate, err)
	}
	e.k.Add(a.View(), b.View())

	return nil
}

// AddScalarSet sets out = a + s.
func (e *Engine[E]) AddScalarSet(s E, a vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, out.Const()); err != nil {
		return opErrorf(opAddScalarSet, err)
	}
	e.copyInto(a, out)
	e.AddScalarUpdate(s, out)

	return nil
}

// AddSet sets out = a + b.
func (e *Engine[E]) AddSet(a, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, b, out.Const()); err != nil {
		return opErrorf(opAddSet, err)
	}
	e.addSet(a, b, out)

	return nil
}

func (e *Engine[E]) addSet(a, b vector.ConstRef[E], out vector.Ref[E]) {
	switch {
	case sameWindow(a.View(), out.View()):
		e.k.Add(b.View(), out.View())
	case sameWindow(b.View(), out.View()):
		e.k.Add(a.View(), out.View())
	default:
		e.k.Copy(a.View(), out.View())
		e.k.Add(b.View(), out.View())
	}
}

// copyInto copies a into out unless they are the same window.
func (e *Engine[E]) copyInto(a vector.ConstRef[E], out vector.Ref[E]) {
	if !sameWindow(a.View(), out.View()) {
		e.k.Copy(a.View(), out.View())
	}
}

// SubtractScalarUpdate sets v[i] -= s.
func (e *Engine[E]) SubtractScalarUpdate(s E, v vector.Ref[E]) { e.AddScalarUpdate(-s, v) }

// SubtractUpdate sets b -= a.
func (e *Engine[E]) SubtractUpdate(a vector.ConstRef[E], b vector.Ref[E]) error {
	if err := sameShape(a, b.Const()); err != nil {
		return opErrorf(opSubtractUpdate, err)
	}
	e.k.Axpy(-1, a.View(), b.View())

	return nil
}

// ScaleUpdate sets v *= s. A zero scale resets v, so NaN and Inf entries
// become zero.
func (e *Engine[E]) ScaleUpdate(s E, v vector.Ref[E]) {
	switch s {
	case 1:
	case 0:
		v.Reset()
	default:
		e.k.Scal(s, v.View())
	}
}

// ScaleSet sets out = s·a.
func (e *Engine[E]) ScaleSet(s E, a vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, out.Const()); err != nil {
		return opErrorf(opScaleSet, err)
	}
	e.scaleSet(s, a, out)

	return nil
}

// scaleSet is ScaleSet on validated operands.
func (e *Engine[E]) scaleSet(s E, a vector.ConstRef[E], out vector.Ref[E]) {
	switch s {
	case 0:
		out.Reset()
	case 1:
		e.copyInto(a, out)
	default:
		e.k.ScaleCopy(s, a.View(), out.View())
	}
}

// DivideScalarUpdate sets v /= s. A zero divisor fails with
// errs.ErrDivideByZero and leaves v untouched.
func (e *Engine[E]) DivideScalarUpdate(s E, v vector.Ref[E]) error {
	if s == 0 {
		return opErrorf(opDivideScalarUpdate, errs.New(errs.DivideByZero, "vector of size %d divided by zero", v.Size()))
	}
	if s != 1 {
		v.Transform(func(x E) E { return x / s })
	}

	return nil
}

// ElementwiseMultiplySet sets out[i] = a[i]·b[i].
func (e *Engine[E]) ElementwiseMultiplySet(a, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, b, out.Const()); err != nil {
		return opErrorf(opMultiplySet, err)
	}
	e.k.Hadamard(a.View(), b.View(), out.View())

	return nil
}
