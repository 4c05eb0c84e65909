// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linalg/vector"

// ScaleAddUpdate sets b = sA·a + sB·b.
//
// Fast paths, in order:
//   - sA == 0: b = sB·b.
//   - sA == 1: OneAddUpdate(a, sB, b).
//   - sB == 0: b = sA·a.
//   - sB == 1: ScaleAddUpdateOne(sA, a, b).
//
// Otherwise the backend's axpby runs.
func (e *Engine[E]) ScaleAddUpdate(sA E, a vector.ConstRef[E], sB E, b vector.Ref[E]) error {
	if err := sameShape(a, b.Const()); err != nil {
		return opErrorf(opScaleAddUpdate, err)
	}
	switch {
	case sA == 0:
		e.ScaleUpdate(sB, b)
	case sA == 1:
		e.oneAddUpdate(a, sB, b)
	case sB == 0:
		e.scaleSet(sA, a, b)
	case sB == 1:
		e.scaleAddUpdateOne(sA, a, b)
	default:
		e.k.Axpby(sA, a.View(), sB, b.View())
	}

	return nil
}

// ScaleAddUpdateOne sets b = sA·a + b.
func (e *Engine[E]) ScaleAddUpdateOne(sA E, a vector.ConstRef[E], b vector.Ref[E]) error {
	if err := sameShape(a, b.Const()); err != nil {
		return opErrorf(opScaleAddUpdateOne, err)
	}
	e.scaleAddUpdateOne(sA, a, b)

	return nil
}

func (e *Engine[E]) scaleAddUpdateOne(sA E, a vector.ConstRef[E], b vector.Ref[E]) {
	switch sA {
	case 0:
	case 1:
		e.k.Add(a.View(), b.View())
	default:
		e.k.Axpy(sA, a.View(), b.View())
	}
}

// OneAddUpdate sets b = a + sB·b.
func (e *Engine[E]) OneAddUpdate(a vector.ConstRef[E], sB E, b vector.Ref[E]) error {
	if err := sameShape(a, b.Const()); err != nil {
		return opErrorf(opOneAddUpdate, err)
	}
	e.oneAddUpdate(a, sB, b)

	return nil
}

func (e *Engine[E]) oneAddUpdate(a vector.ConstRef[E], sB E, b vector.Ref[E]) {
	switch sB {
	case 0:
		e.copyInto(a, b)
	case 1:
		e.k.Add(a.View(), b.View())
	default:
		e.k.Axpby(1, a.View(), sB, b.View())
	}
}

// OnesScaleAddUpdate sets b = sA·𝟙 + sB·b, that is b[i] = sA + sB·b[i].
func (e *Engine[E]) OnesScaleAddUpdate(sA, sB E, b vector.Ref[E]) {
	switch {
	case sA == 0:
		e.ScaleUpdate(sB, b)
	case sB == 0:
		b.Fill(sA)
	case sB == 1:
		addScalar(sA, b.View())
	default:
		e.k.Scal(sB, b.View())
		addScalar(sA, b.View())
	}
}

// ScaleAddSet sets out = sA·a + sB·b. The fast paths mirror ScaleAddUpdate.
func (e *Engine[E]) ScaleAddSet(sA E, a vector.ConstRef[E], sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, b, out.Const()); err != nil {
		return opErrorf(opScaleAddSet, err)
	}
	switch {
	case sA == 0:
		e.scaleSet(sB, b, out)
	case sA == 1:
		e.oneAddSet(a, sB, b, out)
	case sB == 0:
		e.scaleSet(sA, a, out)
	case sB == 1:
		e.scaleAddSetOne(sA, a, b, out)
	case sameWindow(a.View(), out.View()):
		e.k.Axpby(sB, b.View(), sA, out.View())
	case sameWindow(b.View(), out.View()):
		e.k.Axpby(sA, a.View(), sB, out.View())
	default:
		e.k.ScaleCopy(sB, b.View(), out.View())
		e.k.Axpy(sA, a.View(), out.View())
	}

	return nil
}

// ScaleAddSetOne sets out = sA·a + b.
func (e *Engine[E]) ScaleAddSetOne(sA E, a, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, b, out.Const()); err != nil {
		return opErrorf(opScaleAddSetOne, err)
	}
	e.scaleAddSetOne(sA, a, b, out)

	return nil
}

func (e *Engine[E]) scaleAddSetOne(sA E, a, b vector.ConstRef[E], out vector.Ref[E]) {
	switch {
	case sA == 0:
		e.copyInto(b, out)
	case sA == 1:
		e.addSet(a, b, out)
	case sameWindow(a.View(), out.View()):
		e.k.Axpby(1, b.View(), sA, out.View())
	default:
		e.copyInto(b, out)
		e.k.Axpy(sA, a.View(), out.View())
	}
}

// OneAddSet sets out = a + sB·b.
func (e *Engine[E]) OneAddSet(a vector.ConstRef[E], sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, b, out.Const()); err != nil {
		return opErrorf(opOneAddSet, err)
	}
	e.oneAddSet(a, sB, b, out)

	return nil
}

func (e *Engine[E]) oneAddSet(a vector.ConstRef[E], sB E, b vector.ConstRef[E], out vector.Ref[E]) {
	switch {
	case sB == 0:
		e.copyInto(a, out)
	case sB == 1:
		e.addSet(a, b, out)
	case sameWindow(b.View(), out.View()):
		e.k.Axpby(1, a.View(), sB, out.View())
	default:
		e.copyInto(a, out)
		e.k.Axpy(sB, b.View(), out.View())
	}
}

// OnesScaleAddSet sets out[i] = sA + sB·b[i].
func (e *Engine[E]) OnesScaleAddSet(sA, sB E, b vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(b, out.Const()); err != nil {
		return opErrorf(opOnesScaleAddSet, err)
	}
	e.scaleSet(sB, b, out)
	if sA != 0 {
		addScalar(sA, out.View())
	}

	return nil
}
