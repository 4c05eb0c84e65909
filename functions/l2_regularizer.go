// SPDX-License-Identifier: MIT

package functions

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// L2Regularizer is r(w, b) = ½(‖w‖² + b²).
type L2Regularizer[E vector.Float] struct{}

// Value returns ½(‖w‖² + b²).
func (L2Regularizer[E]) Value(w vector.ConstRef[E], b E) E {
	return (w.Norm2Squared() + b*b) / 2
}

// Conjugate returns r*(v, d). The regularizer is self-conjugate.
func (r L2Regularizer[E]) Conjugate(v vector.ConstRef[E], d E) E {
	return r.Value(v, d)
}

// ConjugateGradient writes ∇r*(v) into w, which must match v in shape.
func (L2Regularizer[E]) ConjugateGradient(v vector.ConstRef[E], w vector.Ref[E]) error {
	if err := w.CopyFrom(v); err != nil {
		return fmt.Errorf("L2Regularizer.ConjugateGradient: %w", err)
	}

	return nil
}

// ConjugateGradientWithBias writes the vector part of ∇r*(v, d) into w and
// returns the bias part.
func (r L2Regularizer[E]) ConjugateGradientWithBias(v vector.ConstRef[E], d E, w vector.Ref[E]) (E, error) {
	if err := w.CopyFrom(v); err != nil {
		return 0, fmt.Errorf("L2Regularizer.ConjugateGradientWithBias: %w", err)
	}

	return d, nil
}
