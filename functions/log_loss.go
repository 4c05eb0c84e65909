// SPDX-License-Identifier: MIT

package functions

import (
	"math"

	"github.com/katalvlaran/linalg/logger"
)

const (
	// LogLossSmoothness is the smoothness constant of the logistic loss:
	// its derivative is 1/4-Lipschitz.
	LogLossSmoothness = 0.25

	conjugateBoundary         = 1e-12
	conjugateProxPrecision    = 1e-6
	conjugateProxMaxIteration = 20

	// Below this margin log(1+exp(-m)) equals -m in float64.
	marginCutoff = -37.0
)

// LogLoss is ℓ(p, y) = log(1 + exp(-p·y)) for a prediction p and a label y in {-1, +1}.
type LogLoss struct{}

// Smoothness returns LogLossSmoothness.
func (LogLoss) Smoothness() float64 { return LogLossSmoothness }

// Value returns the loss of prediction against label.
func (LogLoss) Value(prediction, label float64) float64 {
	margin := prediction * label
	if margin <= marginCutoff {
		return -margin
	}

	return math.Log1p(math.Exp(-margin))
}

// Derivative returns ∂ℓ/∂p.
func (LogLoss) Derivative(prediction, label float64) float64 {
	margin := prediction * label
	if margin <= 0 {
		return -label / (1 + math.Exp(margin))
	}
	e := math.Exp(-margin)

	return -label * e / (1 + e)
}

// Conjugate returns ℓ*(dual, label). It is finite only for dual·label in
// [-1, 0] and +Inf elsewhere.
func (LogLoss) Conjugate(dual, label float64) float64 {
	x := dual * label
	switch {
	case x < -1 || x > 0:
		return math.Inf(1)
	case x == -1 || x == 0:
		return 0
	}

	return (1+x)*math.Log1p(x) + (-x)*math.Log(-x)
}

// ConjugateProx returns argmin_b σ·ℓ*(b, label) + ½(b - dual)².
//
// The minimizer lies strictly inside the conjugate's domain; the Newton
// iterate is kept within conjugateBoundary of its ends and stops once the
// optimality residual drops below conjugateProxPrecision or after
// conjugateProxMaxIteration steps.
func (LogLoss) ConjugateProx(sigma, dual, label float64) float64 {
	lower, upper := conjugateBoundary-1, -conjugateBoundary
	x := dual * label
	b := math.Min(upper, math.Max(lower, x))

	for k := 0; k < conjugateProxMaxIteration; k++ {
		f := b - x + sigma*math.Log((1+b)/(-b))
		if math.Abs(f) <= conjugateProxPrecision {
			return b * label
		}
		df := 1 - sigma/(b*(1+b))
		b = math.Min(upper, math.Max(lower, b-f/df))
	}
	logger.Sugar().Debugw("LogLoss.ConjugateProx: iteration limit reached",
		"sigma", sigma, "dual", dual, "label", label, "iterate", b)

	return b * label
}
