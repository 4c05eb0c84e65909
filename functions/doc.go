// SPDX-License-Identifier: MIT

// Package functions provides the loss and regularizer functions used by
// dual-coordinate optimizers over linalg vectors.
//
// L2Regularizer is the squared Euclidean norm scaled by one half, together
// with its convex conjugate (itself) and the conjugate gradient (the
// identity). LogLoss is the logistic loss on a margin prediction*label with
// its derivative, convex conjugate and the proximal operator of the
// conjugate, which is solved by a clamped Newton iteration.
//
// Both types are stateless values; the zero value is ready to use and safe
// for concurrent use.
package functions
