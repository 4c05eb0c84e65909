// SPDX-License-Identifier: MIT

// Package decompose provides dense factorizations of square matrices built on
// matrix references and the ops arithmetic layer:
//
//   - LU: Doolittle factorization A = L·U without pivoting.
//   - Solve and Inverse: forward/backward substitution over an LU pair.
//   - QR: Householder factorization A = Q·R.
//   - Eigen: Jacobi rotations for real symmetric matrices.
//
// Results are allocated in the layout of the input. Inner products and
// rank-1 updates go through the default ops engine, so the kernel selected
// at build time (native or optimized) does the arithmetic.
package decompose
