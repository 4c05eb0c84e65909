// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrNotSquare is returned when a factorization receives a non-square matrix.
	ErrNotSquare = matrix.ErrDimensionMismatch

	// ErrSingular is returned when a zero pivot is met.
	ErrSingular = errs.ErrDivideByZero

	// ErrNotSymmetric is returned by Eigen when A[i][j] and A[j][i] differ by more than tol.
	ErrNotSymmetric = errs.ErrInvalidArgument

	// ErrEigenFailed is returned when Jacobi sweeps do not converge within maxIter.
	ErrEigenFailed = errs.ErrDidNotConverge
)

func decomposeErrorf(op string, err error) error {
	return fmt.Errorf("decompose.%s: %w", op, err)
}

func squareOrFail[E matrix.Float](op string, a matrix.ConstRef[E]) error {
	if a.NumRows() != a.NumColumns() {
		return decomposeErrorf(op, errs.New(errs.SizeMismatch, "non-square %dx%d", a.NumRows(), a.NumColumns()))
	}

	return nil
}
