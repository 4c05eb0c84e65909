// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep references and the ops package minimal by delegating shape checks here.
//  - Return errs sentinels (with a validator tag) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Composite validators check in a fixed sequence (rows before columns).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/errs"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape rejects negative dimensions. Zero is a valid dimension.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", errs.New(errs.InvalidSize, "%dx%d", rows, cols))
	}

	return nil
}

// ValidateBlock checks that the numRows×numCols block at (firstRow, firstCol)
// lies inside a rows×cols matrix.
func ValidateBlock(rows, cols, firstRow, firstCol, numRows, numCols int) error {
	if firstRow < 0 || numRows < 0 || firstRow+numRows > rows {
		return validatorErrorf("ValidateBlock: Rows",
			errs.New(errs.IndexOutOfRange, "rows [%d, %d) of %d", firstRow, firstRow+numRows, rows))
	}
	if firstCol < 0 || numCols < 0 || firstCol+numCols > cols {
		return validatorErrorf("ValidateBlock: Columns",
			errs.New(errs.IndexOutOfRange, "columns [%d, %d) of %d", firstCol, firstCol+numCols, cols))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape[E, F Float](a ConstRef[E], b ConstRef[F]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", errs.New(errs.SizeMismatch, "%d and %d", a.rows, b.rows))
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", errs.New(errs.SizeMismatch, "%d and %d", a.cols, b.cols))
	}

	return nil
}

// ValidateMulVec ensures y = A·x is well formed: len(x) == cols, len(y) == rows.
func ValidateMulVec[E Float](a ConstRef[E], xLen, yLen int) error {
	if xLen != a.cols {
		return validatorErrorf("ValidateMulVec: x", errs.New(errs.SizeMismatch, "matrix has %d columns, x has %d", a.cols, xLen))
	}
	if yLen != a.rows {
		return validatorErrorf("ValidateMulVec: y", errs.New(errs.SizeMismatch, "matrix has %d rows, y has %d", a.rows, yLen))
	}

	return nil
}

// ValidateMulMat ensures C = A·B is well formed.
func ValidateMulMat[E Float](a, b, c ConstRef[E]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulMat: inner", errs.New(errs.SizeMismatch, "%dx%d times %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	if c.rows != a.rows || c.cols != b.cols {
		return validatorErrorf("ValidateMulMat: result", errs.New(errs.SizeMismatch, "result %dx%d, want %dx%d", c.rows, c.cols, a.rows, b.cols))
	}

	return nil
}

// ValidateOuter ensures A += x·yᵀ is well formed: len(x) == rows, len(y) == cols.
func ValidateOuter[E Float](a ConstRef[E], xLen, yLen int) error {
	if xLen != a.rows || yLen != a.cols {
		return validatorErrorf("ValidateOuter", errs.New(errs.SizeMismatch, "%d×%d outer product into %dx%d", xLen, yLen, a.rows, a.cols))
	}

	return nil
}
