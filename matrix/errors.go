// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel is an errs value, so callers may match either the matrix
// name or the errs name with errors.Is, and errs.CategoryOf reports the
// family. Public methods wrap sentinels with their method tag through
// refErrorf; tests MUST check them via errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/errs"
)

// ERROR PRIORITY (documented, enforced in tests):
// negative shape -> storage bounds -> dimension mismatch -> index range.
// Every shape check runs before the first element is written.

var (
	// ErrBadShape is returned when a requested shape or increment is invalid
	// (negative dimensions, increment below the major size).
	ErrBadShape = errs.ErrInvalidSize

	// ErrOutOfRange indicates that an index, window or storage span is outside
	// valid bounds. At/Set report it only when bounds checks are compiled in;
	// GetRow, GetColumn and GetSubMatrix always report it.
	ErrOutOfRange = errs.ErrIndexOutOfRange

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., CopyFrom between different shapes or ragged initializer rows.
	ErrDimensionMismatch = errs.ErrSizeMismatch

	// ErrNotContiguous is returned by ReferenceAsVector on a padded or
	// sub-matrix reference.
	ErrNotContiguous = errs.ErrInvalidArgument

	// ErrCorruptArchive indicates stored rows/columns/values that do not agree.
	ErrCorruptArchive = errs.ErrBadFormat
)

// refErrorf tags err with the method and, when meaningful, the (row, col)
// that caused it.
func refErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf tags err with a free-form context string.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}
