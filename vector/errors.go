// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/errs"
)

// Sentinels re-exported for callers that only import vector.
// All of them are errs values; errors.Is works with either name.
var (
	// ErrOutOfRange reports an element index or window outside the vector.
	ErrOutOfRange = errs.ErrIndexOutOfRange

	// ErrSizeMismatch reports operands of different sizes.
	ErrSizeMismatch = errs.ErrSizeMismatch

	// ErrOrientationMismatch reports a row operand where a column was required, or vice versa.
	ErrOrientationMismatch = errs.ErrTypeMismatch

	// ErrInvalidArgument reports a nonsensical argument such as a print cap below 3.
	ErrInvalidArgument = errs.ErrInvalidArgument
)

// refErrorf wraps err with the vector method that produced it.
func refErrorf(method string, err error) error {
	return fmt.Errorf("vector.%s: %w", method, err)
}

// ValidateSameShape fails when a and b differ in orientation or size.
// Orientation is checked first; it is the stronger mismatch.
func ValidateSameShape[E, F Float](a ConstRef[E], b ConstRef[F]) error {
	if a.orientation != b.orientation {
		return errs.New(errs.TypeMismatch, "%s vector against %s vector", a.orientation, b.orientation)
	}
	if a.Size() != b.Size() {
		return errs.New(errs.SizeMismatch, "sizes %d and %d", a.Size(), b.Size())
	}

	return nil
}

// ValidateSameSize fails when a and b differ in size, ignoring orientation.
func ValidateSameSize[E, F Float](a ConstRef[E], b ConstRef[F]) error {
	if a.Size() != b.Size() {
		return errs.New(errs.SizeMismatch, "sizes %d and %d", a.Size(), b.Size())
	}

	return nil
}

// ValidateOrientation fails when v is not of orientation o.
func ValidateOrientation[E Float](v ConstRef[E], o Orientation) error {
	if v.orientation != o {
		return errs.New(errs.TypeMismatch, "expected %s vector, got %s vector", o, v.orientation)
	}

	return nil
}
