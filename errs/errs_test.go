// SPDX-License-Identifier: MIT

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/errs"
)

func TestCodeCategories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code errs.Code
		want errs.Category
	}{
		{errs.IllegalState, errs.Logic},
		{errs.NotInitialized, errs.Logic},
		{errs.FileNotFound, errs.System},
		{errs.FileNotWritable, errs.System},
		{errs.DivideByZero, errs.Numeric},
		{errs.DidNotConverge, errs.Numeric},
		{errs.BadStringFormat, errs.Input},
		{errs.IndexOutOfRange, errs.Input},
		{errs.TypeMismatch, errs.Input},
		{errs.VersionMismatch, errs.Input},
		{errs.BadFormat, errs.DataFormat},
		{errs.AbruptEnd, errs.DataFormat},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.code.Category(), tc.code.String())
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	t.Parallel()

	base := errs.New(errs.SizeMismatch, "sizes %d and %d", 3, 4)
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", base))

	require.ErrorIs(t, wrapped, errs.ErrSizeMismatch)
	require.False(t, errors.Is(wrapped, errs.ErrIndexOutOfRange))
	require.Contains(t, wrapped.Error(), "input: size mismatch: sizes 3 and 4")

	cat, ok := errs.CategoryOf(wrapped)
	require.True(t, ok)
	require.Equal(t, errs.Input, cat)

	code, ok := errs.CodeOf(wrapped)
	require.True(t, ok)
	require.Equal(t, errs.SizeMismatch, code)
}

func TestCategoryOfForeignError(t *testing.T) {
	t.Parallel()

	_, ok := errs.CategoryOf(errors.New("plain"))
	require.False(t, ok)
	require.Equal(t, "numeric: divide by zero", errs.ErrDivideByZero.Error())
}
