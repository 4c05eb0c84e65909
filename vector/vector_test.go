// SPDX-License-Identifier: MIT

package vector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/archive"
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

func TestNorms(t *testing.T) {
	t.Parallel()

	v := vector.ColumnFrom(0.0, 1, 0, -2, 0)
	assert.Equal(t, 2.0, v.Norm0())
	assert.Equal(t, 3.0, v.Norm1())
	assert.InDelta(t, 2.2360679775, v.Norm2(), 1e-9)
	assert.Equal(t, 5.0, v.Norm2Squared())
	assert.Equal(t, 2.0, v.NormInfinity())

	sub, err := v.GetSubVector(2, 2)
	require.NoError(t, err)
	assert.True(t, sub.Equal(vector.ColumnFrom(0.0, -2).Const()))
	assert.Equal(t, 1.0, sub.Norm0())

	empty := vector.NewRow[float32](0)
	assert.Zero(t, empty.Norm1())
	assert.Zero(t, empty.NormInfinity())
	assert.Zero(t, empty.Norm2())
}

func TestNorm2SquaredMatchesNorm2(t *testing.T) {
	t.Parallel()

	v := vector.RowFrom(3.0, -4, 12)
	n := v.Norm2()
	assert.InDelta(t, n*n, v.Norm2Squared(), 1e-9)
}

func TestTransposeSharesStorage(t *testing.T) {
	t.Parallel()

	v := vector.ColumnFrom(1.0, 2, 3)
	r := v.Transpose()
	require.Equal(t, vector.Row, r.Orientation())

	require.NoError(t, r.Set(1, 20))
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, x)

	back := r.Transpose()
	assert.Equal(t, vector.Column, back.Orientation())
	assert.True(t, back.Equal(v.Const()))
}

func TestEqualityRules(t *testing.T) {
	t.Parallel()

	col := vector.ColumnFrom(1.0, 2, 3)
	row := vector.RowFrom(1.0, 2, 3)
	assert.False(t, col.Equal(row.Const()))
	assert.False(t, row.Equal(col.Const()))

	near := vector.ColumnFrom(1.0, 2+1e-10, 3)
	assert.True(t, col.Equal(near.Const()))
	assert.True(t, near.Equal(col.Const()))

	far := vector.ColumnFrom(1.0, 2.1, 3)
	assert.False(t, col.Equal(far.Const()))
	assert.True(t, col.IsEqual(far.Const(), 0.2))

	assert.False(t, col.Equal(vector.ColumnFrom(1.0, 2).Const()))
}

func TestCopyFromValidatesBeforeWriting(t *testing.T) {
	t.Parallel()

	dst := vector.ColumnFrom(9.0, 9, 9)

	err := dst.CopyFrom(vector.ColumnFrom(1.0, 2).Const())
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	err = dst.CopyFrom(vector.RowFrom(1.0, 2, 3).Const())
	require.ErrorIs(t, err, vector.ErrOrientationMismatch)
	assert.Equal(t, []float64{9, 9, 9}, dst.ToArray())

	require.NoError(t, dst.CopyFrom(vector.ColumnFrom(1.0, 2, 3).Const()))
	assert.Equal(t, []float64{1, 2, 3}, dst.ToArray())
}

func TestStridedRefs(t *testing.T) {
	t.Parallel()

	data := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	r, err := vector.NewRef(data, 1, 4, 2, vector.Column)
	require.NoError(t, err)
	assert.False(t, r.IsContiguous())
	assert.Equal(t, []float64{1, 3, 5, 7}, r.ToArray())

	r.Transform(func(x float64) float64 { return -x })
	assert.Equal(t, []float64{0, -1, 2, -3, 4, -5, 6, -7}, data)

	_, err = vector.NewRef(data, 1, 5, 2, vector.Column)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = r.GetSubVector(3, 2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	rev := vector.RefFromView(r.View().Reverse(), vector.Row)
	assert.Equal(t, []float64{-7, -5, -3, -1}, rev.ToArray())
}

func TestGenerateCallsOncePerElement(t *testing.T) {
	t.Parallel()

	v := vector.NewColumn[float64](4)
	calls := 0
	v.Generate(func() float64 {
		calls++
		return float64(calls)
	})
	assert.Equal(t, 4, calls)
	assert.Equal(t, []float64{1, 2, 3, 4}, v.ToArray())

	v.Reset()
	assert.Zero(t, v.Norm1())
	v.Fill(2)
	assert.Equal(t, 8.0, v.Norm1())
}

func TestAtOutOfRange(t *testing.T) {
	t.Parallel()

	if !strided.BoundsChecked {
		t.Skip("bounds checks compiled out")
	}
	v := vector.RowFrom(1.0)
	_, err := v.At(1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), errs.ErrIndexOutOfRange)
}

func TestCloneAsAndConvert(t *testing.T) {
	t.Parallel()

	col := vector.ColumnFrom(1.0, 2, 3)
	row := vector.CloneAs(col.Const(), vector.Row)
	require.Equal(t, vector.Row, row.Orientation())
	require.NoError(t, row.Set(0, 100))
	assert.Equal(t, []float64{1, 2, 3}, col.ToArray())

	clone := vector.Clone(col.Const())
	assert.True(t, clone.Equal(col.Const()))

	f32 := vector.NewColumn[float32](3)
	require.NoError(t, vector.Convert(f32.Ref, col.Const()))
	assert.Equal(t, []float32{1, 2, 3}, f32.ToArray())

	err := vector.Convert(f32.Ref, row.Const())
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestResizeAndSwap(t *testing.T) {
	t.Parallel()

	v := vector.ColumnFrom(1.0, 2, 3)
	old := v.Ref
	require.NoError(t, v.Resize(5))
	assert.Equal(t, []float64{1, 2, 3, 0, 0}, v.ToArray())

	require.NoError(t, old.Set(0, 42))
	x, _ := v.At(0)
	assert.Equal(t, 1.0, x)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []float64{1, 2}, v.ToArray())
	require.ErrorIs(t, v.Resize(-1), errs.ErrInvalidSize)

	w := vector.RowFrom(7.0)
	v.Swap(w)
	assert.Equal(t, vector.Row, v.Orientation())
	assert.Equal(t, []float64{7}, v.ToArray())
	assert.Equal(t, []float64{1, 2}, w.ToArray())

	a, b := v.Ref, w.Ref
	a.Swap(&b)
	assert.Equal(t, []float64{1, 2}, a.ToArray())
}

func TestPrint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []float64
		indent int
		cap    int
		want   string
	}{
		{"all", []float64{1, 2.5, -3}, 0, 10, "[1, 2.5, -3]"},
		{"elided", []float64{1, 2, 3, 4, 5, 6}, 0, 4, "[1, 2, ..., 6]"},
		{"exact cap", []float64{1, 2, 3}, 2, 3, "  [1, 2, 3]"},
		{"empty", nil, 0, 3, "[ ]"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, vector.Print(&buf, vector.FromSlice(tc.values, vector.Row).Const(), tc.indent, tc.cap), tc.name)
		assert.Equal(t, tc.want, buf.String(), tc.name)
	}

	err := vector.Print(&bytes.Buffer{}, vector.RowFrom(1.0).Const(), 0, 2)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	assert.Equal(t, "[0.5, 0.25]", vector.RowFrom[float32](0.5, 0.25).String())
}

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	a := archive.NewMemory()
	src := vector.RowFrom[float32](1.5, -0.1, 3)
	require.NoError(t, vector.Write(src.Const(), "v", a))

	got, err := vector.Read[float32]("v", a, vector.Row)
	require.NoError(t, err)
	assert.Equal(t, src.ToArray(), got.ToArray())

	dst := vector.NewRow[float32](3)
	require.NoError(t, vector.ReadInto(dst.Ref, "v", a))
	assert.True(t, dst.Equal(src.Const()))

	err = vector.ReadInto(vector.NewRow[float32](2).Ref, "v", a)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)

	_, err = vector.Read[float64]("missing", a, vector.Row)
	require.ErrorIs(t, err, errs.ErrBadFormat)
}
