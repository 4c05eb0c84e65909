// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/strided"
)

// Vector owns a contiguous buffer and exposes it through the embedded Ref.
type Vector[E Float] struct {
	Ref[E]
	data []E
}

func adopt[E Float](data []E, o Orientation) *Vector[E] {
	return &Vector[E]{Ref: RefFromView(strided.Contiguous(data), o), data: data}
}

// Make allocates a zeroed vector of size n. A negative size panics, as make does.
func Make[E Float](n int, o Orientation) *Vector[E] {
	return adopt(make([]E, n), o)
}

// NewColumn allocates a zeroed column vector.
func NewColumn[E Float](n int) *Vector[E] { return Make[E](n, Column) }

// NewRow allocates a zeroed row vector.
func NewRow[E Float](n int) *Vector[E] { return Make[E](n, Row) }

// ColumnFrom builds a column vector holding values.
func ColumnFrom[E Float](values ...E) *Vector[E] { return FromSlice(values, Column) }

// RowFrom builds a row vector holding values.
func RowFrom[E Float](values ...E) *Vector[E] { return FromSlice(values, Row) }

// FromSlice copies values into a new vector.
func FromSlice[E Float](values []E, o Orientation) *Vector[E] {
	data := make([]E, len(values))
	copy(data, values)

	return adopt(data, o)
}

// Adopt takes ownership of data without copying. The caller must not keep
// writing to data through other paths.
func Adopt[E Float](data []E, o Orientation) *Vector[E] {
	return adopt(data, o)
}

// Clone copies src into a new vector with the same orientation.
func Clone[E Float](src ConstRef[E]) *Vector[E] {
	return CloneAs(src, src.orientation)
}

// CloneAs copies src into a new vector of orientation o. Converting a row
// into a column this way copies the elements; it never aliases src.
func CloneAs[E Float](src ConstRef[E], o Orientation) *Vector[E] {
	return adopt(src.ToArray(), o)
}

// Ones returns a vector of size n filled with 1.
func Ones[E Float](n int, o Orientation) *Vector[E] {
	v := Make[E](n, o)
	v.Fill(1)

	return v
}

// Data returns the owned buffer.
func (v *Vector[E]) Data() []E { return v.data }

// Resize changes the size, keeping the common prefix and zero-filling growth.
// References obtained before Resize keep the old buffer and no longer alias v.
func (v *Vector[E]) Resize(n int) error {
	if n < 0 {
		return refErrorf("Resize", errs.New(errs.InvalidSize, "size %d", n))
	}
	if n == len(v.data) {
		return nil
	}
	data := make([]E, n)
	copy(data, v.data)
	*v = *adopt(data, v.orientation)

	return nil
}

// Swap exchanges the buffers and orientations of v and other.
func (v *Vector[E]) Swap(other *Vector[E]) {
	*v, *other = *other, *v
}
