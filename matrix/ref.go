// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

// Ref is a mutable matrix view. It embeds the read-only surface; the
// accessors below shadow their ConstRef counterparts and return mutable
// vectors and sub-matrices.
type Ref[E Float] struct {
	ConstRef[E]
}

// NewRef builds a mutable view over data, see NewConstRef.
func NewRef[E Float](data []E, offset, rows, cols, increment int, layout Layout) (Ref[E], error) {
	c, err := NewConstRef(data, offset, rows, cols, increment, layout)
	if err != nil {
		return Ref[E]{}, err
	}

	return Ref[E]{ConstRef: c}, nil
}

// Const returns the read-only surface.
func (r Ref[E]) Const() ConstRef[E] { return r.ConstRef }

// Set writes element (row, col). Indices are validated only when bounds
// checks are compiled in.
func (r Ref[E]) Set(row, col int, x E) error {
	if strided.BoundsChecked && (row < 0 || row >= r.rows || col < 0 || col >= r.cols) {
		return refErrorf("Set", row, col, ErrOutOfRange)
	}
	r.data[r.offset+row*r.rowIncrement()+col*r.columnIncrement()] = x

	return nil
}

// GetRow returns row i as a mutable row vector.
func (r Ref[E]) GetRow(i int) (vector.Ref[E], error) {
	c, err := r.ConstRef.GetRow(i)
	if err != nil {
		return vector.Ref[E]{}, err
	}

	return vector.RefFromView(c.View(), vector.Row), nil
}

// GetColumn returns column j as a mutable column vector.
func (r Ref[E]) GetColumn(j int) (vector.Ref[E], error) {
	c, err := r.ConstRef.GetColumn(j)
	if err != nil {
		return vector.Ref[E]{}, err
	}

	return vector.RefFromView(c.View(), vector.Column), nil
}

// GetDiagonal returns the main diagonal as a mutable column vector.
func (r Ref[E]) GetDiagonal() vector.Ref[E] {
	return vector.RefFromView(r.ConstRef.GetDiagonal().View(), vector.Column)
}

// GetMajorVector returns the i-th contiguous run as a mutable vector.
func (r Ref[E]) GetMajorVector(i int) (vector.Ref[E], error) {
	c, err := r.ConstRef.GetMajorVector(i)
	if err != nil {
		return vector.Ref[E]{}, err
	}

	return vector.RefFromView(c.View(), c.Orientation()), nil
}

func (r Ref[E]) majorVector(i int) vector.Ref[E] {
	c := r.ConstRef.majorVector(i)
	return vector.RefFromView(c.View(), c.Orientation())
}

func (r Ref[E]) row(i int) vector.Ref[E] {
	return vector.RefFromView(r.ConstRef.row(i).View(), vector.Row)
}

// GetSubMatrix returns a mutable block, see ConstRef.GetSubMatrix.
func (r Ref[E]) GetSubMatrix(firstRow, firstCol, numRows, numCols int) (Ref[E], error) {
	c, err := r.ConstRef.GetSubMatrix(firstRow, firstCol, numRows, numCols)
	if err != nil {
		return Ref[E]{}, err
	}

	return Ref[E]{ConstRef: c}, nil
}

// Transpose returns the mutable transposed view over the same storage.
func (r Ref[E]) Transpose() Ref[E] { return Ref[E]{ConstRef: r.ConstRef.Transpose()} }

// ReferenceAsVector flattens a contiguous matrix into one mutable vector.
func (r Ref[E]) ReferenceAsVector() (vector.Ref[E], error) {
	c, err := r.ConstRef.ReferenceAsVector()
	if err != nil {
		return vector.Ref[E]{}, err
	}

	return vector.RefFromView(c.View(), c.Orientation()), nil
}

// Fill sets every element to x.
func (r Ref[E]) Fill(x E) {
	for i := 0; i < r.MinorSize(); i++ {
		r.majorVector(i).Fill(x)
	}
}

// Reset sets every element to zero.
func (r Ref[E]) Reset() { r.Fill(0) }

// Generate assigns gen() to every element in storage order (major vector by
// major vector), calling gen exactly once per element.
func (r Ref[E]) Generate(gen func() E) {
	for i := 0; i < r.MinorSize(); i++ {
		r.majorVector(i).Generate(gen)
	}
}

// Transform replaces each element x with fn(x).
func (r Ref[E]) Transform(fn func(E) E) {
	for i := 0; i < r.MinorSize(); i++ {
		r.majorVector(i).Transform(fn)
	}
}

// CopyFrom copies src into r. Shapes must match; layouts may differ, in
// which case the copy proceeds row by row. No element is written when the
// shapes disagree.
func (r Ref[E]) CopyFrom(src ConstRef[E]) error {
	if err := ValidateSameShape(r.ConstRef, src); err != nil {
		return refErrorf("CopyFrom", src.rows, src.cols, err)
	}
	if r.layout == src.layout {
		for i := 0; i < r.MinorSize(); i++ {
			if err := r.majorVector(i).CopyFrom(src.majorVector(i)); err != nil {
				return matrixErrorf("CopyFrom", err)
			}
		}
		return nil
	}
	for i := 0; i < r.rows; i++ {
		if err := r.row(i).CopyFrom(src.row(i)); err != nil {
			return matrixErrorf("CopyFrom", err)
		}
	}

	return nil
}

// Swap exchanges the views held by r and other.
func (r *Ref[E]) Swap(other *Ref[E]) { *r, *other = *other, *r }
