// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/errs"
)

// Matrix owns a contiguous buffer and exposes it through the embedded Ref.
type Matrix[E Float] struct {
	Ref[E]
	data []E
}

func adopt[E Float](data []E, rows, cols int, layout Layout) *Matrix[E] {
	major := layout.policy().MajorSize(rows, cols)
	return &Matrix[E]{
		Ref: Ref[E]{ConstRef: ConstRef[E]{
			data:      data,
			rows:      rows,
			cols:      cols,
			increment: major,
			layout:    layout,
		}},
		data: data,
	}
}

// New allocates a zeroed rows×cols matrix. Zero dimensions are valid.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(rows*cols) zeroing by runtime, Space O(rows*cols).
func New[E Float](rows, cols int, layout Layout) (*Matrix[E], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}

	return adopt(make([]E, rows*cols), rows, cols, layout), nil
}

// FromRows builds a matrix from row literals. All rows must have the same
// length; a ragged input fails with ErrDimensionMismatch.
func FromRows[E Float](layout Layout, rows [][]E) (*Matrix[E], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, refErrorf("FromRows", i, len(row),
				errs.New(errs.SizeMismatch, "row %d has %d elements, row 0 has %d", i, len(row), cols))
		}
	}
	m := adopt(make([]E, len(rows)*cols), len(rows), cols, layout)
	for i, row := range rows {
		for j, x := range row {
			m.data[m.offset+i*m.rowIncrement()+j*m.columnIncrement()] = x
		}
	}

	return m, nil
}

// FromData adopts data, which must hold rows*cols elements in layout order.
// The caller must not keep writing to data through other paths.
func FromData[E Float](rows, cols int, layout Layout, data []E) (*Matrix[E], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("FromData", err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("FromData", errs.New(errs.SizeMismatch, "%d elements for %dx%d", len(data), rows, cols))
	}

	return adopt(data, rows, cols, layout), nil
}

// NewFrom copies src into a new contiguous matrix of the requested layout.
// The logical contents are preserved whatever the two layouts are.
func NewFrom[E Float](src ConstRef[E], layout Layout) *Matrix[E] {
	m := adopt(make([]E, src.Size()), src.rows, src.cols, layout)
	// Shapes match by construction.
	_ = m.CopyFrom(src)

	return m
}

// Clone copies src into a new matrix with the same layout.
func Clone[E Float](src ConstRef[E]) *Matrix[E] { return NewFrom(src, src.layout) }

// Data returns the owned buffer in layout order.
func (m *Matrix[E]) Data() []E { return m.data }

// Swap exchanges the contents of m and other.
func (m *Matrix[E]) Swap(other *Matrix[E]) { *m, *other = *other, *m }
