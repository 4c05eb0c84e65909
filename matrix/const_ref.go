// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

// DefaultTolerance is the elementwise tolerance used by Equal.
const DefaultTolerance = vector.DefaultTolerance

// ConstRef is a read-only view of a dense matrix. Major vectors (rows in
// RowMajor, columns in ColumnMajor) are contiguous and start increment
// elements apart; increment >= major size, with equality meaning the whole
// matrix is one contiguous block.
type ConstRef[E Float] struct {
	data      []E
	offset    int
	rows      int
	cols      int
	increment int
	layout    Layout
}

// NewConstRef builds a read-only view over data. Element (i, j) lives at
// data[offset + i*rowIncrement + j*columnIncrement], where the increments
// follow from layout and increment.
//
// Implementation:
//   - Stage 1: reject negative shapes and increments below the major size.
//   - Stage 2: verify the last addressed element is inside data.
//
// Errors:
//   - ErrBadShape for negative dimensions or a short increment.
//   - ErrOutOfRange when the view would read past data.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewConstRef[E Float](data []E, offset, rows, cols, increment int, layout Layout) (ConstRef[E], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return ConstRef[E]{}, matrixErrorf("NewConstRef", err)
	}
	p := layout.policy()
	major, minor := p.MajorSize(rows, cols), p.MinorSize(rows, cols)
	if increment < major || offset < 0 {
		return ConstRef[E]{}, matrixErrorf("NewConstRef",
			errs.New(errs.InvalidSize, "increment %d below major size %d", increment, major))
	}
	if major > 0 && minor > 0 {
		last := offset + (minor-1)*increment + major - 1
		if last >= len(data) {
			return ConstRef[E]{}, matrixErrorf("NewConstRef",
				errs.New(errs.IndexOutOfRange, "element %d exceeds storage of %d", last, len(data)))
		}
	}

	return ConstRef[E]{data: data, offset: offset, rows: rows, cols: cols, increment: increment, layout: layout}, nil
}

// NumRows returns the number of rows.
func (c ConstRef[E]) NumRows() int { return c.rows }

// NumColumns returns the number of columns.
func (c ConstRef[E]) NumColumns() int { return c.cols }

// Size returns rows*cols.
func (c ConstRef[E]) Size() int { return c.rows * c.cols }

// Increment returns the distance between consecutive major vectors.
func (c ConstRef[E]) Increment() int { return c.increment }

// Layout returns the storage layout.
func (c ConstRef[E]) Layout() Layout { return c.layout }

// MajorSize returns the length of each major vector.
func (c ConstRef[E]) MajorSize() int { return c.layout.policy().MajorSize(c.rows, c.cols) }

// MinorSize returns the number of major vectors.
func (c ConstRef[E]) MinorSize() int { return c.layout.policy().MinorSize(c.rows, c.cols) }

// IsContiguous reports whether the major vectors are packed with no gaps.
func (c ConstRef[E]) IsContiguous() bool { return c.increment == c.MajorSize() }

func (c ConstRef[E]) rowIncrement() int    { return c.layout.policy().RowIncrement(c.increment) }
func (c ConstRef[E]) columnIncrement() int { return c.layout.policy().ColumnIncrement(c.increment) }

// Grid exposes the raw descriptor for kernels.
func (c ConstRef[E]) Grid() strided.Grid[E] {
	return strided.Grid[E]{
		Data:      c.data,
		Offset:    c.offset,
		Rows:      c.rows,
		Cols:      c.cols,
		RowStride: c.rowIncrement(),
		ColStride: c.columnIncrement(),
	}
}

// view builds a strided view known to be inside storage.
func (c ConstRef[E]) view(offset, length, stride int) strided.View[E] {
	if length <= 1 || stride == 0 {
		stride = 1
	}
	if length == 0 {
		offset = 0
	}
	v, err := strided.New(c.data, offset, length, stride)
	if err != nil {
		// A valid ConstRef only produces in-bounds windows.
		panic(err)
	}

	return v
}

// At returns element (row, col). Indices are validated only when bounds
// checks are compiled in.
func (c ConstRef[E]) At(row, col int) (E, error) {
	if strided.BoundsChecked && (row < 0 || row >= c.rows || col < 0 || col >= c.cols) {
		return 0, refErrorf("At", row, col, ErrOutOfRange)
	}

	return c.data[c.offset+row*c.rowIncrement()+col*c.columnIncrement()], nil
}

// GetRow returns row i as a read-only row vector sharing storage.
func (c ConstRef[E]) GetRow(i int) (vector.ConstRef[E], error) {
	if i < 0 || i >= c.rows {
		return vector.ConstRef[E]{}, refErrorf("GetRow", i, 0, ErrOutOfRange)
	}

	return vector.FromView(c.view(c.offset+i*c.rowIncrement(), c.cols, c.columnIncrement()), vector.Row), nil
}

// GetColumn returns column j as a read-only column vector sharing storage.
func (c ConstRef[E]) GetColumn(j int) (vector.ConstRef[E], error) {
	if j < 0 || j >= c.cols {
		return vector.ConstRef[E]{}, refErrorf("GetColumn", 0, j, ErrOutOfRange)
	}

	return vector.FromView(c.view(c.offset+j*c.columnIncrement(), c.rows, c.rowIncrement()), vector.Column), nil
}

// GetDiagonal returns the main diagonal, min(rows, cols) elements with
// stride increment+1, as a column vector sharing storage.
func (c ConstRef[E]) GetDiagonal() vector.ConstRef[E] {
	return vector.FromView(c.view(c.offset, min(c.rows, c.cols), c.increment+1), vector.Column)
}

// GetMajorVector returns the i-th contiguous run: a row vector in RowMajor,
// a column vector in ColumnMajor.
func (c ConstRef[E]) GetMajorVector(i int) (vector.ConstRef[E], error) {
	p := c.layout.policy()
	if i < 0 || i >= p.MinorSize(c.rows, c.cols) {
		return vector.ConstRef[E]{}, matrixErrorf("GetMajorVector", errs.New(errs.IndexOutOfRange, "index %d", i))
	}

	return vector.FromView(c.view(c.offset+i*c.increment, p.MajorSize(c.rows, c.cols), 1), p.MajorOrientation()), nil
}

// majorVector is GetMajorVector for trusted indices.
func (c ConstRef[E]) majorVector(i int) vector.ConstRef[E] {
	p := c.layout.policy()
	return vector.FromView(c.view(c.offset+i*c.increment, p.MajorSize(c.rows, c.cols), 1), p.MajorOrientation())
}

// row is GetRow for trusted indices.
func (c ConstRef[E]) row(i int) vector.ConstRef[E] {
	return vector.FromView(c.view(c.offset+i*c.rowIncrement(), c.cols, c.columnIncrement()), vector.Row)
}

// GetSubMatrix returns the numRows×numCols block whose top-left element is
// (firstRow, firstCol), sharing storage and layout with c.
func (c ConstRef[E]) GetSubMatrix(firstRow, firstCol, numRows, numCols int) (ConstRef[E], error) {
	if err := ValidateBlock(c.rows, c.cols, firstRow, firstCol, numRows, numCols); err != nil {
		return ConstRef[E]{}, refErrorf("GetSubMatrix", firstRow, firstCol, err)
	}
	sub := c
	sub.offset = c.offset + firstRow*c.rowIncrement() + firstCol*c.columnIncrement()
	sub.rows, sub.cols = numRows, numCols

	return sub, nil
}

// Transpose returns the transposed view: rows and columns swap, the layout
// flips and the storage is shared.
func (c ConstRef[E]) Transpose() ConstRef[E] {
	t := c
	t.rows, t.cols = c.cols, c.rows
	t.layout = c.layout.Transposed()

	return t
}

// ReferenceAsVector flattens a contiguous matrix into one vector in storage
// order: a row vector for RowMajor, a column vector for ColumnMajor.
func (c ConstRef[E]) ReferenceAsVector() (vector.ConstRef[E], error) {
	if !c.IsContiguous() {
		return vector.ConstRef[E]{}, matrixErrorf("ReferenceAsVector",
			errs.New(errs.InvalidArgument, "increment %d exceeds major size %d", c.increment, c.MajorSize()))
	}

	return vector.FromView(c.view(c.offset, c.Size(), 1), c.layout.policy().MajorOrientation()), nil
}

// ToArray concatenates the major vectors into a new slice (storage order).
func (c ConstRef[E]) ToArray() []E {
	out := make([]E, 0, c.Size())
	for i := 0; i < c.MinorSize(); i++ {
		out = append(out, c.majorVector(i).ToArray()...)
	}

	return out
}

// RowMajorArray returns the elements row by row regardless of layout.
func (c ConstRef[E]) RowMajorArray() []E {
	out := make([]E, 0, c.Size())
	for i := 0; i < c.rows; i++ {
		out = append(out, c.row(i).ToArray()...)
	}

	return out
}

// IsEqual reports whether other has the same shape and every element
// differs by at most tolerance. Layouts may differ.
func (c ConstRef[E]) IsEqual(other ConstRef[E], tolerance E) bool {
	if c.rows != other.rows || c.cols != other.cols {
		return false
	}
	if c.layout == other.layout {
		for i := 0; i < c.MinorSize(); i++ {
			if !c.majorVector(i).IsEqual(other.majorVector(i), tolerance) {
				return false
			}
		}
		return true
	}
	for i := 0; i < c.rows; i++ {
		if !c.row(i).IsEqual(other.row(i), tolerance) {
			return false
		}
	}

	return true
}

// Equal is IsEqual with DefaultTolerance.
func (c ConstRef[E]) Equal(other ConstRef[E]) bool {
	return c.IsEqual(other, E(DefaultTolerance))
}

// String renders every row, see Print.
func (c ConstRef[E]) String() string {
	return Sprint(c, 0, math.MaxInt)
}
