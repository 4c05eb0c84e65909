// SPDX-License-Identifier: MIT

// Package matrix: layout types and the layout policy that every bulk
// operation is written against. Row-major and column-major references share
// one implementation; the policy supplies the few numbers that differ.
package matrix

import (
	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

// Float is the element constraint (float32 or float64).
type Float = strided.Float

// Layout selects how rows and columns map to storage.
type Layout uint8

const (
	// RowMajor stores each row contiguously; rows are increment apart.
	RowMajor Layout = iota
	// ColumnMajor stores each column contiguously; columns are increment apart.
	ColumnMajor
)

// Transposed returns the opposite layout.
func (l Layout) Transposed() Layout {
	if l == RowMajor {
		return ColumnMajor
	}

	return RowMajor
}

// String returns "row-major" or "column-major".
func (l Layout) String() string {
	if l == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// layoutPolicy answers the layout-dependent questions. A major vector is a
// contiguous run (a row in row-major, a column in column-major); MajorSize is
// its length and MinorSize is how many of them there are.
type layoutPolicy interface {
	MajorSize(rows, cols int) int
	MinorSize(rows, cols int) int
	RowIncrement(increment int) int
	ColumnIncrement(increment int) int
	MajorOrientation() vector.Orientation
}

type rowMajorPolicy struct{}

func (rowMajorPolicy) MajorSize(_, cols int) int            { return cols }
func (rowMajorPolicy) MinorSize(rows, _ int) int            { return rows }
func (rowMajorPolicy) RowIncrement(increment int) int       { return increment }
func (rowMajorPolicy) ColumnIncrement(int) int              { return 1 }
func (rowMajorPolicy) MajorOrientation() vector.Orientation { return vector.Row }

type columnMajorPolicy struct{}

func (columnMajorPolicy) MajorSize(rows, _ int) int            { return rows }
func (columnMajorPolicy) MinorSize(_, cols int) int            { return cols }
func (columnMajorPolicy) RowIncrement(int) int                 { return 1 }
func (columnMajorPolicy) ColumnIncrement(increment int) int    { return increment }
func (columnMajorPolicy) MajorOrientation() vector.Orientation { return vector.Column }

var (
	_ layoutPolicy = rowMajorPolicy{}
	_ layoutPolicy = columnMajorPolicy{}
)

func (l Layout) policy() layoutPolicy {
	if l == ColumnMajor {
		return columnMajorPolicy{}
	}

	return rowMajorPolicy{}
}
