// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/archive"
	"github.com/katalvlaran/linalg/errs"
)

// Archive entry suffixes.
const (
	rowsSuffix    = "_rows"
	columnsSuffix = "_columns"
	valuesSuffix  = "_values"
)

// Write stores m under name as "<name>_rows", "<name>_columns" and
// "<name>_values"; values are written row by row so any layout can read them.
func Write[E Float](m ConstRef[E], name string, a archive.Archiver) error {
	if err := a.WriteInt(name+rowsSuffix, m.rows); err != nil {
		return matrixErrorf("Write", err)
	}
	if err := a.WriteInt(name+columnsSuffix, m.cols); err != nil {
		return matrixErrorf("Write", err)
	}
	values := make([]float64, 0, m.Size())
	for _, x := range m.RowMajorArray() {
		values = append(values, float64(x))
	}
	if err := a.WriteFloats(name+valuesSuffix, values); err != nil {
		return matrixErrorf("Write", err)
	}

	return nil
}

// Read loads the matrix stored under name into a new matrix of the given layout.
//
// Errors:
//   - errors from the Unarchiver for missing or mistyped entries.
//   - ErrCorruptArchive when the stored values disagree with the stored shape.
func Read[E Float](name string, u archive.Unarchiver, layout Layout) (*Matrix[E], error) {
	rows, err := u.ReadInt(name + rowsSuffix)
	if err != nil {
		return nil, matrixErrorf("Read", err)
	}
	cols, err := u.ReadInt(name + columnsSuffix)
	if err != nil {
		return nil, matrixErrorf("Read", err)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("Read", errs.New(errs.BadFormat, "stored shape %dx%d", rows, cols))
	}
	values, err := u.ReadFloats(name + valuesSuffix)
	if err != nil {
		return nil, matrixErrorf("Read", err)
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("Read", errs.New(errs.BadFormat, "%d values for %dx%d", len(values), rows, cols))
	}

	m := adopt(make([]E, rows*cols), rows, cols, layout)
	for i := 0; i < rows; i++ {
		row := m.row(i)
		for j := 0; j < cols; j++ {
			row.View().Put(j, E(values[i*cols+j]))
		}
	}

	return m, nil
}
