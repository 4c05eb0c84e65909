// SPDX-License-Identifier: MIT

package vector

// Orientation tags a vector as a column or a row.
type Orientation uint8

const (
	// Column vectors are n×1.
	Column Orientation = iota
	// Row vectors are 1×n.
	Row
)

// Transposed returns the opposite orientation.
func (o Orientation) Transposed() Orientation {
	if o == Column {
		return Row
	}

	return Column
}

// String returns "column" or "row".
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}
