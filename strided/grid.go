// SPDX-License-Identifier: MIT

package strided

// Grid is the raw two-dimensional descriptor consumed by kernels: element
// (i, j) lives at Data[Offset+i*RowStride+j*ColStride]. Grids are produced
// by matrix references and carry no validation of their own.
type Grid[E Float] struct {
	Data      []E
	Offset    int
	Rows      int
	Cols      int
	RowStride int
	ColStride int
}

// Index maps (i, j) to a storage position.
func (g Grid[E]) Index(i, j int) int { return g.Offset + i*g.RowStride + j*g.ColStride }

// At returns element (i, j) without validation.
func (g Grid[E]) At(i, j int) E { return g.Data[g.Index(i, j)] }

// Row returns row i as a view.
func (g Grid[E]) Row(i int) View[E] {
	return View[E]{data: g.Data, offset: g.Offset + i*g.RowStride, length: g.Cols, stride: nonZero(g.ColStride)}
}

// Col returns column j as a view.
func (g Grid[E]) Col(j int) View[E] {
	return View[E]{data: g.Data, offset: g.Offset + j*g.ColStride, length: g.Rows, stride: nonZero(g.RowStride)}
}

// T returns the transposed descriptor over the same storage.
func (g Grid[E]) T() Grid[E] {
	return Grid[E]{
		Data:      g.Data,
		Offset:    g.Offset,
		Rows:      g.Cols,
		Cols:      g.Rows,
		RowStride: g.ColStride,
		ColStride: g.RowStride,
	}
}

// RowMajor reports whether the grid is addressable as a row-major BLAS
// operand and returns its leading dimension.
func (g Grid[E]) RowMajor() (lda int, ok bool) {
	if g.ColStride != 1 && g.Cols > 1 {
		return 0, false
	}
	lda = g.RowStride
	if g.Rows <= 1 {
		lda = max(lda, g.Cols, 1)
	}
	if lda < max(1, g.Cols) {
		return 0, false
	}

	return lda, true
}

func nonZero(s int) int {
	if s == 0 {
		return 1
	}

	return s
}
