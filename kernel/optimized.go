// SPDX-License-Identifier: MIT

package kernel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/linalg/strided"
)

// OptimizedKernel routes operations to gonum BLAS and algo-vecmath.
// Operands BLAS cannot address are handled by the native loops.
type OptimizedKernel[E strided.Float] struct {
	native NativeKernel[E]
}

// Implementation returns Optimized.
func (OptimizedKernel[E]) Implementation() Implementation { return Optimized }

// positive returns a view over the same elements with a positive stride.
// Order-insensitive routines use it because gonum treats a negative
// increment as a no-op for Dasum, Dnrm2 and Dscal.
func positive[E strided.Float](x strided.View[E]) strided.View[E] {
	if x.Stride() < 0 {
		return x.Reverse()
	}

	return x
}

// forward returns x when its stride is positive and otherwise a contiguous
// copy in element order. Level 2 routines take only forward operands; Dger
// leaves A untouched for negative increments.
func forward[E strided.Float](x strided.View[E]) strided.View[E] {
	if x.Stride() > 0 {
		return x
	}
	buf := make([]E, x.Len())
	x.Do(func(i int, v E) bool {
		buf[i] = v
		return true
	})

	return strided.Contiguous(buf)
}

// contiguous64 returns the exact float64 window of x when x is contiguous.
func contiguous64[E strided.Float](x strided.View[E]) ([]float64, bool) {
	if !x.IsContiguous() {
		return nil, false
	}
	d, ok := any(x.Data()).([]float64)
	if !ok {
		return nil, false
	}

	return d[x.Offset() : x.Offset()+x.Len()], true
}

func (k OptimizedKernel[E]) Copy(x, y strided.View[E]) {
	mustSameLength("Copy", x.Len(), y.Len())
	n := x.Len()
	if n == 0 {
		return
	}
	xs, incX := x.BLAS()
	ys, incY := y.BLAS()
	if xd, ok := any(xs).([]float64); ok {
		blas64.Implementation().Dcopy(n, xd, incX, any(ys).([]float64), incY)
		return
	}
	blas32.Implementation().Scopy(n, any(xs).([]float32), incX, any(ys).([]float32), incY)
}

func (k OptimizedKernel[E]) Asum(x strided.View[E]) E {
	n := x.Len()
	if n == 0 {
		return 0
	}
	xs, inc := positive(x).BLAS()
	if xd, ok := any(xs).([]float64); ok {
		return E(blas64.Implementation().Dasum(n, xd, inc))
	}

	return E(blas32.Implementation().Sasum(n, any(xs).([]float32), inc))
}

func (k OptimizedKernel[E]) Nrm2(x strided.View[E]) E {
	n := x.Len()
	if n == 0 {
		return 0
	}
	xs, inc := positive(x).BLAS()
	if xd, ok := any(xs).([]float64); ok {
		return E(blas64.Implementation().Dnrm2(n, xd, inc))
	}

	return E(blas32.Implementation().Snrm2(n, any(xs).([]float32), inc))
}

func (k OptimizedKernel[E]) Scal(alpha E, x strided.View[E]) {
	n := x.Len()
	if n == 0 {
		return
	}
	xs, inc := positive(x).BLAS()
	if xd, ok := any(xs).([]float64); ok {
		blas64.Implementation().Dscal(n, float64(alpha), xd, inc)
		return
	}
	blas32.Implementation().Sscal(n, float32(alpha), any(xs).([]float32), inc)
}

func (k OptimizedKernel[E]) Axpy(alpha E, x, y strided.View[E]) {
	mustSameLength("Axpy", x.Len(), y.Len())
	n := x.Len()
	if n == 0 || alpha == 0 {
		return
	}
	xs, incX := x.BLAS()
	ys, incY := y.BLAS()
	if xd, ok := any(xs).([]float64); ok {
		blas64.Implementation().Daxpy(n, float64(alpha), xd, incX, any(ys).([]float64), incY)
		return
	}
	blas32.Implementation().Saxpy(n, float32(alpha), any(xs).([]float32), incX, any(ys).([]float32), incY)
}

func (k OptimizedKernel[E]) Axpby(alpha E, x strided.View[E], beta E, y strided.View[E]) {
	mustSameLength("Axpby", x.Len(), y.Len())
	if beta == 0 {
		k.ScaleCopy(alpha, x, y)
		return
	}
	if sameWindow(x, y) {
		k.Scal(alpha+beta, y)
		return
	}
	k.Scal(beta, y)
	k.Axpy(alpha, x, y)
}

func (k OptimizedKernel[E]) Add(x, y strided.View[E]) {
	mustSameLength("Add", x.Len(), y.Len())
	if xd, ok := contiguous64(x); ok {
		if yd, ok := contiguous64(y); ok {
			vecmath.AddBlockInPlace(yd, xd)
			return
		}
	}
	k.Axpy(1, x, y)
}

func (k OptimizedKernel[E]) ScaleCopy(alpha E, x, y strided.View[E]) {
	mustSameLength("ScaleCopy", x.Len(), y.Len())
	if xd, ok := contiguous64(x); ok {
		if yd, ok := contiguous64(y); ok {
			vecmath.ScaleBlock(yd, xd, float64(alpha))
			return
		}
	}
	if sameWindow(x, y) {
		k.Scal(alpha, y)
		return
	}
	k.Copy(x, y)
	k.Scal(alpha, y)
}

func (k OptimizedKernel[E]) Dot(x, y strided.View[E]) E {
	mustSameLength("Dot", x.Len(), y.Len())
	n := x.Len()
	if n == 0 {
		return 0
	}
	xs, incX := x.BLAS()
	ys, incY := y.BLAS()
	if xd, ok := any(xs).([]float64); ok {
		return E(blas64.Implementation().Ddot(n, xd, incX, any(ys).([]float64), incY))
	}

	return E(blas32.Implementation().Sdot(n, any(xs).([]float32), incX, any(ys).([]float32), incY))
}

func (k OptimizedKernel[E]) Hadamard(x, y, out strided.View[E]) {
	mustSameLength("Hadamard", x.Len(), y.Len(), out.Len())
	if xd, ok := contiguous64(x); ok {
		if yd, ok := contiguous64(y); ok {
			if od, ok := contiguous64(out); ok {
				vecmath.MulBlock(od, xd, yd)
				return
			}
		}
	}
	k.native.Hadamard(x, y, out)
}

func (k OptimizedKernel[E]) Ger(alpha E, x, y strided.View[E], a strided.Grid[E]) {
	mustSameLength("Ger rows", x.Len(), a.Rows)
	mustSameLength("Ger cols", y.Len(), a.Cols)
	if alpha == 0 || a.Rows == 0 || a.Cols == 0 {
		return
	}
	if _, ok := a.RowMajor(); !ok {
		if _, ok := a.T().RowMajor(); !ok {
			k.native.Ger(alpha, x, y, a)
			return
		}
		// Aᵀ = alpha·y·xᵀ + Aᵀ
		x, y, a = y, x, a.T()
	}
	x, y = forward(x), forward(y)
	lda, _ := a.RowMajor()
	m, n := a.Rows, a.Cols
	xs, incX := x.BLAS()
	ys, incY := y.BLAS()
	if ad, ok := any(a.Data[a.Offset:]).([]float64); ok {
		blas64.Implementation().Dger(m, n, float64(alpha), any(xs).([]float64), incX, any(ys).([]float64), incY, ad, lda)
		return
	}
	blas32.Implementation().Sger(m, n, float32(alpha), any(xs).([]float32), incX, any(ys).([]float32), incY,
		any(a.Data[a.Offset:]).([]float32), lda)
}

func (k OptimizedKernel[E]) Gemv(alpha E, a strided.Grid[E], x strided.View[E], beta E, y strided.View[E]) {
	mustSameLength("Gemv x", x.Len(), a.Cols)
	mustSameLength("Gemv y", y.Len(), a.Rows)
	if a.Rows == 0 || a.Cols == 0 {
		k.native.Gemv(alpha, a, x, beta, y)
		return
	}
	trans, stored, lda, ok := blasOperand(a)
	if !ok {
		k.native.Gemv(alpha, a, x, beta, y)
		return
	}
	out := forward(y)
	xs, incX := forward(x).BLAS()
	ys, incY := out.BLAS()
	if ad, ok := any(stored.Data[stored.Offset:]).([]float64); ok {
		blas64.Implementation().Dgemv(trans, stored.Rows, stored.Cols, float64(alpha), ad, lda,
			any(xs).([]float64), incX, float64(beta), any(ys).([]float64), incY)
	} else {
		blas32.Implementation().Sgemv(trans, stored.Rows, stored.Cols, float32(alpha), any(stored.Data[stored.Offset:]).([]float32), lda,
			any(xs).([]float32), incX, float32(beta), any(ys).([]float32), incY)
	}
	if y.Stride() < 0 {
		k.native.Copy(out, y)
	}
}

func (k OptimizedKernel[E]) Gemm(alpha E, a, b strided.Grid[E], beta E, c strided.Grid[E]) {
	mustSameLength("Gemm inner", a.Cols, b.Rows)
	mustSameLength("Gemm rows", a.Rows, c.Rows)
	mustSameLength("Gemm cols", b.Cols, c.Cols)
	if a.Rows == 0 || a.Cols == 0 || b.Cols == 0 {
		k.native.Gemm(alpha, a, b, beta, c)
		return
	}
	ldc, ok := c.RowMajor()
	if !ok {
		if _, ok := c.T().RowMajor(); !ok {
			k.native.Gemm(alpha, a, b, beta, c)
			return
		}
		// Cᵀ = alpha·Bᵀ·Aᵀ + beta·Cᵀ
		k.Gemm(alpha, b.T(), a.T(), beta, c.T())
		return
	}
	tA, sa, lda, okA := blasOperand(a)
	tB, sb, ldb, okB := blasOperand(b)
	if !okA || !okB {
		k.native.Gemm(alpha, a, b, beta, c)
		return
	}
	m, n, kk := c.Rows, c.Cols, a.Cols
	if cd, ok := any(c.Data[c.Offset:]).([]float64); ok {
		blas64.Implementation().Dgemm(tA, tB, m, n, kk, float64(alpha),
			any(sa.Data[sa.Offset:]).([]float64), lda,
			any(sb.Data[sb.Offset:]).([]float64), ldb,
			float64(beta), cd, ldc)
		return
	}
	blas32.Implementation().Sgemm(tA, tB, m, n, kk, float32(alpha),
		any(sa.Data[sa.Offset:]).([]float32), lda,
		any(sb.Data[sb.Offset:]).([]float32), ldb,
		float32(beta), any(c.Data[c.Offset:]).([]float32), ldc)
}

// blasOperand expresses g as a row-major BLAS operand: either g itself
// (NoTrans) or its transpose stored row-major (Trans).
func blasOperand[E strided.Float](g strided.Grid[E]) (blas.Transpose, strided.Grid[E], int, bool) {
	if lda, ok := g.RowMajor(); ok {
		return blas.NoTrans, g, lda, true
	}
	if lda, ok := g.T().RowMajor(); ok {
		return blas.Trans, g.T(), lda, true
	}

	return blas.NoTrans, g, 0, false
}

func sameWindow[E strided.Float](x, y strided.View[E]) bool {
	return x.Offset() == y.Offset() && x.Stride() == y.Stride() && x.Len() == y.Len() &&
		len(x.Data()) > 0 && len(y.Data()) > 0 && &x.Data()[0] == &y.Data()[0]
}
