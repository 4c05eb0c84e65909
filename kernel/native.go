// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/linalg/strided"
)

// NativeKernel is the portable loop backend.
type NativeKernel[E strided.Float] struct{}

// Implementation returns Native.
func (NativeKernel[E]) Implementation() Implementation { return Native }

func (NativeKernel[E]) Copy(x, y strided.View[E]) {
	mustSameLength("Copy", x.Len(), y.Len())
	for i := 0; i < x.Len(); i++ {
		y.Put(i, x.Get(i))
	}
}

func (NativeKernel[E]) Asum(x strided.View[E]) E {
	var s float64
	for i := 0; i < x.Len(); i++ {
		s += math.Abs(float64(x.Get(i)))
	}

	return E(s)
}

func (NativeKernel[E]) Nrm2(x strided.View[E]) E {
	var s float64
	for i := 0; i < x.Len(); i++ {
		v := float64(x.Get(i))
		s += v * v
	}

	return E(math.Sqrt(s))
}

func (NativeKernel[E]) Scal(alpha E, x strided.View[E]) {
	for i := 0; i < x.Len(); i++ {
		x.Put(i, alpha*x.Get(i))
	}
}

func (NativeKernel[E]) Axpy(alpha E, x, y strided.View[E]) {
	mustSameLength("Axpy", x.Len(), y.Len())
	for i := 0; i < x.Len(); i++ {
		y.Put(i, alpha*x.Get(i)+y.Get(i))
	}
}

func (NativeKernel[E]) Axpby(alpha E, x strided.View[E], beta E, y strided.View[E]) {
	mustSameLength("Axpby", x.Len(), y.Len())
	for i := 0; i < x.Len(); i++ {
		y.Put(i, alpha*x.Get(i)+beta*y.Get(i))
	}
}

func (NativeKernel[E]) Add(x, y strided.View[E]) {
	mustSameLength("Add", x.Len(), y.Len())
	for i := 0; i < x.Len(); i++ {
		y.Put(i, x.Get(i)+y.Get(i))
	}
}

func (NativeKernel[E]) ScaleCopy(alpha E, x, y strided.View[E]) {
	mustSameLength("ScaleCopy", x.Len(), y.Len())
	for i := 0; i < x.Len(); i++ {
		y.Put(i, alpha*x.Get(i))
	}
}

func (NativeKernel[E]) Dot(x, y strided.View[E]) E {
	mustSameLength("Dot", x.Len(), y.Len())
	var s E
	for i := 0; i < x.Len(); i++ {
		s += x.Get(i) * y.Get(i)
	}

	return s
}

func (NativeKernel[E]) Hadamard(x, y, out strided.View[E]) {
	mustSameLength("Hadamard", x.Len(), y.Len(), out.Len())
	for i := 0; i < x.Len(); i++ {
		out.Put(i, x.Get(i)*y.Get(i))
	}
}

func (NativeKernel[E]) Ger(alpha E, x, y strided.View[E], a strided.Grid[E]) {
	mustSameLength("Ger rows", x.Len(), a.Rows)
	mustSameLength("Ger cols", y.Len(), a.Cols)
	if alpha == 0 {
		return
	}
	for i := 0; i < a.Rows; i++ {
		ax := alpha * x.Get(i)
		for j := 0; j < a.Cols; j++ {
			p := a.Index(i, j)
			a.Data[p] += ax * y.Get(j)
		}
	}
}

func (NativeKernel[E]) Gemv(alpha E, a strided.Grid[E], x strided.View[E], beta E, y strided.View[E]) {
	mustSameLength("Gemv x", x.Len(), a.Cols)
	mustSameLength("Gemv y", y.Len(), a.Rows)
	for i := 0; i < a.Rows; i++ {
		var s E
		for j := 0; j < a.Cols; j++ {
			s += a.At(i, j) * x.Get(j)
		}
		if beta == 0 {
			y.Put(i, alpha*s)
		} else {
			y.Put(i, alpha*s+beta*y.Get(i))
		}
	}
}

func (NativeKernel[E]) Gemm(alpha E, a, b strided.Grid[E], beta E, c strided.Grid[E]) {
	mustSameLength("Gemm inner", a.Cols, b.Rows)
	mustSameLength("Gemm rows", a.Rows, c.Rows)
	mustSameLength("Gemm cols", b.Cols, c.Cols)
	for i := 0; i < c.Rows; i++ {
		for j := 0; j < c.Cols; j++ {
			var s E
			for k := 0; k < a.Cols; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			p := c.Index(i, j)
			if beta == 0 {
				c.Data[p] = alpha * s
			} else {
				c.Data[p] = alpha*s + beta*c.Data[p]
			}
		}
	}
}
