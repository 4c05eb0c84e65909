// SPDX-License-Identifier: MIT

// Package kernel holds the two numeric backends behind package ops.
//
// Native runs plain Go loops over strided views. Optimized routes the same
// operations to gonum's BLAS (blas64 for float64, blas32 for float32) and to
// algo-vecmath block kernels for contiguous float64 data, falling back to the
// native loops whenever an operand cannot be expressed as a BLAS operand
// (for example a matrix view with neither stride equal to 1).
//
// Kernels trust their callers: sizes and orientations are validated by ops
// before any kernel runs, and a kernel panics (like BLAS) on inconsistent
// lengths. Both backends must produce the same results up to rounding.
package kernel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/strided"
)

// Implementation names a backend.
type Implementation uint8

const (
	// Native uses portable loops.
	Native Implementation = iota
	// Optimized uses BLAS and SIMD block kernels.
	Optimized
)

// String returns "native" or "optimized".
func (i Implementation) String() string {
	switch i {
	case Native:
		return "native"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("implementation(%d)", uint8(i))
	}
}

// ParseImplementation accepts "native", "optimized" and the alias "blas".
func ParseImplementation(s string) (Implementation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return Native, nil
	case "optimized", "blas":
		return Optimized, nil
	default:
		return 0, fmt.Errorf("kernel.ParseImplementation: %w", errs.New(errs.BadStringFormat, "unknown implementation %q", s))
	}
}

// Kernel is the operation set both backends provide. Vector arguments are
// strided views of equal length; matrix arguments are grids whose shapes
// agree with the vectors as documented per method.
type Kernel[E strided.Float] interface {
	// Implementation reports which backend this is.
	Implementation() Implementation

	// Copy sets y = x.
	Copy(x, y strided.View[E])
	// Asum returns Σ|x[i]|.
	Asum(x strided.View[E]) E
	// Nrm2 returns the Euclidean norm of x.
	Nrm2(x strided.View[E]) E
	// Scal sets x = alpha·x.
	Scal(alpha E, x strided.View[E])
	// Axpy sets y = alpha·x + y.
	Axpy(alpha E, x, y strided.View[E])
	// Axpby sets y = alpha·x + beta·y.
	Axpby(alpha E, x strided.View[E], beta E, y strided.View[E])
	// Add sets y = x + y.
	Add(x, y strided.View[E])
	// ScaleCopy sets y = alpha·x.
	ScaleCopy(alpha E, x, y strided.View[E])
	// Dot returns Σ x[i]·y[i].
	Dot(x, y strided.View[E]) E
	// Hadamard sets out = x ⊙ y.
	Hadamard(x, y, out strided.View[E])

	// Ger sets A = alpha·x·yᵀ + A, with len(x) = rows and len(y) = cols.
	Ger(alpha E, x, y strided.View[E], a strided.Grid[E])
	// Gemv sets y = alpha·A·x + beta·y, with len(x) = cols and len(y) = rows.
	Gemv(alpha E, a strided.Grid[E], x strided.View[E], beta E, y strided.View[E])
	// Gemm sets C = alpha·A·B + beta·C.
	Gemm(alpha E, a, b strided.Grid[E], beta E, c strided.Grid[E])
}

// For returns the backend named by impl; unknown values select Native.
func For[E strided.Float](impl Implementation) Kernel[E] {
	if impl == Optimized {
		return OptimizedKernel[E]{}
	}

	return NativeKernel[E]{}
}

var (
	_ Kernel[float64] = NativeKernel[float64]{}
	_ Kernel[float32] = NativeKernel[float32]{}
	_ Kernel[float64] = OptimizedKernel[float64]{}
	_ Kernel[float32] = OptimizedKernel[float32]{}
)

func mustSameLength(op string, n ...int) {
	for _, m := range n[1:] {
		if m != n[0] {
			panic(fmt.Sprintf("kernel: %s: length mismatch %v", op, n))
		}
	}
}
