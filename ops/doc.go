// SPDX-License-Identifier: MIT

// Package ops is the arithmetic layer over vector and matrix references.
//
// Every operation lives on Engine[E], which forwards the numeric work to a
// kernel.Kernel chosen at construction. Package-level functions with the same
// names use Default[E](), whose backend is the compile-time constant
// DefaultImplementation (optimized unless built with -tags lvlath_native).
//
// Naming follows one rule: *Update functions overwrite their last operand,
// *Set functions write into an explicit out operand. The multiply-add family
// has four shapes:
//
//	ScaleAddUpdate(sA, a, sB, b)   b = sA·a + sB·b
//	ScaleAddUpdateOne(sA, a, b)    b = sA·a + b
//	OneAddUpdate(a, sB, b)         b = a + sB·b
//	OnesScaleAddUpdate(sA, sB, b)  b = sA·𝟙 + sB·b
//
// Coefficients equal to 0 or 1 short-circuit to cheaper operations (skip,
// reset, plain add, copy) before any kernel is called.
//
// Operand shapes (size and orientation, or matrix dimensions) are validated
// before the first element is written; a failing call leaves every operand
// untouched. Set functions accept an out that is exactly one of the inputs;
// partially overlapping windows are not supported.
package ops
