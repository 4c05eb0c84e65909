// Package linalg is a dense linear algebra toolkit built on strided views:
// vectors and matrices that reference storage they may or may not own, with
// arithmetic dispatched to a pluggable numeric kernel.
//
// 🚀 What is in linalg?
//
//   - Strided views: vector and matrix references with row/column orientation and layout
//   - Owning containers: Vector and Matrix, with sub-views, transposes and diagonals
//   - Deferred transforms: elementwise functions applied on assignment
//   - Arithmetic: Update/Set operations, ScaleAdd family, BLAS level 1 to 3 products
//   - Kernels: a portable native kernel and a gonum-backed optimized kernel
//   - Parallelism: a bounded-window transform iterator and errgroup fan-out
//   - Persistence: a named-value archive in memory (JSON, zstd) or in SQL (gorm)
//   - Functions: L2 regularizer and logistic loss for dual solvers
//
// ✨ Why choose linalg?
//
//   - Views, not copies: sub-vectors, rows, columns and transposes share storage
//   - Shape-checked: every mismatch is reported before any element is written
//   - Two precisions: float32 and float64 through one generic API
//   - Swappable backends: pick the kernel per engine, or per build with tags
//
// Packages:
//
//	strided/   the strided view and grid primitives every container is built on
//	vector/    ConstRef, Ref and Vector with orientation, norms and printing
//	matrix/    ConstRef, Ref and Matrix in row-major or column-major layout
//	transform/ deferred elementwise transforms and named scalar functions
//	kernel/    Native and Optimized implementations of the Kernel interface
//	ops/       Engine and package-level arithmetic bound to the default kernel
//	parallel/  TransformIterator, ForEach and Map
//	archive/   Archiver/Unarchiver, the in-memory archive and sqlstore/
//	functions/ L2Regularizer and LogLoss
//	config/    JSON configuration for logging, kernels, archive and database
//	errs/      categorized error codes shared by all packages
//	logger/    process-wide zap logger
//
// Quick example:
//
//	a := vector.ColumnFrom(1.0, 2, 3)
//	b := vector.ColumnFrom(4.0, 5, 6)
//	_ = ops.ScaleAddUpdate(2, a.Const(), 1, b.Ref) // b = 2a + b
//
// Build tags: lvlath_release drops view bounds checks, lvlath_native makes
// the native kernel the default.
//
//	go get github.com/katalvlaran/linalg
package linalg
