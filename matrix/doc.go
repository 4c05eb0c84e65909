// SPDX-License-Identifier: MIT

// Package matrix implements dense matrices as strided views over row-major or
// column-major storage.
//
// The package provides:
//
//   - ConstRef, Ref and the owning Matrix, mirroring package vector.
//   - Zero-copy accessors: GetRow, GetColumn, GetDiagonal, GetMajorVector,
//     GetSubMatrix, Transpose and ReferenceAsVector all alias the source.
//   - Layout-generic bulk operations (Fill, Generate, Transform, CopyFrom,
//     IsEqual, ToArray) written once against a layout policy.
//   - Archive round trips ("<name>_rows", "<name>_columns", "<name>_values")
//     and row-per-line printing.
//
// A major vector is a contiguous run of elements: a row in RowMajor, a column
// in ColumnMajor. Consecutive major vectors start Increment() elements apart,
// so a sub-matrix is simply a view with a larger increment than its width.
// Transpose swaps rows and columns and flips the layout without moving data.
//
// Arithmetic (matrix-vector and matrix-matrix products, scaled sums) lives in
// package ops.
package matrix
