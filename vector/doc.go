// SPDX-License-Identifier: MIT

// Package vector implements oriented dense vectors as a three-level hierarchy:
//
//   - ConstRef: read-only strided view tagged Row or Column
//   - Ref: ConstRef plus writers (Set, Fill, Generate, Transform, CopyFrom)
//   - Vector: owns a contiguous buffer and embeds a Ref over it
//
// Orientation is part of a vector's identity. Transpose relabels the same
// storage, binary operations require matching orientation (a mismatch is an
// errs.TypeMismatch), and Equal between a row and a column is always false,
// even when the elements agree.
//
// Shape errors (size, orientation, windows) are always checked before any
// element is written. Element indexing through At/Set is checked only when
// strided.BoundsChecked is true.
//
// Arithmetic lives in package ops; this package only describes storage.
package vector
