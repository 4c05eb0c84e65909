// SPDX-License-Identifier: MIT

// Package strided provides the strided-iteration primitive every vector and
// matrix reference is built on.
//
// A View is an (owner slice, offset, length, stride) tuple: element i lives at
// data[offset+i*stride]. Stride may be negative (reversed traversal) and the
// diagonal of a matrix with leading dimension L is simply a view with stride
// L+1. A Grid is the equivalent two-dimensional descriptor that kernels read.
//
// Views never own memory. They alias the slice they were built from, so a
// view can outlive its producer without reading freed storage; whether a
// write through it is still visible to the producer is the producer's
// contract (see vector.Vector.Resize).
//
// Element access through At/Set is validated only when BoundsChecked is true,
// which is the default. Building with -tags lvlath_release removes the checks
// from every package in the module. Window construction (New, Sub) is always
// validated.
package strided
