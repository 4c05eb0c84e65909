// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIndent is the number of spaces before each printed row.
	DefaultIndent = 0

	// DefaultMaxElements prints every element of a row.
	DefaultMaxElements = math.MaxInt

	// MinMaxElements is the smallest element cap: first, ellipsis, last.
	MinMaxElements = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicIndentInvalid      = "matrix: WithIndent: indent must be non-negative"
	panicMaxElementsInvalid = "matrix: WithMaxElements: cap must be at least 3"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	indent      int // >= 0; DefaultIndent
	maxElements int // >= 3; DefaultMaxElements
}

// WithIndent prefixes each printed row with n spaces.
//
// Errors:
//   - Panics with a stable message when n < 0.
func WithIndent(n int) Option {
	if n < 0 {
		panic(panicIndentInvalid)
	}

	return func(o *Options) { o.indent = n }
}

// WithMaxElements caps the number of elements printed per row; longer rows
// print the first n-2 elements, an ellipsis and the last element.
//
// Errors:
//   - Panics with a stable message when n < 3.
func WithMaxElements(n int) Option {
	if n < MinMaxElements {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// gatherOptions resolves opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{indent: DefaultIndent, maxElements: DefaultMaxElements}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
