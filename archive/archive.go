// SPDX-License-Identifier: MIT

// Package archive defines the named-value serialization contract used by
// vectors and matrices, plus an in-memory implementation that encodes to a
// JSON stream with optional zstd compression.
//
// Values are addressed by name. A vector is stored as one float array; a
// matrix stores three entries, "<name>_rows", "<name>_columns" and
// "<name>_values". Float arrays are widened to float64 on write, so float32
// data round trips exactly.
package archive

// Archiver writes named values.
type Archiver interface {
	WriteInt(name string, value int) error
	WriteFloats(name string, values []float64) error
}

// Unarchiver reads named values written by an Archiver.
type Unarchiver interface {
	ReadInt(name string) (int, error)
	ReadFloats(name string) ([]float64, error)
}
