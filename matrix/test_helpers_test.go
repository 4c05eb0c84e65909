// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for both layouts.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// layouts lists both storage layouts for table-driven tests.
var layouts = []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor}

// MustFromRows builds a matrix from row literals or fails the test.
func MustFromRows(t *testing.T, layout matrix.Layout, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(layout, rows)
	require.NoError(t, err)

	return m
}

// Sequential returns an r×c matrix with (i, j) = 10*i + j.
func Sequential(t *testing.T, layout matrix.Layout, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](r, c, layout)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(10*i+j)))
		}
	}

	return m
}

// rowsOf reads every row back as a slice.
func rowsOf(t *testing.T, m matrix.ConstRef[float64]) [][]float64 {
	t.Helper()
	out := make([][]float64, m.NumRows())
	for i := range out {
		row, err := m.GetRow(i)
		require.NoError(t, err)
		out[i] = row.ToArray()
	}

	return out
}
