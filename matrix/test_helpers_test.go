// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// tol is the absolute tolerance used by approximate comparisons.
const tol = matrix.DefaultEpsilon

// MustDense builds a *Dense[float64] from literal rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.Identity[float64](n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDominant fills an n×n matrix with values in [-1,1) and then makes it
// strictly diagonally dominant, which guarantees it is nonsingular and that
// elimination needs no row exchange.
func RandomDominant(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var sum float64
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
			if rows[i][j] < 0 {
				sum -= rows[i][j]
			} else {
				sum += rows[i][j]
			}
		}
		rows[i][i] = sum + 1
	}

	return MustDense(t, rows)
}

// RequireClose asserts shape equality and element-wise closeness.
func RequireClose(t testing.TB, want, got *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.True(t, want.EqualApprox(got, eps), "want:\n%sgot:\n%s", want, got)
}
