// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			det, err := MustIdentity(t, n).Determinant()
			require.NoError(t, err)
			assert.Equal(t, 1.0, det)
		})
	}
}

func TestDeterminant_Table(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		det  float64
		sign int
	}{
		{"1x1", [][]float64{{-3}}, -3, 1},
		{"2x2", [][]float64{{2, 1}, {5, 7}}, 9, 1},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1, -1},
		{"double swap", [][]float64{{0, 2, 1}, {0, 0, 3}, {4, 0, 0}}, 24, 1},
		{"singular rows", [][]float64{{1, 2}, {2, 4}}, 0, 0},
		{"zero column", [][]float64{{0, 1}, {0, 2}}, 0, 0},
		{"upper", [][]float64{{2, 3, 4}, {0, 5, 6}, {0, 0, 7}}, 70, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.rows)
			det, err := m.Determinant()
			require.NoError(t, err)
			assert.InDelta(t, tc.det, det, tol)

			ut, err := m.UpperTriangle()
			require.NoError(t, err)
			assert.Equal(t, tc.sign, ut.SignFactor())
			assert.Equal(t, 1, m.SignFactor(), "receiver keeps its sign factor")
		})
	}
}

func TestUpperTriangle_Shape(t *testing.T) {
	m := RandomDominant(t, 5, 3)
	ut, err := m.UpperTriangle()
	require.NoError(t, err)
	for i := 2; i <= 5; i++ {
		for j := 1; j < i; j++ {
			assert.InDelta(t, 0.0, MustAt(t, ut, i, j), tol, "(%d,%d)", i, j)
		}
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	var nilM *matrix.Dense[float64]
	_, err = nilM.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminantLU_MatchesTriangle(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := RandomDominant(t, 6, seed)
		d1, err := m.Determinant()
		require.NoError(t, err)
		d2, err := m.DeterminantLU()
		require.NoError(t, err)
		assert.InEpsilon(t, d1, d2, tol)
	}

	// zero leading pivot → falls back to the rescuing triangularization
	d, err := MustDense(t, [][]float64{{0, 1}, {1, 0}}).DeterminantLU()
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)
}

func TestMinor_Cofactor(t *testing.T) {
	m := sample3x3(t)
	minor, err := m.Minor(2, 2)
	require.NoError(t, err)
	assert.True(t, minor.Equal(MustDense(t, [][]float64{{1, 3}, {7, 9}})))

	c, err := m.Cofactor(1, 2)
	require.NoError(t, err)
	// -(4*9 - 6*7) = 6
	assert.InDelta(t, 6.0, c, tol)

	_, err = m.Minor(4, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustDense(t, [][]float64{{5}}).Minor(1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAdjoint(t *testing.T) {
	adj, err := MustDense(t, [][]float64{{1, 2}, {3, 4}}).Adjoint()
	require.NoError(t, err)
	assert.True(t, adj.Equal(MustDense(t, [][]float64{{4, -2}, {-3, 1}})), "got:\n%s", adj)

	adj, err = MustDense(t, [][]float64{{5}}).Adjoint()
	require.NoError(t, err)
	assert.True(t, adj.Equal(MustDense(t, [][]float64{{1}})))
}

func TestInverse_2x2(t *testing.T) {
	inv, err := MustDense(t, [][]float64{{1, 2}, {3, 4}}).Inverse()
	require.NoError(t, err)
	assert.True(t, inv.Equal(MustDense(t, [][]float64{{-2, 1}, {1.5, -0.5}})), "got:\n%s", inv)

	inv, err = MustDense(t, [][]float64{{4}}).Inverse()
	require.NoError(t, err)
	assert.Equal(t, 0.25, MustAt(t, inv, 1, 1))
}

func TestInverse_TimesA_IsIdentity(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandomDominant(t, n, int64(n)*11)
			inv, err := a.Inverse()
			require.NoError(t, err)
			p, err := inv.Mul(a)
			require.NoError(t, err)
			RequireClose(t, MustIdentity(t, n), p, tol)
		})
	}
}

func TestInverse_Singular(t *testing.T) {
	_, err := MustDense(t, [][]float64{{1, 2}, {2, 4}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustDense(t, [][]float64{{1, 2, 3}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestUpperTriangle_RoundingResidueIsSingular(t *testing.T) {
	for _, rows := range [][][]float64{
		{{0.1, 0.3}, {0.01, 0.03}},
		{{0.1, 0.3}, {0.03, 0.09}},
		{{1.1, 2.3}, {3.3, 6.9}},
		{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}, {0.7, 0.8, 0.9}},
	} {
		m := MustDense(t, rows)
		ut, err := m.UpperTriangle()
		require.NoError(t, err)
		assert.Equal(t, 0, ut.SignFactor(), "%v", rows)

		det, err := m.Determinant()
		require.NoError(t, err)
		assert.Zero(t, det, "%v", rows)

		_, _, err = m.LU()
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", rows)

		_, err = m.Inverse()
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", rows)
	}
}

func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Data())
}

func TestDeterminant_AgreesWithGonum(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandomDominant(t, n, int64(n)*7)
			want := mat.Det(toGonum(a))

			det, err := a.Determinant()
			require.NoError(t, err)
			assert.InEpsilon(t, want, det, tol)

			det, err = a.DeterminantLU()
			require.NoError(t, err)
			assert.InEpsilon(t, want, det, tol)
		})
	}
}

func TestInverse_AgreesWithGonum(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandomDominant(t, n, int64(n)*13)
			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(a)))

			inv, err := a.Inverse()
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					assert.InDelta(t, want.At(i, j), MustAt(t, inv, i+1, j+1), tol, "(%d,%d)", i+1, j+1)
				}
			}
		})
	}
}
