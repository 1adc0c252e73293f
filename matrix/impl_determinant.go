// SPDX-License-Identifier: MIT

// Package matrix - determinant family: upper-triangularization, determinant,
// minors/cofactors, classical adjoint and inverse.
//
// Complexity quicksheet (n = Rows() = Cols()):
//   - UpperTriangle, Determinant, DeterminantLU: O(n^3).
//   - Adjoint, Inverse: n^2 cofactors, each an O(n^3) determinant → O(n^5).
//     Intended for small matrices; larger systems should go through the
//     gauss package instead of forming an inverse.

package matrix

import (
	"errors"
	"fmt"
)

// UpperTriangle returns a copy of m reduced to upper-triangular form.
// MAIN DESCRIPTION:
//   - Column-by-column forward elimination with a zero-pivot rescue.
//
// Implementation:
//   - Stage 1: validate m square; clone it and reset the sign factor to 1.
//   - Stage 2: for col = 1..n-1: if the pivot (col,col) is zero, swap in the
//     first row below with a non-zero entry in col and flip the sign factor.
//     If every entry below is zero the column is already eliminated; the sign
//     factor becomes 0 (singular) and the next column is processed.
//   - Stage 3: for each row below the pivot, row += -(row[col]/pivot) * pivotRow
//     over columns col..n.
//   - Stage 4: a zero in the last diagonal position also sets the sign factor to 0.
//
// "Zero" means IsZeroPivot(v, m.PivotThreshold()): entries left over from
// cancelling rows that are multiples of each other in decimal are treated
// like exact zeros.
//
// Behavior highlights:
//   - The returned matrix records the swap parity in SignFactor(); 0 marks a
//     singular matrix.
//   - Only a zero pivot triggers a swap; small pivots above the threshold are
//     used as-is. This is a rescue, not a numerically stable pivoting strategy.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense[T]) UpperTriangle() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opUpperTriangle, err)
	}
	out := m.Clone()
	out.sign = signPositive
	n := out.r
	thr := m.PivotThreshold()

	var col, row, i, k int
	var pivot, f T
	for col = 0; col < n-1; col++ {
		if IsZeroPivot(out.data[col*n+col], thr) {
			for k = col + 1; k < n; k++ {
				if !IsZeroPivot(out.data[k*n+col], thr) {
					break
				}
			}
			if k == n {
				out.sign = signSingular
				continue
			}
			out.swapRows(col, k)
			out.sign *= signNegative
		}

		pivot = out.data[col*n+col]
		for row = col + 1; row < n; row++ {
			f = -out.data[row*n+col] / pivot
			if f == 0 {
				continue
			}
			for i = col; i < n; i++ {
				out.data[row*n+i] += f * out.data[col*n+i]
			}
		}
	}
	if IsZeroPivot(out.data[(n-1)*n+n-1], thr) {
		out.sign = signSingular
	}

	return out, nil
}

// Determinant returns the product of the diagonal of UpperTriangle() times
// the recorded sign factor; exactly 0 when UpperTriangle marks m singular.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func (m *Dense[T]) Determinant() (T, error) {
	ut, err := m.UpperTriangle()
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if ut.sign == signSingular {
		return 0, nil
	}

	return ut.diagProduct() * T(ut.sign), nil
}

// DeterminantLU computes the determinant as the product of diag(U) from LU.
// When LU meets a zero leading pivot it falls back to Determinant, so the
// result is defined for every square input.
func (m *Dense[T]) DeterminantLU() (T, error) {
	_, u, err := m.LU()
	if errors.Is(err, ErrSingular) {
		return m.Determinant()
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return u.diagProduct(), nil
}

// diagProduct multiplies the main diagonal of a square matrix.
func (m *Dense[T]) diagProduct() T {
	var p T = 1
	for i := 0; i < m.r; i++ {
		p *= m.data[i*m.c+i]
	}

	return p
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row r and column c.
// Errors: ErrNonSquare; ErrInvalidDimensions for a 1×1 input; *IndexError.
func (m *Dense[T]) Minor(row, col int) (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if _, err := m.offset(opMinor, row, col); err != nil {
		return nil, err
	}
	if m.r == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	out := m.Clone()
	out.sign = signPositive
	// indices were validated above, removal cannot fail
	_ = out.RemoveRow(row)
	_ = out.RemoveColumn(col)

	return out, nil
}

// Cofactor returns (-1)^(r+c) * det(Minor(r,c)). The cofactor of a 1×1
// matrix is 1 (determinant of the empty minor).
func (m *Dense[T]) Cofactor(row, col int) (T, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if _, err := m.offset(opCofactor, row, col); err != nil {
		return 0, err
	}
	if m.r == 1 {
		return 1, nil
	}
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	det, err := minor.Determinant()
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 != 0 {
		det = -det
	}

	return det, nil
}

// Adjoint returns the classical adjoint (adjugate): the transpose of the
// cofactor matrix.
// Complexity: O(n^5); see the package complexity notes.
func (m *Dense[T]) Adjoint() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	n := m.r
	cof := newZeroOK[T](n, n)
	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= n; j++ {
			v, err := m.Cofactor(i, j)
			if err != nil {
				return nil, matrixErrorf(opAdjoint, fmt.Errorf("cofactor(%d,%d): %w", i, j, err))
			}
			cof.data[(i-1)*n+(j-1)] = v
		}
	}

	return cof.Transpose(), nil
}

// Inverse returns Adjoint() * (1/Determinant()).
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular when UpperTriangle marks m
// singular or the determinant underflows to zero.
// Complexity: O(n^5).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	ut, err := m.UpperTriangle()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := ut.diagProduct() * T(ut.sign)
	if ut.sign == signSingular || det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := m.Adjoint()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj.Scale(1 / det), nil
}
