// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Dense: scalar scaling,
// element-wise addition and subtraction, matrix multiplication, transpose and
// the Doolittle LU factorization. All functions perform strict fail-fast
// validation and return fresh matrices; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for products and substitutions.
const ZeroSum = 0.0

// Scale returns a new matrix whose elements are v * m[i,j].
// Complexity: O(r*c).
func (m *Dense[T]) Scale(v T) *Dense[T] {
	out := m.Clone()
	out.sign = signPositive
	for i := range out.data {
		out.data[i] *= v
	}

	return out
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the flat loop.
func addSub[T Float](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newZeroOK[T](a.r, a.c)
	for idx := range out.data { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Add computes the element-wise sum m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) { return addSub(m, b, 1, opAdd) }

// Sub computes the element-wise difference m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) { return addSub(m, b, -1, opSub) }

// Mul performs standard matrix multiplication C = m × b.
// Implementation:
//   - Stage 1: Validate inner dimensions (m.Cols == b.Rows).
//   - Stage 2: classic i→j→k triple loop; each C[i,j] is a += reduction over k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). No blocking, no Strassen.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := m.r, m.c, b.c
	out := newZeroOK[T](rows, cols)
	var i, j, k int
	var sum T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += m.data[i*inner+k] * b.data[k*cols+j]
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// Transpose returns a new Cols()×Rows() matrix with rows and columns swapped.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := newZeroOK[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// LU computes the Doolittle factorization m = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m square; allocate L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular when |U[i,i]| <= PivotThreshold().
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - A zero leading minor fails with ErrSingular even when m itself is
//     invertible; DeterminantLU falls back to UpperTriangle in that case.
func (m *Dense[T]) LU() (l, u *Dense[T], err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.r
	thr := m.PivotThreshold()
	l = newZeroOK[T](n, n)
	u = newZeroOK[T](n, n)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	var i, j, k int
	var sum T
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = m.data[i*n+j] - sum
		}

		if IsZeroPivot(u.data[i*n+i], thr) {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d is %g: %w", i+1, u.data[i*n+i], ErrSingular))
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (m.data[j*n+i] - sum) / u.data[i*n+i]
		}
	}

	return l, u, nil
}
