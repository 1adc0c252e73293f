// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly
//    with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing.

package matrix

// validateNotNil ensures the operand is non-nil.
func validateNotNil[T Float](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by Add/Sub.
func validateSameShape[T Float](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures m is non-nil and square. Used by every
// determinant-family operation.
func validateSquare[T Float](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c || m.r == 0 {
		return ErrNonSquare
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows.
func validateMulCompatible[T Float](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Exported for the solver, which checks its right-hand side with the same rule.
func ValidateVecLen[T Float](x []T, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
