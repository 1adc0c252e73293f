// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the structured
// IndexError used across the matrix package. All operations MUST return these
// sentinels (possibly wrapped) and tests MUST check them via errors.Is/As.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operation context is attached with
// matrixErrorf(op, err) at the nearest detection site; callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a 1-based row or column index is outside the
	// current shape. Public indexers MUST return this (wrapped in *IndexError).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes, Mul where a.Cols != b.Rows, Augment with different row
	// counts, or a right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot or a zero determinant makes the
	// requested result undefined (inverse, LU, direct solve).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates that NewFromRows received rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)

// IndexError reports an invalid 1-based access together with the shape that
// was current at the time of the call. It unwraps to ErrOutOfRange.
//
// A zero Col means the access addressed a whole row (Row, Pivot, RemoveRow);
// a zero Row means a whole column (Col, RemoveColumn).
type IndexError struct {
	Op   string // method tag, e.g. "At", "Pivot"
	Row  int    // requested row (1-based), 0 when not applicable
	Col  int    // requested column (1-based), 0 when not applicable
	Rows int    // current row count
	Cols int    // current column count
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("Dense.%s(%d,%d) on %dx%d: %v", e.Op, e.Row, e.Col, e.Rows, e.Cols, ErrOutOfRange)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// matrixErrorf wraps err with an operation tag; errors.Is still sees err.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
