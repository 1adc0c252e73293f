// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe 1-based accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula (i-1)*cols + (j-1).
//   - Guarantee safety at the public surface: At/Set/Element return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Value semantics: Clone and every derived matrix own an independent buffer.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/Element: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// Dense is a generic row-major matrix addressed with 1-based indices.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order.
//   - sign is the row-swap sign factor recorded by UpperTriangle (1 otherwise).
type Dense[T Float] struct {
	r, c int // row and column counts (>=0; zero only after removing the last row/column)
	data []T // contiguous row-major storage (len == r*c)
	sign int // accumulated row-swap sign (1, -1, or 0 when singular)
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates a rows×cols matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and broadcast fill.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - fill: initial value of every element.
//
// Returns:
//   - *Dense[T]: newly allocated matrix with sign factor 1.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Float](rows, cols int, fill T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	m := newZeroOK[T](rows, cols)
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}

	return m, nil
}

// newZeroOK is the internal constructor that also accepts 0×k and k×0 shapes.
// Callers guarantee rows, cols >= 0.
func newZeroOK[T Float](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), sign: signPositive}
}

// NewFromRows builds a matrix from a slice of equally long rows. The input is
// copied; later changes to rows do not affect the matrix.
// Errors: ErrInvalidDimensions for an empty input, ErrRaggedRows when row
// lengths differ.
func NewFromRows[T Float](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m := newZeroOK[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), cols, ErrRaggedRows))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Float](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	m := newZeroOK[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Column returns an n×1 matrix holding a copy of values.
func Column[T Float](values []T) (*Dense[T], error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	m := newZeroOK[T](len(values), 1)
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// SignFactor returns the row-swap sign recorded by UpperTriangle: 1 or -1 for
// an even or odd number of swaps, 0 when no non-zero pivot could be found.
// Matrices not produced by UpperTriangle report 1.
func (m *Dense[T]) SignFactor() int { return m.sign }

// offset bounds-checks the 1-based (row,col) and returns the flat offset.
// MAIN DESCRIPTION:
//   - Single source of truth for index validation; every accessor goes through it.
//
// Implementation:
//   - Stage 1: validate 1 ≤ row ≤ r and 1 ≤ col ≤ c.
//   - Stage 2: compute (row-1)*c + (col-1).
//
// Errors:
//   - *IndexError tagged with op, carrying the request and the current shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) offset(op string, row, col int) (int, error) {
	if row < 1 || row > m.r || col < 1 || col > m.c {
		return 0, &IndexError{Op: op, Row: row, Col: col, Rows: m.r, Cols: m.c}
	}

	return (row-1)*m.c + (col - 1), nil
}

// checkRow validates a whole-row index.
func (m *Dense[T]) checkRow(op string, row int) error {
	if row < 1 || row > m.r {
		return &IndexError{Op: op, Row: row, Rows: m.r, Cols: m.c}
	}

	return nil
}

// checkCol validates a whole-column index.
func (m *Dense[T]) checkCol(op string, col int) error {
	if col < 1 || col > m.c {
		return &IndexError{Op: op, Col: col, Rows: m.r, Cols: m.c}
	}

	return nil
}

// At returns the value at (row, col).
// Errors: *IndexError (errors.Is ErrOutOfRange) when the index is outside the shape.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.offset(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: *IndexError (errors.Is ErrOutOfRange) when the index is outside the shape.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.offset(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Element returns a pointer to the element at (row, col) for in-place updates.
// The pointer is valid until the next shape-changing call (RemoveRow,
// RemoveColumn) on m, which reallocates the buffer.
func (m *Dense[T]) Element(row, col int) (*T, error) {
	off, err := m.offset(opElement, row, col)
	if err != nil {
		return nil, err
	}

	return &m.data[off], nil
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// RawRow returns a copy of row r as a plain slice.
func (m *Dense[T]) RawRow(row int) ([]T, error) {
	if err := m.checkRow(opRow, row); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[(row-1)*m.c:row*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape and sign factor).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, sign: m.sign}
}

// Equal reports whether b has the same shape and exactly the same elements.
// Unequal shapes (or a nil operand) are simply not equal.
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i, v := range m.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox is Equal with an absolute per-element tolerance eps.
// NaN never compares equal.
func (m *Dense[T]) EqualApprox(b *Dense[T], eps float64) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i, v := range m.data {
		if !(math.Abs(float64(v)-float64(b.data[i])) <= eps) {
			return false
		}
	}

	return true
}
