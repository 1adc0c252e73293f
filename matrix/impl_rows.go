// SPDX-License-Identifier: MIT

// Package matrix - row/column extraction, exchange, removal and augmentation.
//
// All indices are 1-based. Extraction and Augment return fresh matrices;
// Pivot, RemoveRow and RemoveColumn mutate the receiver in place.
// Shape problems are always reported as errors, never ignored.

package matrix

// Row returns row r as a new 1×Cols() matrix.
// Errors: *IndexError (ErrOutOfRange).
func (m *Dense[T]) Row(row int) (*Dense[T], error) {
	if err := m.checkRow(opRow, row); err != nil {
		return nil, err
	}
	out := newZeroOK[T](1, m.c)
	copy(out.data, m.data[(row-1)*m.c:row*m.c])

	return out, nil
}

// Col returns column c as a new Rows()×1 matrix.
// Errors: *IndexError (ErrOutOfRange).
func (m *Dense[T]) Col(col int) (*Dense[T], error) {
	if err := m.checkCol(opCol, col); err != nil {
		return nil, err
	}
	out := newZeroOK[T](m.r, 1)
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+col-1]
	}

	return out, nil
}

// Pivot swaps rows r1 and r2 in place. Equal indices are a no-op.
// Errors: *IndexError (ErrOutOfRange) if either row is outside the shape; the
// matrix is left untouched in that case.
// Complexity: O(cols).
func (m *Dense[T]) Pivot(r1, r2 int) error {
	if err := m.checkRow(opPivot, r1); err != nil {
		return err
	}
	if err := m.checkRow(opPivot, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}
	m.swapRows(r1-1, r2-1)

	return nil
}

// swapRows exchanges two 0-based rows without bounds checks.
func (m *Dense[T]) swapRows(i, k int) {
	a := m.data[i*m.c : (i+1)*m.c]
	b := m.data[k*m.c : (k+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// RemoveRow rebuilds the buffer without row r and decrements Rows().
// Removing the last remaining row leaves a legal 0×Cols() matrix.
// Errors: *IndexError (ErrOutOfRange); the matrix is left untouched.
// Complexity: O(r*c).
func (m *Dense[T]) RemoveRow(row int) error {
	if err := m.checkRow(opRemoveRow, row); err != nil {
		return err
	}
	data := make([]T, 0, (m.r-1)*m.c)
	data = append(data, m.data[:(row-1)*m.c]...)
	data = append(data, m.data[row*m.c:]...)
	m.data = data
	m.r--

	return nil
}

// RemoveColumn rebuilds the buffer without column c and decrements Cols().
// Errors: *IndexError (ErrOutOfRange); the matrix is left untouched.
// Complexity: O(r*c).
func (m *Dense[T]) RemoveColumn(col int) error {
	if err := m.checkCol(opRemoveColumn, col); err != nil {
		return err
	}
	data := make([]T, 0, m.r*(m.c-1))
	for i := 0; i < m.r; i++ {
		base := i * m.c
		data = append(data, m.data[base:base+col-1]...)
		data = append(data, m.data[base+col:base+m.c]...)
	}
	m.data = data
	m.c--

	return nil
}

// Augment concatenates left and right horizontally: the result has
// left.Rows() rows and left.Cols()+right.Cols() columns.
// MAIN DESCRIPTION:
//   - Build the augmented matrix [left | right] used to represent a linear system.
//
// Implementation:
//   - Stage 1: validate both operands non-nil with equal row counts.
//   - Stage 2: copy row i of left then row i of right into the result, i ascending.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(cl+cr)), Space O(r*(cl+cr)).
func Augment[T Float](left, right *Dense[T]) (*Dense[T], error) {
	for _, m := range [2]*Dense[T]{left, right} {
		if err := validateNotNil(m); err != nil {
			return nil, matrixErrorf(opAugment, err)
		}
	}
	if left.r != right.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	cols := left.c + right.c
	out := newZeroOK[T](left.r, cols)
	for i := 0; i < left.r; i++ {
		copy(out.data[i*cols:], left.data[i*left.c:(i+1)*left.c])
		copy(out.data[i*cols+left.c:], right.data[i*right.c:(i+1)*right.c])
	}

	return out, nil
}

// SplitCols is the inverse of Augment: it returns the first `at` columns and
// the remaining Cols()-at columns as two new matrices.
// Errors: *IndexError (ErrOutOfRange) unless 1 ≤ at < Cols().
func (m *Dense[T]) SplitCols(at int) (left, right *Dense[T], err error) {
	if at < 1 || at >= m.c {
		return nil, nil, &IndexError{Op: opSplitCols, Col: at, Rows: m.r, Cols: m.c}
	}
	left = newZeroOK[T](m.r, at)
	right = newZeroOK[T](m.r, m.c-at)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		copy(left.data[i*at:], m.data[base:base+at])
		copy(right.data[i*(m.c-at):], m.data[base+at:base+m.c])
	}

	return left, right, nil
}
