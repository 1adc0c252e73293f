// SPDX-License-Identifier: MIT

// Package linsys reads and writes linear systems in the flat numeric file
// format consumed by the solver.
//
// Format: whitespace-separated numbers. The first token is the row count m,
// the second the column count of the augmented matrix (n+1, n unknowns);
// then m*(n+1) values follow in row-major order, the last value of every row
// being the right-hand side:
//
//	2 3
//	2 1 11
//	5 7 13
//
// Malformed input is rejected as a whole with a *ParseError; a partially
// filled system is never returned.
package linsys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("linsys: parse error")

	// ErrEmpty: the input holds no tokens at all.
	ErrEmpty = errors.New("linsys: empty input")

	// ErrHeader: the row or column count is missing, not an integer, or too small.
	ErrHeader = errors.New("linsys: invalid header")

	// ErrTokenCount: fewer or more values than rows*cols.
	ErrTokenCount = errors.New("linsys: wrong number of values")

	// ErrNumber: a value token is not a finite number.
	ErrNumber = errors.New("linsys: invalid number")
)

// maxPrealloc caps the up-front allocation driven by an untrusted header.
const maxPrealloc = 1 << 16

// ParseError describes where the token stream went wrong.
type ParseError struct {
	Token int    // 1-based token position; 0 when the error concerns the whole input
	Text  string // offending token text, if any
	Err   error  // specific cause (ErrEmpty, ErrHeader, ...)
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Token == 0 {
		return fmt.Sprintf("%v: %v", ErrParse, e.Err)
	}

	return fmt.Sprintf("%v: token %d %q: %v", ErrParse, e.Token, e.Text, e.Err)
}

// Unwrap exposes the specific cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) true for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// System is a parsed linear system A·x = B.
type System struct {
	A *matrix.Dense[float64] // m×n coefficients
	B []float64              // m right-hand sides
}

// Augmented returns the m×(n+1) matrix [A | B].
func (s *System) Augmented() (*matrix.Dense[float64], error) {
	col, err := matrix.Column(s.B)
	if err != nil {
		return nil, err
	}

	return matrix.Augment(s.A, col)
}

// Unknowns returns n, the number of coefficient columns.
func (s *System) Unknowns() int { return s.A.Cols() }

// Parse reads one system from r.
func Parse(r io.Reader) (*System, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		pos++

		return sc.Text(), true
	}

	tok, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Err: ErrEmpty}
	}
	rows, err := parseCount(tok, 1)
	if err != nil {
		return nil, &ParseError{Token: pos, Text: tok, Err: err}
	}
	tok, ok = next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Token: pos + 1, Err: fmt.Errorf("missing column count: %w", ErrHeader)}
	}
	cols, err := parseCount(tok, 2)
	if err != nil {
		return nil, &ParseError{Token: pos, Text: tok, Err: err}
	}

	if rows > math.MaxInt/cols {
		return nil, &ParseError{Token: pos, Text: tok, Err: fmt.Errorf("%dx%d is too large: %w", rows, cols, ErrHeader)}
	}
	want := rows * cols
	values := make([]float64, 0, min(want, maxPrealloc))
	for {
		tok, ok = next()
		if !ok {
			break
		}
		if len(values) == want {
			return nil, &ParseError{Token: pos, Text: tok, Err: fmt.Errorf("more than %d values: %w", want, ErrTokenCount)}
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Token: pos, Text: tok, Err: ErrNumber}
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) != want {
		return nil, &ParseError{Err: fmt.Errorf("got %d values, want %d (%d rows x %d columns): %w", len(values), want, rows, cols, ErrTokenCount)}
	}

	return assemble(rows, cols, values)
}

// parseCount parses a header count; it must be an integer >= lo. Integral
// values written as floats ("3.0") are accepted.
func parseCount(tok string, lo int) (int, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v != math.Trunc(v) || v < float64(lo) || v > math.MaxInt32 {
		return 0, fmt.Errorf("want an integer >= %d: %w", lo, ErrHeader)
	}

	return int(v), nil
}

// assemble lays the values out as the augmented matrix and splits off the
// right-hand side column.
func assemble(rows, cols int, values []float64) (*System, error) {
	aug, err := matrix.New(rows, cols, 0.0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := aug.Set(i+1, j+1, values[i*cols+j]); err != nil {
				return nil, err
			}
		}
	}
	a, b, err := aug.SplitCols(cols - 1)
	if err != nil {
		return nil, err
	}

	return &System{A: a, B: b.Data()}, nil
}

// ReadFile opens path and parses it.
func ReadFile(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linsys: %w", err)
	}
	defer f.Close()

	sys, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sys, nil
}

// Encode writes s in the file format understood by Parse.
func (s *System) Encode(w io.Writer) error {
	aug, err := s.Augmented()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", aug.Rows(), aug.Cols())
	for i := 1; i <= aug.Rows(); i++ {
		row, err := aug.RawRow(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
