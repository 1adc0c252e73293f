// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrBadOption is returned by ParsePivoting / ParseSingularPolicy for unknown
// spellings.
var ErrBadOption = errors.New("gauss: invalid option value")

// Operation tags used in error wrapping.
const (
	opSolve    = "Solve"
	opResidual = "Residual"
)

// Solve solves the square system a·x = b and returns x.
// Neither a nor b is modified. See SolveInto for the algorithm and errors.
func Solve(a *matrix.Dense[float64], b []float64, opts ...Option) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, matrix.ErrNilMatrix)
	}
	x := make([]float64, a.Rows())
	if err := SolveInto(a, b, x, opts...); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveMatrix is Solve returning the solution as an n×1 matrix.
func SolveMatrix(a *matrix.Dense[float64], b []float64, opts ...Option) (*matrix.Dense[float64], error) {
	x, err := Solve(a, b, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.Column(x)
}

// SolveInto solves a·x = b by Gaussian elimination with back substitution and
// writes the solution into the caller-supplied x, whose previous contents are
// fully overwritten.
// MAIN DESCRIPTION:
//   - Forward elimination normalizes each pivot row to a leading 1, then
//     clears the pivot column below it; back substitution resolves x from the
//     last row up.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and len(b) == len(x) == n.
//   - Stage 2: copy a into private rows and b into a private vector.
//   - Stage 3: for r = 0..n-1:
//   - PivotPartial: swap in the row k ≥ r with the largest |A[k][r]|.
//   - Zero pivot (|A[r][r]| <= tolerance, by default a.PivotThreshold()):
//     SingularError returns matrix.ErrSingular; SingularPropagate divides anyway.
//   - Divide row r (all n columns) and b[r] by A[r][r].
//   - For each lower row: factor = A[lower][r]; A[lower][c] -= factor*A[r][c]
//     for c ≥ r; b[lower] -= factor*b[r].
//   - Stage 4: x[r] = (b[r] - Σ_{c>r} A[r][c]*x[c]) / A[r][r], r = n-1..0.
//   - Stage 5: print "x{i} = v" lines when WithOutput is set.
//
// Errors:
//   - matrix.ErrNilMatrix (nil a, b or x), matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch (len(b) or len(x) != n),
//     matrix.ErrSingular (zero pivot under SingularError).
//   - Write errors from the output writer.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the private copy.
//
// Notes:
//   - Without pivoting a zero on the diagonal stops the solve even when the
//     system is regular (e.g. [[0,1],[1,0]]); WithPivoting(PivotPartial) handles it.
//   - Pivots above the tolerance are accepted as-is under PivotNone; accuracy
//     then depends on the conditioning of a.
//   - A system whose rows are multiples of each other only up to rounding
//     (e.g. 0.1 0.3 / 0.01 0.03) is singular under the default tolerance, just
//     as a.Determinant() is 0 and a.Inverse() fails for it.
func SolveInto(a *matrix.Dense[float64], b, x []float64, opts ...Option) error {
	o := gatherOptions(opts...)

	if a == nil {
		return fmt.Errorf("%s: %w", opSolve, matrix.ErrNilMatrix)
	}
	if !a.IsSquare() {
		return fmt.Errorf("%s: A is %dx%d: %w", opSolve, a.Rows(), a.Cols(), matrix.ErrNonSquare)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return fmt.Errorf("%s: b has %d values, want %d: %w", opSolve, len(b), n, err)
	}
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return fmt.Errorf("%s: x has %d values, want %d: %w", opSolve, len(x), n, err)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i], _ = a.RawRow(i + 1) // i+1 is always in range
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	tol := o.tolerance
	if tol == ToleranceAuto {
		tol = a.PivotThreshold()
	}
	if err := eliminate(rows, rhs, tol, &o); err != nil {
		return err
	}
	backSubstitute(rows, rhs, x)

	if o.out != nil {
		return printSolution(o.out, x, o.precision)
	}

	return nil
}

// eliminate runs the forward phase in place on rows/rhs.
func eliminate(rows [][]float64, rhs []float64, tol float64, o *options) error {
	n := len(rows)
	var r, k, c, lower int
	var pivot, factor float64
	for r = 0; r < n; r++ {
		if o.pivoting == PivotPartial {
			best := r
			for k = r + 1; k < n; k++ {
				if math.Abs(rows[k][r]) > math.Abs(rows[best][r]) {
					best = k
				}
			}
			if best != r {
				rows[r], rows[best] = rows[best], rows[r]
				rhs[r], rhs[best] = rhs[best], rhs[r]
				o.logger.Debug("row exchange", slog.Int("pivot_row", r+1), slog.Int("with", best+1))
			}
		}

		pivot = rows[r][r]
		if matrix.IsZeroPivot(pivot, tol) {
			if o.singular == SingularError {
				return fmt.Errorf("%s: pivot %d is %g (tolerance %g): %w", opSolve, r+1, pivot, tol, matrix.ErrSingular)
			}
			o.logger.Debug("zero pivot propagated", slog.Int("row", r+1), slog.Float64("pivot", pivot))
		}

		// normalize
		for c = 0; c < n; c++ {
			rows[r][c] /= pivot
		}
		rhs[r] /= pivot

		for lower = r + 1; lower < n; lower++ {
			factor = rows[lower][r]
			for c = r; c < n; c++ {
				rows[lower][c] -= factor * rows[r][c]
			}
			rhs[lower] -= factor * rhs[r]
		}
	}

	return nil
}

// backSubstitute resolves x from the unit upper-triangular system.
func backSubstitute(rows [][]float64, rhs, x []float64) {
	n := len(rows)
	for r := n - 1; r >= 0; r-- {
		sum := matrix.ZeroSum
		for c := r + 1; c < n; c++ {
			sum += rows[r][c] * x[c]
		}
		x[r] = (rhs[r] - sum) / rows[r][r]
	}
}

// printSolution writes "x{i} = v" per component.
func printSolution(w io.Writer, x []float64, precision int) error {
	for i, v := range x {
		if _, err := fmt.Fprintf(w, "x%d = %s\n", i+1, strconv.FormatFloat(v, 'g', precision, 64)); err != nil {
			return fmt.Errorf("%s: write solution: %w", opSolve, err)
		}
	}

	return nil
}

// Residual returns max_i |(a·x)_i - b_i|, the infinity norm of the residual.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a *matrix.Dense[float64], x, b []float64) (float64, error) {
	if a == nil {
		return 0, fmt.Errorf("%s: %w", opResidual, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return 0, fmt.Errorf("%s: b: %w", opResidual, err)
	}
	xc, err := matrix.Column(x)
	if err != nil {
		return 0, fmt.Errorf("%s: x: %w", opResidual, err)
	}
	ax, err := a.Mul(xc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	bc, err := matrix.Column(b)
	if err != nil {
		return 0, fmt.Errorf("%s: b: %w", opResidual, err)
	}
	diff, err := ax.Sub(bc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	worst := 0.0
	for _, v := range diff.Data() {
		if d := math.Abs(v); d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}
