// Package gauss solves dense square linear systems A·x = b by Gaussian
// elimination with back substitution.
//
// Overview:
//
//   - Forward elimination normalizes every pivot row by its diagonal element
//     (leaving a unit diagonal) and clears the column below it.
//   - Back substitution then resolves the unknowns from the last row upward.
//   - The caller's matrix and right-hand side are never modified; each solve
//     works on private copies and is safe to run concurrently with other
//     solves.
//
// Pivoting and zero pivots:
//
//   - PivotNone (default) uses the diagonal as found. A zero pivot stops the
//     solve with matrix.ErrSingular, even when a row exchange would have
//     rescued a regular system.
//   - PivotPartial swaps in the row with the largest magnitude in the pivot
//     column before normalizing.
//   - SingularPropagate keeps the plain division on zero pivots and lets
//     Inf/NaN flow into the result instead of failing.
//   - A pivot is zero when |p| <= n·ε·‖A‖∞ (matrix.PivotThreshold), the
//     same test UpperTriangle, Determinant, LU and Inverse apply, so the
//     solver and the determinant path agree on which matrices are singular.
//     WithTolerance sets a fixed tolerance instead; WithTolerance(0) rejects
//     exact zeros only.
//
// The matrix package's UpperTriangle/Determinant path always rescues zero
// pivots by a row swap; the solver only does so under PivotPartial.
//
// Complexity:
//
//   - Time:  O(n³) elimination, O(n²) back substitution.
//   - Space: O(n²) for the private copy of A.
//
// Error handling (sentinel errors from package matrix):
//
//   - ErrNilMatrix:         nil A, b or x.
//   - ErrNonSquare:         A is not n×n.
//   - ErrDimensionMismatch: len(b) or len(x) differs from n.
//   - ErrSingular:          zero pivot under SingularError.
//
// API reference:
//
//	func Solve(a *matrix.Dense[float64], b []float64, opts ...Option) ([]float64, error)
//	func SolveInto(a *matrix.Dense[float64], b, x []float64, opts ...Option) error
//	func SolveMatrix(a *matrix.Dense[float64], b []float64, opts ...Option) (*matrix.Dense[float64], error)
//	func Residual(a *matrix.Dense[float64], x, b []float64) (float64, error)
package gauss
