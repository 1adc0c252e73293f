// Package linsolve solves small dense systems of linear equations A·x = b.
//
// What is inside?
//
//	matrix/  generic dense matrix Dense[T] with a 1-based API: element access,
//	         row exchange, row/column removal, augmentation, arithmetic,
//	         transpose, upper-triangular form, determinant (elimination or LU),
//	         minors, cofactors, adjoint and inverse
//	gauss/   Gaussian elimination with back substitution, optional partial
//	         pivoting, a zero-pivot policy and a residual check
//	linsys/  reader/writer for the flat numeric file format
//	config/  TOML / YAML settings for the solver and the CLI
//	cmd/linsolve  the command line tool (solve, det, inverse, version)
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	x, err := gauss.Solve(a, []float64{4, 7})
//	// x == [1 2]
//
// Every failure is reported as an error wrapping a package sentinel
// (matrix.ErrSingular, linsys.ErrParse, ...); match it with errors.Is.
//
// The core is single-threaded and value based: operations return fresh
// matrices, and only Set, Element, Fill, Pivot, RemoveRow and RemoveColumn
// mutate their receiver.
package linsolve
