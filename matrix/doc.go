// Package matrix provides Dense, a generic dense matrix over float32/float64
// with a 1-based public API.
//
// The matrix package provides:
//
//   - Safe element access (At, Set, Element) that reports *IndexError instead
//     of panicking.
//   - Row and column extraction, row exchange (Pivot), row/column removal,
//     horizontal augmentation and its inverse (Augment, SplitCols).
//   - Arithmetic: Scale, Add, Sub, Mul, Transpose, Equal/EqualApprox.
//   - The determinant family: UpperTriangle (zero-pivot rescue with a
//     recorded sign factor), Determinant, LU/DeterminantLU, Minor, Cofactor,
//     Adjoint and Inverse.
//
// Storage is a single row-major buffer; offset = (row-1)*cols + (col-1).
// Dense is a value type in spirit: Clone and every derived result own their
// buffer. Adjoint and Inverse go through n² cofactor determinants (O(n⁵))
// and are meant for small matrices.
//
// See example_test.go for usage patterns.
package matrix
