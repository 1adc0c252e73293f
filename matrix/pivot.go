// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	epsilon32 = 0x1p-23 // spacing of float32 values at 1
	epsilon64 = 0x1p-52 // spacing of float64 values at 1
)

// Epsilon returns the machine epsilon of T: 2^-23 for float32 kinds and
// 2^-52 for float64 kinds.
func Epsilon[T Float]() float64 {
	one := T(1)
	if one+T(epsilon64) == one {
		return epsilon32
	}

	return epsilon64
}

// PivotThreshold returns n·ε·‖m‖∞ for an n×n matrix, where ‖m‖∞ is the
// largest absolute row sum and ε is Epsilon[T]. A pivot met while
// eliminating m whose magnitude does not exceed this value is rounding noise
// and counts as zero. UpperTriangle, Determinant, LU and Inverse use it, and
// the gauss solver uses it by default.
//
// An all-zero matrix yields 0, so only exact zeros count there.
func (m *Dense[T]) PivotThreshold() float64 {
	var norm, sum float64
	var i, j int
	for i = 0; i < m.r; i++ {
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += math.Abs(float64(m.data[i*m.c+j]))
		}
		norm = math.Max(norm, sum)
	}

	return float64(max(m.r, m.c)) * Epsilon[T]() * norm
}

// IsZeroPivot reports whether |p| <= threshold. NaN is never a zero pivot.
func IsZeroPivot[T Float](p T, threshold float64) bool {
	return math.Abs(float64(p)) <= threshold
}
