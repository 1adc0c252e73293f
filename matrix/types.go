// SPDX-License-Identifier: MIT

// Package matrix: element constraint and package-wide constants.
package matrix

// Float is the element constraint of Dense. Only floating-point kinds are
// admitted: triangularization, LU and Inverse divide by pivots, which has no
// useful meaning for integer kinds.
type Float interface {
	~float32 | ~float64
}

// DefaultEpsilon is the absolute tolerance for EqualApprox and residual
// checks on well-conditioned inputs. It is unrelated to PivotThreshold.
const DefaultEpsilon = 1e-9

// Sign factors recorded by UpperTriangle.
const (
	signPositive = 1  // even number of row swaps
	signNegative = -1 // odd number of row swaps
	signSingular = 0  // no non-zero pivot found; determinant is zero
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew           = "New"
	opNewFromRows   = "NewFromRows"
	opIdentity      = "Identity"
	opAt            = "At"
	opSet           = "Set"
	opElement       = "Element"
	opRow           = "Row"
	opCol           = "Col"
	opPivot         = "Pivot"
	opRemoveRow     = "RemoveRow"
	opRemoveColumn  = "RemoveColumn"
	opAugment       = "Augment"
	opSplitCols     = "SplitCols"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opUpperTriangle = "UpperTriangle"
	opDeterminant   = "Determinant"
	opLU            = "LU"
	opMinor         = "Minor"
	opCofactor      = "Cofactor"
	opAdjoint       = "Adjoint"
	opInverse       = "Inverse"
)
