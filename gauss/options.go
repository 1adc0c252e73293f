// SPDX-License-Identifier: MIT

// Package gauss: functional configuration of the direct solver.
// This file defines:
//   - Pivoting and SingularPolicy enums with parsers for textual configuration,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Defaults reproduce the plain textbook elimination: no row exchange.
//   - Zero pivots never silently produce a finite wrong answer: the default
//     policy reports ErrSingular, the opt-in policy propagates Inf/NaN.
//   - "Zero" is scale-relative by default (matrix.PivotThreshold);
//     WithTolerance(0) restores the exact-zero test.
package gauss

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// Pivoting selects the row-exchange strategy used before each normalization.
type Pivoting int

const (
	// PivotNone performs no row exchange; the diagonal element is used as-is.
	PivotNone Pivoting = iota
	// PivotPartial swaps in the row with the largest |A[k][r]|, k ≥ r.
	PivotPartial
)

// String returns the configuration spelling of p.
func (p Pivoting) String() string {
	switch p {
	case PivotNone:
		return "none"
	case PivotPartial:
		return "partial"
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// ParsePivoting maps "none" / "partial" (case-insensitive) to a Pivoting.
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PivotNone, nil
	case "partial":
		return PivotPartial, nil
	default:
		return PivotNone, fmt.Errorf("gauss: unknown pivoting %q: %w", s, ErrBadOption)
	}
}

// SingularPolicy decides what happens when a pivot is zero (within tolerance).
type SingularPolicy int

const (
	// SingularError stops and returns matrix.ErrSingular.
	SingularError SingularPolicy = iota
	// SingularPropagate divides anyway; Inf/NaN flow into the solution.
	SingularPropagate
)

// String returns the configuration spelling of s.
func (s SingularPolicy) String() string {
	switch s {
	case SingularError:
		return "error"
	case SingularPropagate:
		return "propagate"
	default:
		return fmt.Sprintf("SingularPolicy(%d)", int(s))
	}
}

// ParseSingularPolicy maps "error" / "propagate" (case-insensitive).
func ParseSingularPolicy(s string) (SingularPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return SingularError, nil
	case "propagate":
		return SingularPropagate, nil
	default:
		return SingularError, fmt.Errorf("gauss: unknown singular policy %q: %w", s, ErrBadOption)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting keeps the literal elimination order.
	DefaultPivoting = PivotNone

	// DefaultSingularPolicy surfaces zero pivots as errors.
	DefaultSingularPolicy = SingularError

	// ToleranceAuto derives the zero-pivot tolerance from A itself:
	// (*matrix.Dense).PivotThreshold, the same test the determinant uses.
	ToleranceAuto = -1.0

	// DefaultTolerance: a pivot p is treated as zero when |p| <= tolerance.
	DefaultTolerance = ToleranceAuto

	// DefaultPrecision selects the shortest %g rendering of each component.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "gauss: WithTolerance: tol must be ToleranceAuto or finite, non-negative"
	panicPrecisionInvalid = "gauss: WithPrecision: precision must be >= -1"
	panicPivotingInvalid  = "gauss: WithPivoting: unknown pivoting mode"
	panicPolicyInvalid    = "gauss: WithSingularPolicy: unknown policy"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	pivoting  Pivoting
	singular  SingularPolicy
	tolerance float64
	out       io.Writer // nil: print nothing
	precision int
	logger    *slog.Logger
}

// WithPivoting selects the row-exchange strategy.
func WithPivoting(p Pivoting) Option {
	if p != PivotNone && p != PivotPartial {
		panic(panicPivotingInvalid)
	}

	return func(o *options) { o.pivoting = p }
}

// WithSingularPolicy selects error vs. Inf/NaN propagation on zero pivots.
func WithSingularPolicy(s SingularPolicy) Option {
	if s != SingularError && s != SingularPropagate {
		panic(panicPolicyInvalid)
	}

	return func(o *options) { o.singular = s }
}

// WithTolerance treats pivots with |p| <= tol as zero. Zero rejects only
// exact zeros; ToleranceAuto selects the scale-relative default.
func WithTolerance(tol float64) Option {
	if tol != ToleranceAuto && (math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithOutput prints one "x{i} = value" line per solution component to w.
// A nil writer disables printing.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithPrecision sets the number of significant digits printed by WithOutput;
// -1 selects the shortest exact representation.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

// WithLogger routes debug traces of the elimination (pivot choices, zero
// pivots) to l. A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{
		pivoting:  DefaultPivoting,
		singular:  DefaultSingularPolicy,
		tolerance: DefaultTolerance,
		precision: DefaultPrecision,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
