// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the checked (Try*)
// operations. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Unchecked operations take no options; they never test preconditions.
package transform

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/vecmat"
)

// DefaultEpsilon is the tolerance below which a determinant (TryInv,
// TryReorderShift, TryNormalTransform) or a cross-product length (TryLookAt)
// counts as zero.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "transform: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps    float64      // >= 0; DefaultEpsilon
	logger *slog.Logger // nil ⇒ vecmat.Logger()
}

// WithEpsilon sets the degeneracy tolerance.
//
// Panics with a stable message when eps is negative, NaN or ±Inf: such a
// value is a programmer error, not a runtime condition.
//
// Use 0 with integer scalars to reject exactly-singular matrices only.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes the debug records of one call to l instead of the
// package logger. A nil l keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = vecmat.Logger()
	}

	return o
}

// NewOptions resolves opts over the defaults, as every checked operation
// does internally.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Logger returns the resolved logger; never nil after NewOptions.
func (o Options) Logger() *slog.Logger { return o.logger }
