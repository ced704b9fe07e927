// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import "math"

// Type selects how a raw user-facing value relates to a criterion's
// (av_min, av_max) endpoints.
//
//   - Absolute: the value IS the criterion reading. Any sign is legal; the
//     normalised output is never trimmed.
//   - Difference: the value is a signed offset from the criterion's own
//     reference point (its midpoint). Any sign is legal; not trimmed.
//   - Distance: like Difference, but direction is discarded — only the
//     magnitude of the offset matters, so the input's sign is unconstrained
//     but the normalised output is trimmed to [0, +inf) before scaling.
//   - ReverseDifference: a Difference scale with the sign of the offset
//     flipped, for criteria where "more negative" input means "more
//     preferred" even though the base scale itself is not Reversed.
type Type int

const (
	Absolute Type = iota
	Difference
	Distance
	ReverseDifference
)

func (t Type) String() string {
	switch t {
	case Absolute:
		return "absolute"
	case Difference:
		return "difference"
	case Distance:
		return "distance"
	case ReverseDifference:
		return "reverse-difference"
	default:
		return "?"
	}
}

// Trims reports whether values of this type are clamped to non-negative
// before being applied, per Type's doc comment.
func (t Type) Trims() bool { return t == Distance }

// ToOffset converts a raw user value x, interpreted as Type t relative to
// reference ref (the criterion's own reference point; ignored for
// Absolute), into the plain signed offset Normalize expects as its input
// domain.
func ToOffset(t Type, x, ref float64) float64 {
	switch t {
	case Absolute:
		return x
	case Difference:
		return x - ref
	case Distance:
		d := x - ref
		if d < 0 {
			d = -d
		}
		return d
	case ReverseDifference:
		return ref - x
	default:
		return x
	}
}

// InLegalRange reports whether x is a legal input for scale type t: every
// type accepts any finite value except Distance, whose raw reading (before
// the reference subtraction) must not be NaN or infinite either — there is
// no sign restriction on the input itself, only on the derived offset's
// trim behaviour.
func InLegalRange(t Type, x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// InLegalRangeAll reports whether every value in xs is legal for scale type t.
func InLegalRangeAll(t Type, xs []float64) bool {
	for _, x := range xs {
		if !InLegalRange(t, x) {
			return false
		}
	}
	return true
}
