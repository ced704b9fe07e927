// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import "math"

// RatioMode selects whether Ratio returns a pure span ratio or additionally
// weights it by the two criteria's current global weight midpoints, for
// comparing a variable's sensitivity across differently-scaled criteria.
type RatioMode int

const (
	RatioPlain RatioMode = iota
	RatioMC
)

// Ratio returns the ratio of two criteria's scale spans: |span(to) /
// span(from)|. A Dirac source (zero span) has no meaningful ratio and
// returns +Inf. In RatioMC mode the result is additionally multiplied by
// wMidFrom/wMidTo, the two criteria's current weight midpoints, so the
// ratio reflects each criterion's contribution to the aggregate as well as
// its own scale.
func Ratio(from, to Scale, mode RatioMode, wMidFrom, wMidTo float64) float64 {
	spanFrom := math.Abs(from.Span())
	if spanFrom == 0 {
		return math.Inf(1)
	}
	r := math.Abs(to.Span()) / spanFrom
	if mode == RatioMC {
		if wMidTo == 0 {
			return math.Inf(1)
		}
		r *= wMidFrom / wMidTo
	}
	return r
}
