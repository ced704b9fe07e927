// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package moment computes the first three raw/central moments of each
// alternative's expected value under the assumption that every leaf value
// is an independent symmetric triangular variable on its hull, centred on
// its midpoint, and every probability/weight is Dirichlet-like on its
// simplex with the stated midpoints as means.
package moment

// Triple is (mean, variance, third central moment) of a random variable —
// the currency this package and package skewnorm pass back and forth.
type Triple struct {
	M1 float64 // mean
	M2 float64 // variance (second central moment)
	M3 float64 // third central moment
}

// Add returns the moments of the sum of two independent random variables.
func (t Triple) Add(o Triple) Triple {
	return Triple{M1: t.M1 + o.M1, M2: t.M2 + o.M2, M3: t.M3 + o.M3}
}

// Sub returns the moments of t - o for independent random variables: the
// mean subtracts, variance still adds (variance of a difference of
// independents), and the third central moment subtracts (odd moment).
func (t Triple) Sub(o Triple) Triple {
	return Triple{M1: t.M1 - o.M1, M2: t.M2 + o.M2, M3: t.M3 - o.M3}
}

// Scale returns the moments of c*X for a constant c.
func (t Triple) Scale(c float64) Triple {
	return Triple{M1: c * t.M1, M2: c * c * t.M2, M3: c * c * c * t.M3}
}
