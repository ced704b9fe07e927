// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skewnorm

import (
	"testing"

	"github.com/cpmech/gosl/num"
	"github.com/stretchr/testify/require"
)

func TestFitSymmetricIsUnskewed(t *testing.T) {
	p := Fit(0, 1, 0, 1e-9)
	require.InDelta(t, 0, p.Alpha, 1e-9)
	require.InDelta(t, 0, p.Location, 1e-9)
	require.InDelta(t, 1, p.Scale, 1e-9)
}

func TestCDFMonotone(t *testing.T) {
	p := Fit(0, 1, 0.3, 1e-9)
	prev := -1.0
	for x := -5.0; x <= 5.0; x += 0.25 {
		c := p.CDF(x)
		require.GreaterOrEqual(t, c, prev)
		prev = c
	}
	require.InDelta(t, 0, p.CDF(-40), 1e-6)
	require.InDelta(t, 1, p.CDF(40), 1e-6)
}

func TestInvCDFRoundTrip(t *testing.T) {
	p := Fit(2, 3, 0.5, 1e-9)
	for _, belief := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		x := p.InvCDF(belief)
		require.InDelta(t, belief, p.CDF(x), 1e-4)
	}
}

func TestOwenTZeroAtZeroA(t *testing.T) {
	require.InDelta(t, 0, OwenT(1.5, 0), 1e-12)
}

func TestOwenTAntisymmetricInA(t *testing.T) {
	require.InDelta(t, -OwenT(0.7, 1.2), OwenT(0.7, -1.2), 1e-9)
}

func TestDTLCdfFullHullIsOne(t *testing.T) {
	p := Fit(0, 1, 0, 1e-9)
	r := DTLCdf(p, -40, 40, -40, 1e-9)
	require.InDelta(t, 1, r.Mass, 1e-3)
}

func TestDTLCdfDiracCollapse(t *testing.T) {
	p := Fit(5, 1, 0, 1e-9)
	r := DTLCdf(p, 5, 5+1e-12, 4.9, 1e-6)
	require.InDelta(t, 1, r.Mass, 1e-9)
	r2 := DTLCdf(p, 5, 5+1e-12, 5.1, 1e-6)
	require.InDelta(t, 0, r2.Mass, 1e-9)
}

func TestPDFMatchesNumericalDerivativeOfCDF(t *testing.T) {
	p := Fit(1, 2, 0.4, 1e-9)
	for _, x := range []float64{-3, -1, 0, 1.5, 3} {
		d, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			return p.CDF(t)
		}, x, 1e-3)
		require.InDelta(t, p.PDF(x), d, 1e-3)
	}
}

func TestCDFMatchesTrapzIntegralOfPDF(t *testing.T) {
	p := Fit(0, 1, 0, 1e-9)
	const n = 4000
	xs := make([]float64, n)
	ys := make([]float64, n)
	lo, hi := -10.0, 2.0
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		xs[i] = x
		ys[i] = p.PDF(x)
	}
	integral := num.Trapz(xs, ys)
	require.InDelta(t, p.CDF(hi)-p.CDF(lo), integral, 1e-3)
}

func TestDTLCdfNarrowHullFlagsWeakMass(t *testing.T) {
	p := Fit(0, 1, 0, 1e-9)
	r := DTLCdf(p, -0.05, 0.05, -0.05, 1e-9)
	require.Equal(t, int64(2), int64(r.Info))
}
