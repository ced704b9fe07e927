// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moment

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestTriangularLeafMatchesSampledMoments cross-checks TriangularLeaf's
// closed-form mean/variance against sampled draws from the same symmetric
// triangular distribution, via gonum/stat.
func TestTriangularLeafMatchesSampledMoments(t *testing.T) {
	lo, up, mid := 2.0, 10.0, 5.0
	tr := TriangularLeaf(lo, up, mid, true)

	rng := rand.New(rand.NewSource(1))
	const n = 200000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = sampleSymmetricTriangular(rng, lo, up, mid)
	}
	mean := stat.Mean(samples, nil)
	variance := stat.Variance(samples, nil)

	require.InDelta(t, tr.M1, mean, 0.05)
	require.InDelta(t, tr.M2, variance, 0.05)
}

// sampleSymmetricTriangular draws from the symmetric triangular
// distribution TriangularLeaf models: mode at mid, half-width clipped to
// the shorter of the two sides of [lo, up]. Uses the inverse-CDF of a
// triangular distribution on [-w, w], split at the peak.
func sampleSymmetricTriangular(rng *rand.Rand, lo, up, mid float64) float64 {
	w := mid - lo
	if up-mid < w {
		w = up - mid
	}
	if w <= 0 {
		return mid
	}
	u := rng.Float64()
	var offset float64
	if u < 0.5 {
		offset = -w + w*math.Sqrt(2*u)
	} else {
		offset = w - w*math.Sqrt(2*(1-u))
	}
	return mid + offset
}
