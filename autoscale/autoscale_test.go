// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/codes"
)

// TestSetBoxMatchesThreeAltScenario reproduces the three-alternative,
// two-criterion worked example: criterion 1's raw box [[0,1],[2,3],[4,5]]
// normalises onto [0,5] to [[0,0.2],[0.4,0.6],[0.8,1.0]] and reports a
// scale change from the default (0,0) scale.
func TestSetBoxMatchesThreeAltScenario(t *testing.T) {
	v := base.New(base.KindV, 3, nil)
	lobox := []float64{0, 2, 4}
	upbox := []float64{1, 3, 5}

	res, err := SetBox(v, Scale{}, false, lobox, upbox)
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, codes.InfoScaleChange, res.ResultCode())
	require.InDelta(t, 0, res.Scale.Min, 1e-12)
	require.InDelta(t, 5, res.Scale.Max, 1e-12)

	wantLo := []float64{0, 0.4, 0.8}
	wantUp := []float64{0.2, 0.6, 1.0}
	for i := 0; i < 3; i++ {
		lo, up := v.HullOf(i)
		require.InDelta(t, wantLo[i], lo, 1e-9)
		require.InDelta(t, wantUp[i], up, 1e-9)
	}
}

func TestSetBoxNoChangeOnRepeatedCall(t *testing.T) {
	v := base.New(base.KindV, 2, nil)
	lobox := []float64{0, 1}
	upbox := []float64{1, 2}
	res1, err := SetBox(v, Scale{}, false, lobox, upbox)
	require.NoError(t, err)
	res2, err := SetBox(v, res1.Scale, false, lobox, upbox)
	require.NoError(t, err)
	require.False(t, res2.Changed)
	require.Equal(t, codes.OK, res2.ResultCode())
}

func TestSetBoxReversedFlipsOrdering(t *testing.T) {
	v := base.New(base.KindV, 1, nil)
	res, err := SetBox(v, Scale{}, true, []float64{0}, []float64{10})
	require.NoError(t, err)
	lo, up := v.HullOf(0)
	require.InDelta(t, 0, lo, 1e-9)
	require.InDelta(t, 1, up, 1e-9)
	require.InDelta(t, 1, res.Scale.Normalize(0), 1e-9)
	require.InDelta(t, 0, res.Scale.Normalize(10), 1e-9)
}

func TestInflateIfDiracWidensDegenerateScale(t *testing.T) {
	v := base.New(base.KindV, 2, nil)
	res, err := SetBox(v, Scale{}, false, []float64{3, 3}, []float64{3, 3})
	require.NoError(t, err)
	require.InDelta(t, 3, res.Scale.Min, 1e-9)
	require.InDelta(t, 6, res.Scale.Max, 1e-9)
}

func TestSetModalDerivesMeanFromModeBoxAverage(t *testing.T) {
	v := base.New(base.KindV, 1, nil)
	res, err := SetModal(v, Scale{}, false, []float64{0}, []float64{9}, []float64{0})
	require.NoError(t, err)
	lo, up, set := v.MidOf(0)
	require.True(t, set)
	mu := (0.0 + 0.0 + 9.0) / 3
	require.InDelta(t, res.Scale.Normalize(mu), lo, 1e-9)
	require.InDelta(t, res.Scale.Normalize(mu), up, 1e-9)
}

func TestConvertDifferenceAndDistance(t *testing.T) {
	require.InDelta(t, -3, ToOffset(Difference, 7, 10), 1e-12)
	require.InDelta(t, 3, ToOffset(Distance, 7, 10), 1e-12)
	require.InDelta(t, 3, ToOffset(ReverseDifference, 7, 10), 1e-12)
	require.True(t, Distance.Trims())
	require.False(t, Difference.Trims())
}

func TestRatioPlainAndMC(t *testing.T) {
	from := Scale{Min: 0, Max: 5}
	to := Scale{Min: 0, Max: 10}
	require.InDelta(t, 2, Ratio(from, to, RatioPlain, 1, 1), 1e-12)
	require.InDelta(t, 1, Ratio(from, to, RatioMC, 0.5, 1), 1e-12)
}

func TestRatioDiracSourceIsInfinite(t *testing.T) {
	from := Scale{Min: 3, Max: 3}
	to := Scale{Min: 0, Max: 10}
	require.True(t, math.IsInf(Ratio(from, to, RatioPlain, 1, 1), 1))
}

func TestMCScaleLifecycle(t *testing.T) {
	m := DefaultMCScale()
	sc, ok := m.Get()
	require.True(t, ok)
	require.Equal(t, Scale{Min: 0, Max: 1}, sc)

	m.SetManual(-1, 1, false)
	sc, _ = m.Get()
	require.InDelta(t, -1, sc.Min, 1e-12)

	m.CopyFrom(Scale{Min: 2, Max: 8})
	sc, _ = m.Get()
	require.InDelta(t, 8, sc.Max, 1e-12)

	m.Reset()
	sc, _ = m.Get()
	require.Equal(t, Scale{Min: 0, Max: 1}, sc)
}

func TestRenormalizeSiblingsKeepsSimplexFeasible(t *testing.T) {
	w := base.New(base.KindW, 2, nil)
	require.NoError(t, w.SetBox([]float64{0.3, 0.3}, []float64{0.7, 0.7}))
	err := RenormalizeSiblings(w, 0, []int{0, 1}, 2.0)
	require.NoError(t, err)
	lo0, up0 := w.HullOf(0)
	lo1, up1 := w.HullOf(1)
	require.True(t, up0+up1 <= 1.0+1e-9)
	require.True(t, lo0 >= 0 && lo1 >= 0)
}
