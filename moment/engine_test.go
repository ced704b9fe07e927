// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/hull"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

func TestAlternativeMeanMatchesWeightedSum(t *testing.T) {
	fr, err := tree.NewFlat(tree.PS, "t", []int{2})
	require.NoError(t, err)
	require.NoError(t, fr.Attach())

	groups := fr.EventGroups(0)
	require.Len(t, groups, 2) // the alt-root chain (just the event node) and the event node's own children
	var vars []int
	for _, c := range groups[1].Children {
		vars = append(vars, fr.FlatOfNode(0, c))
	}

	p := base.New(base.KindP, fr.NFlatTotal(), []hull.Group{{Vars: vars}})
	mid := make([]float64, fr.NFlatTotal())
	for i := range mid {
		mid[i] = 0.5
	}
	require.NoError(t, p.SetMbox1(mid))

	v := base.New(base.KindV, fr.NFlatReal(), nil)
	require.NoError(t, v.SetBox([]float64{0, 0}, []float64{10, 10}))
	require.NoError(t, v.SetMbox1([]float64{2, 8}))

	e, err := New(fr, p, v)
	require.NoError(t, err)
	tr := e.Alternative(0)
	require.InDelta(t, 5, tr.M1, 1e-6)
	require.True(t, tr.M2 > 0)
}

func TestAverageMomentsReducesToSingleComponent(t *testing.T) {
	tr := Triple{M1: 1, M2: 2, M3: 3}
	got := AverageMoments([]Triple{tr})
	require.InDelta(t, tr.M1, got.M1, 1e-9)
	require.InDelta(t, tr.M2, got.M2, 1e-9)
	require.InDelta(t, tr.M3, got.M3, 1e-9)
}

func TestAverageMomentsIsPlainAverageNotFullMixture(t *testing.T) {
	// Two components with equal variance but different means: the law of
	// total variance would add a between-component term (Var of the means)
	// on top of the average variance. The spec's γ/Δγ combination rule
	// does not: it is a literal average of each moment on its own.
	ts := []Triple{{M1: 0, M2: 1}, {M1: 10, M2: 1}}
	got := AverageMoments(ts)
	require.InDelta(t, 5, got.M1, 1e-9)
	require.InDelta(t, 1, got.M2, 1e-9)
}

func TestDeltaAntisymmetric(t *testing.T) {
	all := []Triple{{M1: 3, M2: 1}, {M1: 5, M2: 2}}
	d01 := Delta(all, 0, 1)
	d10 := Delta(all, 1, 0)
	require.InDelta(t, -d01.M1, d10.M1, 1e-9)
	require.InDelta(t, d01.M2, d10.M2, 1e-9) // variance of a difference is symmetric
}

func TestGammaAgainstTwoIdenticalRest(t *testing.T) {
	all := []Triple{{M1: 10, M2: 1}, {M1: 4, M2: 1}, {M1: 4, M2: 1}}
	g := Gamma(all, 0)
	require.InDelta(t, 6, g.M1, 1e-9)
}
