// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/la"
	"github.com/stretchr/testify/require"
)

func TestSolveSimplexBox(t *testing.T) {
	// Two variables, no statements or groups: hull is just the box.
	p := NewPolytope(2, 0, 1)
	p.BoxLo[0], p.BoxUp[0] = 0.2, 0.6
	p.BoxLo[1], p.BoxUp[1] = 0.1, 0.9
	res, err := Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 0.2, res.Lo[0], 1e-6)
	require.InDelta(t, 0.6, res.Up[0], 1e-6)
	require.InDelta(t, 0.1, res.Lo[1], 1e-6)
	require.InDelta(t, 0.9, res.Up[1], 1e-6)
}

func TestSolveSimplexGroup(t *testing.T) {
	// Two siblings summing to 1, var0 in [0.4,0.6]: var1's hull becomes
	// [0.4,0.6] by complementarity.
	p := NewPolytope(2, 0, 1)
	p.BoxLo[0], p.BoxUp[0] = 0.4, 0.6
	p.Groups = []Group{{Vars: []int{0, 1}}}
	res, err := Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 0.4, res.Lo[1], 1e-6)
	require.InDelta(t, 0.6, res.Up[1], 1e-6)
}

func TestSolveInconsistentStatement(t *testing.T) {
	p := NewPolytope(1, 0, 1)
	p.BoxLo[0], p.BoxUp[0] = 0.3, 0.4
	p.Stmts = []Stmt{{Terms: []Term{{Var: 0, Sign: 1}}, Lobo: 0.9, Upbo: 0.95}}
	_, err := Solve(p)
	require.Error(t, err)
	_, isInconsistent := err.(*InconsistentError)
	require.True(t, isInconsistent)
}

func TestSolveTwoTermStatement(t *testing.T) {
	// x0 - x1 in [0.1, 0.2], x0 in [0,1], x1 in [0,1].
	p := NewPolytope(2, 0, 1)
	p.Stmts = []Stmt{{Terms: []Term{{Var: 0, Sign: 1}, {Var: 1, Sign: -1}}, Lobo: 0.1, Upbo: 0.2}}
	res, err := Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 0.1, res.Lo[0], 1e-6)
	require.InDelta(t, 1.0, res.Up[0], 1e-6)
	require.InDelta(t, 0.0, res.Lo[1], 1e-6)
	require.InDelta(t, 0.9, res.Up[1], 1e-6)
}

func TestSolveMidpointNarrows(t *testing.T) {
	p := NewPolytope(1, -1, 1)
	p.BoxLo[0], p.BoxUp[0] = 0.0, 1.0
	p.MboxLo[0], p.MboxUp[0] = 0.3, 0.3
	res, err := Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 0.3, res.Lo[0], 1e-6)
	require.InDelta(t, 0.3, res.Up[0], 1e-6)
}

func TestSolveSimplexGroupHullDistanceToUniform(t *testing.T) {
	// Three siblings summing to 1, all otherwise unconstrained: the hull
	// stays the full simplex range [0,1] for every variable, so each hull
	// midpoint is 0.5 and the distance from the uniform 1/3 point is the
	// norm of three 1/6 offsets, sqrt(3)/6.
	p := NewPolytope(3, 0, 1)
	p.Groups = []Group{{Vars: []int{0, 1, 2}}}
	res, err := Solve(p)
	require.NoError(t, err)

	mid := make([]float64, 3)
	uniform := make([]float64, 3)
	for i := range mid {
		mid[i] = (res.Lo[i] + res.Up[i]) / 2
		uniform[i] = 1.0 / 3.0
	}
	diff := make([]float64, 3)
	for i := range diff {
		diff[i] = mid[i] - uniform[i]
	}
	require.InDelta(t, math.Sqrt(3)/6, la.VecNorm(diff), 1e-6)
}
