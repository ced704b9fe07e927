// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tornado

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/base"
)

func TestVariableBracketsFeasibleRange(t *testing.T) {
	b := base.New(base.KindV, 1, nil)
	require.NoError(t, b.SetBoxVar(0, 0, 10))

	evalFn := func() float64 {
		lo, up := b.HullOf(0)
		return (lo + up) / 2
	}
	br, err := Variable(b, 0, MidpointKept, evalFn)
	require.NoError(t, err)
	require.True(t, br.Lo <= 0)
	require.True(t, br.Up >= 0)

	// The temporary statement must have been removed and the base left at
	// its original hull afterward.
	lo, up := b.HullOf(0)
	require.InDelta(t, 0, lo, 1e-6)
	require.InDelta(t, 10, up, 1e-6)
}

func TestVariableFloatingMidpointRestoresMidpoints(t *testing.T) {
	b := base.New(base.KindV, 1, nil)
	require.NoError(t, b.SetBoxVar(0, 0, 10))
	require.NoError(t, b.AddMidStmt(0, 4, 6))

	evalFn := func() float64 { return 0 }
	_, err := Variable(b, 0, FloatingMidpoint, evalFn)
	require.NoError(t, err)

	lo, up, set := b.MidOf(0)
	require.True(t, set)
	require.InDelta(t, 4, lo, 1e-9)
	require.InDelta(t, 6, up, 1e-9)
}

func TestMCScale(t *testing.T) {
	br := Bracket{Lo: -2, Up: 4}
	scaled := br.MCScale(0.5)
	require.InDelta(t, -1, scaled.Lo, 1e-9)
	require.InDelta(t, 2, scaled.Up, 1e-9)
}
