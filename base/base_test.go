// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

func TestAddStmtAndRollback(t *testing.T) {
	b := New(KindP, 2, []hull.Group{{Vars: []int{0, 1}}})
	_, err := b.AddStmt([]Term{{Var: 0, Sign: 1}}, 0.3, 0.4)
	require.NoError(t, err)
	genBefore := b.Generation()
	nBefore := b.NStmts()

	_, err = b.AddStmt([]Term{{Var: 0, Sign: 1}}, 0.9, 0.95)
	require.Error(t, err)
	require.Equal(t, codes.ErrInconsistent, codes.Decode(err))
	require.Equal(t, genBefore, b.Generation())
	require.Equal(t, nBefore, b.NStmts())
}

func TestModalRoundTrip(t *testing.T) {
	b := New(KindV, 1, nil)
	require.NoError(t, b.SetBoxVar(0, 0.0, 1.0))
	require.NoError(t, b.SetModal(0, 0.3))
	mode, ok := b.GetModal(0)
	require.True(t, ok)
	require.InDelta(t, 0.3, mode, 1e-9)
	require.True(t, b.CheckModality(0))
}

func TestMboxSkipSentinel(t *testing.T) {
	b := New(KindP, 2, nil)
	require.NoError(t, b.SetMbox([]float64{0.2, skipMbox}, []float64{0.3, skipMbox}))
	lo, up, set := b.MidOf(0)
	require.True(t, set)
	require.InDelta(t, 0.2, lo, 1e-9)
	require.InDelta(t, 0.3, up, 1e-9)
	_, _, set1 := b.MidOf(1)
	require.False(t, set1)
}

func TestResetBase(t *testing.T) {
	b := New(KindP, 1, nil)
	_, err := b.AddStmt([]Term{{Var: 0, Sign: 1}}, 0.2, 0.3)
	require.NoError(t, err)
	require.NoError(t, b.ResetBase())
	require.Equal(t, 0, b.NStmts())
	lo, up := b.HullOf(0)
	require.InDelta(t, 0, lo, 1e-9)
	require.InDelta(t, 1, up, 1e-9)
}
