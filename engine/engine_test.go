// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/eval"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

func TestLifecycleCreateLoadUnloadDispose(t *testing.T) {
	m := New()
	h, err := m.NewPSFlat("two-alt", []int{1, 1})
	require.NoError(t, err)

	loaded, err := m.LoadStatus(h)
	require.NoError(t, err)
	require.False(t, loaded)

	require.NoError(t, m.Load(h))
	loaded, err = m.LoadStatus(h)
	require.NoError(t, err)
	require.True(t, loaded)

	require.Error(t, m.Dispose(h)) // still loaded

	require.NoError(t, m.Unload(h))
	require.NoError(t, m.Dispose(h))

	require.Nil(t, m.Teardown())
}

func TestLoadRefusesASecondFrameWhileOneIsAttached(t *testing.T) {
	m := New()
	h1, err := m.NewPSFlat("a", []int{1})
	require.NoError(t, err)
	h2, err := m.NewPSFlat("b", []int{1})
	require.NoError(t, err)

	require.NoError(t, m.Load(h1))
	err = m.Load(h2)
	require.Error(t, err)
	ce, ok := err.(*codes.Error)
	require.True(t, ok)
	require.Equal(t, codes.ErrFrameInUse, ce.Code)
}

func TestCallReturnsBusyOnReentrancy(t *testing.T) {
	m := New()
	m.busy.Store(true) // simulate a call already in flight
	_, err := m.NewPSFlat("x", []int{1})
	require.Error(t, err)
	ce, ok := err.(*codes.Error)
	require.True(t, ok)
	require.Equal(t, codes.ErrBusy, ce.Code)
}

func TestSetBoxAndEvaluatePsiOnTwoAlternatives(t *testing.T) {
	m := New()
	h, err := m.NewPSFlat("two-alt", []int{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Load(h))

	// Each alternative has one real consequence, so its P-base forces
	// that single variable to 1 already; only the V-base needs setting.
	require.NoError(t, m.SetBox(h, 0, BasisV, []float64{0.2, 0.5}, []float64{0.4, 0.7}))

	r0 := mustEvaluate(t, m, h, eval.RulePsi, 0, 0)
	require.InDelta(t, 0.3, r0.Mid, 1e-9)

	r1 := mustEvaluate(t, m, h, eval.RulePsi, 1, 0)
	require.InDelta(t, 0.6, r1.Mid, 1e-9)

	delta := mustEvaluate(t, m, h, eval.RuleDelta, 0, 1)
	require.InDelta(t, -0.3, delta.Mid, 1e-9)
}

func mustEvaluate(t *testing.T, m *Manager, h Handle, rule eval.Rule, i, j int) eval.EVResult {
	t.Helper()
	res, err := m.Evaluate(h, 0, rule, i, j, nil)
	require.NoError(t, err)
	return res
}

func TestStmtMutationInvalidatesEvaluatorCache(t *testing.T) {
	m := New()
	h, err := m.NewPSFlat("one-alt", []int{1})
	require.NoError(t, err)
	require.NoError(t, m.Load(h))

	require.NoError(t, m.SetBox(h, 0, BasisV, []float64{0.0}, []float64{1.0}))
	require.NoError(t, m.SetMbox1(h, 0, BasisV, []float64{0.5}))

	before := mustEvaluate(t, m, h, eval.RulePsi, 0, 0)
	require.InDelta(t, 0.5, before.Mid, 1e-9)

	require.NoError(t, m.SetMbox1(h, 0, BasisV, []float64{0.9}))
	after := mustEvaluate(t, m, h, eval.RulePsi, 0, 0)
	require.InDelta(t, 0.9, after.Mid, 1e-9)
}

func TestPMCriterionLoadUnloadCycleKeepsBasesAlive(t *testing.T) {
	m := New()
	h, err := m.NewPMTree("two-criteria", []tree.Desc{
		tree.Node(tree.Event, tree.Leaf(), tree.Leaf()),
	})
	require.NoError(t, err)

	critDescs := []tree.Desc{tree.Node(tree.Event, tree.Leaf())}
	require.NoError(t, m.NewPMCritTree(h, 1, critDescs))
	require.NoError(t, m.NewPMCritTree(h, 2, critDescs))

	require.NoError(t, m.Load(h))
	require.NoError(t, m.LoadPMCrit(h, 1))
	require.NoError(t, m.SetBox(h, 1, BasisV, []float64{0.1}, []float64{0.1}))

	require.NoError(t, m.LoadPMCrit(h, 2))
	require.NoError(t, m.SetBox(h, 2, BasisV, []float64{0.8}, []float64{0.8}))

	// Criterion 1's base must still hold its own value after the swap.
	require.NoError(t, m.LoadPMCrit(h, 1))
	r, err := m.Evaluate(h, 1, eval.RulePsi, 0, 0, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.1, r.Mid, 1e-9)

	require.NoError(t, m.UnloadPMCrit(h))
	require.NoError(t, m.Unload(h))
	require.NoError(t, m.Dispose(h))
}

func TestCriterionFrameRejectsUnloadedPMChild(t *testing.T) {
	m := New()
	h, err := m.NewPMTree("pm", []tree.Desc{tree.Node(tree.Event, tree.Leaf())})
	require.NoError(t, err)
	require.NoError(t, m.NewPMCritTree(h, 1, []tree.Desc{tree.Node(tree.Event, tree.Leaf())}))
	require.NoError(t, m.Load(h))

	_, err = m.Evaluate(h, 1, eval.RulePsi, 0, 0, nil)
	require.Error(t, err)
	ce, ok := err.(*codes.Error)
	require.True(t, ok)
	require.Equal(t, codes.ErrFrameNotLoaded, ce.Code)
}

func TestSetAVBoxNormalisesToZeroOneAndReportsScaleChange(t *testing.T) {
	m := New()
	h, err := m.NewPMTree("pm", []tree.Desc{
		tree.Node(tree.Event, tree.Leaf(), tree.Leaf(), tree.Leaf()),
	})
	require.NoError(t, err)
	require.NoError(t, m.NewPMCritTree(h, 1, []tree.Desc{tree.Node(tree.Event, tree.Leaf())}))
	require.NoError(t, m.Load(h))
	require.NoError(t, m.LoadPMCrit(h, 1))

	code, err := m.SetAVBox(h, 1, false, false, []float64{10}, []float64{20})
	require.NoError(t, err)
	require.Equal(t, codes.InfoScaleChange, code)

	sc, err := m.GetAVCritScale(h, 1)
	require.NoError(t, err)
	require.InDelta(t, 10, sc.Min, 1e-9)
	require.InDelta(t, 20, sc.Max, 1e-9)

	lo, up, err := m.GetAVUserInterval(h, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, 10, lo, 1e-9)
	require.InDelta(t, 20, up, 1e-9)

	// A second call with the same bounds reports no change.
	code, err = m.SetAVBox(h, 1, false, false, []float64{10}, []float64{20})
	require.NoError(t, err)
	require.Equal(t, codes.OK, code)
}

func TestMCScaleLifecycleThroughManager(t *testing.T) {
	m := New()
	h, err := m.NewPMTree("pm", []tree.Desc{
		tree.Node(tree.Event, tree.Leaf(), tree.Leaf()),
	})
	require.NoError(t, err)
	require.NoError(t, m.NewPMCritTree(h, 1, []tree.Desc{tree.Node(tree.Event, tree.Leaf())}))
	require.NoError(t, m.Load(h))
	require.NoError(t, m.LoadPMCrit(h, 1))

	require.NoError(t, m.SetAVMCScale(h, 1, -5, 5, false))
	sc, err := m.GetAVMCScale(h, 1)
	require.NoError(t, err)
	require.InDelta(t, -5, sc.Min, 1e-9)
	require.InDelta(t, 5, sc.Max, 1e-9)

	require.NoError(t, m.ResetAVMCScale(h, 1))
	sc, err = m.GetAVMCScale(h, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, sc.Min, 1e-9)
	require.InDelta(t, 1, sc.Max, 1e-9)
}

func TestAbortStopsTornadoLoopEarly(t *testing.T) {
	m := New()
	h, err := m.NewPSFlat("abort-me", []int{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Load(h))
	require.NoError(t, m.SetBox(h, 0, BasisV, []float64{0.2, 0.3}, []float64{0.4, 0.5}))

	m.Abort()
	_, err = m.PTornado(h, 0, 0, 2, 0)
	require.Error(t, err)
	ce, ok := err.(*codes.Error)
	require.True(t, ok)
	require.Equal(t, codes.ErrUserAbort, ce.Code)
}
