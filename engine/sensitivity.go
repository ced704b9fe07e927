// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/eval"
	"github.com/uneda-cda/UNEDA-sub000/tornado"
)

// tornadoAlt brackets variable v's effect on alternative alt's ψ EV by
// temporarily pinning v to its feasible extremes and re-evaluating,
// checking the abort flag before each solve.
func (m *Manager) tornadoAlt(h Handle, crit int, b Basis, v, alt int, mode tornado.Mode) (tornado.Bracket, error) {
	if m.abortRequested() {
		return tornado.Bracket{}, codes.New(codes.ErrUserAbort, "aborted")
	}
	base, err := m.currentBasis(h, crit, b)
	if err != nil {
		return tornado.Bracket{}, err
	}
	c, err := m.criterionOf(h, crit)
	if err != nil {
		return tornado.Bracket{}, err
	}
	evalFn := func() float64 {
		c.InvalidateCache()
		ev, e := c.Evaluator()
		if e != nil {
			return 0
		}
		return ev.Evaluate(eval.RulePsi, alt, 0, nil).Mid
	}
	br, err := tornado.Variable(base, v, mode, evalFn)
	c.InvalidateCache()
	return br, err
}

// PTornado and VTornado bracket a single P/V variable's effect on every
// alternative's ψ EV for criterion crit.
func (m *Manager) PTornado(h Handle, crit, v int, nAlts int, mode tornado.Mode) (out []tornado.Bracket, err error) {
	err = m.call(func() error {
		out = make([]tornado.Bracket, nAlts)
		for a := 0; a < nAlts; a++ {
			if m.abortRequested() {
				return codes.New(codes.ErrUserAbort, "aborted")
			}
			br, e := m.tornadoAlt(h, crit, BasisP, v, a, mode)
			if e != nil {
				return e
			}
			out[a] = br
		}
		return nil
	})
	return out, err
}

func (m *Manager) VTornado(h Handle, crit, v int, nAlts int, mode tornado.Mode) (out []tornado.Bracket, err error) {
	err = m.call(func() error {
		out = make([]tornado.Bracket, nAlts)
		for a := 0; a < nAlts; a++ {
			if m.abortRequested() {
				return codes.New(codes.ErrUserAbort, "aborted")
			}
			br, e := m.tornadoAlt(h, crit, BasisV, v, a, mode)
			if e != nil {
				return e
			}
			out[a] = br
		}
		return nil
	})
	return out, err
}

// WTornado brackets a weight-tree variable's effect on the MC aggregate:
// it runs the ordinary tornado algorithm over the weight simplex, scoring
// each pinned state by the weight tree's Omega aggregate of every
// criterion's current ψ EV.
func (m *Manager) WTornado(h Handle, v int, nAlts int, mode tornado.Mode) (out []tornado.Bracket, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		out = make([]tornado.Bracket, nAlts)
		for a := 0; a < nAlts; a++ {
			if m.abortRequested() {
				return codes.New(codes.ErrUserAbort, "aborted")
			}
			evalFn := func() float64 {
				values, e := m.perCriterionPsi(f, a)
				if e != nil {
					return 0
				}
				oe := eval.NewOmegaEngine(f.Weight.Frame, f.Weight.P)
				return oe.Omega(values)
			}
			br, e := tornado.Variable(f.Weight.P, v, mode, evalFn)
			if e != nil {
				return e
			}
			out[a] = br
		}
		return nil
	})
	return out, err
}

// MCPTornado and MCVTornado are the MC variants of PTornado/VTornado: the
// bracket for criterion crit is additionally scaled by that criterion's
// current weight midpoint.
func (m *Manager) MCPTornado(h Handle, crit, v int, nAlts int, mode tornado.Mode, weightMid float64) ([]tornado.Bracket, error) {
	out, err := m.PTornado(h, crit, v, nAlts, mode)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].MCScale(weightMid)
	}
	return out, nil
}

func (m *Manager) MCVTornado(h Handle, crit, v int, nAlts int, mode tornado.Mode, weightMid float64) ([]tornado.Bracket, error) {
	out, err := m.VTornado(h, crit, v, nAlts, mode)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].MCScale(weightMid)
	}
	return out, nil
}

// ConsInfluence returns, for every real consequence of alternative alt,
// the V-tornado bracket width — a quick ranking of which leaves matter
// most to that alternative's EV.
func (m *Manager) ConsInfluence(h Handle, crit, alt int, mode tornado.Mode) (widths []float64, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		c, e := f.criterionFrame(crit)
		if e != nil {
			return e
		}
		reals := c.Frame.RealNodes(alt)
		widths = make([]float64, len(reals))
		for i, t := range reals {
			v := c.Frame.RealFlatOfNode(alt, t)
			br, e := m.tornadoAlt(h, crit, BasisV, v, alt, mode)
			if e != nil {
				return e
			}
			w := br.Up - br.Lo
			if w < 0 {
				w = -w
			}
			widths[i] = w
		}
		return nil
	})
	return widths, err
}
