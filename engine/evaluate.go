// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/eval"
)

func (m *Manager) evaluatorFor(h Handle, crit int) (*eval.Evaluator, error) {
	if m.attached != h {
		return nil, codes.New(codes.ErrFrameNotLoaded, "frame %d is not the attached frame", h)
	}
	c, err := m.criterionOf(h, crit)
	if err != nil {
		return nil, err
	}
	return c.Evaluator()
}

// Evaluate computes {min, mid, max} for rule over (i, j, subset) of
// criterion crit, with mid the moment mean.
func (m *Manager) Evaluate(h Handle, crit int, rule eval.Rule, i, j int, subset []int) (res eval.EVResult, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		res = ev.Evaluate(rule, i, j, subset)
		return nil
	})
	return res, err
}

// EvaluateFull returns the 3x21 cone matrix for rule over (i, j, subset).
func (m *Manager) EvaluateFull(h Handle, crit int, rule eval.Rule, i, j int, subset []int, mode eval.FullMode) (mat eval.FullMatrix, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		mat = ev.EvaluateFull(rule, i, j, subset, mode)
		return nil
	})
	return mat, err
}

// EvaluateOmega aggregates alternative a's per-criterion ψ EVs through the
// full weight tree.
func (m *Manager) EvaluateOmega(h Handle, a int) (result float64, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		values, e := m.perCriterionPsi(f, a)
		if e != nil {
			return e
		}
		oe := eval.NewOmegaEngine(f.Weight.Frame, f.Weight.P)
		result = oe.Omega(values)
		return nil
	})
	return result, err
}

// EvaluateOmega1 aggregates alternative a's per-criterion ψ EVs only up to
// the first weight-tree level.
func (m *Manager) EvaluateOmega1(h Handle, a int) (result float64, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		values, e := m.perCriterionPsi(f, a)
		if e != nil {
			return e
		}
		oe := eval.NewOmegaEngine(f.Weight.Frame, f.Weight.P)
		result = oe.Omega1(values)
		return nil
	})
	return result, err
}

// perCriterionPsi collects alternative a's psi EV mean across every
// criterion of PM frame f, in criterion-index order 1..N, requiring each
// be loaded in turn (a PM frame keeps only one child criterion attached at
// once, so this cycles through LoadPMCrit internally).
func (m *Manager) perCriterionPsi(f *Frame, a int) ([]float64, error) {
	out := make([]float64, 0, len(f.Crit))
	prevLoaded := f.loadedCrit
	for crit := 1; crit <= len(f.Crit); crit++ {
		c, ok := f.Crit[crit]
		if !ok {
			continue
		}
		if f.loadedCrit != crit {
			if f.loadedCrit >= 0 {
				f.Crit[f.loadedCrit].Frame.Detach()
			}
			if !c.Frame.Attached() {
				if err := c.Frame.Attach(); err != nil {
					return nil, codes.New(codes.ErrFrameCorrupt, "%s", err)
				}
			}
			f.loadedCrit = crit
		}
		ev, err := c.Evaluator()
		if err != nil {
			return nil, err
		}
		r := ev.Evaluate(eval.RulePsi, a, 0, nil)
		out = append(out, r.Mid)
	}
	if prevLoaded >= 0 && prevLoaded != f.loadedCrit {
		if c, ok := f.Crit[prevLoaded]; ok {
			f.Crit[f.loadedCrit].Frame.Detach()
			_ = c.Frame.Attach()
			f.loadedCrit = prevLoaded
		}
	}
	return out, nil
}

// MassAbove and MassBelow query belief mass at level x under rule.
func (m *Manager) MassAbove(h Handle, crit int, rule eval.Rule, i, j int, subset []int, x float64) (res eval.MassResult, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		res = ev.MassAbove(rule, i, j, subset, x)
		return nil
	})
	return res, err
}

func (m *Manager) MassBelow(h Handle, crit int, rule eval.Rule, i, j int, subset []int, x float64) (res eval.MassResult, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		res = ev.MassBelow(rule, i, j, subset, x)
		return nil
	})
	return res, err
}

// SupportMass is the belief-level inverse of the mass queries.
func (m *Manager) SupportMass(h Handle, crit int, rule eval.Rule, i, j int, subset []int, belief float64) (val float64, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		val = ev.SupportMass(rule, i, j, subset, belief)
		return nil
	})
	return val, err
}

// AversionValue returns the risk-attitude-adjusted EV for r in [-10, 10].
func (m *Manager) AversionValue(h Handle, crit int, rule eval.Rule, i, j int, subset []int, r float64) (val float64, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		val = ev.AversionValue(rule, i, j, subset, r)
		return nil
	})
	return val, err
}

// RankAlternatives ranks criterion crit's alternatives by mode.
func (m *Manager) RankAlternatives(h Handle, crit int, mode eval.RankMode) (ranks []int, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		ranks = ev.RankAlternatives(mode)
		return nil
	})
	return ranks, err
}

// DaisyChain and PieChart produce the pairwise/normalised visualisation
// sequences for criterion crit.
func (m *Manager) DaisyChain(h Handle, crit int, radius float64) (vals []float64, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		vals = ev.DaisyChain(radius)
		return nil
	})
	return vals, err
}

func (m *Manager) PieChart(h Handle, crit int, radius float64) (vals []float64, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		daisy := ev.DaisyChain(radius)
		vals = eval.PieChart(daisy)
		return nil
	})
	return vals, err
}

// CompareAlternatives returns the EV and belief comparison of i vs j.
func (m *Manager) CompareAlternatives(h Handle, crit, i, j int) (res eval.CompareResult, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		res = ev.CompareAlternatives(i, j)
		return nil
	})
	return res, err
}
