// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/autoscale"
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// SetAVBox loads criterion crit's V-base from raw box bounds, applying the
// affine scale normalisation, and reports whether the scale endpoints
// moved (InfoScaleChange). When renorm is set and the scale did move, the
// weight tree's sibling group containing crit is rescaled by the ratio of
// new to old span.
func (m *Manager) SetAVBox(h Handle, crit int, rev, renorm bool, lobox, upbox []float64) (code codes.Code, err error) {
	err = m.call(func() error {
		if m.attached != h {
			return codes.New(codes.ErrFrameNotLoaded, "frame %d is not the attached frame", h)
		}
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		c, e := f.criterionFrame(crit)
		if e != nil {
			return e
		}
		oldScale := c.Scale
		res, e := autoscale.SetBox(c.V, oldScale, rev, lobox, upbox)
		if e != nil {
			return e
		}
		c.Scale = res.Scale
		c.InvalidateCache()
		code = res.ResultCode()
		if renorm && res.Changed && crit > 0 && f.Weight != nil {
			m.renormalizeCriterionWeight(f, crit, oldScale, res.Scale)
		}
		return nil
	})
	return code, err
}

// SetAVModal is SetAVBox plus per-leaf modal values, converted to means.
func (m *Manager) SetAVModal(h Handle, crit int, rev, renorm bool, lobox, modalx, upbox []float64) (code codes.Code, err error) {
	err = m.call(func() error {
		if m.attached != h {
			return codes.New(codes.ErrFrameNotLoaded, "frame %d is not the attached frame", h)
		}
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		c, e := f.criterionFrame(crit)
		if e != nil {
			return e
		}
		oldScale := c.Scale
		res, e := autoscale.SetModal(c.V, oldScale, rev, lobox, upbox, modalx)
		if e != nil {
			return e
		}
		c.Scale = res.Scale
		c.InvalidateCache()
		code = res.ResultCode()
		if renorm && res.Changed && crit > 0 && f.Weight != nil {
			m.renormalizeCriterionWeight(f, crit, oldScale, res.Scale)
		}
		return nil
	})
	return code, err
}

// GetAVCritScale returns criterion crit's current (av_min, av_max).
func (m *Manager) GetAVCritScale(h Handle, crit int) (sc autoscale.Scale, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		c, e := f.criterionFrame(crit)
		if e != nil {
			return e
		}
		sc = c.Scale
		return nil
	})
	return sc, err
}

// SetAVMCScale pins criterion crit's MC scale to an explicit (min, max,
// rev), overriding the autoscale-derived one used for MC weighting.
func (m *Manager) SetAVMCScale(h Handle, crit int, min, max float64, rev bool) error {
	return m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		c.MCScale.SetManual(min, max, rev)
		return nil
	})
}

// CopyAVMCScale sets criterion crit's MC scale equal to its current
// autoscale box scale.
func (m *Manager) CopyAVMCScale(h Handle, crit int) error {
	return m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		c.MCScale.CopyFrom(c.Scale)
		return nil
	})
}

// ResetAVMCScale restores criterion crit's MC scale to the default [0,1].
func (m *Manager) ResetAVMCScale(h Handle, crit int) error {
	return m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		c.MCScale.Reset()
		return nil
	})
}

// GetAVMCScale returns criterion crit's current MC scale.
func (m *Manager) GetAVMCScale(h Handle, crit int) (sc autoscale.Scale, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		sc, _ = c.MCScale.Get()
		return nil
	})
	return sc, err
}

// GetAVUserValue converts the centre of V-base variable v's current hull
// back to the raw scale units of criterion crit.
func (m *Manager) GetAVUserValue(h Handle, crit, v int) (val float64, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		if v < 0 || v >= c.V.NVars() {
			return codes.New(codes.ErrBadNode, "variable %d out of range", v)
		}
		lo, up := c.V.HullOf(v)
		val = c.Scale.Denormalize((lo + up) / 2)
		return nil
	})
	return val, err
}

// GetAVUserInterval converts V-base variable v's current hull bounds back
// to raw scale units.
func (m *Manager) GetAVUserInterval(h Handle, crit, v int) (lo, up float64, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		if v < 0 || v >= c.V.NVars() {
			return codes.New(codes.ErrBadNode, "variable %d out of range", v)
		}
		nLo, nUp := c.V.HullOf(v)
		rLo, rUp := c.Scale.Denormalize(nLo), c.Scale.Denormalize(nUp)
		if c.Scale.Rev {
			rLo, rUp = rUp, rLo
		}
		lo, up = rLo, rUp
		return nil
	})
	return lo, up, err
}

// GetAVUserIntervals is GetAVUserInterval for every real leaf of criterion
// crit, in flat-V order.
func (m *Manager) GetAVUserIntervals(h Handle, crit int) (lo, up []float64, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		n := c.V.NVars()
		lo = make([]float64, n)
		up = make([]float64, n)
		for v := 0; v < n; v++ {
			nLo, nUp := c.V.HullOf(v)
			rLo, rUp := c.Scale.Denormalize(nLo), c.Scale.Denormalize(nUp)
			if c.Scale.Rev {
				rLo, rUp = rUp, rLo
			}
			lo[v], up[v] = rLo, rUp
		}
		return nil
	})
	return lo, up, err
}

// GetAVNormValue is the inverse of GetAVUserValue: it converts a raw scale
// reading into the engine's internal [0, 1] normalised units for criterion
// crit, without touching the base.
func (m *Manager) GetAVNormValue(h Handle, crit int, raw float64) (norm float64, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		norm = c.Scale.Normalize(raw)
		return nil
	})
	return norm, err
}

// InAVLegalRange reports whether raw, read as scale type t relative to ref,
// falls within that type's legal range (e.g. Distance offsets are never
// negative).
func (m *Manager) InAVLegalRange(t autoscale.Type, raw, ref float64) bool {
	return autoscale.InLegalRange(t, autoscale.ToOffset(t, raw, ref))
}

// renormalizeCriterionWeight rescales the weight tree's sibling group
// containing crit by the ratio of the criterion's new span to its old
// span, per set_AV_box's renorm flag. Criterion indices map 1:1 onto the
// weight tree's real nodes in declaration order.
func (m *Manager) renormalizeCriterionWeight(f *Frame, crit int, oldScale, newScale autoscale.Scale) {
	oldSpan, newSpan := oldScale.Span(), newScale.Span()
	if oldSpan == 0 {
		return
	}
	ratio := newSpan / oldSpan
	wf := f.Weight.Frame
	reals := wf.RealNodes(0)
	idx := crit - 1
	if idx < 0 || idx >= len(reals) {
		return
	}
	node := reals[idx]
	v := wf.FlatOfNode(0, node)
	parent := wf.Up(0, node)
	var siblingFlat []int
	for _, s := range wf.Siblings(0, parent) {
		if wf.Kind(0, s) == tree.Real {
			siblingFlat = append(siblingFlat, wf.FlatOfNode(0, s))
		}
	}
	if len(siblingFlat) == 0 {
		return
	}
	_ = autoscale.RenormalizeSiblings(f.Weight.P, v, siblingFlat, ratio)
	f.Weight.InvalidateCache()
}
