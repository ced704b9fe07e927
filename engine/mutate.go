// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

// Basis selects which of a criterion's bases a mutation call addresses.
type Basis int

const (
	BasisP Basis = iota
	BasisV
	BasisW
)

// currentBasis resolves (frame handle, criterion, basis) to the *base.Base
// it names, checking both the process-wide attached-frame invariant and
// the per-PM-criterion loaded invariant.
func (m *Manager) currentBasis(h Handle, crit int, b Basis) (*base.Base, error) {
	if m.attached != h {
		return nil, codes.New(codes.ErrFrameNotLoaded, "frame %d is not the attached frame", h)
	}
	f, err := m.lookup(h)
	if err != nil {
		return nil, err
	}
	c, err := f.criterionFrame(crit)
	if err != nil {
		return nil, err
	}
	switch b {
	case BasisV:
		if c.V == nil {
			return nil, codes.New(codes.ErrWrongFrameType, "criterion %d has no V-base", crit)
		}
		return c.V, nil
	case BasisW:
		if crit != 0 {
			return nil, codes.New(codes.ErrBadCriterion, "W-base only exists at criterion 0")
		}
		return c.P, nil
	default:
		return c.P, nil
	}
}

func (m *Manager) criterionOf(h Handle, crit int) (*Criterion, error) {
	f, err := m.lookup(h)
	if err != nil {
		return nil, err
	}
	return f.criterionFrame(crit)
}

// AddStmt appends a new statement on basis b of (h, crit) and returns the
// base's new statement count (the "positive code is a count" convention).
func (m *Manager) AddStmt(h Handle, crit int, b Basis, terms []hull.Term, lobo, upbo float64) (count int, err error) {
	err = m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		idx, e := base.AddStmt(terms, lobo, upbo)
		if e != nil {
			return e
		}
		count = idx + 1
		m.invalidate(h, crit)
		return nil
	})
	return count, err
}

// ChangeStmt narrows/widens statement idx's bounds in place.
func (m *Manager) ChangeStmt(h Handle, crit int, b Basis, idx int, lobo, upbo float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.ChangeStmt(idx, lobo, upbo); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// ReplaceStmt replaces statement idx's terms and bounds wholesale.
func (m *Manager) ReplaceStmt(h Handle, crit int, b Basis, idx int, terms []hull.Term, lobo, upbo float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.ReplaceStmt(idx, terms, lobo, upbo); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// DeleteStmt removes statement idx and returns the base's remaining
// statement count.
func (m *Manager) DeleteStmt(h Handle, crit int, b Basis, idx int) (count int, err error) {
	err = m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.DeleteStmt(idx); e != nil {
			return e
		}
		count = base.NStmts()
		m.invalidate(h, crit)
		return nil
	})
	return count, err
}

// AddMidStmt records a midpoint bound for variable v of basis b.
func (m *Manager) AddMidStmt(h Handle, crit int, b Basis, v int, lobo, upbo float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.AddMidStmt(v, lobo, upbo); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// DeleteMidStmt clears variable v's midpoint back to empty.
func (m *Manager) DeleteMidStmt(h Handle, crit int, b Basis, v int) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.DeleteMidStmt(v); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// RemoveMbox clears every midpoint on basis b at once.
func (m *Manager) RemoveMbox(h Handle, crit int, b Basis) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.RemoveMbox(); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// SetBox bulk-sets basis b's interval box.
func (m *Manager) SetBox(h Handle, crit int, b Basis, lobo, upbo []float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.SetBox(lobo, upbo); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// SetMbox bulk-sets basis b's midpoint box; -2 in either slot leaves that
// variable's current midpoint untouched.
func (m *Manager) SetMbox(h Handle, crit int, b Basis, lobo, upbo []float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.SetMbox(lobo, upbo); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// SetMbox1 is SetMbox with a single value per variable (lobo aliased to
// upbo).
func (m *Manager) SetMbox1(h Handle, crit int, b Basis, mid []float64) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.SetMbox1(mid); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// NVars returns the number of variables on basis b of (h, crit).
func (m *Manager) NVars(h Handle, crit int, b Basis) (n int, err error) {
	err = m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		n = base.NVars()
		return nil
	})
	return n, err
}

// NAlts returns the number of decision alternatives of (h, crit): for a
// PS/DM/SM frame crit is always 0; for a PM frame it names one of the
// (loaded) child criteria, since the weight tree at crit 0 holds criteria,
// not decision alternatives.
func (m *Manager) NAlts(h Handle, crit int) (n int, err error) {
	err = m.call(func() error {
		c, e := m.criterionOf(h, crit)
		if e != nil {
			return e
		}
		n = c.Frame.NAlts()
		return nil
	})
	return n, err
}

// GetHull returns (lo, up) for variable v of basis b.
func (m *Manager) GetHull(h Handle, crit int, b Basis, v int) (lo, up float64, err error) {
	err = m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if v < 0 || v >= base.NVars() {
			return codes.New(codes.ErrBadNode, "variable %d out of range", v)
		}
		lo, up = base.HullOf(v)
		return nil
	})
	return lo, up, err
}

// ResetBase clears basis b's statements and midpoints and restores its box
// to the basis's natural full range.
func (m *Manager) ResetBase(h Handle, crit int, b Basis) error {
	return m.call(func() error {
		base, e := m.currentBasis(h, crit, b)
		if e != nil {
			return e
		}
		if e := base.ResetBase(); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// SetModal sets variable v's V-base midpoint from a modal value.
func (m *Manager) SetModal(h Handle, crit int, v int, mode float64) error {
	return m.call(func() error {
		vb, e := m.currentBasis(h, crit, BasisV)
		if e != nil {
			return e
		}
		if e := vb.SetModal(v, mode); e != nil {
			return e
		}
		m.invalidate(h, crit)
		return nil
	})
}

// GetModal returns the modal value implied by V-base variable v's current
// midpoint and hull.
func (m *Manager) GetModal(h Handle, crit int, v int) (mode float64, ok bool, err error) {
	err = m.call(func() error {
		vb, e := m.currentBasis(h, crit, BasisV)
		if e != nil {
			return e
		}
		mode, ok = vb.GetModal(v)
		return nil
	})
	return mode, ok, err
}

// CheckModality reports whether V-base variable v's midpoint, if any,
// converts to a valid in-hull mode.
func (m *Manager) CheckModality(h Handle, crit int, v int) (bool, error) {
	var ok bool
	err := m.call(func() error {
		vb, e := m.currentBasis(h, crit, BasisV)
		if e != nil {
			return e
		}
		ok = vb.CheckModality(v)
		return nil
	})
	return ok, err
}

// ModalityMatrix reports CheckModality for every V-base variable.
func (m *Manager) ModalityMatrix(h Handle, crit int) ([]bool, error) {
	var out []bool
	err := m.call(func() error {
		vb, e := m.currentBasis(h, crit, BasisV)
		if e != nil {
			return e
		}
		out = vb.ModalityMatrix()
		return nil
	})
	return out, err
}

func (m *Manager) invalidate(h Handle, crit int) {
	if c, err := m.criterionOf(h, crit); err == nil {
		c.InvalidateCache()
	}
}
