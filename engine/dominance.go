// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/dominance"
)

// GetDominance returns the cardinal dominance value and order between
// alternatives i and j of criterion crit.
func (m *Manager) GetDominance(h Handle, crit, i, j int) (cd float64, order dominance.Order, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		cd, order = dominance.Get(ev, i, j)
		return nil
	})
	return cd, order, err
}

// GetDominanceMatrix returns the full nAlts x nAlts matrix of dominance
// orders for criterion crit.
func (m *Manager) GetDominanceMatrix(h Handle, crit, nAlts int) (mat [][]dominance.Order, err error) {
	err = m.call(func() error {
		ev, e := m.evaluatorFor(h, crit)
		if e != nil {
			return e
		}
		mat = dominance.Matrix(ev, nAlts)
		return nil
	})
	return mat, err
}

// GetDominanceNTMatrix removes transitively-implied dominance edges from
// the full matrix.
func (m *Manager) GetDominanceNTMatrix(h Handle, crit, nAlts int, mode dominance.ReduceMode) (mat [][]dominance.Order, err error) {
	full, err := m.GetDominanceMatrix(h, crit, nAlts)
	if err != nil {
		return nil, err
	}
	return dominance.Reduce(full, mode), nil
}

// GetDominanceRank iteratively peels undominated sets into rank levels.
func (m *Manager) GetDominanceRank(h Handle, crit, nAlts int, mode dominance.RankMode, dmode dominance.ReduceMode) (ranks []int, err error) {
	full, err := m.GetDominanceMatrix(h, crit, nAlts)
	if err != nil {
		return nil, err
	}
	return dominance.Rank(full, mode, dmode), nil
}

// GetAbsDominanceMatrix tests weight-independent dominance: Ai absolutely
// dominates Aj iff Ai dominates Aj in every one of a PM frame's criteria.
func (m *Manager) GetAbsDominanceMatrix(h Handle, nAlts int) (mat [][]dominance.Order, err error) {
	err = m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		var perCrit [][][]dominance.Order
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
					if e := c.Frame.Attach(); e != nil {
						return e
					}
				}
				f.loadedCrit = crit
			}
			ev, e := c.Evaluator()
			if e != nil {
				return e
			}
			perCrit = append(perCrit, dominance.Matrix(ev, nAlts))
		}
		if prevLoaded >= 0 && prevLoaded != f.loadedCrit {
			if c, ok := f.Crit[prevLoaded]; ok {
				f.Crit[f.loadedCrit].Frame.Detach()
				_ = c.Frame.Attach()
				f.loadedCrit = prevLoaded
			}
		}
		mat = dominance.AbsMatrix(perCrit)
		return nil
	})
	return mat, err
}
