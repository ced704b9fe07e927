// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

// MCScale is the output scale of criterion 0 (the aggregate / "multi-
// criterion" result), tracked separately from any single criterion's own
// Scale since it is set independently: manually, copied from a criterion,
// or reset to the default [0,1].
type MCScale struct {
	Scale
	set bool
}

// DefaultMCScale is the engine's starting MC scale before any of the three
// setters below are called.
func DefaultMCScale() MCScale {
	return MCScale{Scale: Scale{Min: 0, Max: 1}, set: true}
}

// SetManual installs an explicit (min, max) MC scale.
func (m *MCScale) SetManual(min, max float64, rev bool) {
	m.Scale = Scale{Min: min, Max: max, Rev: rev}
	m.set = true
}

// CopyFrom adopts another criterion's current scale as the MC scale.
func (m *MCScale) CopyFrom(src Scale) {
	m.Scale = src
	m.set = true
}

// Reset restores the default [0,1] MC scale.
func (m *MCScale) Reset() {
	m.Scale = Scale{Min: 0, Max: 1}
	m.set = true
}

// Get returns the current MC scale and whether it has ever been set (it
// always has, once DefaultMCScale or any setter has run).
func (m MCScale) Get() (Scale, bool) { return m.Scale, m.set }
