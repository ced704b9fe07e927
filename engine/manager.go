// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/uneda-cda/UNEDA-sub000/arena"
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Manager is the process-wide frame manager and mutex façade. The zero
// value is not usable; construct with New.
type Manager struct {
	busy     atomic.Bool
	aborted  atomic.Bool
	arena    *arena.Arena
	frames   map[Handle]*Frame
	nextID   Handle
	attached Handle // 0 means "none attached"
}

// New returns a ready-to-use Manager with no frames and nothing attached.
func New() *Manager {
	return &Manager{arena: arena.New(), frames: make(map[Handle]*Frame)}
}

// call serialises one public operation through the non-blocking
// re-entrancy guard: if another call is already in flight, it returns
// busy immediately rather than waiting, matching the single-threaded
// cooperative scheduling model.
func (m *Manager) call(fn func() error) error {
	if !m.busy.CompareAndSwap(false, true) {
		return codes.New(codes.ErrBusy, "engine is busy")
	}
	defer m.busy.Store(false)
	return fn()
}

// Abort raises the abort-requested flag; long-running loops in the
// evaluator, dominance matrix and tornado sensitivity check it between
// iterations and unwind to user-abort if set.
func (m *Manager) Abort() { m.aborted.Store(true) }

// abortRequested reports and clears the abort flag for one observation.
func (m *Manager) abortRequested() bool { return m.aborted.Swap(false) }

// clearAbort resets the abort flag, e.g. at the start of a new top-level
// call so a stale abort from a prior cancelled call cannot leak forward.
func (m *Manager) clearAbort() { m.aborted.Store(false) }

func (m *Manager) register(f *Frame) Handle {
	m.nextID++
	h := m.nextID
	m.frames[h] = f
	f.arenaH = m.arena.Register(arena.TagFrame, f.Name)
	return h
}

func (m *Manager) lookup(h Handle) (*Frame, error) {
	f, ok := m.frames[h]
	if !ok {
		return nil, codes.New(codes.ErrFrameNotLoaded, "no such frame handle %d", h)
	}
	return f, nil
}

// NewPSFlat creates a flat single-criterion probability frame: nCons[a]
// direct real children under each alternative's implicit event root.
func (m *Manager) NewPSFlat(name string, nCons []int) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewFlat(tree.PS, name, nCons)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPlainFrame(tree.PS, name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewPSTree creates a tree-structured single-criterion probability frame.
func (m *Manager) NewPSTree(name string, descs []tree.Desc) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewTree(tree.PS, name, descs)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPlainFrame(tree.PS, name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewDMFlat creates a flat value-only decision-matrix frame (no P-base
// simplex constraints are meaningful, but the underlying tree still
// carries one for structural uniformity; callers simply never query it).
func (m *Manager) NewDMFlat(name string, nCons []int) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewFlat(tree.DM, name, nCons)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPlainFrame(tree.DM, name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewDMTree creates a tree-structured value-only decision-matrix frame.
func (m *Manager) NewDMTree(name string, descs []tree.Desc) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewTree(tree.DM, name, descs)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPlainFrame(tree.DM, name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewSMTree creates a single-criterion matrix frame (a tree-structured PS
// frame that the evaluator treats identically; SM and PS share the same
// Criterion representation, differing only in frame-type metadata).
func (m *Manager) NewSMTree(name string, descs []tree.Desc) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewTree(tree.SM, name, descs)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPlainFrame(tree.SM, name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewPMFlat creates a multi-criterion frame whose weight tree is flat.
func (m *Manager) NewPMFlat(name string, nCons []int) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewFlat(tree.PM, name, nCons)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPMFrame(name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewPMTree creates a multi-criterion frame with a tree-structured weight
// tree.
func (m *Manager) NewPMTree(name string, descs []tree.Desc) (h Handle, err error) {
	err = m.call(func() error {
		fr, e := tree.NewTree(tree.PM, name, descs)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		f, e := newPMFrame(name, fr)
		if e != nil {
			return e
		}
		h = m.register(f)
		return nil
	})
	return h, err
}

// NewPMCritTree adds criterion index crit (>0) to PM frame h, built as a
// tree-structured P/V criterion of its own. The new criterion starts
// detached; LoadPMCrit attaches it before any base or evaluation call can
// address it.
func (m *Manager) NewPMCritTree(h Handle, crit int, descs []tree.Desc) error {
	return m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		if f.Type != tree.PM {
			return codes.New(codes.ErrWrongFrameType, "frame %q is not a PM frame", f.Name)
		}
		if crit <= 0 {
			return codes.New(codes.ErrBadCriterion, "PM criterion index must be > 0, got %d", crit)
		}
		if _, exists := f.Crit[crit]; exists {
			return codes.New(codes.ErrBadCriterion, "criterion %d already exists", crit)
		}
		fr, e := tree.NewTree(tree.PS, f.Name, descs)
		if e != nil {
			return codes.New(codes.ErrFrameCorrupt, "%s", e)
		}
		c, e := newCriterion(fr)
		if e != nil {
			return e
		}
		fr.Detach()
		f.Crit[crit] = c
		return nil
	})
}

// LoadPMCrit attaches PM frame h's criterion crit so it can be addressed
// by base-mutation and evaluation calls. Only one PM child criterion may
// be loaded at a time; loading a new one first unloads whichever was
// loaded.
func (m *Manager) LoadPMCrit(h Handle, crit int) error {
	return m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		c, ok := f.Crit[crit]
		if !ok {
			return codes.New(codes.ErrBadCriterion, "criterion %d does not exist", crit)
		}
		if f.loadedCrit == crit {
			return nil
		}
		if f.loadedCrit >= 0 {
			f.Crit[f.loadedCrit].Frame.Detach()
		}
		if !c.Frame.Attached() {
			if err := c.Frame.Attach(); err != nil {
				return codes.New(codes.ErrFrameCorrupt, "%s", err)
			}
		}
		f.loadedCrit = crit
		return nil
	})
}

// UnloadPMCrit detaches whichever PM child criterion is currently loaded.
func (m *Manager) UnloadPMCrit(h Handle) error {
	return m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		if f.loadedCrit < 0 {
			return nil
		}
		f.Crit[f.loadedCrit].Frame.Detach()
		f.loadedCrit = -1
		return nil
	})
}

// DeletePMCrit removes criterion crit entirely, unloading it first if
// necessary.
func (m *Manager) DeletePMCrit(h Handle, crit int) error {
	return m.call(func() error {
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		if _, ok := f.Crit[crit]; !ok {
			return codes.New(codes.ErrBadCriterion, "criterion %d does not exist", crit)
		}
		if f.loadedCrit == crit {
			f.Crit[crit].Frame.Detach()
			f.loadedCrit = -1
		}
		delete(f.Crit, crit)
		return nil
	})
}

// PMCritExists reports whether PM frame h has criterion crit defined.
func (m *Manager) PMCritExists(h Handle, crit int) (bool, error) {
	f, err := m.lookup(h)
	if err != nil {
		return false, err
	}
	_, ok := f.Crit[crit]
	return ok, nil
}

// Load makes frame h the process-wide attached frame. At most one frame
// may be attached at a time.
func (m *Manager) Load(h Handle) error {
	return m.call(func() error {
		if m.attached != 0 && m.attached != h {
			return codes.New(codes.ErrFrameInUse, "frame %d is already loaded", m.attached)
		}
		if _, e := m.lookup(h); e != nil {
			return e
		}
		m.attached = h
		return nil
	})
}

// Unload releases the process-wide attached-frame slot, if h holds it.
func (m *Manager) Unload(h Handle) error {
	return m.call(func() error {
		if m.attached != h {
			return nil
		}
		m.attached = 0
		return nil
	})
}

// Dispose destroys frame h outright; h must not be the currently attached
// frame.
func (m *Manager) Dispose(h Handle) error {
	return m.call(func() error {
		if m.attached == h {
			return codes.New(codes.ErrFrameInUse, "frame %d is loaded, unload first", h)
		}
		f, e := m.lookup(h)
		if e != nil {
			return e
		}
		delete(m.frames, h)
		m.arena.Release(f.arenaH)
		return nil
	})
}

// FrameName returns frame h's name.
func (m *Manager) FrameName(h Handle) (string, error) {
	f, err := m.lookup(h)
	if err != nil {
		return "", err
	}
	return f.Name, nil
}

// FrameExternalID returns frame h's stable external identifier.
func (m *Manager) FrameExternalID(h Handle) (uuid.UUID, error) {
	f, err := m.lookup(h)
	if err != nil {
		return uuid.UUID{}, err
	}
	return f.ExternalID, nil
}

// FrameType returns frame h's type.
func (m *Manager) FrameType(h Handle) (tree.FrameType, error) {
	f, err := m.lookup(h)
	if err != nil {
		return 0, err
	}
	return f.Type, nil
}

// LoadStatus reports whether h is the currently attached frame.
func (m *Manager) LoadStatus(h Handle) (bool, error) {
	if _, err := m.lookup(h); err != nil {
		return false, err
	}
	return m.attached == h, nil
}

// Teardown checks the arena for leaked registrations; call once at process
// exit.
func (m *Manager) Teardown() *arena.LeakReport {
	return m.arena.Teardown()
}
