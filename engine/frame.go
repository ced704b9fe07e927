// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/google/uuid"

	"github.com/uneda-cda/UNEDA-sub000/arena"
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Handle identifies a frame the Manager knows about, whether or not it is
// currently loaded.
type Handle int

// Frame is one decision frame: a PS/DM/SM frame has a single criterion
// (Main); a PM frame has a weight tree (Weight, whose P slot holds the
// W-base) plus zero or more per-criterion children (Crit), loaded one at a
// time via LoadPMCrit.
type Frame struct {
	Type tree.FrameType
	Name string

	// ExternalID names this frame stably across process restarts, for a
	// future persistence or remote-control layer that cannot rely on the
	// in-process Handle surviving a re-run.
	ExternalID uuid.UUID

	Main   *Criterion
	Weight *Criterion
	Crit   map[int]*Criterion

	loadedCrit int          // -1 if no PM child criterion is currently attached
	arenaH     arena.Handle // this frame's own registration, released on Dispose
}

// newPlainFrame builds a Frame around a single freshly-attached Criterion,
// for PS, DM and SM types.
func newPlainFrame(typ tree.FrameType, name string, fr *tree.Frame) (*Frame, error) {
	c, err := newCriterion(fr)
	if err != nil {
		return nil, err
	}
	return &Frame{Type: typ, Name: name, ExternalID: uuid.New(), Main: c, loadedCrit: -1}, nil
}

// newPMFrame builds a PM frame around its weight tree; criteria are added
// afterward with Manager.NewPMCritTree.
func newPMFrame(name string, weightFr *tree.Frame) (*Frame, error) {
	w, err := newCriterion(weightFr)
	if err != nil {
		return nil, err
	}
	return &Frame{Type: tree.PM, Name: name, ExternalID: uuid.New(), Weight: w, Crit: make(map[int]*Criterion), loadedCrit: -1}, nil
}

// criterionFrame validates crit against f's type and returns the Criterion
// it addresses: Main for crit==0 on a plain frame, Weight for crit==0 on a
// PM frame, or the loaded PM child for crit>0.
func (f *Frame) criterionFrame(crit int) (*Criterion, error) {
	if f.Type != tree.PM {
		if crit != 0 {
			return nil, codes.New(codes.ErrBadCriterion, "frame %q is not a PM frame, criterion must be 0", f.Name)
		}
		return f.Main, nil
	}
	if crit == 0 {
		return f.Weight, nil
	}
	c, ok := f.Crit[crit]
	if !ok {
		return nil, codes.New(codes.ErrBadCriterion, "criterion %d does not exist on frame %q", crit, f.Name)
	}
	if f.loadedCrit != crit {
		return nil, codes.New(codes.ErrFrameNotLoaded, "criterion %d is not loaded", crit)
	}
	return c, nil
}
