// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codes holds the single integer return-code taxonomy used
// throughout the engine. Positive codes are success-with-count results
// (e.g. a statement count after add/delete); zero and other non-negative
// codes are plain success or informational; negative codes are errors.
package codes

import "fmt"

// Code is the single return-code type used by every public engine
// operation: positive codes are counts, negative codes are errors, and the
// small set of informational codes below sit at fixed non-negative values
// so callers can switch on them directly.
type Code int

// Informational codes (non-negative, not errors; the result they
// accompany is valid and usable).
const (
	OK Code = 0

	// InfoScaleChange is returned by autoscale operations when the
	// criterion's (av_min, av_max) endpoints moved.
	InfoScaleChange Code = 1

	// InfoWeakMassDistribution flags a belief-mass query whose hull
	// covers less than 90% of the untruncated skew-normal's mass.
	InfoWeakMassDistribution Code = 2

	// InfoDifferingRanks flags a ranking operation where two requested
	// rank modes disagree (used by composite rank/dominance queries).
	InfoDifferingRanks Code = 3

	// InfoInfiniteMass flags a Dirac collapse: the hull degenerates to a
	// single point and mass queries return a step function.
	InfoInfiniteMass Code = 4
)

// Error codes (negative), grouped by kind.
const (
	// Usage
	ErrNotInitialised Code = -1 - iota
	ErrFrameNotLoaded
	ErrFrameInUse
	ErrBusy
	ErrWrongFrameType

	// Input
	ErrBadCriterion
	ErrBadAlternative
	ErrBadNode
	ErrBadPointer
	ErrBadMode
	ErrBoundsCross

	// Data
	ErrInconsistent
	ErrTooNarrowStatement

	// Structural
	ErrOverflow
	ErrFrameCorrupt

	// Resource
	ErrOutOfMemory
	ErrMemoryLeak

	// Cancellation
	ErrUserAbort

	// Recoverable assertion
	ErrAssertFailed
)

// kernelBase is subtracted from a hull-solver internal failure code so
// callers can tell "the kernel failed, and here's its own sub-cause" from
// an engine-level error.
const kernelBase = Code(-10000)

// KernelError wraps a hull-solver internal sub-cause into the offset
// kernel error range.
func KernelError(subcause int) Code {
	return kernelBase - Code(subcause)
}

// IsKernelError reports whether c falls in the offset kernel range and, if
// so, returns the sub-cause that produced it.
func IsKernelError(c Code) (subcause int, ok bool) {
	if c > kernelBase || c <= kernelBase-1000 {
		return 0, false
	}
	return int(kernelBase - c), true
}

// userErrors is the subset of negative codes attributable to the caller's
// own mistake rather than a system-level failure; IsUserError is stricter
// than IsError: it includes ErrInconsistent and ErrTooNarrowStatement (bad
// input data), but excludes structural/kernel/resource failures.
var userErrors = map[Code]bool{
	ErrBadCriterion:       true,
	ErrBadAlternative:     true,
	ErrBadNode:            true,
	ErrBadPointer:         true,
	ErrBadMode:            true,
	ErrBoundsCross:        true,
	ErrInconsistent:       true,
	ErrTooNarrowStatement: true,
	ErrWrongFrameType:     true,
}

// IsError reports whether c represents any failure (negative code).
func IsError(c Code) bool {
	return c < 0
}

// IsUserError reports whether c represents a failure attributable to the
// caller's input rather than the engine's own state; see userErrors.
func IsUserError(c Code) bool {
	if c < 0 {
		if _, kernel := IsKernelError(c); kernel {
			return false
		}
	}
	return userErrors[c]
}

// String renders a code for logs and error messages.
func (c Code) String() string {
	if sub, ok := IsKernelError(c); ok {
		return fmt.Sprintf("kernel-error(%d)", sub)
	}
	if s, ok := names[c]; ok {
		return s
	}
	if c > 0 {
		return fmt.Sprintf("count(%d)", int(c))
	}
	return fmt.Sprintf("code(%d)", int(c))
}

var names = map[Code]string{
	OK:                       "ok",
	InfoScaleChange:          "scale-change",
	InfoWeakMassDistribution: "weak-mass-distribution",
	InfoDifferingRanks:       "differing-ranks",
	InfoInfiniteMass:         "infinite-mass",
	ErrNotInitialised:        "not-initialised",
	ErrFrameNotLoaded:        "frame-not-loaded",
	ErrFrameInUse:            "frame-in-use",
	ErrBusy:                  "busy",
	ErrWrongFrameType:        "wrong-frame-type",
	ErrBadCriterion:          "bad-criterion",
	ErrBadAlternative:        "bad-alternative",
	ErrBadNode:               "bad-node",
	ErrBadPointer:            "bad-pointer",
	ErrBadMode:               "bad-mode",
	ErrBoundsCross:           "bounds-cross",
	ErrInconsistent:          "inconsistent",
	ErrTooNarrowStatement:    "too-narrow-statement",
	ErrOverflow:              "overflow",
	ErrFrameCorrupt:          "frame-corrupt",
	ErrOutOfMemory:           "out-of-memory",
	ErrMemoryLeak:            "memory-leak",
	ErrUserAbort:             "user-abort",
	ErrAssertFailed:          "assert-failed",
}

// Error adapts a Code to the error interface so it can flow through normal
// Go error-returning functions while still carrying the numeric code callers
// decode through Decode.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// New builds an *Error for code c with a formatted message.
func New(c Code, format string, args ...interface{}) *Error {
	return &Error{Code: c, Msg: fmt.Sprintf(format, args...)}
}

// Decode extracts the Code carried by err, or OK if err is nil, or
// ErrAssertFailed if err is a foreign error type (mirrors the mutex
// façade's job of translating any panic/violation into assert-failed).
func Decode(err error) Code {
	if err == nil {
		return OK
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ErrAssertFailed
}
