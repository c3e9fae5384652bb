// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import (
	"strconv"

	"code.hybscloud.com/iox"
)

// FlatAxis is the [IndexError.Axis] value reported by the flat bounds check.
const FlatAxis = -1

// IndexError describes an out-of-range access.
//
// Out-of-range access is a programming error, never a recoverable
// condition: accessors panic with an *IndexError the same way the runtime
// panics on a slice index out of range. The panic value can be inspected
// after recover with errors.As.
//
// Example:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        var ie *mdarr.IndexError
//	        if err, ok := r.(error); ok && errors.As(err, &ie) {
//	            log.Printf("axis %d: %d not in [0, %d)", ie.Axis, ie.Index, ie.Bound)
//	        }
//	        panic(r)
//	    }
//	}()
type IndexError struct {
	Axis  int // Offending axis, or FlatAxis for the flat check
	Index int // Supplied index
	Bound int // Exclusive upper bound for that axis or the capacity
}

func (e *IndexError) Error() string {
	if e.Axis == FlatAxis {
		return "mdarr: flat index " + strconv.Itoa(e.Index) +
			" out of range [0, " + strconv.Itoa(e.Bound) + ")"
	}
	return "mdarr: index " + strconv.Itoa(e.Index) + " on axis " + strconv.Itoa(e.Axis) +
		" out of range [0, " + strconv.Itoa(e.Bound) + ")"
}

// ArityError describes a mismatch between the arity of a shape and the
// number of indices supplied for it.
//
// The fixed-arity types [Array2], [Array3] and [Array4] make this error
// impossible to express. Runtime-shaped values ([Array], [Shape], [Fold])
// check arity before any computation and panic with an *ArityError.
type ArityError struct {
	Want int // Arity of the shape
	Got  int // Number of indices supplied
}

func (e *ArityError) Error() string {
	switch {
	case e.Want == 0:
		return "mdarr: shape must have at least one axis"
	case e.Want == 1 && e.Got == 1:
		return "mdarr: multi-index access requires arity > 1"
	}
	return "mdarr: arity mismatch: shape has " + strconv.Itoa(e.Want) +
		" axes, got " + strconv.Itoa(e.Got) + " indices"
}

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// Returned by the span queue behind [ParallelFor] when it is full or empty.
// It is a control flow signal, not a failure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
