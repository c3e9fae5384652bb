// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import "strconv"

// Policy selects how multi-index access validates its indices.
//
// The two policies are distinct behaviors and are never mixed within one
// access path:
//
//	PerAxis  - each index is checked against its own dimension before
//	           folding; a violation panics with [*IndexError] naming the axis.
//	FlatOnly - indices are folded unchecked and only the resulting flat
//	           offset is checked against the capacity. An out-of-range axis
//	           index may roll over into a different valid element.
//
// For shape (3, 3), index (3, 0) panics under PerAxis and resolves to the
// element at (0, 1) under FlatOnly.
type Policy uint8

const (
	// PerAxis checks every axis index before folding. This is the default.
	PerAxis Policy = iota
	// FlatOnly relies on the terminal flat-offset check alone.
	FlatOnly
)

func (p Policy) String() string {
	switch p {
	case PerAxis:
		return "per-axis"
	case FlatOnly:
		return "flat-only"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// resolve folds index over dims under policy p and returns a flat offset
// already checked against capacity.
func (p Policy) resolve(dims, index []int, capacity int) int {
	if p == PerAxis {
		checkAxes(dims, index)
	}
	off := fold(dims, index).Offset
	checkFlat(off, capacity)
	return off
}
