// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mdarr provides fixed-shape multi-dimensional arrays over a single
// contiguous buffer.
//
// An array owns exactly one buffer of capacity = d0 * d1 * ... * dn-1
// elements. Multi-index access folds the index tuple into one flat offset
// and then goes through the flat accessor, so both surfaces address the
// same storage with the same result.
//
// # Quick Start
//
// Compile-time shapes use a tag type; arity is checked by the compiler:
//
//	type Cube3 struct{}
//
//	func (Cube3) Dims() [3]int { return [3]int{3, 3, 3} }
//
//	a := mdarr.New3[int, Cube3]()
//	*a.At(2, 1, 0) = 5
//	a.At(2, 1)       // compile error: not enough arguments
//
// Runtime shapes use the builder; arity is checked on every call before
// any computation:
//
//	b := mdarr.Build[int](mdarr.New(7, 3))
//	b.Set(20, 6, 2)
//	b.At(6)          // panics with *ArityError
//
// # Layout
//
// Axis 0 is fastest-varying:
//
//	offset(i0, ..., in-1) = i0 + d0*i1 + d0*d1*i2 + ...
//
// The mapping is a bijection between valid index tuples and [0, capacity).
// [Fold] computes it recursively over the arity, and every array uses it:
// storage is sized with [Capacity] and multi-index accessors address the
// folded offset. [Strides] and [Offset] compute the same value from a
// precomputed stride table.
//
// Whole-buffer operations work on the backing slice returned by Data,
// in flat order:
//
//	mdarr.Iota(a.Data(), 0)          // 0, 1, 2, ... 26
//	slices.Max(a.Data())             // 26
//	for off, v := range a.All() { ... }
//
// # Access Surfaces
//
//	Flat(i) *T, FlatValue(i) T, SetFlat(i, v)   every array
//	At(i...) *T, Get(i...) T, Set(v, i...)      arity > 1 only
//	AtRollover(i...) *T                          Array2..Array4
//
// [Array1] has no multi-index surface: its flat accessor already
// addresses every element.
//
// # Bounds Policy
//
// Flat access is always checked against [0, capacity). Multi-index access
// follows one of two explicitly named policies:
//
//	PerAxis  - each index is checked against its dimension first
//	FlatOnly - only the folded offset is checked; an axis overflow that
//	           folds into range addresses another element
//
// Static arrays use PerAxis for At, Get and Set, and FlatOnly for
// AtRollover. Runtime arrays fix the policy when built:
//
//	a := mdarr.Build[int](mdarr.New(3, 3).Rollover())
//	a.At(3, 0) // element (0, 1), no panic
//
// # Error Handling
//
// There is no recoverable error path. Structural mistakes (wrong number
// of indices) fail to compile for Array2..Array4 and panic with
// [*ArityError] for runtime shapes. Out-of-range indices panic with
// [*IndexError], the analogue of a slice index out of range.
//
// The span queue used by [ParallelFor] reports [ErrWouldBlock], sourced
// from [code.hybscloud.com/iox] for ecosystem consistency.
//
// # Value Semantics
//
// Every constructor copies its input and no two arrays share storage.
// Go generics cannot carry an array length, so an array is referenced
// through a pointer and copied with Clone:
//
//	b := a.Clone() // independent buffer
//
// # Thread Safety
//
// [Fold], [Strides], [Offset] and [Shape] are pure and safe for concurrent
// use. Array elements may be read concurrently while no goroutine writes.
// Concurrent writers need caller-supplied exclusion, with two exceptions:
//
//   - [Tally]: counters backed by atomix, safe for concurrent updates
//   - [ParallelFor]: each element is handed to exactly one worker
//
// # Race Detection
//
// Tally and the span queue synchronize through atomix orderings the race
// detector cannot observe. Tests depending on them are excluded via
// //go:build !race, and [RaceEnabled] reports the build mode.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic counters and
// sequence numbers, [code.hybscloud.com/spin] for CPU pause in the span
// queue, [code.hybscloud.com/iox] for semantic errors and backoff,
// [golang.org/x/exp/constraints] for numeric generators and
// [gonum.org/v1/gonum/mat] for matrix interop.
package mdarr
