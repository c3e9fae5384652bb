// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import "code.hybscloud.com/atomix"

// Tally is a multi-dimensional grid of counters that many goroutines may
// update concurrently, such as the bins of an N-dimensional histogram.
//
// Counters are addressed like [Array] elements: any arity, one index per
// axis, checked under the [PerAxis] policy. A one-axis tally accepts a
// single index. Snapshot is not atomic across counters; take it after
// writers have stopped for an exact copy.
//
// Example:
//
//	t := mdarr.NewTally(10, 10)
//	for _, p := range points {
//	    go func() { t.Inc(p.X, p.Y) }()
//	}
type Tally struct {
	shape Shape
	bins  []atomix.Int64
}

// NewTally creates a tally with all counters at zero.
// Panics if the dimensions are invalid (see [NewShape]).
func NewTally(dims ...int) *Tally {
	s := NewShape(dims...)
	return &Tally{shape: s, bins: make([]atomix.Int64, s.Capacity())}
}

// Shape returns the shape of the counter grid.
func (t *Tally) Shape() Shape {
	return t.shape
}

// Inc adds one to the counter at index and returns the new count.
func (t *Tally) Inc(index ...int) int64 {
	return t.bins[t.shape.Offset(index...)].AddAcqRel(1)
}

// Add adds delta to the counter at index and returns the new count.
func (t *Tally) Add(delta int64, index ...int) int64 {
	return t.bins[t.shape.Offset(index...)].AddAcqRel(delta)
}

// Load returns the counter at index.
func (t *Tally) Load(index ...int) int64 {
	return t.bins[t.shape.Offset(index...)].Load()
}

// Total returns the sum of all counters.
func (t *Tally) Total() int64 {
	var sum int64
	for i := range t.bins {
		sum += t.bins[i].Load()
	}
	return sum
}

// Snapshot copies the counters into a new [Array] of the same shape.
// For a one-axis tally, read the copy through [Array.FlatValue].
func (t *Tally) Snapshot() *Array[int64] {
	a := &Array[int64]{
		dense: dense[int64]{data: make([]int64, len(t.bins))},
		shape: t.shape,
	}
	for i := range t.bins {
		a.data[i] = t.bins[i].Load()
	}
	return a
}
