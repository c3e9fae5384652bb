// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Shape is a runtime shape descriptor: an ordered list of positive
// dimension sizes with its precomputed stride table.
//
// A Shape is immutable. The zero Shape is invalid; use [NewShape].
type Shape struct {
	dims     []int
	strides  []int
	capacity int
}

// NewShape creates a shape from dimension sizes in axis order.
//
// Panics if dims is empty, any dimension is < 1, or the capacity
// overflows int.
func NewShape(dims ...int) Shape {
	n := capacity(dims)
	d := slices.Clone(dims)
	return Shape{
		dims:     d,
		strides:  Strides(d...),
		capacity: n,
	}
}

// Arity returns the number of axes.
func (s Shape) Arity() int {
	return len(s.dims)
}

// Dims returns a copy of the dimension sizes.
func (s Shape) Dims() []int {
	return slices.Clone(s.dims)
}

// Dim returns the size of axis k.
func (s Shape) Dim(k int) int {
	return s.dims[k]
}

// Capacity returns the product of all dimension sizes.
func (s Shape) Capacity() int {
	return s.capacity
}

// Strides returns a copy of the stride table (axis 0 has stride 1).
func (s Shape) Strides() []int {
	return slices.Clone(s.strides)
}

// Offset returns the flat offset of index under the [PerAxis] policy.
// Panics with [*ArityError] on an arity mismatch and with [*IndexError]
// on the first out-of-range axis.
func (s Shape) Offset(index ...int) int {
	s.checkArity(len(index))
	return PerAxis.resolve(s.dims, index, s.capacity)
}

// OffsetRollover returns the flat offset of index under the [FlatOnly]
// policy. Panics with [*IndexError] only if the folded offset itself is
// outside [0, Capacity()).
func (s Shape) OffsetRollover(index ...int) int {
	s.checkArity(len(index))
	return FlatOnly.resolve(s.dims, index, s.capacity)
}

// Coords returns the index tuple at flat offset off. It is the inverse
// of [Shape.Offset]. Panics with [*IndexError] if off is out of range.
func (s Shape) Coords(off int) []int {
	checkFlat(off, s.capacity)
	index := make([]int, len(s.dims))
	for k, d := range s.dims {
		index[k] = off % d
		off /= d
	}
	return index
}

// Contains reports whether index is a valid tuple for s.
func (s Shape) Contains(index ...int) bool {
	if len(index) != len(s.dims) {
		return false
	}
	for k, i := range index {
		if uint(i) >= uint(s.dims[k]) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s.dims, other.dims)
}

// String returns the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for k, d := range s.dims {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(')')
	return b.String()
}

// Iter iterates over every valid index tuple in flat order (axis 0
// fastest), yielding the flat offset with each tuple.
//
// The yielded slice is owned by the iterator and is overwritten on the
// next step: copy it to retain it.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if s.capacity == 0 {
			return
		}
		index := make([]int, len(s.dims))
		for off := range s.capacity {
			if !yield(off, index) {
				return
			}
			for k := range index {
				index[k]++
				if index[k] < s.dims[k] {
					break
				}
				index[k] = 0
			}
		}
	}
}

func (s Shape) checkArity(n int) {
	if len(s.dims) == 0 || n != len(s.dims) {
		panic(&ArityError{Want: len(s.dims), Got: n})
	}
}
