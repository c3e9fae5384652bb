// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

// Folded is the result of folding a shape and an index tuple.
type Folded struct {
	Capacity int // Product of all dimension sizes
	Offset   int // Flat offset of the index tuple
}

// Fold folds an ordered list of dimension sizes and an ordered list of
// indices of the same arity into the capacity of the shape and the flat
// offset of the index tuple.
//
// Axis 0 is fastest-varying:
//
//	offset = i0 + d0*(i1 + d1*(i2 + ...))
//
// The fold is recursive over the arity. Arity 1 yields (d0, i0). Arity n
// folds the tail into (tc, to) and combines the head as (d0*tc, i0+d0*to).
//
// Fold performs no bounds checking on index. Panics with [*ArityError] if
// the lists are empty or their lengths differ, and with a message if any
// dimension is < 1 or the capacity overflows int. Both checks run before
// any arithmetic.
//
// Constructors size their storage with the same fold and multi-index
// accessors address elements with its offset.
func Fold(dims, index []int) Folded {
	if len(dims) == 0 || len(dims) != len(index) {
		panic(&ArityError{Want: len(dims), Got: len(index)})
	}
	checkDims(dims)
	return fold(dims, index)
}

func fold(dims, index []int) Folded {
	if len(dims) == 1 {
		return Folded{Capacity: dims[0], Offset: index[0]}
	}
	tail := fold(dims[1:], index[1:])
	return Folded{
		Capacity: dims[0] * tail.Capacity,
		Offset:   index[0] + dims[0]*tail.Offset,
	}
}

// Capacity returns the product of dims, computed by the same fold that
// computes offsets so the two never disagree.
// Panics with [*ArityError] if dims is empty, and with the same message as
// [New] if any dimension is < 1 or the product overflows int.
func Capacity(dims ...int) int {
	if len(dims) == 0 {
		panic(&ArityError{})
	}
	return capacity(dims)
}

// capacity validates dims and folds them at the origin. Storage of every
// array is sized here.
func capacity(dims []int) int {
	checkDims(dims)
	return fold(dims, make([]int, len(dims))).Capacity
}

// Strides returns the stride table for dims in axis-0-fastest layout:
//
//	stride[0] = 1
//	stride[k] = stride[k-1] * dims[k-1]
//
// Offset(Strides(dims), index) equals Fold(dims, index).Offset.
func Strides(dims ...int) []int {
	strides := make([]int, len(dims))
	s := 1
	for k, d := range dims {
		strides[k] = s
		s *= d
	}
	return strides
}

// Offset returns the flat offset Σ index[k]*strides[k].
// Panics with [*ArityError] if the lengths differ.
func Offset(strides, index []int) int {
	if len(strides) != len(index) {
		panic(&ArityError{Want: len(strides), Got: len(index)})
	}
	off := 0
	for k, i := range index {
		off += i * strides[k]
	}
	return off
}

// checkAxes panics with [*IndexError] on the first axis whose index is
// outside [0, dims[k]).
func checkAxes(dims, index []int) {
	for k, i := range index {
		if uint(i) >= uint(dims[k]) {
			panic(&IndexError{Axis: k, Index: i, Bound: dims[k]})
		}
	}
}

// checkFlat panics with [*IndexError] if i is outside [0, capacity).
func checkFlat(i, capacity int) {
	if uint(i) >= uint(capacity) {
		panic(&IndexError{Axis: FlatAxis, Index: i, Bound: capacity})
	}
}

// checkDims panics on an empty shape, a non-positive dimension or a
// capacity that overflows int.
func checkDims(dims []int) {
	if len(dims) == 0 {
		panic("mdarr: shape must have at least one dimension")
	}
	n := 1
	for _, d := range dims {
		if d < 1 {
			panic("mdarr: dimension must be >= 1")
		}
		if n > maxInt/d {
			panic("mdarr: capacity overflows int")
		}
		n *= d
	}
}

const maxInt = int(^uint(0) >> 1)
