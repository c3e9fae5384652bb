// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import "slices"

// Array is an array whose shape is held by a runtime [Shape] descriptor.
//
// Array supports any arity. The number of indices passed to a multi-index
// accessor is checked against the arity before any computation, and a
// mismatch panics with [*ArityError]. This trades the compile-time arity
// guarantee of [Array2], [Array3] and [Array4] for a call-time one.
//
// The bounds policy is fixed when the array is built (see [Builder]).
//
// Example:
//
//	a := mdarr.Build[int](mdarr.New(3, 3, 3))
//	*a.At(2, 1, 0) = 5
//	fmt.Println(a.FlatValue(5)) // 5
type Array[T any] struct {
	dense[T]
	shape  Shape
	policy Policy
}

// Shape returns the shape of a.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Policy returns the bounds policy of the multi-index accessors.
func (a *Array[T]) Policy() Policy {
	return a.policy
}

// At returns a pointer to the element at index, one index per axis in axis
// order. Requires arity > 1; a one-axis array is addressed through [Array.Flat].
//
// Panics with [*ArityError] on an arity mismatch and with [*IndexError]
// as the array's [Policy] dictates.
func (a *Array[T]) At(index ...int) *T {
	return &a.data[a.offset(index)]
}

// Get returns a copy of the element at index.
func (a *Array[T]) Get(index ...int) T {
	return a.data[a.offset(index)]
}

// Set stores v at index.
func (a *Array[T]) Set(v T, index ...int) {
	a.data[a.offset(index)] = v
}

// Clone returns a copy of a with its own storage.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		dense:  dense[T]{data: slices.Clone(a.data)},
		shape:  a.shape,
		policy: a.policy,
	}
}

func (a *Array[T]) offset(index []int) int {
	n := a.shape.Arity()
	if n < 2 || len(index) != n {
		panic(&ArityError{Want: n, Got: len(index)})
	}
	return a.policy.resolve(a.shape.dims, index, len(a.data))
}
