// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import "iter"

// Shape1 is implemented by tag types that declare a one-axis shape.
//
// A shape tag is usually an empty struct whose Dims method returns
// constants, so the shape is fixed by the type and never stored in an
// array instance:
//
//	type Quad struct{}
//
//	func (Quad) Dims() [1]int { return [1]int{4} }
//
//	a := mdarr.New1[int, Quad]()
type Shape1 interface {
	Dims() [1]int
}

// Shape2 is implemented by tag types that declare a two-axis shape.
//
// Example:
//
//	type Grid7x3 struct{}
//
//	func (Grid7x3) Dims() [2]int { return [2]int{7, 3} }
//
//	a := mdarr.New2[float64, Grid7x3]()
//	*a.At(6, 2) = 1.5
type Shape2 interface {
	Dims() [2]int
}

// Shape3 is implemented by tag types that declare a three-axis shape.
//
// Example:
//
//	type Cube3 struct{}
//
//	func (Cube3) Dims() [3]int { return [3]int{3, 3, 3} }
//
//	a := mdarr.New3[int, Cube3]()
//	a.Set(5, 2, 1, 0)
type Shape3 interface {
	Dims() [3]int
}

// Shape4 is implemented by tag types that declare a four-axis shape.
type Shape4 interface {
	Dims() [4]int
}

// Buffer is the flat access contract shared by every array type.
//
// Flat indices address the backing storage in axis-0-fastest order and are
// always bounds-checked against [0, Cap()).
//
// Example:
//
//	func sum(b mdarr.Buffer[int]) int {
//	    total := 0
//	    for _, v := range b.All() {
//	        total += v
//	    }
//	    return total
//	}
type Buffer[T any] interface {
	// Cap returns the number of elements (the product of all dimensions).
	Cap() int

	// Flat returns a pointer to the element at flat index i.
	// Panics with *IndexError if i is outside [0, Cap()).
	Flat(i int) *T

	// FlatValue returns a copy of the element at flat index i.
	// Panics with *IndexError if i is outside [0, Cap()).
	FlatValue(i int) T

	// SetFlat stores v at flat index i.
	// Panics with *IndexError if i is outside [0, Cap()).
	SetFlat(i int, v T)

	// Data returns the backing storage. The slice aliases the array.
	Data() []T

	// All iterates over (flat index, value) pairs in flat order.
	All() iter.Seq2[int, T]
}
