// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import "golang.org/x/exp/constraints"

// Number is the element constraint of the arithmetic generators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Iota stores start, start+1, start+2, ... in flat order.
//
// Example:
//
//	a := mdarr.New3[int, Cube3]()
//	mdarr.Iota(a.Data(), 0)
//	a.Get(2, 1, 0) // 5
func Iota[T Number](data []T, start T) {
	v := start
	for i := range data {
		data[i] = v
		v++
	}
}

// Generate stores fn(index) at every element, visiting index tuples of
// shape in flat order. The index slice passed to fn is reused between
// calls.
//
// Panics if len(data) differs from shape.Capacity().
func Generate[T any](data []T, shape Shape, fn func(index []int) T) {
	if len(data) != shape.Capacity() {
		panic("mdarr: data length does not match shape capacity")
	}
	for off, index := range shape.Iter() {
		data[off] = fn(index)
	}
}
