// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr_test

import "testing"

// Shape tags shared by the tests.

type quad struct{}

func (quad) Dims() [1]int { return [1]int{4} }

type grid7x3 struct{}

func (grid7x3) Dims() [2]int { return [2]int{7, 3} }

type grid3x3 struct{}

func (grid3x3) Dims() [2]int { return [2]int{3, 3} }

type cube3 struct{}

func (cube3) Dims() [3]int { return [3]int{3, 3, 3} }

type box2345 struct{}

func (box2345) Dims() [4]int { return [4]int{2, 3, 4, 5} }

type badGrid struct{}

func (badGrid) Dims() [2]int { return [2]int{3, 0} }

// expectPanic runs fn and returns its panic value as E.
// Fails the test if fn returns normally or panics with another type.
func expectPanic[E any](t *testing.T, name string, fn func()) E {
	t.Helper()
	var got E
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("%s: expected panic, got none", name)
			}
			e, ok := r.(E)
			if !ok {
				t.Fatalf("%s: panic %v (%T), want %T", name, r, r, got)
			}
			got = e
		}()
		fn()
	}()
	return got
}

// forEachShape calls fn for every shape of arity 1..maxArity with each
// dimension in [1, maxDim].
func forEachShape(maxArity, maxDim int, fn func(dims []int)) {
	for n := 1; n <= maxArity; n++ {
		dims := make([]int, n)
		for k := range dims {
			dims[k] = 1
		}
		for {
			fn(dims)
			k := 0
			for ; k < n; k++ {
				dims[k]++
				if dims[k] <= maxDim {
					break
				}
				dims[k] = 1
			}
			if k == n {
				break
			}
		}
	}
}

// forEachIndex calls fn for every valid index tuple of dims, axis 0 fastest.
func forEachIndex(dims []int, fn func(index []int)) {
	index := make([]int, len(dims))
	for {
		fn(index)
		k := 0
		for ; k < len(dims); k++ {
			index[k]++
			if index[k] < dims[k] {
				break
			}
			index[k] = 0
		}
		if k == len(dims) {
			return
		}
	}
}
