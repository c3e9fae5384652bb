// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseView returns a gonum matrix sharing a's storage.
//
// Axis 1 maps to matrix rows and axis 0 to columns, so element (i0, i1)
// is m.At(i1, i0). Writes through either side are visible on the other.
//
// Example:
//
//	a := mdarr.New2[float64, Grid7x3]()
//	m := mdarr.DenseView(a) // 3x7
//	var t mat.Dense
//	t.Mul(m, m.T())
func DenseView[S Shape2](a *Array2[float64, S]) *mat.Dense {
	d := a.Dims()
	return mat.NewDense(d[1], d[0], a.data)
}

// FromDense copies m into a new two-axis array with shape tag S.
// Row r, column c of m becomes element (c, r).
//
// Panics if m is not d1 x d0 for the dimensions declared by S.
func FromDense[S Shape2](m mat.Matrix) *Array2[float64, S] {
	a := New2[float64, S]()
	d := a.Dims()
	r, c := m.Dims()
	if r != d[1] || c != d[0] {
		panic(fmt.Sprintf("mdarr: matrix is %dx%d, want %dx%d", r, c, d[1], d[0]))
	}
	for i1 := range r {
		for i0 := range c {
			a.data[i0+d[0]*i1] = m.At(i1, i0)
		}
	}
	return a
}
