// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"code.hybscloud.com/mdarr"
)

func TestDenseViewSharesStorage(t *testing.T) {
	a := mdarr.New2[float64, grid7x3]()
	mdarr.Iota(a.Data(), 0)

	m := mdarr.DenseView(a)
	if r, c := m.Dims(); r != 3 || c != 7 {
		t.Fatalf("Dims: got %dx%d, want 3x7", r, c)
	}
	for iy := range 3 {
		for ix := range 7 {
			if got, want := m.At(iy, ix), a.Get(ix, iy); got != want {
				t.Fatalf("m.At(%d, %d) = %v, want %v", iy, ix, got, want)
			}
		}
	}

	m.Set(2, 6, -1)
	if a.Get(6, 2) != -1 {
		t.Fatal("write through the matrix is not visible in the array")
	}
	a.Set(42, 0, 1)
	if m.At(1, 0) != 42 {
		t.Fatal("write through the array is not visible in the matrix")
	}
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(3, 7, nil)
	for r := range 3 {
		for c := range 7 {
			m.Set(r, c, float64(c+7*r))
		}
	}
	a := mdarr.FromDense[grid7x3](m)
	if got := a.Get(6, 2); got != 20 {
		t.Fatalf("Get(6, 2) = %v, want 20", got)
	}
	m.Set(0, 0, 99)
	if a.Get(0, 0) != 0 {
		t.Fatal("FromDense aliases the matrix")
	}

	// Transposed view of a 3x7 matrix is 7x3: rejected
	expectPanic[string](t, "wrong dims", func() { mdarr.FromDense[grid7x3](m.T()) })
}
