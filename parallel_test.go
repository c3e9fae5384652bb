// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// ParallelFor hands spans to workers through an atomix-ordered queue.
// The race detector cannot observe those orderings; these tests are
// excluded from race builds.

package mdarr_test

import (
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/mdarr"
)

func TestParallelForVisitsEachOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 4096, 10007} {
		for _, workers := range []int{1, 2, 3, 8} {
			t.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(t *testing.T) {
				data := make([]int, n)
				var calls atomix.Int64
				mdarr.ParallelFor(data, workers, func(off int, v *int) {
					*v += off + 1
					calls.Add(1)
				})
				if got := calls.Load(); got != int64(n) {
					t.Fatalf("fn called %d times, want %d", got, n)
				}
				for i, v := range data {
					if v != i+1 {
						t.Fatalf("element %d: got %d, want %d", i, v, i+1)
					}
				}
			})
		}
	}
}

// TestParallelForMatchesIota checks that a parallel fill produces the
// same buffer as the sequential generator.
func TestParallelForMatchesIota(t *testing.T) {
	a := mdarr.New3[int, cube3]()
	mdarr.ParallelFor(a.Data(), 4, func(off int, v *int) { *v = off })

	want := make([]int, 27)
	mdarr.Iota(want, 0)
	if !slices.Equal(a.Data(), want) {
		t.Fatalf("got %v, want %v", a.Data(), want)
	}
	if a.Get(2, 1, 0) != 5 || a.Get(0, 0, 2) != 18 || a.Get(2, 2, 2) != 26 {
		t.Fatal("parallel fill does not match flat order")
	}
}

func TestParallelApplyIndex(t *testing.T) {
	a := mdarr.Build[int](mdarr.New(5, 4, 3))
	a.ParallelApply(3, func(index []int, v *int) {
		*v = index[0] + 10*index[1] + 100*index[2]
	})
	s := a.Shape()
	for off, index := range s.Iter() {
		want := index[0] + 10*index[1] + 100*index[2]
		if got := a.FlatValue(off); got != want {
			t.Fatalf("element %v: got %d, want %d", index, got, want)
		}
	}
}

func TestParallelForInvalid(t *testing.T) {
	expectPanic[string](t, "workers=0", func() {
		mdarr.ParallelFor(make([]int, 4), 0, func(int, *int) {})
	})
	expectPanic[string](t, "length mismatch", func() {
		mdarr.ParallelForIndex(make([]int, 4), mdarr.NewShape(3), 2, func([]int, *int) {})
	})
}

func BenchmarkParallelFor(b *testing.B) {
	data := make([]float64, 1<<16)
	for b.Loop() {
		mdarr.ParallelFor(data, 4, func(off int, v *float64) { *v = float64(off) })
	}
}
