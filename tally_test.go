// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/mdarr"
)

func TestTallyBasic(t *testing.T) {
	tl := mdarr.NewTally(3, 2)

	if got := tl.Inc(2, 1); got != 1 {
		t.Fatalf("Inc: got %d, want 1", got)
	}
	if got := tl.Add(4, 2, 1); got != 5 {
		t.Fatalf("Add: got %d, want 5", got)
	}
	tl.Inc(0, 0)
	if got := tl.Load(2, 1); got != 5 {
		t.Fatalf("Load(2, 1): got %d, want 5", got)
	}
	if got := tl.Total(); got != 6 {
		t.Fatalf("Total: got %d, want 6", got)
	}

	snap := tl.Snapshot()
	if !snap.Shape().Equal(tl.Shape()) {
		t.Fatalf("Snapshot shape %v, want %v", snap.Shape(), tl.Shape())
	}
	if snap.Get(2, 1) != 5 || snap.FlatValue(0) != 1 {
		t.Fatalf("Snapshot: got %v", snap.Data())
	}
	tl.Inc(2, 1)
	if snap.Get(2, 1) != 5 {
		t.Fatal("Snapshot aliases the tally")
	}

	expectPanic[*mdarr.IndexError](t, "Inc(3, 0)", func() { tl.Inc(3, 0) })
	expectPanic[*mdarr.ArityError](t, "Inc(1)", func() { tl.Inc(1) })
}

// TestTallyOneAxis checks that a one-axis tally takes a single index.
func TestTallyOneAxis(t *testing.T) {
	tl := mdarr.NewTally(4)
	tl.Inc(3)
	tl.Inc(3)
	if got := tl.Load(3); got != 2 {
		t.Fatalf("Load(3): got %d, want 2", got)
	}
	if got := tl.Snapshot().FlatValue(3); got != 2 {
		t.Fatalf("Snapshot().FlatValue(3): got %d, want 2", got)
	}
}

// TestTallyConcurrent increments every bin from several goroutines.
func TestTallyConcurrent(t *testing.T) {
	if mdarr.RaceEnabled {
		t.Skip("atomix orderings are invisible to the race detector")
	}

	const (
		goroutines = 8
		rounds     = 500
	)
	tl := mdarr.NewTally(4, 4, 2)
	s := tl.Shape()

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				for _, index := range s.Iter() {
					tl.Inc(index...)
				}
			}
		}()
	}
	wg.Wait()

	for off, v := range tl.Snapshot().All() {
		if v != goroutines*rounds {
			t.Fatalf("bin %v: got %d, want %d", s.Coords(off), v, goroutines*rounds)
		}
	}
	if got, want := tl.Total(), int64(goroutines*rounds*s.Capacity()); got != want {
		t.Fatalf("Total: got %d, want %d", got, want)
	}
}
