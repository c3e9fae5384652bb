// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import (
	"errors"
	"sync"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/mdarr/internal/workq"
)

// spansPerWorker is the number of spans each worker receives on average.
const spansPerWorker = 4

// maxQueued bounds the span queue; the dispatcher backs off when it is full.
const maxQueued = 256

// ParallelFor calls fn once for every element of data with its flat
// offset, spreading disjoint spans of the buffer over workers goroutines.
// Each element is visited by exactly one goroutine, so fn may write the
// element it is handed without further synchronization.
//
// ParallelFor returns after every element has been visited.
// Panics if workers < 1.
//
// Example:
//
//	a := mdarr.Build[float64](mdarr.New(512, 512))
//	mdarr.ParallelFor(a.Data(), runtime.NumCPU(), func(off int, v *float64) {
//	    *v = float64(off)
//	})
func ParallelFor[T any](data []T, workers int, fn func(off int, v *T)) {
	forSpans(len(data), workers, func(s workq.Span) {
		for i := s.Lo; i < s.Hi; i++ {
			fn(i, &data[i])
		}
	})
}

// ParallelForIndex is like [ParallelFor] but hands fn the index tuple of
// every element under shape. The index slice belongs to the calling
// worker and is overwritten after fn returns.
//
// Panics if len(data) differs from shape.Capacity() or workers < 1.
func ParallelForIndex[T any](data []T, shape Shape, workers int, fn func(index []int, v *T)) {
	if len(data) != shape.Capacity() {
		panic("mdarr: data length does not match shape capacity")
	}
	forSpans(len(data), workers, func(s workq.Span) {
		index := shape.Coords(s.Lo)
		for i := s.Lo; i < s.Hi; i++ {
			fn(index, &data[i])
			for k := range index {
				index[k]++
				if index[k] < shape.dims[k] {
					break
				}
				index[k] = 0
			}
		}
	})
}

// ParallelApply calls fn for every element of a with its index tuple.
// See [ParallelForIndex].
func (a *Array[T]) ParallelApply(workers int, fn func(index []int, v *T)) {
	ParallelForIndex(a.data, a.shape, workers, fn)
}

// forSpans splits [0, n) into spans and runs visit on each from a pool of
// workers fed through a bounded span queue.
func forSpans(n, workers int, visit func(workq.Span)) {
	if workers < 1 {
		panic("mdarr: workers must be >= 1")
	}
	if n == 0 {
		return
	}
	if workers == 1 || n < 2 {
		visit(workq.Span{Lo: 0, Hi: n})
		return
	}

	size := max(1, (n+workers*spansPerWorker-1)/(workers*spansPerWorker))
	spans := workq.Split(n, size)
	q := workq.New(min(max(len(spans), 2), maxQueued))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for {
				s, err := q.Pop()
				if err == nil {
					backoff.Reset()
					visit(s)
					continue
				}
				if errors.Is(err, workq.ErrDrained) {
					return
				}
				backoff.Wait()
			}
		}()
	}

	backoff := iox.Backoff{}
	for _, s := range spans {
		for q.Push(s) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}
	q.Close()
	wg.Wait()
}
