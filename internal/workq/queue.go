// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// ErrWouldBlock is returned by Push on a full queue and by Pop on an empty
// queue that is still open. Alias of [iox.ErrWouldBlock].
var ErrWouldBlock = iox.ErrWouldBlock

// ErrDrained is returned by Pop once the queue is closed and empty.
var ErrDrained = errors.New("workq: drained")

// Span is the half-open flat range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns the number of flat offsets in s.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Queue is a bounded MPMC queue of spans.
//
// Per-slot sequence numbers give ABA safety: slot i is writable when its
// sequence equals the producer ticket and readable when it equals the
// consumer ticket plus one.
type Queue struct {
	_        pad
	tail     atomix.Uint64 // Producer ticket
	_        pad
	head     atomix.Uint64 // Consumer ticket
	_        pad
	closed   atomix.Bool
	_        pad
	buffer   []slot
	mask     uint64
	capacity uint64
}

type slot struct {
	seq  atomix.Uint64
	span Span
	_    [64 - 8 - 16]byte
}

// New creates a queue holding at least capacity spans.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func New(capacity int) *Queue {
	if capacity < 2 {
		panic("workq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	q := &Queue{
		buffer:   make([]slot, n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// Push adds s to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *Queue) Push(s Span) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		sl := &q.buffer[tail&q.mask]
		diff := int64(sl.seq.LoadAcquire()) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				sl.span = s
				sl.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Pop removes and returns the oldest span.
// Returns ErrWouldBlock if the queue is empty but open, and ErrDrained if
// it is empty and closed.
func (q *Queue) Pop() (Span, error) {
	closed := q.closed.LoadAcquire()
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		sl := &q.buffer[head&q.mask]
		diff := int64(sl.seq.LoadAcquire()) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				s := sl.span
				sl.seq.StoreRelease(head + q.capacity)
				return s, nil
			}
		} else if diff < 0 {
			if closed {
				return Span{}, ErrDrained
			}
			return Span{}, ErrWouldBlock
		}
		sw.Once()
	}
}

// Close signals that no more spans will be pushed.
// The caller must not Push after Close.
func (q *Queue) Close() {
	q.closed.StoreRelease(true)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return int(q.capacity)
}

// Split cuts [0, n) into consecutive spans of at most size offsets.
func Split(n, size int) []Span {
	if size < 1 {
		panic("workq: span size must be >= 1")
	}
	spans := make([]Span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, Span{Lo: lo, Hi: min(lo+size, n)})
	}
	return spans
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
