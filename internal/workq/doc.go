// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package workq provides the bounded span queue that distributes disjoint
// ranges of a flat buffer to worker goroutines.
//
// The queue is a CAS-based multi-producer multi-consumer ring with one
// sequence number per slot. A producer closes the queue after its last
// push; consumers then drain what remains and observe [ErrDrained].
package workq
