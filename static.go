// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

import (
	"fmt"
	"iter"
	"slices"
)

// dense is the contiguous storage shared by every array type. Its length
// is the capacity; nothing else about the shape is stored.
type dense[T any] struct {
	data []T
}

// Cap returns the number of elements.
func (d *dense[T]) Cap() int {
	return len(d.data)
}

// Flat returns a pointer to the element at flat index i.
// Panics with [*IndexError] if i is outside [0, Cap()).
func (d *dense[T]) Flat(i int) *T {
	checkFlat(i, len(d.data))
	return &d.data[i]
}

// FlatValue returns a copy of the element at flat index i.
func (d *dense[T]) FlatValue(i int) T {
	checkFlat(i, len(d.data))
	return d.data[i]
}

// SetFlat stores v at flat index i.
func (d *dense[T]) SetFlat(i int, v T) {
	checkFlat(i, len(d.data))
	d.data[i] = v
}

// Data returns the backing storage in flat order. The slice aliases the
// array; use it with the slices package for whole-buffer operations.
func (d *dense[T]) Data() []T {
	return d.data
}

// All iterates over (flat index, value) pairs in flat order.
func (d *dense[T]) All() iter.Seq2[int, T] {
	return slices.All(d.data)
}

// Values iterates over values in flat order.
func (d *dense[T]) Values() iter.Seq[T] {
	return slices.Values(d.data)
}

// Fill stores v in every element.
func (d *dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

func makeDense[T any](dims []int) dense[T] {
	return dense[T]{data: make([]T, capacity(dims))}
}

func copyDense[T any](dims []int, data []T) dense[T] {
	n := capacity(dims)
	if len(data) != n {
		panic(fmt.Sprintf("mdarr: data length %d != capacity %d", len(data), n))
	}
	return dense[T]{data: slices.Clone(data)}
}

// Array1 is a one-axis array whose length is fixed by the shape tag S.
//
// A one-axis array has no multi-index accessor: the flat accessor already
// addresses every element.
type Array1[T any, S Shape1] struct {
	dense[T]
}

// New1 creates a zero-valued one-axis array.
// Panics if the dimension declared by S is < 1.
func New1[T any, S Shape1]() *Array1[T, S] {
	var s S
	d := s.Dims()
	return &Array1[T, S]{dense: makeDense[T](d[:])}
}

// From1 creates a one-axis array holding a copy of data.
// Panics if len(data) differs from the capacity declared by S.
func From1[T any, S Shape1](data []T) *Array1[T, S] {
	var s S
	d := s.Dims()
	return &Array1[T, S]{dense: copyDense(d[:], data)}
}

// Dims returns the dimension declared by S.
func (a *Array1[T, S]) Dims() [1]int {
	var s S
	return s.Dims()
}

// Shape returns the runtime descriptor of S.
func (a *Array1[T, S]) Shape() Shape {
	d := a.Dims()
	return NewShape(d[:]...)
}

// Clone returns a copy of a with its own storage.
func (a *Array1[T, S]) Clone() *Array1[T, S] {
	return &Array1[T, S]{dense: dense[T]{data: slices.Clone(a.data)}}
}

// Array2 is a two-axis array whose shape is fixed by the shape tag S.
//
// Element (i0, i1) lives at flat offset i0 + d0*i1.
type Array2[T any, S Shape2] struct {
	dense[T]
}

// New2 creates a zero-valued two-axis array.
// Panics if any dimension declared by S is < 1.
func New2[T any, S Shape2]() *Array2[T, S] {
	var s S
	d := s.Dims()
	return &Array2[T, S]{dense: makeDense[T](d[:])}
}

// From2 creates a two-axis array holding a copy of data in flat order.
// Panics if len(data) differs from the capacity declared by S.
func From2[T any, S Shape2](data []T) *Array2[T, S] {
	var s S
	d := s.Dims()
	return &Array2[T, S]{dense: copyDense(d[:], data)}
}

// Dims returns the dimensions declared by S.
func (a *Array2[T, S]) Dims() [2]int {
	var s S
	return s.Dims()
}

// Shape returns the runtime descriptor of S.
func (a *Array2[T, S]) Shape() Shape {
	d := a.Dims()
	return NewShape(d[:]...)
}

// At returns a pointer to element (i0, i1) under the [PerAxis] policy.
// Panics with [*IndexError] if an index is out of range for its axis.
func (a *Array2[T, S]) At(i0, i1 int) *T {
	return &a.data[a.offset(PerAxis, i0, i1)]
}

// AtRollover returns a pointer to element (i0, i1) under the [FlatOnly]
// policy: an out-of-range axis index that folds into [0, Cap()) addresses
// a different element instead of panicking.
func (a *Array2[T, S]) AtRollover(i0, i1 int) *T {
	return &a.data[a.offset(FlatOnly, i0, i1)]
}

// Get returns a copy of element (i0, i1) under the [PerAxis] policy.
func (a *Array2[T, S]) Get(i0, i1 int) T {
	return a.data[a.offset(PerAxis, i0, i1)]
}

// Set stores v at element (i0, i1) under the [PerAxis] policy.
func (a *Array2[T, S]) Set(v T, i0, i1 int) {
	a.data[a.offset(PerAxis, i0, i1)] = v
}

// Clone returns a copy of a with its own storage.
func (a *Array2[T, S]) Clone() *Array2[T, S] {
	return &Array2[T, S]{dense: dense[T]{data: slices.Clone(a.data)}}
}

func (a *Array2[T, S]) offset(p Policy, i0, i1 int) int {
	d := a.Dims()
	index := [2]int{i0, i1}
	return p.resolve(d[:], index[:], len(a.data))
}

// Array3 is a three-axis array whose shape is fixed by the shape tag S.
//
// Element (i0, i1, i2) lives at flat offset i0 + d0*(i1 + d1*i2).
type Array3[T any, S Shape3] struct {
	dense[T]
}

// New3 creates a zero-valued three-axis array.
// Panics if any dimension declared by S is < 1.
func New3[T any, S Shape3]() *Array3[T, S] {
	var s S
	d := s.Dims()
	return &Array3[T, S]{dense: makeDense[T](d[:])}
}

// From3 creates a three-axis array holding a copy of data in flat order.
// Panics if len(data) differs from the capacity declared by S.
func From3[T any, S Shape3](data []T) *Array3[T, S] {
	var s S
	d := s.Dims()
	return &Array3[T, S]{dense: copyDense(d[:], data)}
}

// Dims returns the dimensions declared by S.
func (a *Array3[T, S]) Dims() [3]int {
	var s S
	return s.Dims()
}

// Shape returns the runtime descriptor of S.
func (a *Array3[T, S]) Shape() Shape {
	d := a.Dims()
	return NewShape(d[:]...)
}

// At returns a pointer to element (i0, i1, i2) under the [PerAxis] policy.
// Panics with [*IndexError] if an index is out of range for its axis.
func (a *Array3[T, S]) At(i0, i1, i2 int) *T {
	return &a.data[a.offset(PerAxis, i0, i1, i2)]
}

// AtRollover returns a pointer to element (i0, i1, i2) under the
// [FlatOnly] policy.
func (a *Array3[T, S]) AtRollover(i0, i1, i2 int) *T {
	return &a.data[a.offset(FlatOnly, i0, i1, i2)]
}

// Get returns a copy of element (i0, i1, i2) under the [PerAxis] policy.
func (a *Array3[T, S]) Get(i0, i1, i2 int) T {
	return a.data[a.offset(PerAxis, i0, i1, i2)]
}

// Set stores v at element (i0, i1, i2) under the [PerAxis] policy.
func (a *Array3[T, S]) Set(v T, i0, i1, i2 int) {
	a.data[a.offset(PerAxis, i0, i1, i2)] = v
}

// Clone returns a copy of a with its own storage.
func (a *Array3[T, S]) Clone() *Array3[T, S] {
	return &Array3[T, S]{dense: dense[T]{data: slices.Clone(a.data)}}
}

func (a *Array3[T, S]) offset(p Policy, i0, i1, i2 int) int {
	d := a.Dims()
	index := [3]int{i0, i1, i2}
	return p.resolve(d[:], index[:], len(a.data))
}

// Array4 is a four-axis array whose shape is fixed by the shape tag S.
type Array4[T any, S Shape4] struct {
	dense[T]
}

// New4 creates a zero-valued four-axis array.
// Panics if any dimension declared by S is < 1.
func New4[T any, S Shape4]() *Array4[T, S] {
	var s S
	d := s.Dims()
	return &Array4[T, S]{dense: makeDense[T](d[:])}
}

// From4 creates a four-axis array holding a copy of data in flat order.
// Panics if len(data) differs from the capacity declared by S.
func From4[T any, S Shape4](data []T) *Array4[T, S] {
	var s S
	d := s.Dims()
	return &Array4[T, S]{dense: copyDense(d[:], data)}
}

// Dims returns the dimensions declared by S.
func (a *Array4[T, S]) Dims() [4]int {
	var s S
	return s.Dims()
}

// Shape returns the runtime descriptor of S.
func (a *Array4[T, S]) Shape() Shape {
	d := a.Dims()
	return NewShape(d[:]...)
}

// At returns a pointer to element (i0, i1, i2, i3) under the [PerAxis]
// policy.
func (a *Array4[T, S]) At(i0, i1, i2, i3 int) *T {
	return &a.data[a.offset(PerAxis, i0, i1, i2, i3)]
}

// AtRollover returns a pointer to element (i0, i1, i2, i3) under the
// [FlatOnly] policy.
func (a *Array4[T, S]) AtRollover(i0, i1, i2, i3 int) *T {
	return &a.data[a.offset(FlatOnly, i0, i1, i2, i3)]
}

// Get returns a copy of element (i0, i1, i2, i3).
func (a *Array4[T, S]) Get(i0, i1, i2, i3 int) T {
	return a.data[a.offset(PerAxis, i0, i1, i2, i3)]
}

// Set stores v at element (i0, i1, i2, i3).
func (a *Array4[T, S]) Set(v T, i0, i1, i2, i3 int) {
	a.data[a.offset(PerAxis, i0, i1, i2, i3)] = v
}

// Clone returns a copy of a with its own storage.
func (a *Array4[T, S]) Clone() *Array4[T, S] {
	return &Array4[T, S]{dense: dense[T]{data: slices.Clone(a.data)}}
}

func (a *Array4[T, S]) offset(p Policy, i0, i1, i2, i3 int) int {
	d := a.Dims()
	index := [4]int{i0, i1, i2, i3}
	return p.resolve(d[:], index[:], len(a.data))
}
