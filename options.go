// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdarr

// Options configures array creation.
type Options struct {
	// Shape (fixed for the life of every array built from it)
	shape Shape

	// Bounds policy of the multi-index accessors
	policy Policy
}

// Builder creates runtime-shaped arrays with fluent configuration.
//
// Example:
//
//	// Per-axis checked 3x3x3 array (default)
//	a := mdarr.Build[int](mdarr.New(3, 3, 3))
//
//	// Flat-only checked 7x3 array
//	b := mdarr.Build[float64](mdarr.New(7, 3).Rollover())
//
//	// Array initialized from existing data in flat order
//	c := mdarr.BuildFrom(mdarr.New(4), []int{0, 1, 2, 3})
type Builder struct {
	opts Options
}

// New creates an array builder for the given dimensions in axis order.
//
// Panics if no dimension is given, any dimension is < 1, or the capacity
// overflows int.
//
// Example:
//
//	b := mdarr.New(7, 3)
//	a := mdarr.Build[int](b)
func New(dims ...int) *Builder {
	return &Builder{opts: Options{shape: NewShape(dims...)}}
}

// Rollover selects the [FlatOnly] policy: multi-index accessors skip the
// per-axis pre-check and rely on the flat-offset check alone.
func (b *Builder) Rollover() *Builder {
	b.opts.policy = FlatOnly
	return b
}

// Policy selects the bounds policy explicitly.
// Panics if p is not [PerAxis] or [FlatOnly].
func (b *Builder) Policy(p Policy) *Builder {
	if p != PerAxis && p != FlatOnly {
		panic("mdarr: unknown policy " + p.String())
	}
	b.opts.policy = p
	return b
}

// Shape returns the shape the builder produces.
func (b *Builder) Shape() Shape {
	return b.opts.shape
}

// Build creates a zero-valued array.
//
// For compile-time shapes and arity checking, use [New2], [New3] or
// [New4] with a shape tag instead.
func Build[T any](b *Builder) *Array[T] {
	return &Array[T]{
		dense:  makeDense[T](b.opts.shape.dims),
		shape:  b.opts.shape,
		policy: b.opts.policy,
	}
}

// BuildFrom creates an array holding a copy of data in flat order.
// Panics if len(data) differs from the capacity.
func BuildFrom[T any](b *Builder, data []T) *Array[T] {
	return &Array[T]{
		dense:  copyDense(b.opts.shape.dims, data),
		shape:  b.opts.shape,
		policy: b.opts.policy,
	}
}
