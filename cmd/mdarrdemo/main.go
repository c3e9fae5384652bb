// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command mdarrdemo fills arrays with 0, 1, 2, ... in flat order and
// prints them axis 0 fastest.
//
// Usage:
//
//	mdarrdemo [-shape 3,3,3] [-shape 7,3] [-workers N] [-v 1]
//
// Without -shape it prints the shapes (3,3,3), (7,3) and (4).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"code.hybscloud.com/mdarr"
	"code.hybscloud.com/mdarr/internal/dump"
)

// shapeList collects repeated -shape flags.
type shapeList [][]int

func (l *shapeList) String() string {
	parts := make([]string, len(*l))
	for i, dims := range *l {
		parts[i] = fmt.Sprint(dims)
	}
	return strings.Join(parts, " ")
}

func (l *shapeList) Set(v string) error {
	dims, err := parseDims(v)
	if err != nil {
		return err
	}
	*l = append(*l, dims)
	return nil
}

func parseDims(v string) ([]int, error) {
	fields := strings.Split(v, ",")
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parsing dimension %q: %w", f, err)
		}
		if d < 1 {
			return nil, fmt.Errorf("dimension %d must be >= 1", d)
		}
		dims = append(dims, d)
	}
	return dims, nil
}

func main() {
	klog.InitFlags(nil)
	var shapes shapeList
	flag.Var(&shapes, "shape", "comma-separated dimensions, axis 0 first (repeatable)")
	workers := flag.Int("workers", 1, "goroutines used to fill each array")
	flag.Parse()
	defer klog.Flush()

	if *workers < 1 {
		klog.Fatalf("-workers must be >= 1, got %d", *workers)
	}
	if len(shapes) == 0 {
		shapes = shapeList{{3, 3, 3}, {7, 3}, {4}}
	}

	for _, dims := range shapes {
		a := generate(dims, *workers)
		klog.V(1).Infof("shape %v: capacity %d, policy %v", a.Shape(), a.Cap(), a.Policy())
		if err := render(a); err != nil {
			klog.Errorf("writing shape %v: %v", a.Shape(), err)
			klog.Flush()
			os.Exit(1)
		}
	}
}

func generate(dims []int, workers int) *mdarr.Array[int] {
	a := mdarr.Build[int](mdarr.New(dims...))
	if workers == 1 {
		mdarr.Iota(a.Data(), 0)
		return a
	}
	mdarr.ParallelFor(a.Data(), workers, func(off int, v *int) {
		*v = off
	})
	return a
}

func render(a *mdarr.Array[int]) error {
	s := a.Shape()
	if s.Arity() == 1 {
		return dump.Buffer[int](os.Stdout, s, a)
	}
	return dump.Fprint(os.Stdout, s, func(index []int) int {
		return a.Get(index...)
	})
}
