// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"slices"
	"testing"

	"code.hybscloud.com/mdarr"
)

func TestParseDims(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"3,3,3", []int{3, 3, 3}, false},
		{"7, 3", []int{7, 3}, false},
		{"4", []int{4}, false},
		{"3,x", nil, true},
		{"3,0", nil, true},
		{"", nil, true},
	}
	for _, tt := range tests {
		got, err := parseDims(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseDims(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("parseDims(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShapeListFlag(t *testing.T) {
	var l shapeList
	if err := l.Set("3,3,3"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("7,3"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("a"); err == nil {
		t.Fatal("Set(\"a\"): expected error")
	}
	if got := l.String(); got != "[3 3 3] [7 3]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGenerateMatchesSequential(t *testing.T) {
	if mdarr.RaceEnabled {
		t.Skip("span queue orderings are invisible to the race detector")
	}
	seq := generate([]int{5, 4, 3}, 1)
	par := generate([]int{5, 4, 3}, 4)
	if !slices.Equal(seq.Data(), par.Data()) {
		t.Fatalf("parallel fill differs:\n%v\n%v", seq.Data(), par.Data())
	}
	if seq.Get(4, 3, 2) != 59 {
		t.Fatalf("Get(4, 3, 2) = %d, want 59", seq.Get(4, 3, 2))
	}
}
