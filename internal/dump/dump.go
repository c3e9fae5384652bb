// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dump renders arrays as text, one axis-0 run per line.
//
// Values are right-justified in a 3-character field. A line ends when
// axis 0 wraps; a blank line follows when axis 1 wraps as well.
//
//	  0  1  2
//	  3  4  5
//	  6  7  8
//
//	  9 10 11
//	...
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"code.hybscloud.com/mdarr"
)

// Fprint writes every element of shape to w, obtaining values through at.
// Index tuples are visited axis 0 fastest.
func Fprint[T any](w io.Writer, shape mdarr.Shape, at func(index []int) T) error {
	bw := bufio.NewWriter(w)
	last0 := shape.Dim(0) - 1
	for _, index := range shape.Iter() {
		fmt.Fprintf(bw, "%3v", at(index))
		if index[0] != last0 {
			continue
		}
		bw.WriteByte('\n')
		if shape.Arity() > 1 && index[1] == shape.Dim(1)-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Sprint is like Fprint but returns the text.
func Sprint[T any](shape mdarr.Shape, at func(index []int) T) string {
	var b strings.Builder
	_ = Fprint(&b, shape, at)
	return b.String()
}

// Buffer writes every element of b to w, reading it through its flat
// accessor in flat order.
func Buffer[T any](w io.Writer, shape mdarr.Shape, b mdarr.Buffer[T]) error {
	return Fprint(w, shape, func(index []int) T {
		return b.FlatValue(shape.Offset(index...))
	})
}
