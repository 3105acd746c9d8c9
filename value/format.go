// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"bytes"
	"math"
	"strconv"
)

// minWidth is the minimum width of a printed element.
const minWidth = 2

// Format returns x in its shortest natural decimal form,
// with no exponent: 1, 0.5, -12.25, 100000000000000000000.
func Format(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// String renders m one row per line, each line ending in a newline:
//
//	| 1  2 |
//	| 3  4 |
//
// Each element is left-aligned in a field at least two characters wide.
// A matrix with no rows renders as the empty string.
func (m *Matrix) String() string {
	var b bytes.Buffer
	for _, row := range m.data {
		b.WriteByte('|')
		for _, x := range row {
			b.WriteByte(' ')
			s := Format(x)
			b.WriteString(s)
			for pad := minWidth - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
