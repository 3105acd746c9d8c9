// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseData(t *testing.T) {
	var tests = []struct {
		input string
		rows  [][]float64
	}{
		{"[[1,2][3,4]]", [][]float64{{1, 2}, {3, 4}}},
		{"[1 2] [3 4]", [][]float64{{1, 2}, {3, 4}}},
		{"[[-1.5, 0.25, 3]]", [][]float64{{-1.5, 0.25, 3}}},
		{"[[1][2][3]]", [][]float64{{1}, {2}, {3}}},
		{"[[]]", [][]float64{{}}},
		{"[[][]]", [][]float64{{}, {}}},
		{"", nil},
		{"1 2 3", nil},
		{"[[1;2]x[3:4]]", [][]float64{{1, 2}, {3, 4}}},
	}
	for _, test := range tests {
		rows, err := ParseData(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.rows, rows); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseDataErrors(t *testing.T) {
	var tests = []struct {
		input string
		kind  error
	}{
		{"[[1,2][3]]", ErrRowLength},
		{"[[1][2,3]]", ErrRowLength},
		{"[[1,2][3,4][5]]", ErrRowLength},
		{"[[" + strings.Repeat("9", 400) + "]]", ErrNumber},
	}
	for _, test := range tests {
		rows, err := ParseData(test.input)
		if !errors.Is(err, test.kind) {
			t.Errorf("%.20q: expected %v; got %v", test.input, test.kind, err)
		}
		if rows != nil {
			t.Errorf("%.20q: expected no rows; got %v", test.input, rows)
		}
	}
}

// Decoding a matrix rendered as a literal gives back its elements.
func TestParseDataRoundTrip(t *testing.T) {
	var tests = [][][]float64{
		{{1, 2}, {3, 4}},
		{{-0.5, 12.125, 7}},
		{{0}, {-3}},
	}
	for _, rows := range tests {
		var b strings.Builder
		b.WriteByte('[')
		for _, row := range rows {
			b.WriteByte('[')
			for j, x := range row {
				if j > 0 {
					b.WriteByte(',')
				}
				b.WriteString(Format(x))
			}
			b.WriteByte(']')
		}
		b.WriteByte(']')
		got, err := ParseData(b.String())
		if err != nil {
			t.Errorf("%s: %v", b.String(), err)
			continue
		}
		if diff := cmp.Diff(rows, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", b.String(), diff)
		}
	}
}
