// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"regexp"
	"strconv"
)

var (
	rowPattern    = regexp.MustCompile(`\[([^\[\]]*)\]`)
	numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

// ParseData decodes a matrix literal such as "[[1,2][3,4]]" into rows.
// Each innermost bracketed segment is a row; within it, every number of
// the form -?digits[.digits] is an element, in order. Other text is
// ignored, so "[1 2] [3 4]" decodes the same way.
// All rows must have the same length as the first. Text with no
// bracketed segment decodes to no rows.
//
// ParseData knows nothing of the shape of any matrix; reconciling the
// result with a declared shape is the caller's job.
func ParseData(text string) ([][]float64, error) {
	var rows [][]float64
	for _, seg := range rowPattern.FindAllStringSubmatch(text, -1) {
		row := []float64{}
		for _, num := range numberPattern.FindAllString(seg[1], -1) {
			x, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, Errorf(ErrNumber, "invalid number %q in row %d", num, len(rows)+1)
			}
			row = append(row, x)
		}
		rows = append(rows, row)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
