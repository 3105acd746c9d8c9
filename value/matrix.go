// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

/*
	define A 2x3
	fill A [[1,2,3][4,5,6]]
	show A

| 1  2  3 |
| 4  5  6 |
*/

// Matrix is a rows×cols array of float64s.
// Every row of data has exactly cols elements.
type Matrix struct {
	rows int
	cols int
	data [][]float64
}

// New returns a zero-filled matrix with the given shape.
// Either dimension may be zero.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("value.New: negative dimension")
	}
	data := make([][]float64, rows)
	cells := make([]float64, rows*cols)
	for i := range data {
		data[i] = cells[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// FromRows returns a matrix holding a copy of the rows, which must all
// have the same length. It is the inverse of Rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := New(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

// Rows returns the number of rows of m.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of m.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the number of rows and columns of m.
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j, counting from zero.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i][j]
}

// Data returns a copy of the elements of m, one slice per row.
func (m *Matrix) Data() [][]float64 {
	return m.Clone().data
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	for i, row := range m.data {
		copy(c.data[i], row)
	}
	return c
}

// SameShape reports whether m and n have the same number of rows and columns.
func (m *Matrix) SameShape(n *Matrix) bool {
	return m.rows == n.rows && m.cols == n.cols
}

// Equal reports whether m and n have the same shape and elements.
func (m *Matrix) Equal(n *Matrix) bool {
	if !m.SameShape(n) {
		return false
	}
	for i, row := range m.data {
		for j, x := range row {
			if x != n.data[i][j] {
				return false
			}
		}
	}
	return true
}

// SetData replaces the contents of m with a copy of rows,
// adopting their shape. The rows must all have the same length.
// This is the only operation that modifies a Matrix.
func (m *Matrix) SetData(rows [][]float64) error {
	n, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = *n
	return nil
}

// checkRows verifies that all rows have the length of the first.
func checkRows(rows [][]float64) error {
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return Errorf(ErrRowLength, "row %d has %d elements; row 1 has %d", i+1, len(row), len(rows[0]))
		}
	}
	return nil
}
