// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Unary operations. None modifies its operand.

// tolerance scales the largest element of a matrix to give the smallest
// pivot Invert and Det accept as nonzero.
const tolerance = 1e-12

// Scale returns m with every element multiplied by s.
func Scale(m *Matrix, s float64) *Matrix {
	z := New(m.rows, m.cols)
	for i, row := range m.data {
		for j, x := range row {
			z.data[i][j] = s * x
		}
	}
	return z
}

// Transpose returns the cols×rows matrix z with z[j][i] = m[i][j].
func Transpose(m *Matrix) *Matrix {
	z := New(m.cols, m.rows)
	for i, row := range m.data {
		for j, x := range row {
			z.data[j][i] = x
		}
	}
	return z
}

// Invert returns the inverse of the square matrix m, computed by
// Gauss-Jordan elimination with partial pivoting.
func Invert(m *Matrix) (*Matrix, error) {
	if m.rows != m.cols {
		return nil, Errorf(ErrSquare, "Matrix must be square (m == n) for inversion.")
	}
	n := m.rows
	a := m.Clone()
	z := Identity(n)
	limit := tolerance * maxAbs(m)
	for col := 0; col < n; col++ {
		p := pivot(a, col)
		if math.Abs(a.data[p][col]) <= limit || limit == 0 {
			return nil, Errorf(ErrSingular, "Matrix is singular and cannot be inverted.")
		}
		a.data[col], a.data[p] = a.data[p], a.data[col]
		z.data[col], z.data[p] = z.data[p], z.data[col]
		d := a.data[col][col]
		for j := 0; j < n; j++ {
			a.data[col][j] /= d
			z.data[col][j] /= d
		}
		for i := 0; i < n; i++ {
			f := a.data[i][col]
			if i == col || f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[i][j] -= f * a.data[col][j]
				z.data[i][j] -= f * z.data[col][j]
			}
		}
	}
	return z, nil
}

// Det returns the determinant of the square matrix m.
// The determinant of a 0×0 matrix is 1. A matrix Invert
// reports as singular has determinant 0.
func Det(m *Matrix) (float64, error) {
	if m.rows != m.cols {
		return 0, Errorf(ErrSquare, "Matrix must be square (m == n) for determinant.")
	}
	n := m.rows
	a := m.Clone()
	det := 1.0
	limit := tolerance * maxAbs(m)
	for col := 0; col < n; col++ {
		p := pivot(a, col)
		if math.Abs(a.data[p][col]) <= limit || limit == 0 {
			return 0, nil
		}
		if p != col {
			a.data[col], a.data[p] = a.data[p], a.data[col]
			det = -det
		}
		d := a.data[col][col]
		det *= d
		for i := col + 1; i < n; i++ {
			f := a.data[i][col] / d
			for j := col; j < n; j++ {
				a.data[i][j] -= f * a.data[col][j]
			}
		}
	}
	return det, nil
}

// pivot returns the row at or below col whose element in column col
// has the largest magnitude.
func pivot(a *Matrix, col int) int {
	p := col
	for i := col + 1; i < a.rows; i++ {
		if math.Abs(a.data[i][col]) > math.Abs(a.data[p][col]) {
			p = i
		}
	}
	return p
}

func maxAbs(m *Matrix) float64 {
	max := 0.0
	for _, row := range m.data {
		for _, x := range row {
			max = math.Max(max, math.Abs(x))
		}
	}
	return max
}
