// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Binary operations. None modifies its operands.

// Add returns the elementwise sum of a and b, which must have the same shape.
func Add(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, Errorf(ErrDimension, "Matrices must have the same dimensions for addition.")
	}
	return elementwise(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Subtract returns the elementwise difference a-b. The operands must
// have the same shape.
func Subtract(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, Errorf(ErrDimension, "Matrices must have the same dimensions for subtraction.")
	}
	return elementwise(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Multiply returns the matrix product a×b. The number of columns of a
// must equal the number of rows of b; the result is a.Rows()×b.Cols().
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, Errorf(ErrDimension, "Matrices must have opposite dimensions for multiplication.")
	}
	z := New(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := 0.0
			for k := 0; k < a.cols; k++ {
				sum += a.data[i][k] * b.data[k][j]
			}
			z.data[i][j] = sum
		}
	}
	return z, nil
}

func elementwise(a, b *Matrix, fn func(x, y float64) float64) *Matrix {
	z := New(a.rows, a.cols)
	for i, row := range a.data {
		for j, x := range row {
			z.data[i][j] = fn(x, b.data[i][j])
		}
	}
	return z
}
