// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the matrix type of matcalc, its arithmetic,
// and the decoder for matrix literals such as [[1,2][3,4]].
package value // import "robpike.io/matcalc/value"

import (
	"errors"
	"fmt"
)

// Kinds of failure. Errors returned by this package wrap one of these,
// so callers can test for them with errors.Is.
var (
	ErrDimension = errors.New("dimension mismatch")
	ErrSquare    = errors.New("matrix not square")
	ErrSingular  = errors.New("matrix is singular")
	ErrNumber    = errors.New("invalid number")
	ErrRowLength = errors.New("row length mismatch")
)

// Error is an error returned by a matrix operation.
// Its text is the message shown to the user.
type Error struct {
	Kind error
	Msg  string
}

func (err *Error) Error() string {
	return err.Msg
}

func (err *Error) Unwrap() error {
	return err.Kind
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
