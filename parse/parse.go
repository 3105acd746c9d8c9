// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns the tokens of a line of input into a Command.
package parse // import "robpike.io/matcalc/parse"

import (
	"fmt"

	"robpike.io/matcalc/scan"
)

// Command is one validated user instruction.
type Command struct {
	Op     Op     // The operation; OpUnknown if Name is not a known keyword.
	Name   string // The command keyword as typed.
	Matrix string // The matrix operated on: a single upper-case ASCII letter.
	Args   string // The remaining text, possibly empty.
}

func (c Command) String() string {
	return fmt.Sprintf("<%s %s %q>", c.Op, c.Matrix, c.Args)
}

// Parse builds a Command from the tokens produced by scan.Tokenize.
// All failures are reported as scan.InvalidFormat.
func Parse(tokens []scan.Token) (Command, error) {
	if len(tokens) < 2 {
		return Command{}, scan.InvalidFormat
	}
	if tokens[0].Type != scan.Command || tokens[1].Type != scan.MatrixName {
		return Command{}, scan.InvalidFormat
	}
	if !IsMatrixName(tokens[1].Text) {
		return Command{}, scan.InvalidFormat
	}
	cmd := Command{
		Op:     Lookup(tokens[0].Text),
		Name:   tokens[0].Text,
		Matrix: tokens[1].Text,
	}
	if len(tokens) > 2 {
		if tokens[2].Type != scan.Args {
			return Command{}, scan.InvalidFormat
		}
		cmd.Args = tokens[2].Text
	}
	return cmd, nil
}

// Line scans and parses a single line of input.
// Errors from either stage are returned unchanged.
func Line(line string) (Command, error) {
	tokens, err := scan.Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	return Parse(tokens)
}

// IsMatrixName reports whether s is a valid matrix name:
// exactly one upper-case ASCII letter.
func IsMatrixName(s string) bool {
	return len(s) == 1 && 'A' <= s[0] && s[0] <= 'Z'
}
