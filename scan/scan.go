// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits a line of matcalc input into tokens.
// It does no semantic checking; that is the parser's job.
package scan // import "robpike.io/matcalc/scan"

import (
	"fmt"
	"strings"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	Command    Type = iota // command keyword, the first word on the line
	MatrixName             // name of the matrix operated on, the second word
	Args                   // everything else, rejoined with single spaces
)

func (t Type) String() string {
	switch t {
	case Command:
		return "Command"
	case MatrixName:
		return "MatrixName"
	case Args:
		return "Args"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	if len(i.Text) > 10 {
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// Error is a structural error in a line of input,
// reported by the scanner or by the parser.
type Error int

const (
	InvalidFormat Error = iota + 1
	MissingMatrix
	MissingCommand
)

func (e Error) Error() string {
	switch e {
	case InvalidFormat:
		return "invalid command format"
	case MissingMatrix:
		return "missing matrix name"
	case MissingCommand:
		return "missing command"
	}
	return fmt.Sprintf("scan error %d", int(e))
}

// Tokenize splits the line into its command, matrix name and arguments.
// The result always holds three tokens, in that order; the Args token
// has empty text if the line holds only two words.
func Tokenize(line string) ([]Token, error) {
	words := strings.Fields(line)
	switch len(words) {
	case 0:
		return nil, MissingCommand
	case 1:
		return nil, MissingMatrix
	}
	return []Token{
		{Command, words[0]},
		{MatrixName, words[1]},
		{Args, strings.Join(words[2:], " ")},
	}, nil
}
