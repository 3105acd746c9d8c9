// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	var tests = []struct {
		input string
		cmd   string
		name  string
		args  string
	}{
		{"define A 2x2", "define", "A", "2x2"},
		{"  show   B  ", "show", "B", ""},
		{"fill A [[1,2]   [3,4]]", "fill", "A", "[[1,2] [3,4]]"},
		{"add\tA\tB", "add", "A", "B"},
		{"x y z w", "x", "y", "z w"},
	}
	for _, test := range tests {
		toks, err := Tokenize(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if len(toks) != 3 {
			t.Errorf("%q: expected 3 tokens; got %d", test.input, len(toks))
			continue
		}
		want := []Token{{Command, test.cmd}, {MatrixName, test.name}, {Args, test.args}}
		for i, tok := range toks {
			if tok != want[i] {
				t.Errorf("%q: token %d: expected %s; got %s", test.input, i, want[i], tok)
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	var tests = []struct {
		input string
		err   Error
	}{
		{"", MissingCommand},
		{"   \t ", MissingCommand},
		{"show", MissingMatrix},
		{"  define  ", MissingMatrix},
	}
	for _, test := range tests {
		toks, err := Tokenize(test.input)
		if err != test.err {
			t.Errorf("%q: expected error %v; got %v", test.input, test.err, err)
		}
		if toks != nil {
			t.Errorf("%q: expected no tokens; got %v", test.input, toks)
		}
	}
}

func TestTokenString(t *testing.T) {
	var tests = []struct {
		tok  Token
		want string
	}{
		{Token{Command, "define"}, `Command: "define"`},
		{Token{MatrixName, "A"}, `MatrixName: "A"`},
		{Token{Args, "[[1,2][3,4]]"}, `Args: "[[1,2][3,4"...`},
		{Token{Type(7), ""}, `Type(7): ""`},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("expected %s; got %s", test.want, got)
		}
	}
}
