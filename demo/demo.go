// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo holds the script for the )demo special command.
// The script is in demo.mc in this directory. Its content is
// embedded in this source file.
package demo // import "robpike.io/matcalc/demo"

import (
	"bufio"
	"bytes"

	_ "embed"
)

//go:embed demo.mc
var demoText []byte

// Lines returns the lines of the demo, without their newlines.
func Lines() []string {
	var lines []string
	scan := bufio.NewScanner(bytes.NewReader(demoText))
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	return lines
}
