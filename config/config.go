// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-time settings of a matcalc session.
package config // import "robpike.io/matcalc/config"

import (
	"io"
	"os"
	"sort"
)

// DefaultMaxCells is the default limit on rows*cols for a defined matrix.
const DefaultMaxCells = 1 << 20

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"parse",
	"tokens",
}

// A Config holds information about the configuration of the system.
// The zero value of a Config, or a nil Config pointer, is a valid
// configuration with default settings.
type Config struct {
	prompt    string
	history   string
	color     bool
	maxCells  int
	output    io.Writer
	errOutput io.Writer
	debug     map[string]int
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c == nil || c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c == nil || c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

// Debug returns the value of the specified boolean debugging flag.
func (c *Config) Debug(flag string) int {
	if c == nil {
		return 0
	}
	return c.debug[flag]
}

// SetDebug sets the value of the specified debugging flag.
// It returns false if the flag is not a known debug flag.
func (c *Config) SetDebug(flag string, state int) bool {
	i := sort.SearchStrings(DebugFlags, flag)
	if i >= len(DebugFlags) || DebugFlags[i] != flag {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]int)
	}
	c.debug[flag] = state
	return true
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

// SetPrompt sets the interactive prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// History returns the path of the line-editing history file.
// The empty string means history is not saved.
func (c *Config) History() string {
	if c == nil {
		return ""
	}
	return c.history
}

// SetHistory sets the path of the line-editing history file.
func (c *Config) SetHistory(file string) {
	c.history = file
}

// Color reports whether diagnostics should be colored.
func (c *Config) Color() bool {
	return c != nil && c.color
}

// SetColor sets whether diagnostics should be colored.
func (c *Config) SetColor(color bool) {
	c.color = color
}

// MaxCells returns the largest number of elements a defined matrix may hold.
func (c *Config) MaxCells() int {
	if c == nil || c.maxCells <= 0 {
		return DefaultMaxCells
	}
	return c.maxCells
}

// SetMaxCells sets the largest number of elements a defined matrix may hold.
// A value of zero or less restores the default.
func (c *Config) SetMaxCells(n int) {
	c.maxCells = n
}
