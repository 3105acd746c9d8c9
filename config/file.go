// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

// File is the layout of a TOML configuration file. Keys are the Go field names:
//
//	Prompt = "matcalc> "
//	History = "/home/user/.matcalc_history"
//	Color = true
//	MaxCells = 4096
//	Debug = ["parse"]
type File struct {
	Prompt   string
	History  string
	Color    bool
	MaxCells int
	Debug    []string
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load reads the TOML configuration file and applies it to c.
// Settings absent from the file leave c unchanged.
func Load(file string, c *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	var cf File
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cf)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return err
	}
	return cf.apply(c)
}

// apply copies the settings present in the file into c.
func (cf *File) apply(c *Config) error {
	if cf.Prompt != "" {
		c.SetPrompt(cf.Prompt)
	}
	if cf.History != "" {
		c.SetHistory(cf.History)
	}
	if cf.Color {
		c.SetColor(true)
	}
	if cf.MaxCells > 0 {
		c.SetMaxCells(cf.MaxCells)
	}
	for _, name := range cf.Debug {
		if !c.SetDebug(name, 1) {
			return fmt.Errorf("unknown debug flag %q", name)
		}
	}
	return nil
}
