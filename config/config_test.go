// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c *Config
	assert.Equal(t, "", c.Prompt())
	assert.Equal(t, DefaultMaxCells, c.MaxCells())
	assert.Equal(t, 0, c.Debug("parse"))
	assert.False(t, c.Color())
	assert.Equal(t, os.Stdout, c.Output())
	assert.Equal(t, os.Stderr, c.ErrOutput())
}

func TestSetDebug(t *testing.T) {
	var c Config
	assert.True(t, c.SetDebug("tokens", 1))
	assert.Equal(t, 1, c.Debug("tokens"))
	assert.False(t, c.SetDebug("bogus", 1))
	assert.Equal(t, 0, c.Debug("bogus"))
}

func writeFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
Prompt = "mc> "
History = "/tmp/hist"
Color = true
MaxCells = 64
Debug = ["parse"]
`)
	var c Config
	require.NoError(t, Load(path, &c))
	assert.Equal(t, "mc> ", c.Prompt())
	assert.Equal(t, "/tmp/hist", c.History())
	assert.True(t, c.Color())
	assert.Equal(t, 64, c.MaxCells())
	assert.Equal(t, 1, c.Debug("parse"))
}

func TestLoadKeepsUnsetValues(t *testing.T) {
	path := writeFile(t, "Prompt = \"> \"\n")
	var c Config
	c.SetMaxCells(10)
	require.NoError(t, Load(path, &c))
	assert.Equal(t, "> ", c.Prompt())
	assert.Equal(t, 10, c.MaxCells())
}

func TestLoadErrors(t *testing.T) {
	var tests = []struct {
		name string
		text string
		err  string
	}{
		{"unknown field", "Format = \"%v\"\n", "Format"},
		{"bad debug flag", "Debug = [\"everything\"]\n", "unknown debug flag"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var c Config
			err := Load(writeFile(t, test.text), &c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	var c Config
	assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.toml"), &c))
}
