// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// A LineReader delivers input one line at a time.
type LineReader interface {
	// ReadLine shows the prompt, if the reader is interactive, and returns
	// the next line without its terminating newline. At the end of input
	// it returns io.EOF.
	ReadLine(prompt string) (string, error)
}

// Scanner is a LineReader for files, pipes and tests.
// Lines may be of any length.
type Scanner struct {
	r   *bufio.Reader
	out io.Writer
}

// NewScanner returns a Scanner reading from r. Prompts, if any,
// are written to out, which may be nil.
func NewScanner(r io.Reader, out io.Writer) *Scanner {
	return &Scanner{
		r:   bufio.NewReader(r),
		out: out,
	}
}

func (s *Scanner) ReadLine(prompt string) (string, error) {
	if prompt != "" && s.out != nil {
		fmt.Fprint(s.out, prompt)
	}
	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		// Final line without a newline.
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Terminal is a LineReader for an interactive terminal, with line
// editing and history.
type Terminal struct {
	state   *liner.State
	history string
	errOut  io.Writer
}

// NewTerminal takes over the terminal. If history names a file,
// previous history is loaded from it and Close saves history to it.
// A history file that cannot be read is reported to errOut.
// The caller must call Close to restore the terminal.
func NewTerminal(history string, errOut io.Writer) *Terminal {
	t := &Terminal{
		state:   liner.NewLiner(),
		history: history,
		errOut:  errOut,
	}
	t.state.SetCtrlCAborts(true)
	if history != "" {
		t.loadHistory()
	}
	return t
}

// loadHistory reads the history file. A missing file is not an error.
func (t *Terminal) loadHistory() {
	f, err := os.Open(t.history)
	if os.IsNotExist(err) {
		return
	}
	if err == nil {
		_, err = t.state.ReadHistory(f)
		f.Close()
	}
	if err != nil && t.errOut != nil {
		fmt.Fprintf(t.errOut, "history %s: %v\n", t.history, err)
	}
}

// ReadLine reads an edited line. Typing Ctrl-C abandons the line
// being edited and returns an empty line; Ctrl-D returns io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves the history, if any, and restores the terminal.
func (t *Terminal) Close() error {
	var err error
	if t.history != "" {
		var f *os.File
		f, err = os.Create(t.history)
		if err == nil {
			_, err = t.state.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := t.state.Close(); err == nil {
		err = cerr
	}
	return err
}
