// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for matcalc.
// It is factored out of main so it can be used for tests.
package run // import "robpike.io/matcalc/run"

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"robpike.io/matcalc/config"
	"robpike.io/matcalc/exec"
	"robpike.io/matcalc/parse"
	"robpike.io/matcalc/scan"
)

// UnknownCommandError reports a command keyword the calculator does not know.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// isExit reports whether the line asks to leave the session.
func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "ex":
		return true
	}
	return false
}

// Eval runs a single line of input through the calculator and returns
// its reply. The error is the structural error from scanning or parsing,
// or an UnknownCommandError; in the latter case the reply is the
// calculator's (empty) reply.
// Debugging output selected in the configuration is written to its output.
func Eval(calc *exec.Calculator, line string) (string, error) {
	conf := calc.Config()
	tokens, err := scan.Tokenize(line)
	if err != nil {
		return "", err
	}
	if conf.Debug("tokens") > 0 {
		for _, tok := range tokens {
			fmt.Fprintf(conf.Output(), "%s\n", tok)
		}
	}
	cmd, err := parse.Parse(tokens)
	if err != nil {
		return "", err
	}
	if conf.Debug("parse") > 0 {
		fmt.Fprintf(conf.Output(), "%s\n", cmd)
	}
	reply := calc.Interpret(cmd)
	if cmd.Op == parse.OpUnknown {
		return reply, &UnknownCommandError{cmd.Name}
	}
	return reply, nil
}

// Run reads lines from r and executes them until EOF or an exit line
// ("exit" or "ex"). Blank lines and lines beginning with # are ignored;
// lines beginning with ) are special commands.
// Replies go to the configured output and diagnostics to the configured
// error output, prefixed by name and line number if name is non-empty.
// Errors in the input do not stop the run. The returned error is
// from the reader, and is nil at EOF.
func Run(calc *exec.Calculator, name string, r LineReader) error {
	conf := calc.Config()
	for lineNum := 1; ; lineNum++ {
		line, err := r.ReadLine(conf.Prompt())
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isExit(line) {
			return nil
		}
		loc := ""
		if name != "" {
			loc = fmt.Sprintf("%s:%d: ", name, lineNum)
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, ")"):
			if err := special(calc, line[1:]); err != nil {
				printError(conf, loc, err)
			}
			continue
		}
		reply, err := Eval(calc, line)
		printReply(conf, reply)
		if err != nil {
			printError(conf, loc, err)
		}
	}
}

// printReply prints the reply, followed by a newline if it lacks one.
func printReply(conf *config.Config, reply string) {
	if reply == "" {
		return
	}
	w := conf.Output()
	fmt.Fprint(w, reply)
	if !strings.HasSuffix(reply, "\n") {
		fmt.Fprintln(w)
	}
}

// printError prints the diagnostic, in red if the configuration asks for color.
func printError(conf *config.Config, loc string, err error) {
	w := conf.ErrOutput()
	if !conf.Color() {
		fmt.Fprintf(w, "%s%s\n", loc, err)
		return
	}
	red := color.New(color.FgRed)
	red.EnableColor()
	red.Fprintf(w, "%s%s", loc, err)
	fmt.Fprintln(w)
}
