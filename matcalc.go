// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"robpike.io/matcalc/config"
	"robpike.io/matcalc/exec"
	"robpike.io/matcalc/run"
)

const (
	defaultPrompt  = "matcalc> "
	defaultHistory = ".matcalc_history"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration `FILE`",
	}
	promptFlag = cli.StringFlag{
		Name:  "prompt",
		Usage: "interactive prompt",
	}
	historyFlag = cli.StringFlag{
		Name:  "history",
		Usage: "line-editing history `FILE` (default ~/" + defaultHistory + ")",
	}
	debugFlag = cli.StringSliceFlag{
		Name:  "debug",
		Usage: "set the named debugging flag; can be set multiple times",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "do not color diagnostics",
	}
	maxCellsFlag = cli.IntFlag{
		Name:  "maxcells",
		Usage: "largest number of elements in a matrix",
		Value: config.DefaultMaxCells,
	}
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp returns the command-line application reading commands
// from stdin, or from the file named by its argument.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "matcalc"
	app.Usage = "an interactive calculator for small matrices"
	app.ArgsUsage = "[file]"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		configFlag,
		promptFlag,
		historyFlag,
		debugFlag,
		noColorFlag,
		maxCellsFlag,
	}
	app.Action = func(ctx *cli.Context) error {
		switch ctx.NArg() {
		case 0:
			return session(ctx, "", stdin, stdout, stderr)
		case 1:
			name := ctx.Args().First()
			fd, err := os.Open(name)
			if err != nil {
				return err
			}
			defer fd.Close()
			return session(ctx, name, fd, stdout, stderr)
		}
		cli.ShowAppHelp(ctx)
		return fmt.Errorf("too many arguments")
	}
	return app
}

// session runs a calculator over the input. Terminal input gets
// line editing, history, a prompt and colored diagnostics by default.
func session(ctx *cli.Context, name string, in io.Reader, stdout, stderr io.Writer) error {
	interactive := isTerminal(in)
	conf, err := makeConfig(ctx, interactive, stdout, stderr)
	if err != nil {
		return err
	}
	calc := exec.NewCalculator(conf)
	if !interactive {
		return run.Run(calc, name, run.NewScanner(in, stdout))
	}
	term := run.NewTerminal(conf.History(), stderr)
	err = run.Run(calc, name, term)
	if cerr := term.Close(); err == nil {
		err = cerr
	}
	return err
}

// makeConfig builds the configuration: defaults first, then the
// configuration file, then flags.
func makeConfig(ctx *cli.Context, interactive bool, stdout, stderr io.Writer) (*config.Config, error) {
	conf := new(config.Config)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	if interactive {
		conf.SetPrompt(defaultPrompt)
		conf.SetColor(isTerminal(stderr))
		if home, err := os.UserHomeDir(); err == nil {
			conf.SetHistory(filepath.Join(home, defaultHistory))
		}
	}

	if file := ctx.String(configFlag.Name); file != "" {
		if err := config.Load(file, conf); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet(promptFlag.Name) {
		conf.SetPrompt(ctx.String(promptFlag.Name))
	}
	if ctx.IsSet(historyFlag.Name) {
		conf.SetHistory(ctx.String(historyFlag.Name))
	}
	if ctx.Bool(noColorFlag.Name) {
		conf.SetColor(false)
	}
	if ctx.IsSet(maxCellsFlag.Name) {
		conf.SetMaxCells(ctx.Int(maxCellsFlag.Name))
	}
	for _, name := range ctx.StringSlice(debugFlag.Name) {
		if !conf.SetDebug(name, 1) {
			return nil, fmt.Errorf("unknown debug flag %q", name)
		}
	}
	return conf, nil
}
