// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"robpike.io/matcalc/config"
	"robpike.io/matcalc/demo"
	"robpike.io/matcalc/exec"
)

const specialHelpMessage = `
) help
	Print this list of special commands.
) debug name 0|1
	Toggle or set the named debugging flag. With no argument,
	lists the settings.
) demo
	Run a demonstration of the calculator. It does not
	touch the matrices of the session.
) prompt ""
	Set the interactive prompt.
) vars
	List the defined matrices and their shapes.

Commands:
	define A RxC    make A an RxC zero matrix (define A ans copies the last result)
	show A          print A (also: echo)
	fill A [[..]..] set the elements of A, one bracketed group per row (also: populate)
	add A B         A+B (also: sum)
	sub A B         A-B (also: subtract)
	mul A B         matrix product A×B (also: multiply)
	scale A x       x×A; x may be ans, the last determinant
	trans A         transpose of A (also: transpose)
	inv A           inverse of A (also: invert)
	det A           determinant of A
	exit            leave (also: ex)
`

// special executes the special command in text, which follows the ')'.
func special(calc *exec.Calculator, text string) error {
	conf := calc.Config()
	words := strings.Fields(text)
	if len(words) == 0 {
		return errors.New("missing special command")
	}
	args := words[1:]
	switch words[0] {
	case "help":
		fmt.Fprint(conf.Output(), specialHelpMessage[1:])
	case "debug":
		return debug(conf, args)
	case "demo":
		runDemo(conf)
	case "prompt":
		if len(args) == 0 {
			fmt.Fprintf(conf.Output(), "%q\n", conf.Prompt())
			break
		}
		prompt := strings.Join(args, " ")
		if s, err := strconv.Unquote(prompt); err == nil {
			prompt = s
		}
		conf.SetPrompt(prompt)
	case "vars":
		vars(calc)
	default:
		return fmt.Errorf(")%s: unknown special command", words[0])
	}
	return nil
}

func debug(conf *config.Config, args []string) error {
	switch len(args) {
	case 0:
		for _, name := range config.DebugFlags {
			fmt.Fprintf(conf.Output(), "%s\t%d\n", name, conf.Debug(name))
		}
		return nil
	case 1, 2:
	default:
		return errors.New(")debug: too many arguments")
	}
	name := args[0]
	state := 1 // Toggle.
	if conf.Debug(name) > 0 {
		state = 0
	}
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf(")debug: bad value %q", args[1])
		}
		state = n
	}
	if !conf.SetDebug(name, state) {
		return fmt.Errorf(")debug: no such flag %q", name)
	}
	return nil
}

// vars prints a table of the defined matrices.
func vars(calc *exec.Calculator) {
	w := calc.Config().Output()
	names := calc.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "no matrices defined")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Rows", "Cols"})
	for _, name := range names {
		m, _ := calc.Lookup(name)
		table.Append([]string{name, strconv.Itoa(m.Rows()), strconv.Itoa(m.Cols())})
	}
	table.Render()
}

// runDemo executes the demo script in a fresh calculator,
// echoing each line before its reply.
func runDemo(conf *config.Config) {
	calc := exec.NewCalculator(conf)
	for _, line := range demo.Lines() {
		fmt.Fprintln(conf.Output(), line)
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reply, err := Eval(calc, line)
		printReply(conf, reply)
		if err != nil {
			printError(conf, "", err)
		}
	}
}
