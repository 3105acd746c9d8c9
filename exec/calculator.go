// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec interprets parsed commands against a registry of named matrices.
package exec // import "robpike.io/matcalc/exec"

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"robpike.io/matcalc/config"
	"robpike.io/matcalc/parse"
	"robpike.io/matcalc/value"
)

// ansName is the argument that refers to the most recent result.
const ansName = "ans"

var shapePattern = regexp.MustCompile(`(\d+)x(\d+)`)

// binaryOps holds the operations whose argument names a second matrix.
var binaryOps = map[parse.Op]func(a, b *value.Matrix) (*value.Matrix, error){
	parse.OpAdd:      value.Add,
	parse.OpSubtract: value.Subtract,
	parse.OpMultiply: value.Multiply,
}

// unaryOps holds the operations that take a single matrix.
var unaryOps = map[parse.Op]func(m *value.Matrix) (*value.Matrix, error){
	parse.OpTranspose: func(m *value.Matrix) (*value.Matrix, error) {
		return value.Transpose(m), nil
	},
	parse.OpInvert: value.Invert,
}

// Calculator holds the state of one session: the named matrices and
// the most recent result. It is not safe for concurrent use.
type Calculator struct {
	config    *config.Config
	memory    map[string]*value.Matrix
	ans       *value.Matrix
	ansScalar float64
}

// NewCalculator returns a Calculator with an empty registry.
// The last result starts as a 1×1 zero matrix and a NaN scalar.
func NewCalculator(conf *config.Config) *Calculator {
	return &Calculator{
		config:    conf,
		memory:    make(map[string]*value.Matrix),
		ans:       value.New(1, 1),
		ansScalar: math.NaN(),
	}
}

// Config returns the configuration of the calculator.
func (c *Calculator) Config() *config.Config {
	return c.config
}

// Lookup returns the named matrix. The boolean reports whether it exists.
func (c *Calculator) Lookup(name string) (*value.Matrix, bool) {
	m, ok := c.memory[name]
	return m, ok
}

// Names returns the names of the defined matrices, sorted.
func (c *Calculator) Names() []string {
	names := make([]string, 0, len(c.memory))
	for name := range c.memory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ans returns the most recent matrix result.
func (c *Calculator) Ans() *value.Matrix {
	return c.ans
}

// AnsScalar returns the most recent scalar result.
func (c *Calculator) AnsScalar() float64 {
	return c.ansScalar
}

// Interpret executes the command and returns the reply to show the user.
// Failures are described in the reply; Interpret itself never fails.
// An unknown command yields the empty string.
func (c *Calculator) Interpret(cmd parse.Command) string {
	switch cmd.Op {
	case parse.OpDefine:
		return c.define(cmd.Matrix, cmd.Args)
	case parse.OpShow:
		return c.show(cmd.Matrix)
	case parse.OpPopulate:
		return c.populate(cmd.Matrix, cmd.Args)
	case parse.OpAdd, parse.OpSubtract, parse.OpMultiply:
		return c.binary(cmd.Op, cmd.Matrix, cmd.Args)
	case parse.OpTranspose, parse.OpInvert:
		return c.unary(cmd.Op, cmd.Matrix)
	case parse.OpScale:
		return c.scale(cmd.Matrix, cmd.Args)
	case parse.OpDet:
		return c.det(cmd.Matrix)
	}
	return ""
}

func notFound(name string) string {
	return fmt.Sprintf("Matrix '%s' not found in memory.", name)
}

func (c *Calculator) define(name, args string) string {
	if strings.EqualFold(args, ansName) {
		m := c.ans.Clone()
		c.memory[name] = m
		return fmt.Sprintf("Defined Matrix %s as %dx%d matrix", name, m.Rows(), m.Cols())
	}
	rows, cols := 0, 0
	if sub := shapePattern.FindStringSubmatch(args); sub != nil {
		var err1, err2 error
		rows, err1 = strconv.Atoi(sub[1])
		cols, err2 = strconv.Atoi(sub[2])
		if err1 != nil || err2 != nil || !c.fits(rows, cols) {
			return fmt.Sprintf("Matrix dimensions %sx%s too large.", sub[1], sub[2])
		}
	}
	c.memory[name] = value.New(rows, cols)
	return fmt.Sprintf("Defined Matrix %s as %dx%d matrix", name, rows, cols)
}

// fits reports whether a rows×cols matrix is within the configured size limit.
func (c *Calculator) fits(rows, cols int) bool {
	max := c.config.MaxCells()
	return cols == 0 || rows <= max/cols
}

func (c *Calculator) show(name string) string {
	m, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	return m.String()
}

// populate replaces the contents of the named matrix. A matrix declared
// with no elements, such as 0x0 or 0x3, takes the shape of the data;
// otherwise the shapes must agree.
func (c *Calculator) populate(name, args string) string {
	m, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	rows, err := value.ParseData(args)
	if err != nil {
		return fmt.Sprintf("Error parsing matrix data: %s", err)
	}
	r, cols := len(rows), 0
	if r > 0 {
		cols = len(rows[0])
	}
	if m.Rows() != 0 && m.Cols() != 0 && (m.Rows() != r || m.Cols() != cols) {
		return fmt.Sprintf("Matrix %s is %dx%d; data is %dx%d.", name, m.Rows(), m.Cols(), r, cols)
	}
	if err := m.SetData(rows); err != nil {
		return fmt.Sprintf("Error parsing matrix data: %s", err)
	}
	return fmt.Sprintf("Populated Matrix %s with data.", name)
}

// binary applies op to the named matrix and the matrix named by args.
// The result becomes the last result.
func (c *Calculator) binary(op parse.Op, name, args string) string {
	a, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	b, ok := c.memory[args]
	if !ok {
		return notFound(args)
	}
	z, err := binaryOps[op](a, b)
	if err != nil {
		return err.Error()
	}
	c.ans = z
	return z.String()
}

func (c *Calculator) unary(op parse.Op, name string) string {
	m, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	z, err := unaryOps[op](m)
	if err != nil {
		return err.Error()
	}
	c.ans = z
	return z.String()
}

// scale multiplies the named matrix by the number in args,
// or by the last scalar result if args is "ans".
func (c *Calculator) scale(name, args string) string {
	m, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	s := c.ansScalar
	if !strings.EqualFold(args, ansName) {
		var err error
		s, err = strconv.ParseFloat(args, 64)
		if err != nil {
			return fmt.Sprintf("Invalid scalar '%s'.", args)
		}
	}
	z := value.Scale(m, s)
	c.ans = z
	return z.String()
}

func (c *Calculator) det(name string) string {
	m, ok := c.memory[name]
	if !ok {
		return notFound(name)
	}
	d, err := value.Det(m)
	if err != nil {
		return err.Error()
	}
	c.ansScalar = d
	return value.Format(d)
}
