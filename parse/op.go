// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

// Op identifies the operation requested by a command keyword.
type Op int

const (
	OpUnknown Op = iota
	OpDefine
	OpShow
	OpPopulate
	OpAdd
	OpSubtract
	OpMultiply
	OpScale
	OpTranspose
	OpInvert
	OpDet
)

// keywords maps each command keyword, including aliases, to its Op.
// Keywords are case-sensitive.
var keywords = map[string]Op{
	"define":    OpDefine,
	"def":       OpDefine,
	"echo":      OpShow,
	"show":      OpShow,
	"populate":  OpPopulate,
	"fill":      OpPopulate,
	"add":       OpAdd,
	"sum":       OpAdd,
	"subtract":  OpSubtract,
	"sub":       OpSubtract,
	"multiply":  OpMultiply,
	"mul":       OpMultiply,
	"scale":     OpScale,
	"transpose": OpTranspose,
	"trans":     OpTranspose,
	"invert":    OpInvert,
	"inv":       OpInvert,
	"det":       OpDet,
}

var opNames = [...]string{
	OpUnknown:   "unknown",
	OpDefine:    "define",
	OpShow:      "show",
	OpPopulate:  "populate",
	OpAdd:       "add",
	OpSubtract:  "subtract",
	OpMultiply:  "multiply",
	OpScale:     "scale",
	OpTranspose: "transpose",
	OpInvert:    "invert",
	OpDet:       "det",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return opNames[OpUnknown]
	}
	return opNames[op]
}

// Lookup returns the Op for the keyword, or OpUnknown.
func Lookup(keyword string) Op {
	return keywords[keyword]
}
