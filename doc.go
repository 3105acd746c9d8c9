// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Matcalc is an interactive calculator for small matrices of floating-point
numbers. It reads one command per line, from a terminal, from standard
input, or from the file named by its argument, and prints a reply for each.

Every command has the form

	command MATRIX [args]

where MATRIX is a single upper-case ASCII letter naming a matrix in the
session's memory. Matrices are created full of zeros by define and
given values by fill. Operations leave their operands alone; their result
is remembered as the last result, which define can capture under the
name ans. The determinant is remembered as the last scalar, which scale
accepts as ans.

Commands:

	define A RxC    make A an RxC zero matrix (also: def)
	define A ans    copy the last result into A
	show A          print A (also: echo)
	fill A data     set the elements of A (also: populate)
	add A B         A+B (also: sum)
	sub A B         A-B (also: subtract)
	mul A B         matrix product of A and B (also: multiply)
	scale A x       every element of A times x
	trans A         transpose of A (also: transpose)
	inv A           inverse of A (also: invert)
	det A           determinant of A
	exit            leave the calculator (also: ex)

Matrix data is written as one bracketed group per row:

	fill A [[1,2][3,4]]

Within a row, each number of the form -?digits[.digits] is an element;
anything else is ignored. All rows must be the same length. A matrix
defined with no elements, such as 0x0 or 0x3, takes the shape of the
data it is filled with; any other matrix must match it.

A matrix prints one row per line:

	| 1  2 |
	| 3  4 |

A mistake in a command, such as a missing matrix or mismatched
dimensions, produces an explanatory reply and the session continues.
A line that cannot be parsed, or names an unknown command, is reported
on standard error.

Lines beginning with # are comments. Lines beginning with ) are special
commands that control the calculator:

	) help           describe the special commands
	) debug name 0|1 set a debugging flag: parse or tokens
	) demo           run a demonstration
	) prompt "text"  set the interactive prompt
	) vars           list the defined matrices

Flags:

	-config file     read settings from a TOML file
	-prompt text     interactive prompt (default "matcalc> " on a terminal)
	-history file    line-editing history (default ~/.matcalc_history)
	-debug name      set a debugging flag; may be repeated
	-nocolor         do not color diagnostics
	-maxcells n      largest number of elements in a matrix

The configuration file may set Prompt, History, Color, MaxCells and Debug:

	Prompt = "mc> "
	MaxCells = 10000
	Debug = ["parse"]

Flags override the configuration file.
*/
package main
