// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a source text.
type Pos struct {
	// File contains the file name, which may be empty for anonymous input.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
}

// String returns the content in the "file:line:col" format.
// The file part is omitted for anonymous input.
func (p Pos) String() string {
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
	if p.File == "" {
		return s
	}

	return p.File + ":" + s
}

// Position is a range between two positions and implements Node.
// It is embedded by all syntax tree nodes.
type Position struct {
	BeginPos Pos
	EndPos   Pos
}

func (p Position) Begin() Pos {
	return p.BeginPos
}

func (p Position) End() Pos {
	return p.EndPos
}

// LineRange returns the Position spanning the columns [beginCol, endCol) of the given line.
func LineRange(file string, line, beginCol, endCol int) Position {
	return Position{
		BeginPos: Pos{File: file, Line: line, Col: beginCol},
		EndPos:   Pos{File: file, Line: line, Col: endCol},
	}
}
