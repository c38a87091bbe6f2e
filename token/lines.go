// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strings"
)

// A Line is one line of source text, classified by its indentation.
type Line struct {
	// File is the name of the source, if any.
	File string
	// Number is the one-based line number.
	Number int
	// Depth is the indentation measured in indent units. Blank lines always have depth 0.
	Depth int
	// Text is the line without its indentation and without trailing whitespace.
	Text string
	// Blank is true for lines which are empty or only contain whitespace.
	Blank bool
	// Indent is the number of indentation bytes that were stripped from Text.
	Indent int
	// Raw is the line as it appeared in the source, without line terminator.
	Raw string
}

// Begin returns the position of the first non-indentation character.
func (l Line) Begin() Pos {
	return Pos{File: l.File, Line: l.Number, Col: l.Indent + 1}
}

// End returns the position after the last character of Text.
func (l Line) End() Pos {
	return Pos{File: l.File, Line: l.Number, Col: l.Indent + len(l.Text) + 1}
}

// indentUnit is the indentation established by the first indented line of a document.
type indentUnit struct {
	char  byte // '\t' or ' ', 0 while undetermined
	width int
}

func (u indentUnit) String() string {
	if u.char == '\t' {
		return "one tab"
	}

	if u.width == 1 {
		return "one space"
	}

	return fmt.Sprintf("%d spaces", u.width)
}

// Splitter turns source text into classified lines.
type Splitter struct {
	filename string
	unit     indentUnit
}

// NewSplitter creates a Splitter whose errors refer to the given file name.
func NewSplitter(filename string) *Splitter {
	return &Splitter{filename: filename}
}

// SplitLines splits anonymous source text, see Splitter.Split.
func SplitLines(src string) ([]Line, error) {
	return NewSplitter("").Split(src)
}

// Split returns one Line per source line. The indent unit is taken from the
// first indented line, either a single tab or the amount of leading spaces.
// Every following line must be indented by a multiple of that unit, using the
// same character.
func (s *Splitter) Split(src string) ([]Line, error) {
	s.unit = indentUnit{}

	if src == "" {
		return nil, nil
	}

	rawLines := strings.Split(src, "\n")
	lines := make([]Line, 0, len(rawLines))

	for i, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")

		line, err := s.classify(i+1, raw)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// classify determines the depth of a single line.
func (s *Splitter) classify(no int, raw string) (Line, error) {
	text := strings.TrimRight(raw, " \t")
	if text == "" {
		return Line{File: s.filename, Number: no, Blank: true, Raw: raw}, nil
	}

	indent := len(text) - len(strings.TrimLeft(text, " \t"))
	line := Line{
		File:   s.filename,
		Number: no,
		Text:   text[indent:],
		Indent: indent,
		Raw:    raw,
	}

	if indent == 0 {
		return line, nil
	}

	lead := text[:indent]
	if strings.Trim(lead, string(lead[0])) != "" {
		return line, s.errorf(line, indent, "indentation mixes tabs and spaces")
	}

	if s.unit.char == 0 {
		s.unit.char = lead[0]
		s.unit.width = 1

		if lead[0] == ' ' {
			s.unit.width = indent
		}
	}

	if lead[0] != s.unit.char {
		return line, s.errorf(line, indent, fmt.Sprintf("indentation must use %s per level", s.unit))
	}

	if indent%s.unit.width != 0 {
		return line, s.errorf(line, indent,
			fmt.Sprintf("indentation of %d is not a multiple of %s", indent, s.unit))
	}

	line.Depth = indent / s.unit.width

	return line, nil
}

func (s *Splitter) errorf(line Line, indent int, msg string) *PosError {
	return NewPosError(LineRange(s.filename, line.Number, 1, indent+1), msg).
		SetCause(ErrIndentation).
		SetSource(line.Raw)
}
