// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The kinds of failures a compilation may report. A *PosError carries one of
// them as its cause, so callers can match with errors.Is.
var (
	// ErrIndentation reports indentation that is not a multiple of the
	// document's indent unit, mixes tabs and spaces, jumps more than one level,
	// or nests below a node that cannot have children.
	ErrIndentation = errors.New("indentation error")
	// ErrUnterminatedInterpolation reports a '#{' without its closing '}'.
	ErrUnterminatedInterpolation = errors.New("unterminated interpolation")
	// ErrMalformedAttribute reports broken attribute, bind-attr or helper groups
	// and duplicated ids.
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrUnexpectedElse reports an else that does not follow an if or unless block.
	ErrUnexpectedElse = errors.New("unexpected else")
	// ErrMalformedBlock reports unknown block keywords and missing or superfluous arguments.
	ErrMalformedBlock = errors.New("malformed block")
	// ErrEmptyExpression reports an '=' without an expression.
	ErrEmptyExpression = errors.New("empty expression")
)

type ErrDetail struct {
	Node    Node
	Message string
	// Source is the text of the line Node points into. If empty, Explain tries
	// to load it from the file named by the position.
	Source string
}

// PosError represents a very specific positional error with a lot of explaining noise. Use Explain.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Node:    node,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

// SetSource attaches the offending source line to the first detail.
func (p *PosError) SetSource(line string) *PosError {
	if len(p.Details) > 0 {
		p.Details[0].Source = line
	}

	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

// Pos returns the begin of the first detail.
func (p *PosError) Pos() Pos {
	d := p.firstDetail()
	if d.Node == nil {
		return Pos{}
	}

	return d.Node.Begin()
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

func (p *PosError) Error() string {
	msg := p.firstDetail().Message
	if p.firstDetail().Node != nil {
		msg = p.Pos().String() + ": " + msg
	}

	if p.Cause == nil {
		return msg
	}

	return msg + ": " + p.Cause.Error()
}

// src tries to load the source code based on the given file name. If it fails, the empty string is returned.
func src(fname string) string {
	if fname == "" {
		return ""
	}

	buf, err := os.ReadFile(fname)
	if err != nil {
		return ""
	}

	return string(buf)
}

// detailLine returns the source line a detail points to.
func detailLine(d ErrDetail) string {
	if d.Source != "" {
		return d.Source
	}

	lines := strings.Split(src(d.Node.Begin().File), "\n")
	no := d.Node.Begin().Line - 1

	if no < len(lines) && no >= 0 {
		return strings.TrimRight(lines[no], "\r")
	}

	return ""
}

// Explain returns a multi-line text suited to be printed into the console.
func (p PosError) Explain() string {
	// grab the required indent for the line numbers
	indent := 0

	for _, detail := range p.Details {
		l := len(strconv.Itoa(detail.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, detail := range p.Details {
		line := detailLine(detail)

		if i == 0 || detail.Node.Begin().File != p.Details[i-1].Node.Begin().File {
			sb.WriteString(detail.Node.Begin().String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", detail.Node.Begin().Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(strings.Repeat(" ", max(detail.Node.Begin().Col-1, 0)))

		if detail.Node.End().Col-detail.Node.Begin().Col <= 1 {
			sb.WriteString("^~~~ ")
		} else {
			sb.WriteString(strings.Repeat("^", detail.Node.End().Col-detail.Node.Begin().Col))
			sb.WriteRune(' ')
		}

		sb.WriteString(detail.Message)
		sb.WriteString("\n")

		if i < len(p.Details)-1 {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString("...\n")
		}
	}

	if p.Cause != nil {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = %s\n", "", p.Cause))
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}
