// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package parser builds the syntax tree of a hamlbars document.
//
// Lines are processed in order with a stack of open ancestors. Before a line is
// attached, every stack entry which is not shallower than the line is closed, so
// the top of the stack becomes the parent of the line.
package parser

import (
	"strings"

	"github.com/golangee/hamlbars/ast"
	"github.com/golangee/hamlbars/token"
)

// stackEntry is an open ancestor together with the depth of its line.
type stackEntry struct {
	depth int
	node  ast.Node
}

// Parser is used to get a tree representation from hamlbars input.
type Parser struct {
	filename string
	// workingStack is the chain of currently open nodes, with the document at the bottom.
	workingStack []stackEntry
}

// NewParser creates a Parser whose errors refer to filename.
func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// Parse parses src and returns the document. filename is only used for error positions.
func Parse(filename, src string) (*ast.Document, error) {
	return NewParser(filename).Parse(src)
}

// Parse returns a parsed tree. The whole input is rejected on the first error.
func (p *Parser) Parse(src string) (*ast.Document, error) {
	lines, err := token.NewSplitter(p.filename).Split(src)
	if err != nil {
		return nil, err
	}

	doc := &ast.Document{}
	doc.BeginPos = token.Pos{File: p.filename, Line: 1, Col: 1}
	doc.EndPos = doc.BeginPos
	p.workingStack = []stackEntry{{depth: -1, node: doc}}

	for _, line := range lines {
		if line.Blank {
			continue
		}

		if err := p.line(line); err != nil {
			return nil, err
		}

		doc.EndPos = line.End()
	}

	p.workingStack = nil

	return doc, nil
}

// line attaches a single non-blank line to the tree.
func (p *Parser) line(line token.Line) error {
	for p.top().depth >= line.Depth {
		p.popStack()
	}

	top := p.top()
	if line.Depth > top.depth+1 {
		return lineErrorf(line, 0, 1, token.ErrIndentation,
			"line is indented %d levels deeper than its parent", line.Depth-top.depth).
			SetHint("nested content must be indented by exactly one level")
	}

	parent, err := p.parent(line, top.node)
	if err != nil {
		return err
	}

	node, err := p.classify(line)
	if err != nil {
		return err
	}

	if block, ok := node.(*ast.Block); ok && block.Keyword == ast.KeywordElse {
		if !followsConditional(parent.Nodes()) {
			return lineError(line, 0, len(line.Text), token.ErrUnexpectedElse,
				"else must directly follow an if or unless block on the same level")
		}
	}

	parent.AddChildren(node)
	p.pushStack(stackEntry{depth: line.Depth, node: node})

	return nil
}

// parent returns n as a parent, if it is allowed to have nested lines.
func (p *Parser) parent(line token.Line, n ast.Node) (ast.Parent, error) {
	parent, ok := n.(ast.Parent)
	if !ok {
		return nil, lineError(line, 0, len(line.Text), token.ErrIndentation,
			"illegal nesting: plain text and expressions cannot contain nested lines")
	}

	if el, ok := parent.(*ast.Element); ok && len(el.Inline) > 0 {
		return nil, lineErrorf(line, 0, len(line.Text), token.ErrIndentation,
			"illegal nesting: %%%s already has content on its own line", el.Tag).
			SetHint("move the inline content into its own nested line")
	}

	return parent, nil
}

// followsConditional returns true if the last sibling is an if or unless block.
func followsConditional(siblings []ast.Node) bool {
	if len(siblings) == 0 {
		return false
	}

	prev, ok := siblings[len(siblings)-1].(*ast.Block)

	return ok && prev.Keyword.HasElse()
}

// classify creates the node for a line. The first matching rule wins.
func (p *Parser) classify(line token.Line) (ast.Node, error) {
	text := line.Text
	pos := token.Position{BeginPos: line.Begin(), EndPos: line.End()}

	switch {
	case strings.HasPrefix(text, "-"):
		return p.block(line)
	case strings.HasPrefix(text, "="):
		raw := strings.TrimSpace(text[1:])
		if raw == "" {
			return nil, lineError(line, 0, 1, token.ErrEmptyExpression, "expected an expression after '='")
		}

		return &ast.Expression{Position: pos, Raw: raw}, nil
	case strings.HasPrefix(text, "%") || isShorthand(text):
		return newHeader(line).element()
	default:
		span, err := parseSpan(line, 0, text)
		if err != nil {
			return nil, err
		}

		return &ast.Text{Position: pos, Span: span}, nil
	}
}

// block parses lines like "-if foo", "- each things" or "-else".
func (p *Parser) block(line token.Line) (*ast.Block, error) {
	body := strings.TrimLeft(line.Text[1:], " \t")
	kwStart := len(line.Text) - len(body)

	kw := body
	arg := ""

	if i := strings.IndexAny(body, " \t"); i >= 0 {
		kw = body[:i]
		arg = strings.TrimSpace(body[i:])
	}

	keyword := ast.Keyword(kw)
	kwEnd := kwStart + len(kw)

	switch {
	case !keyword.Valid():
		names := make([]string, 0, len(ast.Keywords))
		for _, k := range ast.Keywords {
			names = append(names, string(k))
		}

		err := lineErrorf(line, kwStart, kwEnd, token.ErrMalformedBlock,
			"unknown block keyword '%s', expected %s", kw, alternatives(names))
		if kw == "" {
			err.Details[0].Message = "expected a block keyword after '-'"
		}

		return nil, err
	case keyword == ast.KeywordElse && arg != "":
		return nil, lineError(line, kwEnd, len(line.Text), token.ErrMalformedBlock, "else does not take an argument")
	case keyword != ast.KeywordElse && arg == "":
		return nil, lineErrorf(line, kwStart, kwEnd, token.ErrMalformedBlock, "%s requires an argument", kw)
	}

	return &ast.Block{
		Position: token.Position{BeginPos: line.Begin(), EndPos: line.End()},
		Keyword:  keyword,
		Argument: arg,
	}, nil
}

// top returns the topmost element in the working stack.
func (p *Parser) top() stackEntry {
	return p.workingStack[len(p.workingStack)-1]
}

// popStack removes the topmost element from the working stack.
// The document at the bottom is never removed.
func (p *Parser) popStack() {
	if len(p.workingStack) > 1 {
		p.workingStack = p.workingStack[:len(p.workingStack)-1]
	}
}

// pushStack adds an element to the top of the stack.
func (p *Parser) pushStack(e stackEntry) {
	p.workingStack = append(p.workingStack, e)
}
