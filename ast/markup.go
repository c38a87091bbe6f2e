// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package ast contains the syntax tree of a hamlbars document.
// Nodes are built once by the parser and are not modified afterwards.
package ast

import (
	"github.com/golangee/hamlbars/token"
	"github.com/golangee/hamlbars/util"
)

// DefaultTag is used for elements which only consist of id or class shorthands.
const DefaultTag = "div"

// A Node is one of *Document, *Element, *Text, *Expression or *Block.
type Node interface {
	token.Node
	node()
}

// A Parent is a node which may contain other nodes.
type Parent interface {
	Node
	Nodes() []Node
	AddChildren(children ...Node) Parent
}

// Document is the root of every tree. It never renders markup by itself.
type Document struct {
	token.Position
	Children []Node
}

func (*Document) node() {}

func (d *Document) Nodes() []Node {
	return d.Children
}

// AddChildren adds children to the document and can be used builder-style.
func (d *Document) AddChildren(children ...Node) Parent {
	d.Children = append(d.Children, children...)

	return d
}

// Element is a markup tag like %p#id.class(key='value'){bind=expr}{helper "arg"} content.
type Element struct {
	token.Position
	Tag string
	// ID is empty if no id shorthand was given.
	ID string
	// Classes in order of appearance.
	Classes []string
	// Attributes from the static (...) group.
	Attributes util.AttributeList
	// Bindings from the {key=value} group, rendered as a single bind-attr call.
	Bindings util.AttributeList
	// Helpers contain the raw content of each {helper ...} group.
	Helpers []string
	// Inline is the content written on the same line as the tag.
	Inline Span
	Children []Node
}

func (*Element) node() {}

func (e *Element) Nodes() []Node {
	return e.Children
}

// AddChildren adds children to the element and can be used builder-style.
func (e *Element) AddChildren(children ...Node) Parent {
	e.Children = append(e.Children, children...)

	return e
}

// Text is a line of plain text, which may contain interpolations.
type Text struct {
	token.Position
	Span Span
}

func (*Text) node() {}

// Expression is a line starting with '=' and renders as a single mustache.
type Expression struct {
	token.Position
	Raw string
}

func (*Expression) node() {}

// Keyword identifies the kind of a Block.
type Keyword string

const (
	KeywordIf     Keyword = "if"
	KeywordUnless Keyword = "unless"
	KeywordEach   Keyword = "each"
	KeywordElse   Keyword = "else"
)

// Keywords lists all supported block keywords.
var Keywords = []Keyword{KeywordIf, KeywordUnless, KeywordEach, KeywordElse}

// Valid returns true if k is one of the supported keywords.
func (k Keyword) Valid() bool {
	for _, kw := range Keywords {
		if k == kw {
			return true
		}
	}

	return false
}

// HasElse returns true if an else block may follow a block with this keyword.
func (k Keyword) HasElse() bool {
	return k == KeywordIf || k == KeywordUnless
}

// Block is a helper block like -if foo or -each things. An else block is a
// sibling directly following its if or unless block.
type Block struct {
	token.Position
	Keyword  Keyword
	Argument string
	Children []Node
}

func (*Block) node() {}

func (b *Block) Nodes() []Node {
	return b.Children
}

// AddChildren adds children to the block and can be used builder-style.
func (b *Block) AddChildren(children ...Node) Parent {
	b.Children = append(b.Children, children...)

	return b
}
