// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder renders a syntax tree as a Handlebars template.
package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/hamlbars/ast"
	"github.com/golangee/hamlbars/token"
	"github.com/golangee/hamlbars/util"
)

// indentUnit is written once per nesting level.
const indentUnit = "  "

// HandlebarsEncoder writes a document as Handlebars markup. Nested content is
// indented by two spaces per level and lines are separated by a single '\n'.
// There is no trailing newline.
type HandlebarsEncoder struct {
	writer *bufio.Writer
	// indent is the current level of indentation.
	indent uint
	// lines counts the lines written so far.
	lines int
	// attributeBindings renders bindings as name={{expr}} instead of bind-attr.
	attributeBindings bool
}

// NewHandlebarsEncoder creates an encoder for w. It fails if the options are invalid.
func NewHandlebarsEncoder(w io.Writer, opts Options) (*HandlebarsEncoder, error) {
	attributeBindings, err := opts.attributeBindings()
	if err != nil {
		return nil, err
	}

	return &HandlebarsEncoder{
		writer:            bufio.NewWriter(w),
		attributeBindings: attributeBindings,
	}, nil
}

// Encode writes the document and flushes the underlying writer.
// In case of an error incomplete output may already have been written.
func (e *HandlebarsEncoder) Encode(doc *ast.Document) error {
	e.indent = 0
	e.lines = 0

	if err := e.nodes(doc.Children); err != nil {
		return err
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written template: %w", err)
	}

	return nil
}

// nodes writes siblings. An if or unless block consumes a directly following else block.
func (e *HandlebarsEncoder) nodes(children []ast.Node) error {
	for i := 0; i < len(children); i++ {
		var err error

		switch n := children[i].(type) {
		case *ast.Element:
			err = e.element(n)
		case *ast.Text:
			err = e.writeLine(n.Span.Handlebars())
		case *ast.Expression:
			err = e.writeLine("{{" + n.Raw + "}}")
		case *ast.Block:
			var elseBlock *ast.Block
			if next, ok := nextElse(children, i); ok && n.Keyword.HasElse() {
				elseBlock = next
				i++
			}

			err = e.block(n, elseBlock)
		default:
			err = fmt.Errorf("cannot encode node of type %T", n)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// nextElse returns the sibling after i, if it is an else block.
func nextElse(children []ast.Node, i int) (*ast.Block, bool) {
	if i+1 >= len(children) {
		return nil, false
	}

	b, ok := children[i+1].(*ast.Block)

	return b, ok && b.Keyword == ast.KeywordElse
}

// block writes {{#keyword argument}}, the children, an optional else branch and {{/keyword}}.
func (e *HandlebarsEncoder) block(b *ast.Block, elseBlock *ast.Block) error {
	if b.Keyword == ast.KeywordElse {
		return token.NewPosError(b, "else must directly follow an if or unless block").
			SetCause(token.ErrUnexpectedElse)
	}

	if err := e.writeLine("{{#" + string(b.Keyword) + " " + b.Argument + "}}"); err != nil {
		return err
	}

	if err := e.nested(b.Children); err != nil {
		return err
	}

	if elseBlock != nil {
		if err := e.writeLine("{{else}}"); err != nil {
			return err
		}

		if err := e.nested(elseBlock.Children); err != nil {
			return err
		}
	}

	return e.writeLine("{{/" + string(b.Keyword) + "}}")
}

// element writes an element on a single line if it has no children,
// otherwise the opening tag, the indented children and the closing tag.
func (e *HandlebarsEncoder) element(el *ast.Element) error {
	open := e.openTag(el)
	closing := "</" + el.Tag + ">"

	if len(el.Children) == 0 {
		return e.writeLine(open + el.Inline.Handlebars() + closing)
	}

	if err := e.writeLine(open); err != nil {
		return err
	}

	e.indent++

	if !el.Inline.IsEmpty() {
		if err := e.writeLine(el.Inline.Handlebars()); err != nil {
			return err
		}
	}

	if err := e.nodes(el.Children); err != nil {
		return err
	}

	e.indent--

	return e.writeLine(closing)
}

// nested writes children one level deeper.
func (e *HandlebarsEncoder) nested(children []ast.Node) error {
	e.indent++
	err := e.nodes(children)
	e.indent--

	return err
}

// openTag builds the opening tag: id, class, static attributes, bindings and helpers.
func (e *HandlebarsEncoder) openTag(el *ast.Element) string {
	parts := []string{el.Tag}

	if el.ID != "" {
		parts = append(parts, util.Attribute{Key: "id", Value: el.ID}.String())
	}

	if len(el.Classes) > 0 {
		parts = append(parts, util.Attribute{Key: "class", Value: strings.Join(el.Classes, " ")}.String())
	}

	if el.Attributes.Len() > 0 {
		parts = append(parts, el.Attributes.String())
	}

	if el.Bindings.Len() > 0 {
		parts = append(parts, e.bindings(el.Bindings))
	}

	for _, helper := range el.Helpers {
		parts = append(parts, "{{"+helper+"}}")
	}

	return "<" + strings.Join(parts, " ") + ">"
}

// bindings renders the bind-attr helper or, for newer targets, bound attributes.
func (e *HandlebarsEncoder) bindings(attrs util.AttributeList) string {
	parts := make([]string, 0, attrs.Len())

	for _, a := range attrs {
		switch {
		case !e.attributeBindings:
			parts = append(parts, a.Key+"="+quoteBinding(a))
		case a.Quoted:
			parts = append(parts, a.String())
		default:
			parts = append(parts, a.Key+"={{"+a.Value+"}}")
		}
	}

	if e.attributeBindings {
		return strings.Join(parts, " ")
	}

	return "{{bind-attr " + strings.Join(parts, " ") + "}}"
}

// quoteBinding renders a bind-attr value: quoted literals use double quotes,
// or single quotes if the literal contains a double quote. A literal containing
// both kinds escapes its double quotes. Bare values are expressions and stay
// unquoted.
func quoteBinding(a util.Attribute) string {
	switch {
	case !a.Quoted:
		return a.Value
	case !strings.Contains(a.Value, `"`):
		return `"` + a.Value + `"`
	case !strings.Contains(a.Value, "'"):
		return "'" + a.Value + "'"
	default:
		return `"` + strings.ReplaceAll(a.Value, `"`, `\"`) + `"`
	}
}

// writeLine writes s on a new line at the current indentation.
func (e *HandlebarsEncoder) writeLine(s string) error {
	if e.lines > 0 {
		if err := e.writeString("\n"); err != nil {
			return err
		}
	}

	e.lines++

	if s == "" {
		return nil
	}

	return e.writeString(e.indentString() + s)
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *HandlebarsEncoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

// indentString returns a string with a number of spaces that matches the
// current indentation level.
func (e *HandlebarsEncoder) indentString() string {
	return strings.Repeat(indentUnit, int(e.indent))
}
