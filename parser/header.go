// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"

	"github.com/golangee/hamlbars/ast"
	"github.com/golangee/hamlbars/token"
)

// header reads the parts of an element line, like
//
//	%button#save.primary(type='submit'){ disabled=isSaving }{action "save"} Save
//
// from left to right. pos is the byte offset into line.Text of the next
// character to read.
type header struct {
	line token.Line
	text string
	pos  int
}

func newHeader(line token.Line) *header {
	return &header{line: line, text: line.Text}
}

// peek returns the next byte without consuming it or 0 at the end of the line.
func (h *header) peek() byte {
	return h.peekAt(0)
}

// peekAt returns the byte at offset n from the current position or 0.
func (h *header) peekAt(n int) byte {
	if h.pos+n < len(h.text) {
		return h.text[h.pos+n]
	}

	return 0
}

// rest returns the unread text.
func (h *header) rest() string {
	return h.text[h.pos:]
}

// name reads a name and returns it, which is empty if no name char follows.
func (h *header) name(isChar func(byte) bool) string {
	start := h.pos
	for h.pos < len(h.text) && isChar(h.text[h.pos]) {
		h.pos++
	}

	return h.text[start:h.pos]
}

// isNameChar accepts the characters of ids and classes.
func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

// isTagChar accepts the characters of tag names, which may be namespaced.
func isTagChar(c byte) bool {
	return isNameChar(c) || c == ':'
}

// isShorthand returns true if text starts with an id or class shorthand like #main or .active.
func isShorthand(text string) bool {
	return len(text) >= 2 && (text[0] == '#' || text[0] == '.') && isNameChar(text[1])
}

// element parses the whole line as an element.
func (h *header) element() (*ast.Element, error) {
	el := &ast.Element{
		Position: token.Position{BeginPos: h.line.Begin(), EndPos: h.line.End()},
	}

	if h.peek() == '%' {
		h.pos++

		el.Tag = h.name(isTagChar)
		if el.Tag == "" {
			return nil, lineError(h.line, h.pos-1, h.pos, token.ErrMalformedAttribute, "expected a tag name after '%'")
		}
	}

	for isShorthand(h.rest()) {
		sigil := h.peek()
		start := h.pos
		h.pos++
		name := h.name(isNameChar)

		if sigil == '.' {
			el.Classes = append(el.Classes, name)

			continue
		}

		if el.ID != "" {
			return nil, lineErrorf(h.line, start, h.pos, token.ErrMalformedAttribute,
				"element already has the id '%s'", el.ID).
				SetHint("an element can only have a single id, use a class instead")
		}

		el.ID = name
	}

	// a sigil without a name, '#{' starts inline content
	if c := h.peek(); c == '.' || c == '#' && h.peekAt(1) != '{' {
		return nil, lineErrorf(h.line, h.pos, h.pos+1, token.ErrMalformedAttribute,
			"expected a name after '%c'", c)
	}

	if el.Tag == "" {
		el.Tag = ast.DefaultTag
	}

	if err := h.groups(el); err != nil {
		return nil, err
	}

	inline, err := h.inline()
	if err != nil {
		return nil, err
	}

	el.Inline = inline

	return el, nil
}

// groups reads all attribute, bind-attr and helper groups which directly follow the tag.
func (h *header) groups(el *ast.Element) error {
	for {
		switch h.peek() {
		case '(':
			start := h.pos

			inner, err := h.group('(', ')')
			if err != nil {
				return err
			}

			attrs, err := parseAttributes(h.line, start+1, inner)
			if err != nil {
				return err
			}

			for _, a := range attrs {
				el.Attributes.Add(a)
			}
		case '{':
			start := h.pos

			inner, err := h.group('{', '}')
			if err != nil {
				return err
			}

			if err := h.brace(el, start, inner); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// brace classifies a {...} group as either the bind-attr group or a helper call.
func (h *header) brace(el *ast.Element, start int, inner string) error {
	if !isBinding(inner) {
		helper := strings.TrimSpace(inner)
		if helper == "" {
			return lineError(h.line, start, h.pos, token.ErrMalformedAttribute, "empty helper call")
		}

		el.Helpers = append(el.Helpers, helper)

		return nil
	}

	if el.Bindings.Len() > 0 {
		return lineError(h.line, start, h.pos, token.ErrMalformedAttribute, "element already has a bind-attr group").
			SetHint("put all bindings into a single {...} group")
	}

	if len(el.Helpers) > 0 {
		return lineError(h.line, start, h.pos, token.ErrMalformedAttribute, "bind-attr group must precede helper calls")
	}

	attrs, err := parseAttributes(h.line, start+1, inner)
	if err != nil {
		return err
	}

	el.Bindings = attrs

	return nil
}

// group consumes a bracketed group starting at the current position and returns
// its inner text. Quoted literals are skipped, so they may contain the closing
// bracket. Nested brackets of the same kind are counted.
func (h *header) group(open, close byte) (string, error) {
	start := h.pos
	depth := 0

	var quote byte

	for i := start; i < len(h.text); i++ {
		c := h.text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				h.pos = i + 1

				return h.text[start+1 : i], nil
			}
		}
	}

	return "", lineErrorf(h.line, start, len(h.text), token.ErrMalformedAttribute,
		"missing '%c' to close '%c'", close, open)
}

// inline parses the content after the tag, which is either an expression
// introduced by '=' or text.
func (h *header) inline() (ast.Span, error) {
	if h.peek() == '=' {
		expr := strings.TrimSpace(h.rest()[1:])
		if expr == "" {
			return nil, lineError(h.line, h.pos, h.pos+1, token.ErrEmptyExpression, "expected an expression after '='")
		}

		return ast.Span{ast.Interp(expr)}, nil
	}

	rest := h.rest()
	content := strings.TrimLeft(rest, " \t")

	if content == "" {
		return nil, nil
	}

	return parseSpan(h.line, h.pos+len(rest)-len(content), content)
}
