// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/hamlbars/token"
	"github.com/golangee/hamlbars/util"
)

const (
	// sString is a single or double quoted literal, e.g. 'foo' or "say \"hi\"".
	sString = `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`

	// sWord is a bare attribute name or value like name, data-id or view.isActive:active.
	sWord = `[^\s="']+`
)

var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: sString},
	{Name: "Assign", Pattern: `=`},
	{Name: "Word", Pattern: sWord},
	{Name: "Whitespace", Pattern: `\s+`},
})

// attrGroup is the content of a (...) or {...} attribute group.
type attrGroup struct {
	Assignments []*assignment `parser:"@@*"`
}

// assignment is a single key=value pair.
type assignment struct {
	Pos   lexer.Position
	Key   string     `parser:"@Word \"=\""`
	Value *attrValue `parser:"@@"`
}

// attrValue is either a quoted literal or a bare word.
type attrValue struct {
	Quoted *string `parser:"  @String"`
	Bare   *string `parser:"| @Word"`
}

func (a *assignment) attribute() util.Attribute {
	if a.Value.Quoted != nil {
		return util.Attribute{Key: a.Key, Value: unquote(*a.Value.Quoted), Quoted: true}
	}

	return util.Attribute{Key: a.Key, Value: *a.Value.Bare}
}

var attrParser = participle.MustBuild[attrGroup](
	participle.Lexer(attrLexer),
	participle.Elide("Whitespace"),
)

// parseAttributes parses the inner text of an attribute group, which starts at
// byte offset off of line.Text.
func parseAttributes(line token.Line, off int, inner string) (util.AttributeList, error) {
	group, err := attrParser.ParseString(line.File, inner)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			at := off + perr.Position().Offset

			return nil, lineError(line, at, at+1, token.ErrMalformedAttribute, perr.Message())
		}

		return nil, lineError(line, off, off+len(inner), token.ErrMalformedAttribute, err.Error())
	}

	attrs := util.NewAttributeList()
	for _, a := range group.Assignments {
		attrs.Add(a.attribute())
	}

	return attrs, nil
}

// isBinding returns true if the inner text of a brace group starts with an
// assignment, which makes it a bind-attr group instead of a helper call.
func isBinding(inner string) bool {
	toks, err := attrLexer.LexString("", inner)
	if err != nil {
		return false
	}

	// skip leading whitespace and look at the token following the first word
	symbols := attrLexer.Symbols()
	var significant []lexer.Token

	for {
		tok, err := toks.Next()
		if err != nil || tok.EOF() {
			break
		}

		if tok.Type == symbols["Whitespace"] {
			continue
		}

		significant = append(significant, tok)
		if len(significant) == 2 {
			break
		}
	}

	return len(significant) == 2 &&
		significant[0].Type == symbols["Word"] &&
		significant[1].Type == symbols["Assign"]
}

// unquote strips the surrounding quotes of a quoted literal and resolves the
// escaped quotes and backslashes inside. Other backslashes are kept as written.
func unquote(s string) string {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return s
	}

	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\'', '\\':
				i++
			}
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}
