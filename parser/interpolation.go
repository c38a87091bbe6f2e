// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"

	"github.com/golangee/hamlbars/ast"
	"github.com/golangee/hamlbars/token"
)

// ParseSpan scans text for #{...} interpolations. Everything outside of them is
// kept byte for byte, including backslashes.
func ParseSpan(text string) (ast.Span, error) {
	return parseSpan(token.Line{Number: 1, Text: text, Raw: text}, 0, text)
}

// parseSpan scans text, which starts at byte offset off of line.Text.
func parseSpan(line token.Line, off int, text string) (ast.Span, error) {
	var span ast.Span

	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			span = append(span, ast.Lit(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], "#{") {
			lit.WriteByte(text[i])
			i++

			continue
		}

		end := matchingBrace(text, i+1)
		if end < 0 {
			return nil, lineError(line, off+i, off+len(text), token.ErrUnterminatedInterpolation,
				"interpolation is missing its closing '}'")
		}

		expr := text[i+2 : end]
		if strings.TrimSpace(expr) == "" {
			return nil, lineError(line, off+i, off+end+1, token.ErrEmptyExpression, "interpolation is empty")
		}

		flush()
		span = append(span, ast.Interp(expr))
		i = end + 1
	}

	flush()

	return span, nil
}

// matchingBrace returns the index of the '}' closing the '{' at text[open],
// or -1. Nested braces are counted, quotes are not interpreted.
func matchingBrace(text string, open int) int {
	depth := 0

	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
