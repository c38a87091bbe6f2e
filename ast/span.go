// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// SegmentKind tells apart literal text and interpolated expressions.
type SegmentKind int

const (
	Literal SegmentKind = iota
	Interpolated
)

// Segment is a piece of inline content.
type Segment struct {
	Kind SegmentKind
	// Value is the literal text or the expression without its delimiters.
	Value string
}

// Span is inline content, an ordered list of segments.
type Span []Segment

// Lit creates a literal segment.
func Lit(s string) Segment {
	return Segment{Kind: Literal, Value: s}
}

// Interp creates an interpolated segment.
func Interp(expr string) Segment {
	return Segment{Kind: Interpolated, Value: expr}
}

// IsEmpty returns true if the span renders to nothing.
func (s Span) IsEmpty() bool {
	for _, seg := range s {
		if seg.Kind == Interpolated || seg.Value != "" {
			return false
		}
	}

	return true
}

// Handlebars renders the span: literals verbatim and interpolations as {{expr}}.
func (s Span) Handlebars() string {
	var sb strings.Builder

	for _, seg := range s {
		switch seg.Kind {
		case Interpolated:
			sb.WriteString("{{")
			sb.WriteString(seg.Value)
			sb.WriteString("}}")
		default:
			sb.WriteString(seg.Value)
		}
	}

	return sb.String()
}
