// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *TestSet
		wantErr bool
	}{
		{
			name: "empty",
			text: "",
			want: NewTestSet(),
		},

		{
			name: "single line",
			text: "%p",
			want: NewTestSet().Line(0, "%p"),
		},

		{
			name: "top level siblings",
			text: "%p#paragraph.foo.bar\n%a#link.baz.qux",
			want: NewTestSet().
				Line(0, "%p#paragraph.foo.bar").
				Line(0, "%a#link.baz.qux"),
		},

		{
			name: "two spaces",
			text: "%p\n  %a\n    %b\n  %c",
			want: NewTestSet().
				Line(0, "%p").
				Line(1, "%a").
				Line(2, "%b").
				Line(1, "%c"),
		},

		{
			name: "one space",
			text: ".foo\n %p\n %p\n%p",
			want: NewTestSet().
				Line(0, ".foo").
				Line(1, "%p").
				Line(1, "%p").
				Line(0, "%p"),
		},

		{
			name: "tabs",
			text: "%p\n\t- each things\n\t\t%p",
			want: NewTestSet().
				Line(0, "%p").
				Line(1, "- each things").
				Line(2, "%p"),
		},

		{
			name: "unit from first indented line",
			text: "%p\n    %a\n        %b",
			want: NewTestSet().
				Line(0, "%p").
				Line(1, "%a").
				Line(2, "%b"),
		},

		{
			name: "blank lines are transparent",
			text: ".foo\n %p\n\n%p",
			want: NewTestSet().
				Line(0, ".foo").
				Line(1, "%p").
				Blank().
				Line(0, "%p"),
		},

		{
			name: "whitespace only lines are blank",
			text: "%p\n       \n\t\n  %a",
			want: NewTestSet().
				Line(0, "%p").
				Blank().
				Blank().
				Line(1, "%a"),
		},

		{
			name: "trailing whitespace and carriage returns",
			text: "%p  \r\n  some text\t\r\n",
			want: NewTestSet().
				Line(0, "%p").
				Line(1, "some text").
				Blank(),
		},

		{
			name: "inner whitespace is kept",
			text: "%p  a  b",
			want: NewTestSet().Line(0, "%p  a  b"),
		},

		{
			name:    "not a multiple of the unit",
			text:    "%p\n  %a\n   %b",
			wantErr: true,
		},

		{
			name:    "tabs after spaces",
			text:    "%p\n  %a\n\t%b",
			wantErr: true,
		},

		{
			name:    "spaces after tabs",
			text:    "%p\n\t%a\n  %b",
			wantErr: true,
		},

		{
			name:    "mixed in one line",
			text:    "%p\n \t%a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := SplitLines(tt.text)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}

				if !errors.Is(err, ErrIndentation) {
					t.Errorf("expected an indentation error, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			tt.want.Assert(lines, t)
		})
	}
}

func TestSplitLinesPositions(t *testing.T) {
	lines, err := NewSplitter("test.hamlbars").Split("%p\n\n    %a hello")
	if err != nil {
		t.Fatal(err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if line.Number != i+1 {
			t.Errorf("line %d has number %d", i, line.Number)
		}
	}

	last := lines[2]
	if got := last.Begin().String(); got != "test.hamlbars:3:5" {
		t.Errorf("unexpected begin %s", got)
	}

	if got := last.End().String(); got != "test.hamlbars:3:13" {
		t.Errorf("unexpected end %s", got)
	}

	if last.Raw != "    %a hello" {
		t.Errorf("unexpected raw line %q", last.Raw)
	}
}

func TestSplitLinesErrorPosition(t *testing.T) {
	_, err := NewSplitter("x.hamlbars").Split("%p\n  %a\n   %b")

	var posErr *PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("expected a *PosError, got %v", err)
	}

	if posErr.Pos().Line != 3 {
		t.Errorf("expected line 3, got %d", posErr.Pos().Line)
	}

	want := "x.hamlbars:3:1: indentation of 3 is not a multiple of 2 spaces: indentation error"
	if posErr.Error() != want {
		t.Errorf("expected %q, got %q", want, posErr.Error())
	}
}

// test utils

type TestSet struct {
	checker []func(l Line) error
}

func NewTestSet() *TestSet {
	return &TestSet{}
}

// Line expects a non-blank line with the given depth and text.
func (ts *TestSet) Line(depth int, text string) *TestSet {
	ts.checker = append(ts.checker, func(l Line) error {
		if l.Blank {
			return fmt.Errorf("expected line '%s' but got a blank line", text)
		}

		if l.Depth != depth {
			return fmt.Errorf("expected depth %d for '%s' but got %d", depth, text, l.Depth)
		}

		if l.Text != text {
			return fmt.Errorf("expected text '%s' but got '%s'", text, l.Text)
		}

		return nil
	})

	return ts
}

// Blank expects a blank line.
func (ts *TestSet) Blank() *TestSet {
	ts.checker = append(ts.checker, func(l Line) error {
		if !l.Blank {
			return fmt.Errorf("expected a blank line but got '%s'", l.Text)
		}

		if l.Depth != 0 {
			return fmt.Errorf("blank lines must have depth 0, got %d", l.Depth)
		}

		return nil
	})

	return ts
}

func (ts *TestSet) Assert(lines []Line, t *testing.T) {
	t.Helper()

	if len(ts.checker) != len(lines) {
		t.Fatalf("expected %d lines but got %d\n%s", len(ts.checker), len(lines), toString(lines))
	}

	for i, line := range lines {
		if err := ts.checker[i](line); err != nil {
			t.Fatal(err)
		}
	}
}

func toString(i interface{}) string {
	buf, err := json.MarshalIndent(i, " ", " ")
	if err != nil {
		panic(err)
	}

	return string(buf)
}
