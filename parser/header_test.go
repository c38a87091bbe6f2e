// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/golangee/hamlbars/token"
	"github.com/golangee/hamlbars/util"
)

func TestIsBinding(t *testing.T) {
	tests := []struct {
		inner string
		want  bool
	}{
		{inner: ` name=foo style="bar" `, want: true},
		{inner: `class="bar:bar:foo"`, want: true},
		{inner: `name = foo`, want: true},
		{inner: `action "submit"`, want: false},
		{inner: `action "submit" on="doubleClick"`, want: false},
		{inner: `view.isActive`, want: false},
		{inner: ``, want: false},
		{inner: `"x"=y`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.inner, func(t *testing.T) {
			if got := isBinding(tt.inner); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name    string
		inner   string
		want    util.AttributeList
		wantErr bool
	}{
		{
			name:  "empty",
			inner: "  ",
			want:  util.AttributeList{},
		},
		{
			name:  "mixed quoting",
			inner: ` name='foo' style="bar" data-x=y `,
			want: util.AttributeList{
				{Key: "name", Value: "foo", Quoted: true},
				{Key: "style", Value: "bar", Quoted: true},
				{Key: "data-x", Value: "y"},
			},
		},
		{
			name:  "duplicates are kept",
			inner: `class=a class='b'`,
			want: util.AttributeList{
				{Key: "class", Value: "a"},
				{Key: "class", Value: "b", Quoted: true},
			},
		},
		{
			name:  "escaped quotes are resolved",
			inner: `title="say \"hi\"" alt='it\'s' path="a\\b" re="\d"`,
			want: util.AttributeList{
				{Key: "title", Value: `say "hi"`, Quoted: true},
				{Key: "alt", Value: `it's`, Quoted: true},
				{Key: "path", Value: `a\b`, Quoted: true},
				{Key: "re", Value: `\d`, Quoted: true},
			},
		},
		{
			name:    "missing value",
			inner:   `name=`,
			wantErr: true,
		},
		{
			name:    "missing equals",
			inner:   `name 'foo'`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := token.Line{Number: 1, Text: "%p(" + tt.inner + ")"}
			got, err := parseAttributes(line, 3, tt.inner)

			if tt.wantErr {
				if !errors.Is(err, token.ErrMalformedAttribute) {
					t.Fatalf("expected a malformed attribute error, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestHeaderGroupColumns(t *testing.T) {
	_, err := Parse("", `%p( name )`)

	var posErr *token.PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("expected a *token.PosError, got %v", err)
	}

	// the column points into the group, not at the start of the line
	if pos := posErr.Pos(); pos.Line != 1 || pos.Col < 4 || pos.Col > 10 {
		t.Errorf("expected a column inside the group, got %s: %v", pos, err)
	}
}
