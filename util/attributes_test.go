// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"reflect"
	"testing"
)

func TestAttributeListKeepsOrderAndDuplicates(t *testing.T) {
	l := NewAttributeList()
	l.Add(Attribute{Key: "style", Value: "b"})
	l.Add(Attribute{Key: "name", Value: "foo"})
	l.Add(Attribute{Key: "style", Value: "a"})

	if l.Len() != 3 {
		t.Fatalf("expected 3 attributes, got %d", l.Len())
	}

	want := AttributeList{
		{Key: "style", Value: "b"},
		{Key: "name", Value: "foo"},
		{Key: "style", Value: "a"},
	}
	if !reflect.DeepEqual(l, want) {
		t.Errorf("expected %v, got %v", want, l)
	}
}

func TestAttributeListString(t *testing.T) {
	tests := []struct {
		name string
		list AttributeList
		want string
	}{
		{
			name: "empty",
			list: NewAttributeList(),
			want: "",
		},
		{
			name: "single and double quoted sources",
			list: AttributeList{
				{Key: "name", Value: "foo", Quoted: true},
				{Key: "style", Value: "bar", Quoted: true},
			},
			want: `name="foo" style="bar"`,
		},
		{
			name: "quotes are escaped",
			list: AttributeList{{Key: "title", Value: `say "hi"`, Quoted: true}},
			want: `title="say &quot;hi&quot;"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
