// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package util

import "strings"

// Attribute represents a single key value assignment.
type Attribute struct {
	Key   string
	Value string
	// Quoted is true if the value was written as a quoted literal.
	// Value never contains the quotes themselves.
	Quoted bool
}

// String renders the attribute with a double-quoted value. Double quotes
// inside the value are escaped as &quot;.
func (a Attribute) String() string {
	return a.Key + `="` + strings.ReplaceAll(a.Value, `"`, "&quot;") + `"`
}

// AttributeList is an ordered list of attributes. Keys may occur more than once
// and the order of insertion is always kept.
type AttributeList []Attribute

// NewAttributeList creates an empty AttributeList.
func NewAttributeList() AttributeList {
	return AttributeList{}
}

// Len returns the number of attributes in the list
func (l AttributeList) Len() int {
	return len(l)
}

// Add the attribute to the end of the list.
func (l *AttributeList) Add(attr Attribute) {
	*l = append(*l, attr)
}

// String renders all attributes space separated in insertion order.
func (l AttributeList) String() string {
	parts := make([]string, 0, len(l))
	for _, a := range l {
		parts = append(parts, a.String())
	}

	return strings.Join(parts, " ")
}
