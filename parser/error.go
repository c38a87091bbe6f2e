// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"strings"

	"github.com/golangee/hamlbars/token"
)

// lineError creates a positional error for the byte range [begin, end) of line.Text.
func lineError(line token.Line, begin, end int, cause error, msg string) *token.PosError {
	if end <= begin {
		end = begin + 1
	}

	node := token.LineRange(line.File, line.Number, line.Indent+begin+1, line.Indent+end+1)

	return token.NewPosError(node, msg).SetCause(cause).SetSource(line.Raw)
}

func lineErrorf(line token.Line, begin, end int, cause error, format string, args ...interface{}) *token.PosError {
	return lineError(line, begin, end, cause, fmt.Sprintf(format, args...))
}

// alternatives builds a pretty string like "a, b or c".
func alternatives(items []string) string {
	// Join the last two elements with an "or" to have a nice looking string.
	if len(items) >= 2 {
		joined := fmt.Sprintf("%s or %s",
			items[len(items)-2],
			items[len(items)-1],
		)
		items = append([]string{}, items[:len(items)-1]...)
		items[len(items)-1] = joined
	}

	return strings.Join(items, ", ")
}
