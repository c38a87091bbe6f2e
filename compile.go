// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package hamlbars compiles a terse, indentation based markup into Handlebars
// templates.
//
//	%ul#menu
//	  -each items
//	    %li{ class=kind }= title
//
// compiles into
//
//	<ul id="menu">
//	  {{#each items}}
//	    <li {{bind-attr class=kind}}>{{title}}</li>
//	  {{/each}}
//	</ul>
//
// Errors are always of type *token.PosError, use errors.Is with one of the
// exported error values to find out what went wrong and Explain to print
// a readable diagnostic.
package hamlbars

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golangee/hamlbars/encoder"
	"github.com/golangee/hamlbars/parser"
	"github.com/golangee/hamlbars/token"
)

var (
	ErrIndentation               = token.ErrIndentation
	ErrUnterminatedInterpolation = token.ErrUnterminatedInterpolation
	ErrMalformedAttribute        = token.ErrMalformedAttribute
	ErrUnexpectedElse            = token.ErrUnexpectedElse
	ErrMalformedBlock            = token.ErrMalformedBlock
	ErrEmptyExpression           = token.ErrEmptyExpression
	ErrInvalidTarget             = encoder.ErrInvalidTarget
)

// Options configure a compilation. The zero value is ready to use.
type Options struct {
	// Filename is only used in error positions.
	Filename string
	// Target is the Ember release the template is written for. Starting with
	// v1.11.0 bindings are rendered as attributes instead of bind-attr helpers.
	Target string
}

func (o Options) encoderOptions() encoder.Options {
	return encoder.Options{Target: o.Target}
}

// Compile translates src into a Handlebars template using the default options.
func Compile(src string) (string, error) {
	return CompileOptions(src, Options{})
}

// CompileOptions translates src into a Handlebars template. Either the whole
// template or an error is returned, never a partial result.
func CompileOptions(src string, opts Options) (string, error) {
	if err := opts.encoderOptions().Validate(); err != nil {
		return "", err
	}

	doc, err := parser.Parse(opts.Filename, src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	enc, err := encoder.NewHandlebarsEncoder(&buf, opts.encoderOptions())
	if err != nil {
		return "", err
	}

	if err := enc.Encode(doc); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Transpile reads all of r and writes the compiled template to w. Nothing is
// written if the input cannot be compiled. If filename is not empty, it
// overrides opts.Filename.
func Transpile(filename string, r io.Reader, w io.Writer, opts Options) error {
	if filename != "" {
		opts.Filename = filename
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read '%s': %w", opts.Filename, err)
	}

	out, err := CompileOptions(string(src), opts)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("cannot write template for '%s': %w", opts.Filename, err)
	}

	return nil
}
