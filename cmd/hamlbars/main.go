// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Command hamlbars compiles *.hamlbars files into Handlebars templates.
//
//	hamlbars [flags] [paths...]
//
// Without paths the source is read from stdin and the template is written to
// stdout. A path is either a file, a directory (non-recursive) or a directory
// followed by /... to recurse. Each x.hamlbars is written to x.hbs next to it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golangee/hamlbars"
	"github.com/golangee/hamlbars/token"
)

const (
	sourceExt = ".hamlbars"
	targetExt = ".hbs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hamlbars", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: hamlbars [flags] [paths...]")
		_, _ = fmt.Fprintln(stderr, "")
		_, _ = fmt.Fprintln(stderr, "Compiles each *.hamlbars file into a *.hbs file next to it.")
		_, _ = fmt.Fprintln(stderr, "Reads stdin and writes stdout if no paths are given.")
		_, _ = fmt.Fprintln(stderr, "")
		_, _ = fmt.Fprintln(stderr, "Paths:")
		_, _ = fmt.Fprintln(stderr, "  - ./dir           only that directory (non-recursive)")
		_, _ = fmt.Fprintln(stderr, "  - ./dir/...       recurse from that directory")
		_, _ = fmt.Fprintln(stderr, "  - ./x.hamlbars    only that file")
		flags.PrintDefaults()
	}

	verbose := flags.Bool("v", false, "log every compiled file")
	target := flags.String("target", "", "Ember release to compile for, e.g. v1.13 (bindings become plain attributes from v1.11 on)")
	toStdout := flags.Bool("stdout", false, "write all templates to stdout instead of *.hbs files")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	logger := log.New(io.Discard, "hamlbars: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}

	c := &compiler{
		opts:     hamlbars.Options{Target: *target},
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		toStdout: *toStdout,
	}

	if flags.NArg() == 0 {
		if err := hamlbars.Transpile("<stdin>", stdin, stdout, c.opts); err != nil {
			c.report(err)

			return 1
		}

		return 0
	}

	paths, err := collectPaths(flags.Args())
	if err != nil {
		c.report(err)

		return 1
	}

	logger.Printf("found %d %s file(s)", len(paths), sourceExt)

	var allErr error

	for _, path := range paths {
		if err := c.file(path); err != nil {
			c.report(err)
			allErr = errors.Join(allErr, err)
		}
	}

	if allErr != nil {
		return 1
	}

	return 0
}

type compiler struct {
	opts     hamlbars.Options
	stdout   io.Writer
	stderr   io.Writer
	logger   *log.Logger
	toStdout bool
}

// file compiles a single source file. The target file is only written if the
// compilation succeeded.
func (c *compiler) file(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	if c.toStdout {
		c.logger.Printf("%s -> stdout", path)

		if err := hamlbars.Transpile(path, f, c.stdout, c.opts); err != nil {
			return err
		}

		_, err := fmt.Fprintln(c.stdout)

		return err
	}

	out := outputFileName(path)
	c.logger.Printf("%s -> %s", path, out)

	var buf strings.Builder
	if err := hamlbars.Transpile(path, f, &buf, c.opts); err != nil {
		return err
	}

	if err := os.WriteFile(out, []byte(buf.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("cannot write template: %w", err)
	}

	return nil
}

// report prints an error, with a source excerpt if it carries a position.
func (c *compiler) report(err error) {
	var posErr *token.PosError
	if errors.As(err, &posErr) {
		_, _ = fmt.Fprintln(c.stderr, posErr.Explain())

		return
	}

	_, _ = fmt.Fprintln(c.stderr, err)
}

// outputFileName returns the template path for a source file, e.g. index.hamlbars -> index.hbs.
func outputFileName(path string) string {
	return strings.TrimSuffix(path, sourceExt) + targetExt
}

// collectPaths resolves files, directories and dir/... patterns into a sorted
// list of unique source files.
func collectPaths(patterns []string) ([]string, error) {
	seen := map[string]bool{}

	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if pattern == "..." || strings.HasSuffix(pattern, "/...") {
			root := strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if d.IsDir() {
					if p != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
						return filepath.SkipDir
					}

					return nil
				}

				if strings.HasSuffix(p, sourceExt) {
					add(p)
				}

				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("cannot walk '%s': %w", root, err)
			}

			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !strings.HasSuffix(pattern, sourceExt) {
				return nil, fmt.Errorf("not a %s file: %s", sourceExt, pattern)
			}

			add(pattern)

			continue
		}

		entries, err := os.ReadDir(pattern)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), sourceExt) {
				add(filepath.Join(pattern, e.Name()))
			}
		}
	}

	sort.Strings(files)

	return files, nil
}
