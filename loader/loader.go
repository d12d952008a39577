// Package loader reads script files from disk and parses them.
//
// It wraps the parser with filesystem concerns: reading file contents,
// attaching filenames to parse errors, and expanding command-line patterns
// into concrete file lists. The parsed tree is returned together with the
// raw source, which later pipeline stages need for trivia scanning.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
)

// Result is a parsed file with the source bytes it was parsed from.
type Result struct {
	File   *ast.File
	Source []byte
}

// Loader reads and parses script files.
type Loader struct {
	// Extension filters Expand results; files without it are skipped when a
	// pattern matches a directory. Defaults to ".js".
	Extension string
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithExtension sets the filename extension Expand looks for inside
// directories. The leading dot is required.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		l.Extension = ext
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{Extension: ".js"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses a single file.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, data)
}

// LoadBytes parses already-read source, attributing errors to filename.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	file, err := parser.Parse(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	return &Result{File: file, Source: data}, nil
}

// Expand resolves command-line arguments into a sorted, deduplicated list
// of files. Each argument may be a file path, a directory (searched
// recursively for the configured extension), or a glob pattern.
func (l *Loader) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			err := filepath.WalkDir(pattern, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && filepath.Ext(path) == l.Extension {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", pattern, err)
			}

		case err == nil:
			add(pattern)

		default:
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %s", pattern)
			}
			for _, m := range matches {
				add(m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
