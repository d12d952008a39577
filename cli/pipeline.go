package cli

import (
	"context"
	"strings"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/blankline"
	"github.com/robinvdvleuten/jsfmt/parser"
	"github.com/robinvdvleuten/jsfmt/printer"
	"github.com/robinvdvleuten/jsfmt/transform"
)

// FormatFlags are shared by commands that produce formatted output.
type FormatFlags struct {
	SortImports      bool `help:"Sort the leading run of import statements by path."`
	NormalizeNumbers bool `help:"Rewrite numeric literals to canonical decimal form."`
	KeepBlanks       bool `negatable:"" default:"true" help:"Preserve blank lines from the input."`
	Indent           int  `default:"2" help:"Number of spaces per indentation level."`
}

func (f FormatFlags) config() formatConfig {
	return formatConfig{
		sortImports:      f.SortImports,
		normalizeNumbers: f.NormalizeNumbers,
		keepBlanks:       f.KeepBlanks,
		indent:           f.Indent,
	}
}

type formatConfig struct {
	sortImports      bool
	normalizeNumbers bool
	keepBlanks       bool
	indent           int
}

// formatBytes runs the full pipeline on raw source: parse, transform,
// annotate blank lines, print, restore.
func formatBytes(ctx context.Context, filename string, source []byte, cfg formatConfig) (string, error) {
	file, err := parser.Parse(ctx, filename, source)
	if err != nil {
		return "", err
	}
	return formatFile(file, cfg), nil
}

func formatFile(file *ast.File, cfg formatConfig) string {
	var chain []transform.Transform
	if cfg.sortImports {
		chain = append(chain, transform.SortImports)
	}
	if cfg.normalizeNumbers {
		chain = append(chain, transform.NormalizeNumbers)
	}
	if len(chain) > 0 {
		file = transform.Chain(chain...)(file)
	}

	if cfg.keepBlanks {
		file = blankline.New()(file)
	}

	out := printer.New(printer.WithIndent(strings.Repeat(" ", cfg.indent))).Sprint(file)

	if cfg.keepBlanks {
		out = blankline.Restore(out)
	}
	return out
}
