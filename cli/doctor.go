package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
)

// DoctorCmd provides doctor utilities for debugging script files.
type DoctorCmd struct {
	Lex    LexCmd    `cmd:"" help:"Show lexical tokens from a script file."`
	Trivia TriviaCmd `cmd:"" help:"Show the leading trivia region of each node."`
}

// LexCmd shows lexical tokens from a script file.
type LexCmd struct {
	File FileOrStdin `help:"Script input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens := parser.NewLexer(content, cmd.File.Filename).ScanAll()
	for _, token := range tokens {
		if token.Type == parser.EOF {
			continue
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %d:%d    %q\n",
			token.Type.String(),
			token.Line,
			token.Column,
			token.String(content))
	}

	return nil
}

// TriviaCmd shows each statement's leading trivia region: its byte span,
// the comments inside it, and the blank lines it represents.
type TriviaCmd struct {
	File FileOrStdin `help:"Script input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the trivia command.
func (cmd *TriviaCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	file, err := parser.Parse(context.Background(), cmd.File.Filename, content)
	if err != nil {
		renderParseError(ctx, content, err)
		return NewCommandError(1)
	}

	seen := make(map[[2]int]bool)
	ast.Walk(file, func(n ast.Node) bool {
		if _, ok := n.(*ast.File); ok {
			return true
		}
		info := n.Info()
		key := [2]int{info.FullStart, info.Start}
		if seen[key] || info.FullStart >= info.Start {
			return true
		}
		seen[key] = true

		pos := ast.PositionFor(content, info.Start, cmd.File.Filename)
		comments := parser.ScanComments(content, info.FullStart, info.Start)

		// Blank lines per whitespace gap: newlines beyond the first.
		blanks := 0
		cursor := info.FullStart
		countGap := func(hi int) {
			if n := bytes.Count(content[cursor:hi], []byte{'\n'}); n > 1 {
				blanks += n - 1
			}
		}
		for _, c := range comments {
			countGap(c.Start)
			cursor = c.End
		}
		countGap(info.Start)

		_, _ = fmt.Fprintf(ctx.Stdout, "%T %d:%d region [%d,%d) comments=%d blanks=%d\n",
			n, pos.Line, pos.Column, info.FullStart, info.Start, len(comments), blanks)
		for _, c := range comments {
			_, _ = fmt.Fprintf(ctx.Stdout, "    %q\n", c.Text(content))
		}
		return true
	})

	return nil
}
