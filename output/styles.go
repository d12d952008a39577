// Package output styles terminal text through termenv, which degrades to
// plain text when the writer is not a terminal.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders the CLI's text roles against one writer.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a Styles bound to w.
func NewStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w)}
}

func (s *Styles) fg(text, color string) termenv.Style {
	return s.output.String(text).Foreground(s.output.Color(color))
}

// Success renders text green and bold.
func (s *Styles) Success(text string) string {
	return s.fg(text, "2").Bold().String()
}

// Error renders text red and bold.
func (s *Styles) Error(text string) string {
	return s.fg(text, "1").Bold().String()
}

// Warning renders text yellow and bold.
func (s *Styles) Warning(text string) string {
	return s.fg(text, "3").Bold().String()
}

// FilePath renders a path cyan.
func (s *Styles) FilePath(text string) string {
	return s.fg(text, "6").String()
}

// Comment renders source comments green.
func (s *Styles) Comment(text string) string {
	return s.fg(text, "2").String()
}

// Literal renders literal values magenta.
func (s *Styles) Literal(text string) string {
	return s.fg(text, "5").String()
}

// Keyword renders keywords bold.
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim renders secondary information faint.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Timing highlights slow durations and dims the rest.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.fg(text, "1").String()
	}
	return s.Dim(text)
}

// Output exposes the underlying termenv Output.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
