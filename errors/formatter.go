// Package errors provides error formatting infrastructure for parse errors.
// It separates error formatting from parsing logic, allowing errors to be
// rendered in multiple formats (text, JSON) for different consumers (CLI,
// editor integrations, CI pipelines).
//
// The package defines a Formatter interface and provides two implementations:
//   - TextFormatter: Plain-text output with source context, one error per block
//   - JSONFormatter: Structured JSON for machine consumers
package errors

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// TextFormatter formats errors as plain text with source context.
type TextFormatter struct {
	sourceContent []byte
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source content for parse error context.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.sourceContent = source
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error.
func (tf *TextFormatter) Format(err error) string {
	if e, ok := err.(interface {
		GetPosition() ast.Position
		Error() string
	}); ok && tf.sourceContent != nil {
		return tf.formatWithSourceContext(e.GetPosition(), e.Error())
	}

	return err.Error()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

// formatWithSourceContext shows the error message followed by the source
// lines around the error position, with a caret under the offending column.
func (tf *TextFormatter) formatWithSourceContext(pos ast.Position, message string) string {
	var buf bytes.Buffer

	buf.WriteString(message)
	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(tf.sourceContent), "\n")

	startLine := pos.Line - 3
	endLine := pos.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(sourceLines[i])
		buf.WriteByte('\n')

		if i == pos.Line-1 && pos.Column > 0 {
			buf.WriteString("   ")
			for j := 0; j < pos.Column-1; j++ {
				buf.WriteByte(' ')
			}
			buf.WriteString("^\n")
		}
	}

	return buf.String()
}

// JSONError is the wire shape of a single formatted error.
type JSONError struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
}

// JSONFormatter formats errors as structured JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a single error as a JSON object.
func (jf *JSONFormatter) Format(err error) string {
	data, marshalErr := json.Marshal(jf.toJSON(err))
	if marshalErr != nil {
		return `{"message":"failed to encode error"}`
	}
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	out := make([]JSONError, len(errs))
	for i, err := range errs {
		out[i] = jf.toJSON(err)
	}
	data, marshalErr := json.Marshal(out)
	if marshalErr != nil {
		return `[]`
	}
	return string(data)
}

func (jf *JSONFormatter) toJSON(err error) JSONError {
	if e, ok := err.(*parser.ParseError); ok {
		return JSONError{
			Filename: e.Pos.Filename,
			Line:     e.Pos.Line,
			Column:   e.Pos.Column,
			Message:  e.Message,
		}
	}

	if e, ok := err.(interface {
		GetPosition() ast.Position
		Error() string
	}); ok {
		pos := e.GetPosition()
		return JSONError{
			Filename: pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  e.Error(),
		}
	}

	return JSONError{Message: err.Error()}
}
