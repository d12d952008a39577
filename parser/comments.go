package parser

import (
	"github.com/robinvdvleuten/jsfmt/ast"
)

// CommentRange describes one comment found inside a trivia region. The
// embedded span holds byte offsets into the source buffer; End excludes the
// trailing newline of a line comment but includes the closing delimiter of a
// block comment.
type CommentRange struct {
	ast.Span

	Kind ast.CommentKind
	// HasTrailingNewline reports whether the comment ends its line: only
	// blanks and a newline follow it in the source. A CRLF pair counts as
	// a newline. A block comment without one shares its line with the
	// content after it.
	HasTrailingNewline bool
}

// Text returns the comment text, delimiters included.
func (c CommentRange) Text(source []byte) string {
	return c.Span.Text(source)
}

// newlineFollows reports whether the rest of the line starting at pos holds
// nothing but blanks before its line break, either LF or CRLF. Reaching hi
// first means the node content continues on the same line.
func newlineFollows(source []byte, pos, hi int) bool {
	for pos < hi && (source[pos] == ' ' || source[pos] == '\t') {
		pos++
	}
	if pos >= hi {
		return false
	}
	if source[pos] == '\n' {
		return true
	}
	return source[pos] == '\r' && pos+1 < hi && source[pos+1] == '\n'
}

// ScanComments returns the comments located in source[lo:hi] in source order.
// The interval is expected to be a trivia region, i.e. to contain nothing but
// whitespace and comments; scanning stops at the first byte that is neither.
func ScanComments(source []byte, lo, hi int) []CommentRange {
	if hi > len(source) {
		hi = len(source)
	}

	var comments []CommentRange
	pos := lo
	for pos < hi {
		ch := source[pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			pos++
			continue
		}
		if ch != '/' || pos+1 >= hi {
			break
		}

		switch source[pos+1] {
		case '/':
			start := pos
			for pos < hi && source[pos] != '\n' {
				pos++
			}
			end := pos
			if end > start && source[end-1] == '\r' {
				end--
			}
			comments = append(comments, CommentRange{
				Span:               ast.Span{Start: start, End: end},
				Kind:               ast.LineComment,
				HasTrailingNewline: newlineFollows(source, end, hi),
			})

		case '*':
			start := pos
			pos += 2
			for pos < hi {
				if source[pos] == '*' && pos+1 < hi && source[pos+1] == '/' {
					pos += 2
					break
				}
				pos++
			}
			comments = append(comments, CommentRange{
				Span:               ast.Span{Start: start, End: pos},
				Kind:               ast.BlockComment,
				HasTrailingNewline: newlineFollows(source, pos, hi),
			})

		default:
			return comments
		}
	}

	return comments
}
