package parser

// Lexer implements a zero-copy lexer for script files.
//
// The zero-copy approach:
// - Tokens store byte offsets, not string values
// - Comments and whitespace are trivia: skipped, but accounted to the next
//   token through its FullStart offset
// - Pre-allocated token buffer

import (
	"bytes"
)

// Lexer tokenizes script source code.
type Lexer struct {
	source   []byte  // Source buffer
	filename string  // Filename for error reporting
	pos      int     // Current byte position
	line     int     // Current line (1-indexed)
	column   int     // Current column (1-indexed)
	tokens   []Token // Token buffer (pre-allocated)
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source []byte, filename string) *Lexer {
	// Estimate token count: empirically ~1 token per 6 bytes
	estimatedTokens := len(source)/6 + 64

	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0, estimatedTokens),
	}
}

// ScanAll lexes the entire source file and returns all tokens.
// This is a single-pass scanner with no backtracking.
func (l *Lexer) ScanAll() []Token {
	for {
		fullStart := l.pos
		l.skipTrivia()

		if l.pos >= len(l.source) {
			l.tokens = append(l.tokens, Token{
				Type:      EOF,
				FullStart: fullStart,
				Start:     l.pos,
				End:       l.pos,
				Line:      l.line,
				Column:    l.column,
			})
			return l.tokens
		}

		tok := l.scanToken()
		tok.FullStart = fullStart
		l.tokens = append(l.tokens, tok)
	}
}

// scanToken scans the next token from the current position.
func (l *Lexer) scanToken() Token {
	start := l.pos
	startLine := l.line
	startCol := l.column

	ch := l.advance()

	switch {
	case ch >= '0' && ch <= '9':
		return l.scanNumber(start, startLine, startCol)

	case ch == '\'' || ch == '"':
		return l.scanString(ch, start, startLine, startCol)

	case isIdentStart(ch):
		return l.scanIdentOrKeyword(start, startLine, startCol)

	case ch == '(':
		return Token{LPAREN, 0, start, l.pos, startLine, startCol}
	case ch == ')':
		return Token{RPAREN, 0, start, l.pos, startLine, startCol}
	case ch == '{':
		return Token{LBRACE, 0, start, l.pos, startLine, startCol}
	case ch == '}':
		return Token{RBRACE, 0, start, l.pos, startLine, startCol}
	case ch == ';':
		return Token{SEMI, 0, start, l.pos, startLine, startCol}
	case ch == ',':
		return Token{COMMA, 0, start, l.pos, startLine, startCol}
	case ch == '.':
		return Token{DOT, 0, start, l.pos, startLine, startCol}
	case ch == '+':
		return Token{PLUS, 0, start, l.pos, startLine, startCol}
	case ch == '-':
		return Token{MINUS, 0, start, l.pos, startLine, startCol}
	case ch == '*':
		return Token{STAR, 0, start, l.pos, startLine, startCol}
	case ch == '/':
		// Comments were consumed as trivia, so this is always division.
		return Token{SLASH, 0, start, l.pos, startLine, startCol}

	case ch == '=':
		if l.peek() == '=' {
			l.advance()
			return Token{EQ, 0, start, l.pos, startLine, startCol}
		}
		return Token{ASSIGN, 0, start, l.pos, startLine, startCol}
	case ch == '!':
		if l.peek() == '=' {
			l.advance()
			return Token{NEQ, 0, start, l.pos, startLine, startCol}
		}
		return Token{NOT, 0, start, l.pos, startLine, startCol}
	case ch == '<':
		if l.peek() == '=' {
			l.advance()
			return Token{LEQ, 0, start, l.pos, startLine, startCol}
		}
		return Token{LT, 0, start, l.pos, startLine, startCol}
	case ch == '>':
		if l.peek() == '=' {
			l.advance()
			return Token{GEQ, 0, start, l.pos, startLine, startCol}
		}
		return Token{GT, 0, start, l.pos, startLine, startCol}
	case ch == '&':
		if l.peek() == '&' {
			l.advance()
			return Token{ANDAND, 0, start, l.pos, startLine, startCol}
		}
		return Token{ILLEGAL, 0, start, l.pos, startLine, startCol}
	case ch == '|':
		if l.peek() == '|' {
			l.advance()
			return Token{OROR, 0, start, l.pos, startLine, startCol}
		}
		return Token{ILLEGAL, 0, start, l.pos, startLine, startCol}

	default:
		return Token{ILLEGAL, 0, start, l.pos, startLine, startCol}
	}
}

// scanNumber scans a number: [0-9]+(\.[0-9]+)?
func (l *Lexer) scanNumber(start, line, col int) Token {
	for l.pos < len(l.source) && l.source[l.pos] >= '0' && l.source[l.pos] <= '9' {
		l.advance()
	}

	// Optional decimal part
	if l.pos+1 < len(l.source) && l.source[l.pos] == '.' &&
		l.source[l.pos+1] >= '0' && l.source[l.pos+1] <= '9' {
		l.advance() // consume '.'
		for l.pos < len(l.source) && l.source[l.pos] >= '0' && l.source[l.pos] <= '9' {
			l.advance()
		}
	}

	return Token{NUMBER, 0, start, l.pos, line, col}
}

// scanString scans a quoted string, either '...' or "...".
func (l *Lexer) scanString(quote byte, start, line, col int) Token {
	// Opening quote already consumed

	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == quote {
			l.advance() // consume closing quote
			break
		}
		if ch == '\n' {
			// Strings don't span lines
			break
		}
		if ch == '\\' && l.pos+1 < len(l.source) {
			l.advance() // skip backslash
			l.advance() // skip escaped char
		} else {
			l.advance()
		}
	}

	return Token{STRING, 0, start, l.pos, line, col}
}

// scanIdentOrKeyword scans an identifier or keyword.
func (l *Lexer) scanIdentOrKeyword(start, line, col int) Token {
	for l.pos < len(l.source) && isIdentPart(l.source[l.pos]) {
		l.advance()
	}

	word := l.source[start:l.pos]
	return Token{keywordType(word), 0, start, l.pos, line, col}
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// keywordType returns the token type for a keyword, or IDENT if not a keyword.
func keywordType(word []byte) TokenType {
	// Use byte comparison to avoid allocating strings
	switch {
	case bytes.Equal(word, []byte("import")):
		return IMPORT
	case bytes.Equal(word, []byte("from")):
		return FROM
	case bytes.Equal(word, []byte("export")):
		return EXPORT
	case bytes.Equal(word, []byte("class")):
		return CLASS
	case bytes.Equal(word, []byte("function")):
		return FUNCTION
	case bytes.Equal(word, []byte("let")):
		return LET
	case bytes.Equal(word, []byte("const")):
		return CONST
	case bytes.Equal(word, []byte("var")):
		return VAR
	case bytes.Equal(word, []byte("return")):
		return RETURN
	case bytes.Equal(word, []byte("if")):
		return IF
	case bytes.Equal(word, []byte("else")):
		return ELSE
	case bytes.Equal(word, []byte("true")):
		return TRUE
	case bytes.Equal(word, []byte("false")):
		return FALSE
	case bytes.Equal(word, []byte("null")):
		return NULL
	default:
		return IDENT
	}
}

// skipTrivia skips whitespace and comments, updating line/column tracking.
// Everything between the previous token's end and the position where this
// returns is the next token's leading trivia.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.pos++
			l.column++
		case ch == '\n':
			l.pos++
			l.line++
			l.column = 1
		case ch == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '/':
			l.skipLineComment()
		case ch == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipLineComment skips a // comment up to but not including the newline.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.source) && l.source[l.pos] != '\n' {
		l.pos++
		l.column++
	}
}

// skipBlockComment skips a /* ... */ comment. An unterminated comment runs
// to end of input.
func (l *Lexer) skipBlockComment() {
	l.pos += 2 // consume "/*"
	l.column += 2
	for l.pos < len(l.source) {
		if l.source[l.pos] == '*' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '/' {
			l.pos += 2
			l.column += 2
			return
		}
		if l.source[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}
