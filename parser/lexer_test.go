package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func scanTypes(source string) []TokenType {
	tokens := NewLexer([]byte(source), "").ScanAll()
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	types := scanTypes("import from export class function let const var return if else true false null name")

	assert.Equal(t, []TokenType{
		IMPORT, FROM, EXPORT, CLASS, FUNCTION, LET, CONST, VAR, RETURN,
		IF, ELSE, TRUE, FALSE, NULL, IDENT, EOF,
	}, types)
}

func TestLexerOperators(t *testing.T) {
	types := scanTypes("== != <= >= && || = < > + - * / ! . , ; ( ) { }")

	assert.Equal(t, []TokenType{
		EQ, NEQ, LEQ, GEQ, ANDAND, OROR, ASSIGN, LT, GT, PLUS, MINUS,
		STAR, SLASH, NOT, DOT, COMMA, SEMI, LPAREN, RPAREN, LBRACE, RBRACE, EOF,
	}, types)
}

func TestLexerZeroCopyTokens(t *testing.T) {
	source := []byte("let count = 42;")
	tokens := NewLexer(source, "").ScanAll()

	assert.Equal(t, "let", tokens[0].String(source))
	assert.Equal(t, "count", tokens[1].String(source))
	assert.Equal(t, "42", tokens[3].String(source))
}

func TestLexerFullStartCoversTrivia(t *testing.T) {
	source := []byte("let a = 1;\n\n// gap\nlet b = 2;")
	tokens := NewLexer(source, "").ScanAll()

	// Token 5 is the second `let`. Its trivia region begins right after the
	// first statement's semicolon.
	second := tokens[5]
	assert.Equal(t, LET, second.Type)
	assert.Equal(t, 10, second.FullStart)
	assert.Equal(t, 19, second.Start)
}

func TestLexerStrings(t *testing.T) {
	source := []byte(`'single' "double" 'with \' escape'`)
	tokens := NewLexer(source, "").ScanAll()

	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, `'single'`, tokens[0].String(source))
	assert.Equal(t, `"double"`, tokens[1].String(source))
	assert.Equal(t, `'with \' escape'`, tokens[2].String(source))
}

func TestLexerNumbers(t *testing.T) {
	source := []byte("1 42 3.14 0.5")
	tokens := NewLexer(source, "").ScanAll()

	for i := 0; i < 4; i++ {
		assert.Equal(t, NUMBER, tokens[i].Type)
	}
	assert.Equal(t, "3.14", tokens[2].String(source))
}

func TestLexerLineAndColumn(t *testing.T) {
	source := []byte("let a = 1;\n  let b = 2;")
	tokens := NewLexer(source, "").ScanAll()

	first := tokens[0]
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)

	second := tokens[5]
	assert.Equal(t, LET, second.Type)
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 3, second.Column)
}

func TestLexerCommentsAreTrivia(t *testing.T) {
	types := scanTypes("// line\nlet /* inline */ a = 1;")

	assert.Equal(t, []TokenType{LET, IDENT, ASSIGN, NUMBER, SEMI, EOF}, types)
}

func TestLexerCRLFCountsLines(t *testing.T) {
	source := []byte("let a = 1;\r\nlet b = 2;\r\n")
	tokens := NewLexer(source, "").ScanAll()

	second := tokens[5]
	assert.Equal(t, LET, second.Type)
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 1, second.Column)
}

func TestLexerIllegalByte(t *testing.T) {
	tokens := NewLexer([]byte("let a = @;"), "").ScanAll()

	var sawIllegal bool
	for _, tok := range tokens {
		if tok.Type == ILLEGAL {
			sawIllegal = true
		}
	}
	assert.True(t, sawIllegal)
}
