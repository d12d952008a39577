package parser

// TokenType represents the type of token scanned from the input.
type TokenType uint8

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Keywords
	IMPORT   // import
	FROM     // from
	EXPORT   // export
	CLASS    // class
	FUNCTION // function
	LET      // let
	CONST    // const
	VAR      // var
	RETURN   // return
	IF       // if
	ELSE     // else
	TRUE     // true
	FALSE    // false
	NULL     // null

	// Literals
	IDENT  // foo, console
	NUMBER // 123 or 123.45
	STRING // 'quoted' or "quoted"

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	SEMI   // ;
	COMMA  // ,
	DOT    // .
	ASSIGN // =
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	LT     // <
	GT     // >
	LEQ    // <=
	GEQ    // >=
	EQ     // ==
	NEQ    // !=
	ANDAND // &&
	OROR   // ||
	NOT    // !
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IMPORT:   "import",
	FROM:     "from",
	EXPORT:   "export",
	CLASS:    "class",
	FUNCTION: "function",
	LET:      "let",
	CONST:    "const",
	VAR:      "var",
	RETURN:   "return",
	IF:       "if",
	ELSE:     "else",
	TRUE:     "true",
	FALSE:    "false",
	NULL:     "null",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",
	SEMI:   ";",
	COMMA:  ",",
	DOT:    ".",
	ASSIGN: "=",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	LT:     "<",
	GT:     ">",
	LEQ:    "<=",
	GEQ:    ">=",
	EQ:     "==",
	NEQ:    "!=",
	ANDAND: "&&",
	OROR:   "||",
	NOT:    "!",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with zero-copy semantics.
// Instead of storing the token text as a string (which would allocate),
// we store byte offsets into the original source buffer.
//
// FullStart records where the token's leading trivia (whitespace and
// comments) begins; the half-open interval [FullStart, Start) is the trivia
// skipped before the token. Syntax nodes inherit their trivia regions from
// their first token.
type Token struct {
	Type      TokenType
	FullStart int // Byte offset where leading trivia begins
	Start     int // Byte offset into source buffer
	End       int // End offset (exclusive)
	Line      int // Line number (1-indexed)
	Column    int // Column number (1-indexed)
}

// String materializes the token text from the source buffer.
// This allocation only happens when the token text is actually needed,
// not during lexing (zero-copy).
func (t Token) String(source []byte) string {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return string(source[t.Start:t.End])
}

// Bytes returns a zero-copy view of the token text.
// No allocation occurs - this is a slice into the source buffer.
func (t Token) Bytes(source []byte) []byte {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return nil
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
