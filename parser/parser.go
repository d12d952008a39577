// Package parser implements a hand-written recursive descent parser for a
// small ECMAScript-like subset: imports, classes with methods, functions,
// let/const/var declarations, if/return statements, and expression statements.
//
// The parser is built on a zero-copy lexer; tokens carry byte offsets into
// the source buffer, and every token records where its leading trivia begins.
// Syntax nodes inherit the trivia region of their first token, which is what
// the blankline transform and the printer operate on.
package parser

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/telemetry"
)

// Parser holds the state for a single parse.
type Parser struct {
	source   []byte
	filename string
	tokens   []Token
	pos      int
	interner *Interner
}

// Parse parses src into a syntax tree. The filename is used for error
// reporting only.
func Parse(ctx context.Context, filename string, src []byte) (*ast.File, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start("parse " + displayName(filename))
	defer timer.End()

	lexer := NewLexer(src, filename)
	p := &Parser{
		source:   src,
		filename: filename,
		tokens:   lexer.ScanAll(),
		interner: NewInterner(256),
	}

	return p.parseFile()
}

// ParseBytes parses src into a syntax tree.
func ParseBytes(ctx context.Context, src []byte) (*ast.File, error) {
	return Parse(ctx, "", src)
}

// ParseString parses str into a syntax tree.
func ParseString(ctx context.Context, str string) (*ast.File, error) {
	return Parse(ctx, "", []byte(str))
}

// MustParseBytes parses src and panics on error. For tests.
func MustParseBytes(ctx context.Context, src []byte) *ast.File {
	file, err := ParseBytes(ctx, src)
	if err != nil {
		panic(err)
	}
	return file
}

func displayName(filename string) string {
	if filename == "" {
		return "<source>"
	}
	return filename
}

func (p *Parser) parseFile() (*ast.File, error) {
	file := &ast.File{Filename: p.filename, Source: p.source}

	for !p.check(EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		file.Stmts = append(file.Stmts, stmt)
	}

	// The file node carries the same leading trivia as its first statement.
	file.NodeInfo = ast.NodeInfo{FullStart: 0, Start: 0, End: len(p.source)}
	if len(file.Stmts) > 0 {
		file.Start = file.Stmts[0].Info().Start
	}

	// Comments and blank lines after the last statement are the EOF token's
	// leading trivia; the file records where that region begins so the
	// printer can emit it.
	file.EOFStart = p.peek().FullStart

	return file, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.peek()

	switch tok.Type {
	case IMPORT:
		return p.parseImport()
	case EXPORT:
		p.advance()
		switch p.peek().Type {
		case CLASS:
			return p.parseClass(tok, true)
		case FUNCTION:
			return p.parseFunction(tok, true)
		default:
			return nil, p.errorAtToken(p.peek(), "expected class or function after export")
		}
	case CLASS:
		return p.parseClass(tok, false)
	case FUNCTION:
		return p.parseFunction(tok, false)
	case LET, CONST, VAR:
		return p.parseVar()
	case RETURN:
		return p.parseReturn()
	case IF:
		return p.parseIf()
	default:
		return p.parseExprStmt()
	}
}

// parseImport parses `import 'mod';` or `import name from 'mod';`.
func (p *Parser) parseImport() (*ast.Import, error) {
	start := p.advance() // consume import

	imp := &ast.Import{}

	switch p.peek().Type {
	case STRING:
		pathTok := p.advance()
		imp.Path = pathTok.String(p.source)
	case IDENT:
		nameTok := p.advance()
		imp.Name = p.interner.InternBytes(nameTok.Bytes(p.source))
		if _, err := p.expect(FROM, "expected from after import binding"); err != nil {
			return nil, err
		}
		pathTok, err := p.expect(STRING, "expected module specifier")
		if err != nil {
			return nil, err
		}
		imp.Path = pathTok.String(p.source)
	default:
		return nil, p.errorAtToken(p.peek(), "expected module specifier or binding after import")
	}

	if _, err := p.expect(SEMI, "expected ; after import"); err != nil {
		return nil, err
	}

	imp.NodeInfo = p.infoFrom(start)
	return imp, nil
}

func (p *Parser) parseClass(start Token, export bool) (*ast.Class, error) {
	p.advance() // consume class

	nameTok, err := p.expect(IDENT, "expected class name")
	if err != nil {
		return nil, err
	}

	cls := &ast.Class{
		Export: export,
		Name:   p.interner.InternBytes(nameTok.Bytes(p.source)),
	}

	if _, err := p.expect(LBRACE, "expected { after class name"); err != nil {
		return nil, err
	}

	for !p.check(RBRACE) && !p.check(EOF) {
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		cls.Members = append(cls.Members, method)
	}

	if _, err := p.expect(RBRACE, "expected } to close class body"); err != nil {
		return nil, err
	}

	cls.NodeInfo = p.infoFrom(start)
	return cls, nil
}

func (p *Parser) parseMethod() (*ast.Method, error) {
	nameTok, err := p.expect(IDENT, "expected method name")
	if err != nil {
		return nil, err
	}

	method := &ast.Method{
		Name: p.interner.InternBytes(nameTok.Bytes(p.source)),
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	method.Params = params

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	method.Body = body

	method.NodeInfo = p.infoFrom(nameTok)
	return method, nil
}

func (p *Parser) parseFunction(start Token, export bool) (*ast.Function, error) {
	p.advance() // consume function

	nameTok, err := p.expect(IDENT, "expected function name")
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{
		Export: export,
		Name:   p.interner.InternBytes(nameTok.Bytes(p.source)),
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body

	fn.NodeInfo = p.infoFrom(start)
	return fn, nil
}

// parseParams parses a parenthesized, comma-separated parameter list.
func (p *Parser) parseParams() ([]string, error) {
	if _, err := p.expect(LPAREN, "expected ( to open parameter list"); err != nil {
		return nil, err
	}

	var params []string
	for !p.check(RPAREN) {
		tok, err := p.expect(IDENT, "expected parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, p.interner.InternBytes(tok.Bytes(p.source)))

		if !p.check(RPAREN) {
			if _, err := p.expect(COMMA, "expected , between parameters"); err != nil {
				return nil, err
			}
		}
	}
	p.advance() // consume )

	return params, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(LBRACE, "expected { to open block")
	if err != nil {
		return nil, err
	}

	block := &ast.Block{}
	for !p.check(RBRACE) && !p.check(EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	if _, err := p.expect(RBRACE, "expected } to close block"); err != nil {
		return nil, err
	}

	block.NodeInfo = p.infoFrom(start)
	return block, nil
}

func (p *Parser) parseVar() (*ast.Var, error) {
	start := p.advance() // consume let/const/var

	nameTok, err := p.expect(IDENT, "expected variable name")
	if err != nil {
		return nil, err
	}

	v := &ast.Var{
		Keyword: start.String(p.source),
		Name:    p.interner.InternBytes(nameTok.Bytes(p.source)),
	}

	if p.check(ASSIGN) {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		v.Value = value
	}

	if _, err := p.expect(SEMI, "expected ; after variable declaration"); err != nil {
		return nil, err
	}

	v.NodeInfo = p.infoFrom(start)
	return v, nil
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	start := p.advance() // consume return

	ret := &ast.Return{}
	if !p.check(SEMI) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}

	if _, err := p.expect(SEMI, "expected ; after return"); err != nil {
		return nil, err
	}

	ret.NodeInfo = p.infoFrom(start)
	return ret, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	start := p.advance() // consume if

	if _, err := p.expect(LPAREN, "expected ( after if"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "expected ) after condition"); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{Cond: cond, Then: then}

	if p.check(ELSE) {
		p.advance()
		if p.check(IF) {
			els, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmt.Else = els
		} else {
			els, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = els
		}
	}

	stmt.NodeInfo = p.infoFrom(start)
	return stmt, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	start := p.peek()

	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Assignment is statement-level: target = value.
	if p.check(ASSIGN) {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		assign := &ast.Binary{Op: "=", X: x, Y: value}
		assign.NodeInfo = p.infoFrom(start)
		x = assign
	}

	if _, err := p.expect(SEMI, "expected ; after expression"); err != nil {
		return nil, err
	}

	stmt := &ast.ExprStmt{X: x}
	stmt.NodeInfo = p.infoFrom(start)
	return stmt, nil
}

// Expression parsing uses precedence climbing. Operators from weakest to
// strongest: || ; && ; == != ; < > <= >= ; + - ; * /.
var binaryPrec = map[TokenType]int{
	OROR:   1,
	ANDAND: 2,
	EQ:     3,
	NEQ:    3,
	LT:     4,
	GT:     4,
	LEQ:    4,
	GEQ:    4,
	PLUS:   5,
	MINUS:  5,
	STAR:   6,
	SLASH:  6,
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	start := p.peek()

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := binaryPrec[p.peek().Type]
		if !ok || prec < minPrec {
			return left, nil
		}

		opTok := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}

		bin := &ast.Binary{Op: opTok.String(p.source), X: left, Y: right}
		bin.NodeInfo = p.infoFrom(start)
		left = bin
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.check(NOT) || p.check(MINUS) {
		opTok := p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		u := &ast.Unary{Op: opTok.String(p.source), X: x}
		u.NodeInfo = p.infoFrom(opTok)
		return u, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of member
// accesses and calls.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	start := p.peek()

	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Type {
		case DOT:
			p.advance()
			selTok, err := p.expect(IDENT, "expected member name after .")
			if err != nil {
				return nil, err
			}
			sel := &ast.Selector{X: x, Sel: p.interner.InternBytes(selTok.Bytes(p.source))}
			sel.NodeInfo = p.infoFrom(start)
			x = sel

		case LPAREN:
			p.advance()
			var args []ast.Expr
			for !p.check(RPAREN) {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.check(RPAREN) {
					if _, err := p.expect(COMMA, "expected , between arguments"); err != nil {
						return nil, err
					}
				}
			}
			p.advance() // consume )
			call := &ast.Call{Fun: x, Args: args}
			call.NodeInfo = p.infoFrom(start)
			x = call

		default:
			return x, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case IDENT:
		p.advance()
		id := &ast.Ident{Name: p.interner.InternBytes(tok.Bytes(p.source))}
		id.NodeInfo = p.infoFrom(tok)
		return id, nil

	case NUMBER:
		p.advance()
		lit := &ast.BasicLit{Kind: ast.NumberLit, Value: tok.String(p.source)}
		lit.NodeInfo = p.infoFrom(tok)
		return lit, nil

	case STRING:
		p.advance()
		lit := &ast.BasicLit{Kind: ast.StringLit, Value: tok.String(p.source)}
		lit.NodeInfo = p.infoFrom(tok)
		return lit, nil

	case TRUE, FALSE:
		p.advance()
		lit := &ast.BasicLit{Kind: ast.BoolLit, Value: tok.String(p.source)}
		lit.NodeInfo = p.infoFrom(tok)
		return lit, nil

	case NULL:
		p.advance()
		lit := &ast.BasicLit{Kind: ast.NullLit, Value: "null"}
		lit.NodeInfo = p.infoFrom(tok)
		return lit, nil

	case LPAREN:
		p.advance()
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "expected ) to close expression"); err != nil {
			return nil, err
		}
		return x, nil

	default:
		return nil, p.errorAtToken(tok, "unexpected %s", tok.Type)
	}
}

// Helper methods

// infoFrom builds the node state for a node starting at the given token and
// ending at the most recently consumed one.
func (p *Parser) infoFrom(start Token) ast.NodeInfo {
	return ast.NodeInfo{
		FullStart: start.FullStart,
		Start:     start.Start,
		End:       p.previous().End,
	}
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) check(tt TokenType) bool {
	return p.tokens[p.pos].Type == tt
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

// expect consumes and returns the next token if it has the given type, and
// reports a parse error otherwise.
func (p *Parser) expect(tt TokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, p.errorAtToken(tok, "%s, got %s", message, tok.Type)
}

func (p *Parser) errorAtToken(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Pos: ast.Position{
			Filename: p.filename,
			Offset:   tok.Start,
			Line:     tok.Line,
			Column:   tok.Column,
		},
		Message: fmt.Sprintf(format, args...),
	}
}
