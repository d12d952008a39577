// Package printer renders a syntax tree back to source text.
//
// Printing is generative: output is produced from the tree's structure with
// normalized indentation and spacing, not by splicing original source
// spans. Blank lines between statements collapse. Comments survive in two
// forms: each node's original leading comments are re-scanned from the
// source it was parsed from (unless the node is marked Detached), and
// synthetic comments attached to the node are emitted after them.
package printer

import (
	"io"
	"strings"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
)

// DefaultIndent is the indentation unit applied per nesting level.
const DefaultIndent = "  "

// Printer renders files. The zero value is not usable; construct with New.
type Printer struct {
	indent string
}

// Option is a functional option for configuring a Printer.
type Option func(*Printer)

// WithIndent sets the indentation unit. The default is two spaces.
func WithIndent(indent string) Option {
	return func(p *Printer) {
		p.indent = indent
	}
}

// New creates a new Printer with the given options.
func New(opts ...Option) *Printer {
	p := &Printer{indent: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fprint renders the file to w.
func (p *Printer) Fprint(w io.Writer, file *ast.File) error {
	_, err := io.WriteString(w, p.Sprint(file))
	return err
}

// Sprint renders the file to a string.
func (p *Printer) Sprint(file *ast.File) string {
	s := &state{printer: p, source: file.Source}
	for _, stmt := range file.Stmts {
		s.stmt(stmt)
	}
	s.trailing(file)
	return s.buf.String()
}

// state carries the output buffer and indentation depth for one render.
type state struct {
	printer *Printer
	source  []byte
	buf     strings.Builder
	depth   int

	// pending holds a same-line block comment waiting to prefix the next
	// content line.
	pending string
}

func (s *state) line(text string) {
	for i := 0; i < s.depth; i++ {
		s.buf.WriteString(s.printer.indent)
	}
	if s.pending != "" {
		s.buf.WriteString(s.pending)
		s.pending = ""
	}
	s.buf.WriteString(text)
	s.buf.WriteByte('\n')
}

// leading emits the comments attached ahead of a node: first the original
// source comments from its trivia region, then any synthetic ones.
func (s *state) leading(n ast.Node) {
	info := n.Info()

	if !info.Detached && info.FullStart < info.Start {
		for _, c := range parser.ScanComments(s.source, info.FullStart, info.Start) {
			s.comment(c.Kind, c.Text(s.source), c.HasTrailingNewline)
		}
	}

	for _, c := range info.Leading {
		s.comment(c.Kind, c.Render(), c.TrailingNewline)
	}
}

// trailing emits the comments after the last statement, then flushes a
// comment still waiting for a content line that never came.
func (s *state) trailing(file *ast.File) {
	if !file.EOFDetached && file.EOFStart < len(s.source) {
		for _, c := range parser.ScanComments(s.source, file.EOFStart, len(s.source)) {
			s.comment(c.Kind, c.Text(s.source), c.HasTrailingNewline)
		}
	}

	for _, c := range file.Trailing {
		s.comment(c.Kind, c.Render(), c.TrailingNewline)
	}

	if s.pending != "" {
		s.buf.WriteString(strings.TrimRight(s.pending, " "))
		s.buf.WriteByte('\n')
		s.pending = ""
	}
}

// comment writes one comment. Block comments may span lines; continuation
// lines are written verbatim so their internal layout survives. A block
// comment not followed by a newline shares its line with the content after
// it, so its last line is held back as a prefix instead of being terminated.
func (s *state) comment(kind ast.CommentKind, rendered string, trailingNewline bool) {
	if kind == ast.BlockComment && strings.Contains(rendered, "\n") {
		lines := strings.Split(rendered, "\n")
		s.line(lines[0])
		last := len(lines) - 1
		for _, l := range lines[1:last] {
			s.buf.WriteString(l)
			s.buf.WriteByte('\n')
		}
		if !trailingNewline {
			s.pending += lines[last] + " "
			return
		}
		s.buf.WriteString(lines[last])
		s.buf.WriteByte('\n')
		return
	}
	if kind == ast.BlockComment && !trailingNewline {
		s.pending += rendered + " "
		return
	}
	s.line(rendered)
}

func (s *state) stmt(stmt ast.Stmt) {
	s.leading(stmt)

	switch n := stmt.(type) {
	case *ast.Import:
		if n.Name != "" {
			s.line("import " + n.Name + " from " + n.Path + ";")
		} else {
			s.line("import " + n.Path + ";")
		}
	case *ast.Class:
		s.class(n)
	case *ast.Function:
		kw := "function"
		if n.Export {
			kw = "export function"
		}
		s.blockHeader(kw+" "+n.Name+"("+strings.Join(n.Params, ", ")+")", n.Body)
	case *ast.Var:
		if n.Value != nil {
			s.line(n.Keyword + " " + n.Name + " = " + s.expr(n.Value, 0) + ";")
		} else {
			s.line(n.Keyword + " " + n.Name + ";")
		}
	case *ast.Return:
		if n.Value != nil {
			s.line("return " + s.expr(n.Value, 0) + ";")
		} else {
			s.line("return;")
		}
	case *ast.If:
		s.ifStmt(n)
	case *ast.ExprStmt:
		s.line(s.expr(n.X, 0) + ";")
	case *ast.Block:
		s.blockHeader("", n)
	}
}

func (s *state) class(n *ast.Class) {
	kw := "class"
	if n.Export {
		kw = "export class"
	}
	if len(n.Members) == 0 {
		s.line(kw + " " + n.Name + " {}")
		return
	}
	s.line(kw + " " + n.Name + " {")
	s.depth++
	for _, m := range n.Members {
		s.leading(m)
		s.blockHeader(m.Name+"("+strings.Join(m.Params, ", ")+")", m.Body)
	}
	s.depth--
	s.line("}")
}

// blockHeader writes "header {" then the block body then "}", collapsing an
// empty body to "header {}" on one line. An empty header prints a bare
// block.
func (s *state) blockHeader(header string, body *ast.Block) {
	open := "{"
	if header != "" {
		open = header + " {"
	}
	if len(body.Stmts) == 0 {
		s.line(open + "}")
		return
	}
	s.line(open)
	s.depth++
	for _, stmt := range body.Stmts {
		s.stmt(stmt)
	}
	s.depth--
	s.line("}")
}

func (s *state) ifStmt(n *ast.If) {
	cond := "if (" + s.expr(n.Cond, 0) + ")"
	if len(n.Then.Stmts) == 0 && n.Else == nil {
		s.line(cond + " {}")
		return
	}
	s.line(cond + " {")
	s.depth++
	for _, stmt := range n.Then.Stmts {
		s.stmt(stmt)
	}
	s.depth--
	if n.Else == nil {
		s.line("}")
		return
	}
	s.elseTail(n.Else)
}

func (s *state) elseTail(els ast.Stmt) {
	switch e := els.(type) {
	case *ast.If:
		// else-if chains share the closing brace line.
		s.line("} else if (" + s.expr(e.Cond, 0) + ") {")
		s.depth++
		for _, stmt := range e.Then.Stmts {
			s.stmt(stmt)
		}
		s.depth--
		if e.Else != nil {
			s.elseTail(e.Else)
			return
		}
		s.line("}")
	case *ast.Block:
		s.line("} else {")
		s.depth++
		for _, stmt := range e.Stmts {
			s.stmt(stmt)
		}
		s.depth--
		s.line("}")
	}
}

// Binding levels for binary operators, matching the parser's precedence
// table. Used to decide where parentheses must be reinserted: the parser
// discards redundant parens, so printing adds them back only where the tree
// shape demands.
var binaryPrec = map[string]int{
	"=":  0,
	"||": 1, "&&": 2,
	"==": 3, "!=": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6,
}

// expr renders an expression in a context with the given minimum binding
// level; output is parenthesized when the expression binds looser.
func (s *state) expr(e ast.Expr, min int) string {
	switch n := e.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.BasicLit:
		return n.Value
	case *ast.Selector:
		return s.expr(n.X, 7) + "." + n.Sel
	case *ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = s.expr(a, 0)
		}
		return s.expr(n.Fun, 7) + "(" + strings.Join(args, ", ") + ")"
	case *ast.Unary:
		return n.Op + s.expr(n.X, 7)
	case *ast.Binary:
		prec := binaryPrec[n.Op]
		// Operators associate left, so the right operand needs one level more.
		out := s.expr(n.X, prec) + " " + n.Op + " " + s.expr(n.Y, prec+1)
		if prec < min {
			return "(" + out + ")"
		}
		return out
	}
	return ""
}
