// Package ast declares the types used to represent syntax trees for script files.
//
// The tree covers a small ECMAScript-like subset: imports, classes with methods,
// functions, variable declarations, if/return statements, and expression
// statements. A tree can be created by parsing a source file with the parser
// package, or constructed programmatically with the builder functions.
//
// Every node carries three byte offsets into the source buffer: FullStart (where
// the node's leading trivia begins), Start (where its own content begins), and
// End. The half-open interval [FullStart, Start) is the node's leading trivia
// region; comments and blank lines live there. Transforms may attach synthetic
// leading comments to a node, which the printer renders before the node's
// content as if they were original.
package ast

import (
	"golang.org/x/exp/slices"
)

// CommentKind distinguishes the two comment syntaxes.
type CommentKind int

const (
	// LineComment is a // comment running to the end of the line.
	LineComment CommentKind = iota
	// BlockComment is a /* ... */ comment.
	BlockComment
)

// Comment is a synthetic leading comment attached to a node by a transform.
// Text holds the inner text only; the delimiters are re-added when the comment
// is rendered.
type Comment struct {
	Kind CommentKind
	Text string
	// TrailingNewline reports whether a newline follows the comment in the
	// output. Line comments always terminate their line; a block comment
	// without a trailing newline continues on the content line.
	TrailingNewline bool
}

// Render returns the comment text with its delimiters re-added.
func (c *Comment) Render() string {
	if c.Kind == BlockComment {
		return "/*" + c.Text + "*/"
	}
	return "//" + c.Text
}

// NodeInfo holds the source offsets and trivia state shared by all nodes.
// It is embedded in every node type.
type NodeInfo struct {
	// FullStart is the byte offset where the node's leading trivia begins.
	FullStart int
	// Start is the byte offset where the node's own content begins.
	// Invariant: Start >= FullStart.
	Start int
	// End is the byte offset just past the node's content.
	End int

	// Leading holds synthetic comments rendered before the node's content.
	Leading []*Comment

	// Detached reports that the node's association with its raw leading
	// trivia has been severed: the printer must not re-emit the original
	// [FullStart, Start) text for this node.
	Detached bool
}

// Info returns the node's shared source/trivia state.
func (i *NodeInfo) Info() *NodeInfo { return i }

// clone returns a copy with its own Leading slice, so mutating the copy
// never aliases the original.
func (i NodeInfo) clone() NodeInfo {
	cp := i
	cp.Leading = slices.Clone(i.Leading)
	return cp
}

// Node is implemented by every syntax tree node.
type Node interface {
	// Info returns the node's offsets and trivia state.
	Info() *NodeInfo
	// Clone returns a shallow copy of the node. Child nodes are shared;
	// the trivia state is copied so the clone can be modified freely.
	Clone() Node
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// File is the root node of a parsed source file. Its leading trivia region is
// defined to coincide with that of its first statement; the file node itself
// carries no leading trivia of its own. The trivia after the last statement
// has no following node to hang off, so the file records it directly.
type File struct {
	NodeInfo

	Filename string
	Source   []byte
	Stmts    []Stmt

	// EOFStart is the byte offset where the trivia after the last statement
	// begins; the region runs to the end of Source.
	EOFStart int
	// Trailing holds synthetic comments rendered after the last statement.
	Trailing []*Comment
	// EOFDetached severs the file from its raw trailing trivia, the way
	// NodeInfo.Detached does for a node's leading trivia.
	EOFDetached bool
}

func (f *File) Clone() Node {
	cp := *f
	cp.NodeInfo = f.NodeInfo.clone()
	cp.Trailing = slices.Clone(f.Trailing)
	return &cp
}

// Import is an import declaration: `import 'mod';` or `import name from 'mod';`.
type Import struct {
	NodeInfo

	// Name is the default binding, empty for a bare import.
	Name string
	// Path is the module specifier literal exactly as written, quotes included.
	Path string
}

func (n *Import) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Import) stmtNode() {}

// Class is a class declaration with its methods.
type Class struct {
	NodeInfo

	Export  bool
	Name    string
	Members []*Method
}

func (n *Class) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Class) stmtNode() {}

// Method is a method inside a class body.
type Method struct {
	NodeInfo

	Name   string
	Params []string
	Body   *Block
}

func (n *Method) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Method) stmtNode() {}

// Function is a function declaration.
type Function struct {
	NodeInfo

	Export bool
	Name   string
	Params []string
	Body   *Block
}

func (n *Function) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Function) stmtNode() {}

// Var is a variable declaration: `let x = e;`, `const x = e;` or `var x;`.
type Var struct {
	NodeInfo

	// Keyword is "let", "const" or "var".
	Keyword string
	Name    string
	// Value is nil for a declaration without an initializer.
	Value Expr
}

func (n *Var) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Var) stmtNode() {}

// Return is a return statement with an optional result expression.
type Return struct {
	NodeInfo

	Value Expr
}

func (n *Return) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Return) stmtNode() {}

// If is an if statement. Else is nil, a *Block, or another *If (else-if chain).
type If struct {
	NodeInfo

	Cond Expr
	Then *Block
	Else Stmt
}

func (n *If) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*If) stmtNode() {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	NodeInfo

	X Expr
}

func (n *ExprStmt) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*ExprStmt) stmtNode() {}

// Block is a braced statement list, used as a function or method body and for
// if branches.
type Block struct {
	NodeInfo

	Stmts []Stmt
}

func (n *Block) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Block) stmtNode() {}

// Ident is an identifier expression.
type Ident struct {
	NodeInfo

	Name string
}

func (n *Ident) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Ident) exprNode() {}

// LitKind identifies the kind of a basic literal.
type LitKind int

const (
	NumberLit LitKind = iota
	StringLit
	BoolLit
	NullLit
)

// BasicLit is a literal expression. Value holds the literal exactly as
// written, quotes included for strings.
type BasicLit struct {
	NodeInfo

	Kind  LitKind
	Value string
}

func (n *BasicLit) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*BasicLit) exprNode() {}

// Call is a function or method call.
type Call struct {
	NodeInfo

	Fun  Expr
	Args []Expr
}

func (n *Call) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Call) exprNode() {}

// Selector is a member access: X.Sel.
type Selector struct {
	NodeInfo

	X   Expr
	Sel string
}

func (n *Selector) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Selector) exprNode() {}

// Binary is a binary expression. Op includes "=" for assignments.
type Binary struct {
	NodeInfo

	Op string
	X  Expr
	Y  Expr
}

func (n *Binary) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Binary) exprNode() {}

// Unary is a prefix expression: !X or -X.
type Unary struct {
	NodeInfo

	Op string
	X  Expr
}

func (n *Unary) Clone() Node {
	cp := *n
	cp.NodeInfo = n.NodeInfo.clone()
	return &cp
}
func (*Unary) exprNode() {}
