// Builder functions for constructing syntax tree nodes programmatically,
// such as in code generators and tests. Nodes built this way carry zero
// offsets; set NodeInfo explicitly when trivia regions matter.
package ast

// NewIdent creates an identifier expression.
//
// Example:
//
//	x := ast.NewIdent("console")
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// NewNumber creates a numeric literal from its source text.
func NewNumber(value string) *BasicLit {
	return &BasicLit{Kind: NumberLit, Value: value}
}

// NewString creates a string literal. The value must include its quotes,
// exactly as it should appear in output.
func NewString(value string) *BasicLit {
	return &BasicLit{Kind: StringLit, Value: value}
}

// NewCall creates a call expression.
//
// Example:
//
//	call := ast.NewCall(ast.NewSelector(ast.NewIdent("console"), "log"), ast.NewString(`'hi'`))
func NewCall(fun Expr, args ...Expr) *Call {
	return &Call{Fun: fun, Args: args}
}

// NewSelector creates a member access expression.
func NewSelector(x Expr, sel string) *Selector {
	return &Selector{X: x, Sel: sel}
}

// NewBinary creates a binary expression.
func NewBinary(op string, x, y Expr) *Binary {
	return &Binary{Op: op, X: x, Y: y}
}

// NewImport creates an import declaration. The path must include its quotes.
// Pass an empty name for a bare import.
func NewImport(name, path string) *Import {
	return &Import{Name: name, Path: path}
}

// NewVar creates a variable declaration. Value may be nil.
func NewVar(keyword, name string, value Expr) *Var {
	return &Var{Keyword: keyword, Name: name, Value: value}
}

// NewReturn creates a return statement. Value may be nil.
func NewReturn(value Expr) *Return {
	return &Return{Value: value}
}

// NewExprStmt wraps an expression as a statement.
func NewExprStmt(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}

// NewBlock creates a braced statement list.
func NewBlock(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

// NewMethod creates a class method.
func NewMethod(name string, params []string, body *Block) *Method {
	if body == nil {
		body = NewBlock()
	}
	return &Method{Name: name, Params: params, Body: body}
}

// NewClass creates a class declaration.
func NewClass(name string, members ...*Method) *Class {
	return &Class{Name: name, Members: members}
}

// NewFunction creates a function declaration.
func NewFunction(name string, params []string, body *Block) *Function {
	if body == nil {
		body = NewBlock()
	}
	return &Function{Name: name, Params: params, Body: body}
}

// NewFile creates a file node from statements, without source offsets.
func NewFile(filename string, stmts ...Stmt) *File {
	return &File{Filename: filename, Stmts: stmts}
}
