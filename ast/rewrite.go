package ast

// Rewriter visits a node and returns its replacement. Returning the node
// unchanged keeps it; returning a clone (or a different node of a compatible
// kind) substitutes it in the rebuilt tree.
type Rewriter func(Node) Node

// Rewrite applies fn to n and every descendant in pre-order: the parent is
// visited first, then its children are rewritten and the parent is rebuilt.
// Subtrees whose children were all kept are shared with the input tree; any
// node with a replaced child is cloned before the child is swapped in, so the
// input tree is never mutated.
func Rewrite(n Node, fn Rewriter) Node {
	if n == nil {
		return nil
	}
	return rewriteChildren(fn(n), fn)
}

// rewriteStmt rewrites a statement child, preserving a nil interface.
func rewriteStmt(s Stmt, fn Rewriter) Stmt {
	if s == nil {
		return nil
	}
	return Rewrite(s, fn).(Stmt)
}

// rewriteExpr rewrites an expression child, preserving a nil interface.
func rewriteExpr(e Expr, fn Rewriter) Expr {
	if e == nil {
		return nil
	}
	return Rewrite(e, fn).(Expr)
}

// rewriteStmts rewrites a statement list. The returned slice is nil when no
// element changed; otherwise it is a fresh slice with the replacements.
func rewriteStmts(list []Stmt, fn Rewriter) []Stmt {
	var out []Stmt
	for i, s := range list {
		rs := rewriteStmt(s, fn)
		if out == nil && rs != s {
			out = make([]Stmt, i, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out = append(out, rs)
		}
	}
	return out
}

// rewriteExprs rewrites an expression list. Same contract as rewriteStmts.
func rewriteExprs(list []Expr, fn Rewriter) []Expr {
	var out []Expr
	for i, e := range list {
		re := rewriteExpr(e, fn)
		if out == nil && re != e {
			out = make([]Expr, i, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out = append(out, re)
		}
	}
	return out
}

// rewriteBlock rewrites a block child. Returns the original pointer when
// nothing inside changed.
func rewriteBlock(b *Block, fn Rewriter) *Block {
	if b == nil {
		return nil
	}
	return Rewrite(b, fn).(*Block)
}

func rewriteChildren(n Node, fn Rewriter) Node {
	switch v := n.(type) {
	case *File:
		if out := rewriteStmts(v.Stmts, fn); out != nil {
			cp := v.Clone().(*File)
			cp.Stmts = out
			return cp
		}
		return v

	case *Import:
		return v

	case *Class:
		var out []*Method
		for i, m := range v.Members {
			rm := Rewrite(m, fn).(*Method)
			if out == nil && rm != m {
				out = make([]*Method, i, len(v.Members))
				copy(out, v.Members[:i])
			}
			if out != nil {
				out = append(out, rm)
			}
		}
		if out != nil {
			cp := v.Clone().(*Class)
			cp.Members = out
			return cp
		}
		return v

	case *Method:
		if body := rewriteBlock(v.Body, fn); body != v.Body {
			cp := v.Clone().(*Method)
			cp.Body = body
			return cp
		}
		return v

	case *Function:
		if body := rewriteBlock(v.Body, fn); body != v.Body {
			cp := v.Clone().(*Function)
			cp.Body = body
			return cp
		}
		return v

	case *Var:
		if value := rewriteExpr(v.Value, fn); value != v.Value {
			cp := v.Clone().(*Var)
			cp.Value = value
			return cp
		}
		return v

	case *Return:
		if value := rewriteExpr(v.Value, fn); value != v.Value {
			cp := v.Clone().(*Return)
			cp.Value = value
			return cp
		}
		return v

	case *If:
		cond := rewriteExpr(v.Cond, fn)
		then := rewriteBlock(v.Then, fn)
		els := rewriteStmt(v.Else, fn)
		if cond != v.Cond || then != v.Then || els != v.Else {
			cp := v.Clone().(*If)
			cp.Cond, cp.Then, cp.Else = cond, then, els
			return cp
		}
		return v

	case *ExprStmt:
		if x := rewriteExpr(v.X, fn); x != v.X {
			cp := v.Clone().(*ExprStmt)
			cp.X = x
			return cp
		}
		return v

	case *Block:
		if out := rewriteStmts(v.Stmts, fn); out != nil {
			cp := v.Clone().(*Block)
			cp.Stmts = out
			return cp
		}
		return v

	case *Call:
		fun := rewriteExpr(v.Fun, fn)
		args := rewriteExprs(v.Args, fn)
		if fun != v.Fun || args != nil {
			cp := v.Clone().(*Call)
			cp.Fun = fun
			if args != nil {
				cp.Args = args
			}
			return cp
		}
		return v

	case *Selector:
		if x := rewriteExpr(v.X, fn); x != v.X {
			cp := v.Clone().(*Selector)
			cp.X = x
			return cp
		}
		return v

	case *Binary:
		x := rewriteExpr(v.X, fn)
		y := rewriteExpr(v.Y, fn)
		if x != v.X || y != v.Y {
			cp := v.Clone().(*Binary)
			cp.X, cp.Y = x, y
			return cp
		}
		return v

	case *Unary:
		if x := rewriteExpr(v.X, fn); x != v.X {
			cp := v.Clone().(*Unary)
			cp.X = x
			return cp
		}
		return v

	default:
		// Ident, BasicLit and any leaf node.
		return n
	}
}

// Walk calls fn for n and every descendant in pre-order. If fn returns false
// for a node, its children are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *File:
		for _, s := range v.Stmts {
			Walk(s, fn)
		}
	case *Class:
		for _, m := range v.Members {
			Walk(m, fn)
		}
	case *Method:
		Walk(v.Body, fn)
	case *Function:
		Walk(v.Body, fn)
	case *Var:
		if v.Value != nil {
			Walk(v.Value, fn)
		}
	case *Return:
		if v.Value != nil {
			Walk(v.Value, fn)
		}
	case *If:
		Walk(v.Cond, fn)
		Walk(v.Then, fn)
		if v.Else != nil {
			Walk(v.Else, fn)
		}
	case *ExprStmt:
		Walk(v.X, fn)
	case *Block:
		for _, s := range v.Stmts {
			Walk(s, fn)
		}
	case *Call:
		Walk(v.Fun, fn)
		for _, a := range v.Args {
			Walk(a, fn)
		}
	case *Selector:
		Walk(v.X, fn)
	case *Binary:
		Walk(v.X, fn)
		Walk(v.Y, fn)
	case *Unary:
		Walk(v.X, fn)
	}
}
