package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRewriteKeepsUntouchedSubtrees(t *testing.T) {
	body := NewBlock(NewReturn(NewNumber("1")))
	file := NewFile("test.js",
		NewImport("", "'foo'"),
		NewFunction("one", nil, body),
	)

	got := Rewrite(file, func(n Node) Node { return n })

	// Identity rewrite returns the exact same tree.
	assert.Equal(t, file, got.(*File))
	if got != Node(file) {
		t.Fatal("identity rewrite should not clone the root")
	}
}

func TestRewriteClonesPathToReplacedChild(t *testing.T) {
	lit := NewNumber("1")
	ret := NewReturn(lit)
	body := NewBlock(ret)
	fn := NewFunction("one", nil, body)
	file := NewFile("test.js", NewImport("", "'foo'"), fn)

	got := Rewrite(file, func(n Node) Node {
		if l, ok := n.(*BasicLit); ok {
			cp := l.Clone().(*BasicLit)
			cp.Value = "2"
			return cp
		}
		return n
	}).(*File)

	if got == file {
		t.Fatal("root should be cloned when a descendant changes")
	}

	// The path down to the literal is rebuilt...
	newFn := got.Stmts[1].(*Function)
	assert.Equal(t, "2", newFn.Body.Stmts[0].(*Return).Value.(*BasicLit).Value)

	// ...while the untouched sibling is shared, and the input is not mutated.
	if got.Stmts[0] != file.Stmts[0] {
		t.Fatal("untouched sibling should be shared")
	}
	assert.Equal(t, "1", lit.Value)
}

func TestCloneCopiesLeadingComments(t *testing.T) {
	stmt := NewVar("let", "x", NewNumber("1"))
	stmt.Leading = []*Comment{{Kind: LineComment, Text: " original"}}

	cp := stmt.Clone().(*Var)
	cp.Leading = append(cp.Leading, &Comment{Kind: LineComment, Text: " added"})

	assert.Equal(t, 1, len(stmt.Leading))
	assert.Equal(t, 2, len(cp.Leading))
}

func TestCommentRender(t *testing.T) {
	line := &Comment{Kind: LineComment, Text: " hello"}
	assert.Equal(t, "// hello", line.Render())

	block := &Comment{Kind: BlockComment, Text: " hello\nworld "}
	assert.Equal(t, "/* hello\nworld */", block.Render())
}

func TestWalkVisitsPreOrder(t *testing.T) {
	file := NewFile("test.js",
		NewVar("let", "x", NewBinary("+", NewNumber("1"), NewNumber("2"))),
	)

	var kinds []string
	Walk(file, func(n Node) bool {
		switch n.(type) {
		case *File:
			kinds = append(kinds, "file")
		case *Var:
			kinds = append(kinds, "var")
		case *Binary:
			kinds = append(kinds, "binary")
		case *BasicLit:
			kinds = append(kinds, "lit")
		}
		return true
	})

	assert.Equal(t, []string{"file", "var", "binary", "lit", "lit"}, kinds)
}
