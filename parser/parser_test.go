package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/jsfmt/ast"
)

func TestParseImport(t *testing.T) {
	file := MustParseBytes(context.Background(), []byte("import 'foo';\nimport bar from 'bar';\n"))

	assert.Equal(t, 2, len(file.Stmts))

	bare := file.Stmts[0].(*ast.Import)
	assert.Equal(t, "", bare.Name)
	assert.Equal(t, "'foo'", bare.Path)

	named := file.Stmts[1].(*ast.Import)
	assert.Equal(t, "bar", named.Name)
	assert.Equal(t, "'bar'", named.Path)
}

func TestParseClass(t *testing.T) {
	source := `export class Point {
  move(dx, dy) {
    return dx + dy;
  }

  reset() {}
}
`

	file := MustParseBytes(context.Background(), []byte(source))

	cls := file.Stmts[0].(*ast.Class)
	assert.True(t, cls.Export)
	assert.Equal(t, "Point", cls.Name)
	assert.Equal(t, 2, len(cls.Members))
	assert.Equal(t, "move", cls.Members[0].Name)
	assert.Equal(t, []string{"dx", "dy"}, cls.Members[0].Params)
	assert.Equal(t, 1, len(cls.Members[0].Body.Stmts))
	assert.Equal(t, "reset", cls.Members[1].Name)
	assert.Equal(t, 0, len(cls.Members[1].Body.Stmts))
}

func TestParseFunctionAndVarForms(t *testing.T) {
	source := `function add(a, b) {
  return a + b;
}
let x = 1;
const y = 'text';
var z;
`

	file := MustParseBytes(context.Background(), []byte(source))
	assert.Equal(t, 4, len(file.Stmts))

	fn := file.Stmts[0].(*ast.Function)
	assert.False(t, fn.Export)
	assert.Equal(t, "add", fn.Name)

	x := file.Stmts[1].(*ast.Var)
	assert.Equal(t, "let", x.Keyword)
	assert.Equal(t, "1", x.Value.(*ast.BasicLit).Value)

	y := file.Stmts[2].(*ast.Var)
	assert.Equal(t, "const", y.Keyword)
	assert.Equal(t, ast.StringLit, y.Value.(*ast.BasicLit).Kind)

	z := file.Stmts[3].(*ast.Var)
	assert.Equal(t, "var", z.Keyword)
	assert.Zero(t, z.Value)
}

func TestParseIfElseChain(t *testing.T) {
	source := `if (a > 1) {
  b();
} else if (a < 0) {
  c();
} else {
  d();
}
`

	file := MustParseBytes(context.Background(), []byte(source))

	outer := file.Stmts[0].(*ast.If)
	assert.Equal(t, ">", outer.Cond.(*ast.Binary).Op)

	inner := outer.Else.(*ast.If)
	assert.Equal(t, "<", inner.Cond.(*ast.Binary).Op)

	_, isBlock := inner.Else.(*ast.Block)
	assert.True(t, isBlock, "final else should be a block")
}

func TestParsePrecedence(t *testing.T) {
	file := MustParseBytes(context.Background(), []byte("let r = a + b * c == d || e;\n"))

	// ((a + (b * c)) == d) || e
	or := file.Stmts[0].(*ast.Var).Value.(*ast.Binary)
	assert.Equal(t, "||", or.Op)

	eq := or.X.(*ast.Binary)
	assert.Equal(t, "==", eq.Op)

	add := eq.X.(*ast.Binary)
	assert.Equal(t, "+", add.Op)

	mul := add.Y.(*ast.Binary)
	assert.Equal(t, "*", mul.Op)
}

func TestParseParenthesesAreDropped(t *testing.T) {
	file := MustParseBytes(context.Background(), []byte("let r = (a + b) * c;\n"))

	mul := file.Stmts[0].(*ast.Var).Value.(*ast.Binary)
	assert.Equal(t, "*", mul.Op)

	add := mul.X.(*ast.Binary)
	assert.Equal(t, "+", add.Op)
}

func TestParsePostfixChain(t *testing.T) {
	file := MustParseBytes(context.Background(), []byte("a.b(c).d();\n"))

	call := file.Stmts[0].(*ast.ExprStmt).X.(*ast.Call)
	sel := call.Fun.(*ast.Selector)
	assert.Equal(t, "d", sel.Sel)

	innerCall := sel.X.(*ast.Call)
	assert.Equal(t, 1, len(innerCall.Args))
	assert.Equal(t, "b", innerCall.Fun.(*ast.Selector).Sel)
}

func TestParseAssignmentStatement(t *testing.T) {
	file := MustParseBytes(context.Background(), []byte("x = y + 1;\n"))

	assign := file.Stmts[0].(*ast.ExprStmt).X.(*ast.Binary)
	assert.Equal(t, "=", assign.Op)
	assert.Equal(t, "x", assign.X.(*ast.Ident).Name)
}

func TestParseTriviaRegions(t *testing.T) {
	source := "import 'a';\n\n// note\nlet x = 1;\n"
	file := MustParseBytes(context.Background(), []byte(source))

	imp := file.Stmts[0].Info()
	assert.Equal(t, 0, imp.FullStart)
	assert.Equal(t, 0, imp.Start)

	// The declaration's trivia region starts right after the semicolon and
	// holds the blank line and the comment.
	decl := file.Stmts[1].Info()
	assert.Equal(t, 11, decl.FullStart)
	assert.Equal(t, strings.Index(source, "let"), decl.Start)

	comments := ScanComments([]byte(source), decl.FullStart, decl.Start)
	assert.Equal(t, 1, len(comments))
	assert.Equal(t, "// note", comments[0].Text([]byte(source)))
}

func TestParseExpressionSharesStatementRegion(t *testing.T) {
	source := "let a = 1;\n\nf();\n"
	file := MustParseBytes(context.Background(), []byte(source))

	stmt := file.Stmts[1].(*ast.ExprStmt)
	call := stmt.X.(*ast.Call)
	assert.Equal(t, stmt.Info().FullStart, call.Info().FullStart)
	assert.Equal(t, stmt.Info().Start, call.Info().Start)
}

func TestParseFileRecordsTrailingTrivia(t *testing.T) {
	source := "let a = 1;\n// trailing\n"
	file := MustParseBytes(context.Background(), []byte(source))

	assert.Equal(t, strings.Index(source, "\n"), file.EOFStart)

	comments := ScanComments([]byte(source), file.EOFStart, len(source))
	assert.Equal(t, 1, len(comments))
	assert.Equal(t, "// trailing", comments[0].Text([]byte(source)))

	// No trivia after the last token leaves an empty region.
	bare := MustParseBytes(context.Background(), []byte("let a = 1;"))
	assert.Equal(t, len("let a = 1;"), bare.EOFStart)
}

func TestScanCommentsCRLF(t *testing.T) {
	source := []byte("// a\r\n/* b */\r\nlet x;\r\n")
	lo, hi := 0, strings.Index(string(source), "let")

	comments := ScanComments(source, lo, hi)
	assert.Equal(t, 2, len(comments))

	// The carriage return belongs to the line break, not the comment text.
	assert.Equal(t, "// a", comments[0].Text(source))
	assert.True(t, comments[0].HasTrailingNewline)
	assert.Equal(t, "/* b */", comments[1].Text(source))
	assert.True(t, comments[1].HasTrailingNewline)
}

func TestScanCommentsInlineBlockHasNoTrailingNewline(t *testing.T) {
	source := []byte("/* k */ let x;")

	comments := ScanComments(source, 0, strings.Index(string(source), "let"))
	assert.Equal(t, 1, len(comments))
	assert.False(t, comments[0].HasTrailingNewline)
}

func TestParseFileInfo(t *testing.T) {
	source := "// header\nlet x = 1;\n"
	file := MustParseBytes(context.Background(), []byte(source))

	assert.Equal(t, 0, file.Info().FullStart)
	assert.Equal(t, file.Stmts[0].Info().Start, file.Info().Start)
	assert.Equal(t, len(source), file.Info().End)
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name   string
		source string
		want   string
	}{
		{"missing semicolon", "let x = 1", "expected ;"},
		{"missing variable name", "let = 1;", "expected variable name"},
		{"export without declaration", "export let x = 1;", "expected class or function"},
		{"unclosed block", "function f() {", "expected }"},
		{"missing import path", "import ;", "expected module specifier"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "test.js", []byte(tt.source))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "test.js:")
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(context.Background(), "test.js", []byte("let a = 1;\nlet = 2;\n"))
	assert.Error(t, err)

	perr := err.(*ParseError)
	assert.Equal(t, 2, perr.Pos.Line)
	assert.Equal(t, 5, perr.Pos.Column)
}
