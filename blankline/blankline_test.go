package blankline

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
	"github.com/robinvdvleuten/jsfmt/printer"
)

// roundTrip parses source, applies the transform, prints, and restores.
func roundTrip(t *testing.T, source string) string {
	t.Helper()
	file := parser.MustParseBytes(context.Background(), []byte(source))
	out := New()(file)
	return Restore(printer.New().Sprint(out))
}

func TestRoundTripPreservesBlankLines(t *testing.T) {
	source := `import 'foo';

class Foo {
  foo() {}

  bar() {}
}
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripMultipleBlankLines(t *testing.T) {
	source := `let a = 1;


let b = 2;
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripBlankAfterLeadingComment(t *testing.T) {
	source := `// header

import 'a';
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripBlanksAroundComments(t *testing.T) {
	source := `import 'a';

// one

// two
let x = 1;
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripBlockCommentKeepsLayout(t *testing.T) {
	source := `let a = 1;

/* hello
world */
let b = 2;
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestNoBlankLinesPassesThrough(t *testing.T) {
	source := `import 'a';
let x = 1;
x = x + 1;
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestOutputContainsNoPlaceholder(t *testing.T) {
	source := `let a = 1;

let b = 2;
`

	assert.False(t, strings.Contains(roundTrip(t, source), Placeholder), "placeholders should not survive restore")
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	source := `let a = 1;

// note
let b = 2;

// done
`

	file := parser.MustParseBytes(context.Background(), []byte(source))
	_ = New()(file)

	ast.Walk(file, func(n ast.Node) bool {
		info := n.Info()
		assert.Equal(t, 0, len(info.Leading), "input tree should gain no synthetic comments")
		assert.False(t, info.Detached, "input tree should keep its trivia attached")
		return true
	})
	assert.Equal(t, 0, len(file.Trailing), "input file should gain no trailing comments")
	assert.False(t, file.EOFDetached, "input file should keep its trailing trivia attached")
}

func TestDetachWithoutCommentsIsSkipped(t *testing.T) {
	source := `let a = 1;

let b = 2;
`

	file := parser.MustParseBytes(context.Background(), []byte(source))
	out := New()(file)

	second := out.Stmts[1]
	assert.False(t, second.Info().Detached, "marker-only trivia needs no detach")
	assert.Equal(t, 1, len(second.Info().Leading))
	assert.Equal(t, Placeholder, second.Info().Leading[0].Text)
}

func TestDetachPropagatesToSharedRegion(t *testing.T) {
	source := `let a = 1;

// call it

x();
`

	file := parser.MustParseBytes(context.Background(), []byte(source))
	out := New()(file)

	stmt := out.Stmts[1].(*ast.ExprStmt)
	assert.True(t, stmt.Info().Detached, "statement trivia should be detached")

	// The call expression starts at the same token as its statement and so
	// reports the identical trivia region. It must be detached too, or the
	// region would count as both deleted and intact at once.
	call := stmt.X.(*ast.Call)
	assert.Equal(t, stmt.Info().FullStart, call.Info().FullStart)
	assert.True(t, call.Info().Detached, "shared region must be all-or-none")
	assert.Equal(t, 0, len(call.Info().Leading), "markers belong to one node per region")
}

func TestFirstStatementSuppressesCommentGaps(t *testing.T) {
	source := `// one

// two
import 'a';
`

	// Blank lines before and between the file's opening comments are lost;
	// the comments themselves print once, through the original trivia.
	want := `// one
// two
import 'a';
`

	assert.Equal(t, want, roundTrip(t, source))
}

func TestRoundTripInlineBlockCommentStaysOnContentLine(t *testing.T) {
	source := `let a = 1;

/* note */ let b = 2;
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripTrailingCommentSurvives(t *testing.T) {
	source := `let a = 1;
// trailing
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripTrailingCommentAfterBlank(t *testing.T) {
	source := `let a = 1;

// trailing
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestRoundTripTrailingBlankLines(t *testing.T) {
	source := "let a = 1;\n\n\n"

	assert.Equal(t, source, roundTrip(t, source))
}

func TestCommentOnlyFileKeepsComments(t *testing.T) {
	source := `// only a comment
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestLeadingBlanksBeforeFirstStatementAreDropped(t *testing.T) {
	// The gap above the file's first line is not statement spacing; a first
	// statement with no comments keeps no leading blanks.
	assert.Equal(t, "let a = 1;\n", roundTrip(t, "\n\n\nlet a = 1;\n"))
}

func TestNestedBlocksKeepBlankLines(t *testing.T) {
	source := `function f() {
  let a = 1;

  return a;
}
`

	assert.Equal(t, source, roundTrip(t, source))
}

func TestTransformIsIdempotentOnOutput(t *testing.T) {
	source := `import 'a';

class C {
  m() {}

  n() {}
}
`

	first := roundTrip(t, source)
	assert.Equal(t, first, roundTrip(t, first))
}
