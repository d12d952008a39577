package transform

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
	"github.com/robinvdvleuten/jsfmt/printer"
)

func apply(t *testing.T, tr Transform, source string) string {
	t.Helper()
	file := parser.MustParseBytes(context.Background(), []byte(source))
	return printer.New().Sprint(tr(file))
}

func TestNormalizeNumbers(t *testing.T) {
	source := `let a = 1.50;
let b = 0.100;
let c = 007.25;
let d = 42;
`

	want := `let a = 1.5;
let b = 0.1;
let c = 7.25;
let d = 42;
`

	assert.Equal(t, want, apply(t, NormalizeNumbers, source))
}

func TestNormalizeNumbersKeepsTreeWhenCanonical(t *testing.T) {
	file := parser.MustParseBytes(context.Background(), []byte("let a = 1.5;\n"))
	assert.True(t, NormalizeNumbers(file) == file, "canonical literals should not force a rebuild")
}

func TestSortImports(t *testing.T) {
	source := `import 'zebra';
import 'alpha';
import m from 'middle';
let x = 1;
import 'late';
`

	want := `import 'alpha';
import m from 'middle';
import 'zebra';
let x = 1;
import 'late';
`

	assert.Equal(t, want, apply(t, SortImports, source))
}

func TestSortImportsMixedQuotes(t *testing.T) {
	source := `import "beta";
import 'alpha';
`

	want := `import 'alpha';
import "beta";
`

	assert.Equal(t, want, apply(t, SortImports, source))
}

func TestSortImportsAlreadySorted(t *testing.T) {
	file := parser.MustParseBytes(context.Background(), []byte("import 'a';\nimport 'b';\n"))
	assert.True(t, SortImports(file) == file, "sorted imports should not force a rebuild")
}

func TestSortImportsDoesNotMutateInput(t *testing.T) {
	file := parser.MustParseBytes(context.Background(), []byte("import 'b';\nimport 'a';\n"))
	_ = SortImports(file)

	assert.Equal(t, "'b'", file.Stmts[0].(*ast.Import).Path, "input order must survive")
	assert.Equal(t, "'a'", file.Stmts[1].(*ast.Import).Path)
}

func TestChainRunsInOrder(t *testing.T) {
	source := `import 'b';
import 'a';
let x = 1.10;
`

	want := `import 'a';
import 'b';
let x = 1.1;
`

	assert.Equal(t, want, apply(t, Chain(SortImports, NormalizeNumbers), source))
}
