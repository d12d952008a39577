// Package transform provides tree-to-tree rewrites applied before printing.
//
// Transforms are pure: they return a new tree (sharing untouched subtrees
// with the input) and never mutate their argument. They compose with Chain
// and run ahead of blank-line annotation in the formatting pipeline.
package transform

import (
	"strings"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Transform rewrites a file tree and returns the replacement tree.
type Transform func(*ast.File) *ast.File

// Chain composes transforms left to right into a single transform.
func Chain(transforms ...Transform) Transform {
	return func(file *ast.File) *ast.File {
		for _, t := range transforms {
			file = t(file)
		}
		return file
	}
}

// NormalizeNumbers rewrites numeric literals to their canonical decimal
// form: no leading plus, no trailing fractional zeros, no bare trailing
// point. Literals that do not parse as decimals are left alone.
func NormalizeNumbers(file *ast.File) *ast.File {
	return ast.Rewrite(file, func(n ast.Node) ast.Node {
		lit, ok := n.(*ast.BasicLit)
		if !ok || lit.Kind != ast.NumberLit {
			return n
		}
		d, err := decimal.NewFromString(lit.Value)
		if err != nil {
			return n
		}
		normalized := d.String()
		if normalized == lit.Value {
			return n
		}
		cp := lit.Clone().(*ast.BasicLit)
		cp.Value = normalized
		return cp
	}).(*ast.File)
}

// SortImports orders the file's leading run of import statements by path.
// The sort is stable, so duplicate paths keep their relative order.
// Statements after the first non-import are untouched; imports appearing
// later in the file stay where they are.
func SortImports(file *ast.File) *ast.File {
	end := 0
	for end < len(file.Stmts) {
		if _, ok := file.Stmts[end].(*ast.Import); !ok {
			break
		}
		end++
	}
	if end < 2 {
		return file
	}

	run := make([]*ast.Import, end)
	for i := 0; i < end; i++ {
		run[i] = file.Stmts[i].(*ast.Import)
	}
	if slices.IsSortedFunc(run, func(a, b *ast.Import) int {
		return comparePaths(a.Path, b.Path)
	}) {
		return file
	}

	slices.SortStableFunc(run, func(a, b *ast.Import) int {
		return comparePaths(a.Path, b.Path)
	})

	cp := file.Clone().(*ast.File)
	cp.Stmts = slices.Clone(file.Stmts)
	for i, imp := range run {
		cp.Stmts[i] = imp
	}
	return cp
}

// comparePaths orders import paths by their unquoted text, so 'a' and "a"
// sort together regardless of quote style.
func comparePaths(a, b string) int {
	return strings.Compare(unquote(a), unquote(b))
}

func unquote(path string) string {
	if len(path) >= 2 && (path[0] == '\'' || path[0] == '"') {
		return path[1 : len(path)-1]
	}
	return path
}
