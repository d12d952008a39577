// Package blankline preserves blank-line formatting across tree rewrites.
//
// The printer collapses blank lines between statements: it re-emits a tree
// with normalized spacing, so a rewritten file comes out stylistically flat
// even when the rewrite itself changed nothing. This package compensates by
// annotating the tree, before printing, with placeholder comments at the
// exact positions blank-line runs occurred in the original source. The
// placeholders survive printing like any other comment; Restore then turns
// them back into blank lines with a single textual pass over the output.
//
// The transform never alters executable structure. It only rewrites
// comment/trivia attachments, so the output tree is semantically equivalent
// to the input for any consumer that ignores comments.
package blankline

import (
	"bytes"

	"github.com/robinvdvleuten/jsfmt/ast"
	"github.com/robinvdvleuten/jsfmt/parser"
)

// Transform rewrites a file tree and returns the replacement tree.
type Transform func(*ast.File) *ast.File

// New returns a transform that annotates a tree with placeholder comments
// wherever blank lines existed in the original source.
//
// Each returned transform keeps per-pass state and processes one file per
// invocation; run concurrent files through separate transforms.
func New() Transform {
	return func(file *ast.File) *ast.File {
		p := &pass{
			source:    file.Source,
			handled:   make(map[regionKey]bool),
			rewritten: make(map[regionKey]bool),
		}
		if len(file.Stmts) > 0 {
			p.first = file.Stmts[0]
		}
		out := ast.Rewrite(file, p.visit).(*ast.File)
		return p.trailing(file, out)
	}
}

// regionKey identifies a physical trivia span in the source. Distinct node
// objects can report the identical span (an expression statement and its
// expression, for example), so regions are keyed by their offsets rather
// than by node identity.
type regionKey struct {
	fullStart int
	start     int
}

// pass holds the state for one file's walk. Both sets are created empty per
// invocation and discarded afterwards.
type pass struct {
	source []byte
	first  ast.Stmt

	// handled tracks regions whose blank-line computation has already run.
	handled map[regionKey]bool
	// rewritten tracks the subset of handled regions whose original trivia
	// text was deleted and replaced with synthetic annotations.
	rewritten map[regionKey]bool
}

// entry is one element of the synthetic sequence computed for a region:
// either a reconstructed existing comment, or a blank-line marker (nil
// comment).
type entry struct {
	comment *parser.CommentRange
}

func (p *pass) visit(n ast.Node) ast.Node {
	// The file node is defined to carry the same leading trivia as its
	// first statement; the printer emits that trivia through the statement,
	// so touching the root here would duplicate it.
	if _, ok := n.(*ast.File); ok {
		return n
	}

	info := n.Info()
	key := regionKey{info.FullStart, info.Start}

	if p.handled[key] {
		// Another node already owns this region. If its trivia was deleted
		// there, it must be deleted here too: the printer serializes each
		// node's own trivia span independently, and a region half cleared
		// re-emits the stale original text through the untouched node.
		if p.rewritten[key] && !info.Detached {
			c := n.Clone()
			c.Info().Detached = true
			return c
		}
		return n
	}
	p.handled[key] = true

	entries, hasMarkers := p.scan(info, n == ast.Node(p.first))
	if !hasMarkers {
		return n
	}

	hasComments := false
	for _, e := range entries {
		if e.comment != nil {
			hasComments = true
			break
		}
	}

	c := n.Clone()
	ci := c.Info()

	// Comments can only be re-ordered by deleting the whole trivia span and
	// re-adding everything as synthetic annotations; there is no way to
	// insert between existing comments. Pure marker padding at the end
	// needs no deletion: the original span holds nothing the printer would
	// emit.
	if hasComments {
		ci.Detached = true
		p.rewritten[key] = true
	}

	for _, e := range entries {
		ci.Leading = append(ci.Leading, p.synthesize(e))
	}

	return c
}

// scan computes the ordered comment/marker sequence for a node's leading
// trivia region, and whether any markers were produced.
//
// firstChild marks the first statement of the file. Its region is shared
// with the file node, which emits the original comments verbatim; so for it
// the gaps before and between comments are suppressed along with the
// comments themselves, and only blank lines after the last comment are
// preserved. Blank lines ahead of the file's first comment are lost, and a
// first statement with no comments keeps no leading blanks at all: the gap
// above the first line of the file is not statement spacing. This is a
// known limitation of root-node trivia handling, not a bug.
func (p *pass) scan(info *ast.NodeInfo, firstChild bool) ([]entry, bool) {
	if info.FullStart >= info.Start {
		return nil, false
	}

	comments := parser.ScanComments(p.source, info.FullStart, info.Start)

	var entries []entry
	markers := 0

	pos := info.FullStart
	for i := range comments {
		c := &comments[i]
		if !firstChild {
			for k := blankLines(p.source[pos:c.Start]); k > 0; k-- {
				entries = append(entries, entry{})
				markers++
			}
			entries = append(entries, entry{comment: c})
		}
		pos = c.End
	}

	if !firstChild || len(comments) > 0 {
		for k := blankLines(p.source[pos:info.Start]); k > 0; k-- {
			entries = append(entries, entry{})
			markers++
		}
	}

	return entries, markers > 0
}

// trailing runs the same annotation over the trivia after the last
// statement, which the file records directly rather than through a node.
// Markers and reconstructed comments go on File.Trailing; detaching sets
// EOFDetached instead of a node flag.
func (p *pass) trailing(in, out *ast.File) *ast.File {
	region := ast.NodeInfo{FullStart: in.EOFStart, Start: len(p.source)}
	entries, hasMarkers := p.scan(&region, false)
	if !hasMarkers {
		return out
	}

	hasComments := false
	for _, e := range entries {
		if e.comment != nil {
			hasComments = true
			break
		}
	}

	if out == in {
		out = out.Clone().(*ast.File)
	}
	if hasComments {
		out.EOFDetached = true
	}
	for _, e := range entries {
		out.Trailing = append(out.Trailing, p.synthesize(e))
	}
	return out
}

// synthesize converts a sequence entry into a synthetic leading comment. A
// marker becomes a line comment holding the placeholder token, forced onto
// its own line. An existing comment keeps its kind, its trailing-newline
// flag, and its exact text with the delimiters stripped; the printer re-adds
// them when rendering.
func (p *pass) synthesize(e entry) *ast.Comment {
	if e.comment == nil {
		return &ast.Comment{
			Kind:            ast.LineComment,
			Text:            Placeholder,
			TrailingNewline: true,
		}
	}

	text := p.source[e.comment.Start:e.comment.End]
	if e.comment.Kind == ast.BlockComment {
		text = bytes.TrimSuffix(bytes.TrimPrefix(text, []byte("/*")), []byte("*/"))
	} else {
		text = bytes.TrimPrefix(text, []byte("//"))
	}

	return &ast.Comment{
		Kind:            e.comment.Kind,
		Text:            string(text),
		TrailingNewline: e.comment.HasTrailingNewline,
	}
}

// blankLines counts the blank lines represented by a pure-whitespace gap:
// the number of newlines beyond the first, floored at zero. A gap with one
// newline is minimum statement spacing, not a blank line. Only '\n' counts;
// '\r' is treated as part of the preceding line, so CRLF input yields the
// same counts as LF input.
func blankLines(gap []byte) int {
	n := bytes.Count(gap, []byte{'\n'})
	if n > 1 {
		return n - 1
	}
	return 0
}
