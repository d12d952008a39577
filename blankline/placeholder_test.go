package blankline

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRestoreReplacesMarkerLine(t *testing.T) {
	in := "let a = 1;\n// " + Placeholder + "\nlet b = 2;\n"
	assert.Equal(t, "let a = 1;\n\nlet b = 2;\n", Restore(in))
}

func TestRestoreDropsIndentation(t *testing.T) {
	in := "class C {\n  m() {}\n  // " + Placeholder + "\n  n() {}\n}\n"
	assert.Equal(t, "class C {\n  m() {}\n\n  n() {}\n}\n", Restore(in))
}

func TestRestoreHandlesConsecutiveMarkers(t *testing.T) {
	marker := "// " + Placeholder + "\n"
	in := "let a = 1;\n" + marker + marker + "let b = 2;\n"
	assert.Equal(t, "let a = 1;\n\n\nlet b = 2;\n", Restore(in))
}

func TestRestoreIgnoresUnmarkedText(t *testing.T) {
	in := "// an ordinary comment\nlet a = 1;\n"
	assert.Equal(t, in, Restore(in))
}

func TestRestoreIgnoresMarkerWithTrailingText(t *testing.T) {
	in := "// " + Placeholder + " trailing\nlet a = 1;\n"
	assert.Equal(t, in, Restore(in))
}

func TestRestoreIgnoresMarkerInsideLine(t *testing.T) {
	in := "let a = 1; // " + Placeholder + "\n"
	assert.Equal(t, in, Restore(in))
}

func TestPlaceholderLength(t *testing.T) {
	// The token is part of the output contract; external tooling matches on
	// it, so its exact shape must not drift.
	assert.Equal(t, 48, len(Placeholder))
}
