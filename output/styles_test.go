package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesContainText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for name, result := range map[string]string{
		"Success":  styles.Success("done"),
		"Error":    styles.Error("failed"),
		"FilePath": styles.FilePath("/path/to/file.js"),
		"Comment":  styles.Comment("// note"),
		"Literal":  styles.Literal("42"),
		"Keyword":  styles.Keyword("class"),
		"Dim":      styles.Dim("secondary"),
		"Warning":  styles.Warning("careful"),
	} {
		if result == "" {
			t.Errorf("%s() should not return empty output", name)
		}
	}

	if !strings.Contains(styles.FilePath("/path/to/file.js"), "/path/to/file.js") {
		t.Errorf("FilePath() should contain the path")
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	t.Run("FastOperation", func(t *testing.T) {
		if !strings.Contains(styles.Timing("5ms", false), "5ms") {
			t.Errorf("Timing() result should contain timing")
		}
	})

	t.Run("SlowOperation", func(t *testing.T) {
		if !strings.Contains(styles.Timing("500ms", true), "500ms") {
			t.Errorf("Timing() result should contain timing")
		}
	})
}

func TestStylesOutput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles.Output() == nil {
		t.Error("Output() should return non-nil termenv.Output")
	}
}
