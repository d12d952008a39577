package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/robinvdvleuten/jsfmt/output"
)

func reportStyles(buf *bytes.Buffer) *output.Styles {
	return output.NewStyles(buf)
}

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.End()

	child := timer.Child("child")
	child.End()

	var buf bytes.Buffer
	collector.Report(&buf, reportStyles(&buf))

	if buf.Len() != 0 {
		t.Errorf("NoOp collector should produce no output, got: %s", buf.String())
	}
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())

	if collector == nil {
		t.Fatal("FromContext should never return nil")
	}
	if _, ok := collector.(noOpCollector); !ok {
		t.Errorf("FromContext should return noOpCollector when none present, got: %T", collector)
	}
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	if !ok || retrieved != collector {
		t.Error("FromContext should return the same collector that was added")
	}
}

func TestTimingCollectorBasic(t *testing.T) {
	collector := NewTimingCollector()

	timer := collector.Start("parse main.js")
	time.Sleep(10 * time.Millisecond)
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, reportStyles(&buf))

	out := buf.String()
	if !strings.Contains(out, "parse main.js") {
		t.Errorf("Output should contain operation name, got: %s", out)
	}
	if !strings.Contains(out, "ms") {
		t.Errorf("Output should contain duration, got: %s", out)
	}
}

func TestTimingCollectorNestedTimers(t *testing.T) {
	collector := NewTimingCollector()

	parent := collector.Start("format")
	child := parent.Child("parse")
	child.End()
	parent.End()

	var buf bytes.Buffer
	collector.Report(&buf, reportStyles(&buf))

	out := buf.String()
	if !strings.Contains(out, "format") || !strings.Contains(out, "parse") {
		t.Errorf("Output should contain both timers, got: %s", out)
	}

	if strings.Index(out, "format") > strings.Index(out, "parse") {
		t.Errorf("Parent should be reported before child, got: %s", out)
	}
}

func TestTimingCollectorSequentialTimers(t *testing.T) {
	collector := NewTimingCollector()

	first := collector.Start("parse a.js")
	first.End()
	second := collector.Start("parse b.js")
	second.End()

	var buf bytes.Buffer
	collector.Report(&buf, reportStyles(&buf))

	out := buf.String()
	if !strings.Contains(out, "parse a.js") || !strings.Contains(out, "parse b.js") {
		t.Errorf("Output should contain both timers, got: %s", out)
	}
}
