// Package telemetry collects per-operation timings as a tree. A Collector
// travels through the context, so instrumented code paths stay free of
// telemetry arguments and run with zero overhead when the flag is off.
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("format main.js")
//	parse := timer.Child("parse")
//	// ... work ...
//	parse.End()
//	timer.End()
//
//	collector.Report(os.Stderr, styles)
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/jsfmt/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector records operation timings and renders them as a report.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings. styles may be nil for plain
	// output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer times one operation. Nested operations hang off it via Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector stores a collector in the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the context's collector, or a no-op one when the
// context carries none.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
