// Large script file generator
//
// This tool generates a large script file for performance testing and
// profiling. It emits classes, functions and statements interleaved with
// comments and blank-line runs, to stress-test the parser and the
// blank-line pipeline.
//
// Usage:
//
//	go run main.go > large.js
//	go run main.go 20000000 > large.js  # Specify target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

const defaultTargetSize = 10 * 1024 * 1024 // 10MB

var (
	identifiers = []string{
		"value", "result", "total", "count", "index", "name", "handler",
		"config", "state", "buffer", "cursor", "payload",
	}

	comments = []string{
		"// recompute on change",
		"// cached between calls",
		"/* slow path */",
		"// see issue tracker",
	}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		size, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		targetSize = size
	}

	rng := rand.New(rand.NewSource(42))

	var buf strings.Builder
	buf.WriteString("// generated file, do not edit\n\n")
	buf.WriteString("import helpers from 'helpers';\n\n")

	n := 0
	for buf.Len() < targetSize {
		n++
		switch rng.Intn(3) {
		case 0:
			writeClass(&buf, rng, n)
		case 1:
			writeFunction(&buf, rng, n)
		default:
			writeStatements(&buf, rng, n)
		}

		// Blank-line runs of varying length between top-level chunks.
		for i := rng.Intn(3); i >= 0; i-- {
			buf.WriteByte('\n')
		}
	}

	fmt.Print(buf.String())
}

func writeClass(buf *strings.Builder, rng *rand.Rand, n int) {
	fmt.Fprintf(buf, "class Widget%d {\n", n)
	methods := 1 + rng.Intn(4)
	for m := 0; m < methods; m++ {
		if m > 0 {
			buf.WriteByte('\n')
		}
		if rng.Intn(3) == 0 {
			fmt.Fprintf(buf, "  %s\n", comments[rng.Intn(len(comments))])
		}
		name := identifiers[rng.Intn(len(identifiers))]
		fmt.Fprintf(buf, "  %s%d() {\n    return %d;\n  }\n", name, m, rng.Intn(1000))
	}
	buf.WriteString("}\n")
}

func writeFunction(buf *strings.Builder, rng *rand.Rand, n int) {
	if rng.Intn(4) == 0 {
		fmt.Fprintf(buf, "%s\n", comments[rng.Intn(len(comments))])
	}
	name := identifiers[rng.Intn(len(identifiers))]
	fmt.Fprintf(buf, "function %s%d(a, b) {\n", name, n)
	fmt.Fprintf(buf, "  let %s = a * %d + b;\n", name, rng.Intn(100))
	if rng.Intn(2) == 0 {
		fmt.Fprintf(buf, "  if (%s > %d) {\n    return %s;\n  }\n", name, rng.Intn(50), name)
	}
	fmt.Fprintf(buf, "  return %s / 2;\n}\n", name)
}

func writeStatements(buf *strings.Builder, rng *rand.Rand, n int) {
	count := 1 + rng.Intn(3)
	for i := 0; i < count; i++ {
		name := identifiers[rng.Intn(len(identifiers))]
		fmt.Fprintf(buf, "let %s%d_%d = %d.%d;\n", name, n, i, rng.Intn(1000), rng.Intn(100))
	}
}
