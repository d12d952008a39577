// jsfmt-dump parses a script file and prints its syntax tree, for debugging
// parser and transform behavior.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/jsfmt/parser"
)

var cli struct {
	File string `help:"Script file to parse." arg:"" type:"existingfile"`
}

func main() {
	ctx := kong.Parse(&cli)

	raw, err := os.ReadFile(cli.File)
	ctx.FatalIfErrorf(err)

	file, err := parser.Parse(context.Background(), cli.File, raw)
	ctx.FatalIfErrorf(err)

	repr.Println(file, repr.OmitEmpty(true))
}
