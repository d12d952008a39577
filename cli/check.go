package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	errfmt "github.com/robinvdvleuten/jsfmt/errors"
	"github.com/robinvdvleuten/jsfmt/loader"
	"github.com/robinvdvleuten/jsfmt/telemetry"
)

type CheckCmd struct {
	Paths []string `arg:"" optional:"" help:"Files, directories or glob patterns to check (stdin when omitted)."`
	Diff  bool     `help:"Print a unified diff for files that are not formatted."`
	Fix   bool     `help:"Rewrite files that are not formatted, after confirmation."`
	Yes   bool     `help:"Assume yes for confirmation prompts."`
	JSON  bool     `help:"Report parse errors and unformatted files as JSON."`

	FormatFlags `embed:""`
}

// reportParseError renders a parse failure in the configured output format.
func (cmd *CheckCmd) reportParseError(ctx *kong.Context, source []byte, err error) {
	if cmd.JSON {
		_, _ = fmt.Fprintln(ctx.Stdout, errfmt.NewJSONFormatter().Format(err))
		return
	}
	renderParseError(ctx, source, err)
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, stderrStyles(ctx))
		}()
	}

	if len(cmd.Paths) == 0 {
		return cmd.checkStdin(runCtx, ctx)
	}

	files, err := loader.New().Expand(cmd.Paths)
	if err != nil {
		return err
	}

	var unformatted []string
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		formatted, err := formatBytes(runCtx, path, source, cmd.config())
		if err != nil {
			cmd.reportParseError(ctx, source, err)
			return NewCommandError(1)
		}
		if formatted == string(source) {
			continue
		}

		unformatted = append(unformatted, path)
		if !cmd.JSON {
			printInfof(ctx.Stdout, "not formatted: %s", pathStyle.Render(path))
		}
		if cmd.Diff {
			edits := myers.ComputeEdits(span.URIFromPath(path), string(source), formatted)
			unified := gotextdiff.ToUnified(path, path+".formatted", string(source), edits)
			_, _ = fmt.Fprint(ctx.Stdout, unified)
		}
	}

	if len(unformatted) == 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("%d file(s) formatted correctly", len(files)))
		return nil
	}

	if cmd.Fix {
		return cmd.fix(runCtx, ctx, unformatted)
	}

	if cmd.JSON {
		data, err := json.Marshal(unformatted)
		if err == nil {
			_, _ = fmt.Fprintln(ctx.Stdout, string(data))
		}
	} else {
		printError(ctx.Stderr, fmt.Sprintf("%d file(s) not formatted", len(unformatted)))
	}
	return NewCommandError(1)
}

func (cmd *CheckCmd) checkStdin(runCtx context.Context, ctx *kong.Context) error {
	var file FileOrStdin
	if err := file.EnsureContents(); err != nil {
		return err
	}

	formatted, err := formatBytes(runCtx, file.Filename, file.Contents, cmd.config())
	if err != nil {
		cmd.reportParseError(ctx, file.Contents, err)
		return NewCommandError(1)
	}

	if formatted == string(file.Contents) {
		printSuccess(ctx.Stdout, "input is formatted")
		return nil
	}

	if cmd.Diff {
		edits := myers.ComputeEdits(span.URIFromPath(file.Filename), string(file.Contents), formatted)
		unified := gotextdiff.ToUnified(file.Filename, file.Filename+".formatted", string(file.Contents), edits)
		_, _ = fmt.Fprint(ctx.Stdout, unified)
	}
	printError(ctx.Stderr, "input is not formatted")
	return NewCommandError(1)
}

func (cmd *CheckCmd) fix(runCtx context.Context, ctx *kong.Context, paths []string) error {
	confirmed := cmd.Yes
	if !confirmed {
		var err error
		confirmed, err = promptYesNo(fmt.Sprintf("Reformat %d file(s)?", len(paths)))
		if err != nil {
			return err
		}
	}
	if !confirmed {
		printError(ctx.Stderr, fmt.Sprintf("%d file(s) not formatted", len(paths)))
		return NewCommandError(1)
	}

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		formatted, err := formatBytes(runCtx, path, source, cmd.config())
		if err != nil {
			cmd.reportParseError(ctx, source, err)
			return NewCommandError(1)
		}
		if err := writeFileAtomic(path, []byte(formatted)); err != nil {
			return err
		}
		printInfof(ctx.Stdout, "formatted %s", pathStyle.Render(path))
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("fixed %d file(s)", len(paths)))
	return nil
}
