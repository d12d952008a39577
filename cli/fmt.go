package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/jsfmt/loader"
	"github.com/robinvdvleuten/jsfmt/telemetry"
)

type FmtCmd struct {
	Paths []string `arg:"" optional:"" help:"Files, directories or glob patterns to format (stdin when omitted)."`
	Write bool     `short:"w" help:"Write results back to source files instead of stdout."`

	FormatFlags `embed:""`
}

func (cmd *FmtCmd) Run(ctx *kong.Context, globals *Globals) error {
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
		return cmd.runStdin(runCtx, ctx)
	}

	files, err := loader.New().Expand(cmd.Paths)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := cmd.formatOne(runCtx, ctx, path); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *FmtCmd) runStdin(runCtx context.Context, ctx *kong.Context) error {
	var file FileOrStdin
	if err := file.EnsureContents(); err != nil {
		return err
	}

	formatted, err := formatBytes(runCtx, file.Filename, file.Contents, cmd.config())
	if err != nil {
		renderParseError(ctx, file.Contents, err)
		return NewCommandError(1)
	}

	_, _ = fmt.Fprint(ctx.Stdout, formatted)
	return nil
}

func (cmd *FmtCmd) formatOne(runCtx context.Context, ctx *kong.Context, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	formatted, err := formatBytes(runCtx, path, source, cmd.config())
	if err != nil {
		renderParseError(ctx, source, err)
		return NewCommandError(1)
	}

	if !cmd.Write {
		_, _ = fmt.Fprint(ctx.Stdout, formatted)
		return nil
	}

	if formatted == string(source) {
		return nil
	}
	if err := writeFileAtomic(path, []byte(formatted)); err != nil {
		return err
	}
	printInfof(ctx.Stdout, "formatted %s", pathStyle.Render(path))
	return nil
}

// writeFileAtomic replaces path via a sibling temp file and rename, so a
// crash mid-write never truncates the original.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsfmt-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode())
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
