package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/jsfmt/loader"
)

// debounceDelay coalesces the bursts of filesystem events editors produce
// for a single save into one reformat.
const debounceDelay = 100 * time.Millisecond

type WatchCmd struct {
	Paths []string `arg:"" optional:"" default:"." help:"Files, directories or glob patterns to watch."`

	FormatFlags `embed:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ldr := loader.New()
	files, err := ldr.Expand(cmd.Paths)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories rather than the files themselves: editors
	// commonly save by rename, which drops a watch held on the old inode.
	dirs := make(map[string]bool)
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	printInfof(ctx.Stdout, "watching %d file(s) in %d directories", len(files), len(dirs))

	pending := make(map[string]bool)
	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-runCtx.Done():
			printInfof(ctx.Stdout, "stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Ext(event.Name) != ldr.Extension {
				continue
			}
			pending[event.Name] = true
			timer.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))

		case <-timer.C:
			for path := range pending {
				delete(pending, path)
				cmd.reformat(runCtx, ctx, path)
			}
		}
	}
}

// reformat formats one changed file in place. Failures are reported and
// swallowed; a bad intermediate save must not kill the watch loop.
func (cmd *WatchCmd) reformat(runCtx context.Context, ctx *kong.Context, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", path, err))
		return
	}

	formatted, err := formatBytes(runCtx, path, source, cmd.config())
	if err != nil {
		renderParseError(ctx, source, err)
		return
	}
	if formatted == string(source) {
		return
	}

	if err := writeFileAtomic(path, []byte(formatted)); err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to write %s: %v", path, err))
		return
	}
	printInfof(ctx.Stdout, "formatted %s", pathStyle.Render(path))
}
