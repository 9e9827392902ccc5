package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	dslerrors "github.com/archdsl/wsdsl/internal/dsl/errors"
	"github.com/archdsl/wsdsl/internal/dsl/parser"
	"github.com/archdsl/wsdsl/internal/model"
	"github.com/archdsl/wsdsl/internal/ui"
)

var watchDebounceMs int

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Reparse on every change to path",
	Long: `watch re-runs a full parse of path every time a file under it
changes. This is a full reparse, not an incremental one — the engine
has no notion of reusing state across parses.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&watchDebounceMs, "debounce", 300, "debounce delay in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := ui.New()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTargets(watcher, path); err != nil {
		return err
	}

	reparse := func() {
		ws := model.New(true)
		p := parser.New(ws)
		p.SetRestricted(cfg.Restricted)

		if err := p.Parse(path); err != nil {
			var perr *dslerrors.DslParserError
			if errors.As(err, &perr) {
				out.ErrorDetail(fmt.Sprintf("%s:%d: %s", perr.File, perr.LineNumber, perr.Message), perr.SourceLine)
			} else {
				out.Error(err.Error())
			}
			return
		}
		out.Success(fmt.Sprintf("reparsed: %d elements, %d relationships, %d views",
			ws.ElementCount(), ws.RelationshipCount(), ws.ViewCount()))
	}

	out.Title(fmt.Sprintf("watching %s (Ctrl+C to stop)", path))
	reparse()

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(time.Duration(watchDebounceMs)*time.Millisecond, reparse)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			out.Warning(werr.Error())
		}
	}
}

// addWatchTargets registers path, and every directory beneath it, with
// watcher — fsnotify does not watch recursively on its own.
func addWatchTargets(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
