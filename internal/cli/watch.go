package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// watchSkin renders the skin once and again on every write to it until
// ctx is cancelled. Failed renders are reported and watching continues.
//
// The skin's directory is watched rather than the file so that editors
// replacing the file on save are seen as a Create of the same name.
func watchSkin(ctx context.Context, w io.Writer, path string, opts renderOptions) error {
	logger := loggerFromContext(ctx)

	abs, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand %s: %w", path, err)
	}
	if abs, err = filepath.Abs(abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	render := func() {
		if err := runRender(ctx, w, abs, opts); err != nil {
			printWarning(w, "%v", err)
		}
	}
	render()
	logger.Info("Watching for changes", "skin", abs)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug("Skin changed", "op", event.Op.String())
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error", "err", err)
		}
	}
}
