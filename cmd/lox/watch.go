package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/lox/logs"
)

// Watch runs a script, then runs it again each time it changes, until ctx is done.
type Watch func(ctx context.Context, path string) error

const watchSettle = 50 * time.Millisecond

func (Module) Watch(
	runFile RunFile,
	logger logs.Logger,
	stderr Stderr,
) Watch {
	return func(ctx context.Context, path string) (err error) {
		defer he(&err)
		path, err = filepath.Abs(path)
		ce(err)

		watcher, err := fsnotify.NewWatcher()
		ce(err)
		defer watcher.Close()
		// editors often replace the file, so watch the directory
		ce(watcher.Add(filepath.Dir(path)))

		run := func() {
			if _, err := runFile(ctx, path); err != nil {
				fmt.Fprintln(stderr, err)
			}
		}
		run()

		var timer <-chan time.Time
		for {
			select {

			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				logger.DebugContext(ctx, "changed",
					"path", path,
					"op", ev.Op.String(),
				)
				timer = time.After(watchSettle)

			case <-timer:
				timer = nil
				run()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return err

			}
		}
	}
}
