// Package watch re-runs a check whenever watched PDDL files change.
//
// It backs the CLI's watch subcommand: point it at domain or problem
// files (or directories containing them) and it re-parses on every write,
// reporting success or the parse error for each change.
package watch

import (
	"context"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch blocks until ctx is cancelled, invoking check for every changed
// file under the given paths. A path may be a file or a directory; within
// directories only files with a .pddl suffix trigger the check. Check
// errors are logged and do not stop the watch.
func Watch(ctx context.Context, log zerolog.Logger, paths []string, check func(path string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			watched[path] = true
		}
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watched[event.Name] && !strings.HasSuffix(event.Name, ".pddl") {
				continue
			}
			log.Info().Str("file", event.Name).Msg("file changed")
			if err := check(event.Name); err != nil {
				log.Error().Err(err).Str("file", event.Name).Msg("check failed")
			} else {
				log.Info().Str("file", event.Name).Msg("check passed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
