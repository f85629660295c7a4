package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/viv/pkg/config"
)

// reloadDebounce coalesces the burst of events editors produce on save.
const reloadDebounce = 100 * time.Millisecond

// WatchConfig reloads the configuration at path whenever it changes, until
// ctx is done or the server terminates. Invalid configurations are logged and
// the current state is kept. onReload, if not nil, is called after each
// attempt with its result.
//
// The parent directory is watched rather than the file so that editors which
// replace the file on save are handled.
func (s *Server) WatchConfig(ctx context.Context, path string, onReload func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	s.logger.Info("Watching configuration", "path", abs)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				err := s.reloadFrom(ctx, abs)
				if onReload != nil {
					onReload(err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Watcher error", "err", err)
		}
	}
}

func (s *Server) reloadFrom(ctx context.Context, path string) error {
	s.logger.Debug("Configuration changed", "path", path)
	cfg, err := config.Load(path)
	if err != nil {
		s.logger.Error("Ignoring invalid configuration", "err", err)
		return err
	}
	var reloadErr error
	if err := s.Do(ctx, func() { reloadErr = s.Reload(cfg) }); err != nil {
		return err
	}
	if reloadErr != nil {
		s.logger.Error("Reload failed", "err", reloadErr)
	}
	return reloadErr
}
