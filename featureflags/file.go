// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featureflags

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the flag file location relative to the home directory.
var DefaultFile = filepath.Join(".config", "propsctl", "flags.toml")

// DefaultPath returns the absolute path of [DefaultFile].
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("featureflags: finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultFile), nil
}

// Load reads flags from the given TOML file. Flags that the file
// does not mention keep their default values.
func Load(path string) (Flags, error) {
	f := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("featureflags: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &f); err != nil {
		return Defaults(), fmt.Errorf("featureflags: parsing %s: %w", path, err)
	}
	return f, nil
}

// Save writes the given flags to the given TOML file,
// creating its directory if needed.
func Save(path string, f Flags) error {
	b, err := toml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Watch loads the given flag file whenever it is written or created and
// calls fn with the result, until ctx is done. It watches the directory
// rather than the file so that editors that replace the file are handled.
// Parse errors are logged and the previous flags stay in effect. Watch
// blocks, so it should typically be called in a separate goroutine; it
// returns nil when ctx is done.
//
// A common fn is one that calls [SetDefault]; callers must then ensure
// that no construction is running when the flags change.
func Watch(ctx context.Context, path string, fn func(Flags)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("featureflags: creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("featureflags: watching %s: %w", path, err)
	}
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			f, err := Load(path)
			if err != nil {
				slog.Error("featureflags: reloading flags", "path", path, "err", err)
				continue
			}
			slog.Debug("featureflags: reloaded flags", "path", path, "iteratorSetter", f.IteratorSetter)
			fn(f)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("featureflags: watcher error", "err", err)
		}
	}
}
