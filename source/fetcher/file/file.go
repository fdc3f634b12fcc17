package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements source.DataFetcher for a single file.
type Fetcher struct {
	mu       sync.RWMutex
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := read(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

func read(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return data, nil
}

// Path returns the cleaned file path.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Refresh re-reads the file. The cached data is kept when reading fails.
func (f *Fetcher) Refresh() error {
	data, err := read(f.filepath)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.data = data
	f.mu.Unlock()

	return nil
}

// Watch refreshes the cached data whenever the file is written or created and then
// calls onChange. The parent directory is watched so that editors replacing the file
// are noticed. Watch blocks until ctx is done.
func (f *Fetcher) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	absPath, err := filepath.Abs(f.filepath)
	if err != nil {
		return fmt.Errorf("resolving path %q: %w", f.filepath, err)
	}

	err = watcher.Add(filepath.Dir(absPath))
	if err != nil {
		return fmt.Errorf("watching %q: %w", absPath, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != absPath || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			err := f.Refresh()
			if err != nil {
				slog.Warn("refreshing watched file failed", "path", absPath, "error", err)

				continue
			}

			slog.Debug("watched file refreshed", "path", absPath)

			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("file watcher error", "path", absPath, "error", err)
		}
	}
}
