// Package file provides a file-based source.DataFetcher.
//
// The file is read at construction time and cached. Fetch returns a copy of the
// cached bytes, so a File source built on top of it sees a stable document until
// Refresh re-reads the file. Watch refreshes automatically whenever the file is
// written or recreated.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	src := source.NewFile("config.yaml", fetcher, yaml.NewParser())
//
//	go fetcher.Watch(ctx, func() { slog.Info("configuration reloaded") })
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
