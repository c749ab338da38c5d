package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/fileutil"
)

// localRemover implements Remover on the local filesystem.
// It is private and only exposed via the Remover interface.
type localRemover struct {
	logger zerolog.Logger
}

// setLogger implements configurable for shared options.
func (r *localRemover) setLogger(logger zerolog.Logger) {
	r.logger = logger
}

// NewLocal creates a remover for the local filesystem.
func NewLocal(opts ...Option) Remover {
	r := &localRemover{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Name returns the name of the backend.
func (r *localRemover) Name() string {
	return string(BackendLocal)
}

// Exists reports whether a file or directory exists at path.
func (r *localRemover) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFile deletes a single file.
func (r *localRemover) RemoveFile(_ context.Context, path string) error {
	err := os.Remove(path)
	if err == nil {
		r.logger.Debug().Str("path", path).Msg("removed file")
	}
	return err
}

// RemoveTree deletes a directory and everything below it.
func (r *localRemover) RemoveTree(_ context.Context, path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		r.logger.Debug().Str("path", path).Msg("removed directory")
	}
	return err
}

// ContainsMediaFile reports whether any file under dir carries a media extension.
func (r *localRemover) ContainsMediaFile(_ context.Context, dir string) (bool, error) {
	found := false
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && fileutil.HasMediaExt(path) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// PrepareShutdown is a no-op for the local backend.
func (r *localRemover) PrepareShutdown() {}

// Close is a no-op for the local backend.
func (r *localRemover) Close() error {
	return nil
}
