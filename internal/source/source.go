// Package source provides removers for the source files behind transferred
// media: the seedbox- or local-resident files a reconciled deletion cleans up.
package source

import (
	"context"

	"github.com/rs/zerolog"
)

// configurable is implemented by all removers to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring removers.
type Option func(configurable)

// WithLogger sets the logger for any remover.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Backend represents a source filesystem backend type.
type Backend string

const (
	// BackendLocal operates on the local filesystem.
	BackendLocal Backend = "local"
	// BackendSFTP operates on a remote filesystem over SFTP via rclone.
	BackendSFTP Backend = "sftp"
)

// Remover is the filesystem surface the reconciler uses for source cleanup.
// It also satisfies fileutil.FS for ancestor pruning.
type Remover interface {
	// Name returns the name of the backend.
	Name() string

	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// RemoveFile deletes a single file.
	RemoveFile(ctx context.Context, path string) error

	// RemoveTree deletes a directory and everything below it.
	RemoveTree(ctx context.Context, path string) error

	// ContainsMediaFile reports whether any file under dir (recursively)
	// carries a recognized media extension.
	ContainsMediaFile(ctx context.Context, dir string) (bool, error)

	// PrepareShutdown is called before context cancellation to allow the
	// backend to suppress expected error messages during graceful shutdown.
	PrepareShutdown()

	// Close releases any resources held by the remover.
	Close() error
}
