// Package download provides interfaces and implementations for download clients.
package download

import (
	"context"

	"github.com/rs/zerolog"
)

// configurable is implemented by all downloaders to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring downloaders.
type Option func(configurable)

// WithLogger sets the logger for any downloader.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Downloader is the interface that download clients must implement.
// The disposal engine only needs torrent-level remove and pause; everything
// else about the client's state stays on the client's side.
type Downloader interface {
	// Name returns the configured name of this downloader instance.
	Name() string

	// Type returns the type of downloader (e.g., "qbittorrent").
	Type() string

	// Connect establishes a connection to the download client.
	Connect(ctx context.Context) error

	// Close closes the connection to the download client.
	Close() error

	// RemoveTorrent removes a torrent by info hash. When deleteFiles is true
	// the client also deletes the downloaded data.
	RemoveTorrent(ctx context.Context, hash string, deleteFiles bool) error

	// PauseTorrent pauses a torrent by info hash without touching its data.
	PauseTorrent(ctx context.Context, hash string) error
}

// Registry holds all configured downloaders.
type Registry struct {
	downloaders map[string]Downloader
}

// NewRegistry creates a new downloader registry.
func NewRegistry() *Registry {
	return &Registry{
		downloaders: make(map[string]Downloader),
	}
}

// Register adds a downloader to the registry.
func (r *Registry) Register(name string, d Downloader) {
	r.downloaders[name] = d
}

// Get returns a downloader by name.
func (r *Registry) Get(name string) (Downloader, bool) {
	d, ok := r.downloaders[name]
	return d, ok
}

// All returns all registered downloaders.
func (r *Registry) All() map[string]Downloader {
	return r.downloaders
}
