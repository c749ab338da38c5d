// Package mediaserver provides clients for the media servers whose deletions
// are reconciled: connection testing and server-log retrieval for the scanner.
package mediaserver

import (
	"context"

	"github.com/rs/zerolog"
)

// configurable is implemented by all server clients to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring server clients.
type Option func(configurable)

// WithLogger sets the logger for any server client.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// LogFile describes one server log file.
type LogFile struct {
	// Name is the file name used to fetch the log.
	Name string
	// Size is the file size in bytes.
	Size int64
}

// Server is the interface media-server clients must implement.
type Server interface {
	// Name returns the configured name of this server instance.
	Name() string

	// Type returns the type of server (e.g., "emby", "jellyfin").
	Type() string

	// TestConnection tests the connection to the server.
	TestConnection(ctx context.Context) error

	// ListRecentLogs returns the server's log files, most recent first.
	ListRecentLogs(ctx context.Context) ([]LogFile, error)

	// FetchLog returns the full text of one log file.
	FetchLog(ctx context.Context, name string) (string, error)
}

// Registry holds all configured media servers.
type Registry struct {
	servers map[string]Server
}

// NewRegistry creates a new media-server registry.
func NewRegistry() *Registry {
	return &Registry{
		servers: make(map[string]Server),
	}
}

// Register adds a server to the registry.
func (r *Registry) Register(name string, s Server) {
	r.servers[name] = s
}

// Get returns a server by name.
func (r *Registry) Get(name string) (Server, bool) {
	s, ok := r.servers[name]
	return s, ok
}

// All returns all registered servers.
func (r *Registry) All() map[string]Server {
	return r.servers
}
