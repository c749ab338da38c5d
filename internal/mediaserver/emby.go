package mediaserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/config"
)

// embyClient implements the Server interface for Emby and Jellyfin, which
// share the same System/Info and System/Logs API surface.
// It is private and only exposed via the Server interface.
type embyClient struct {
	name       string
	serverType string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// embySystemInfo represents the response from the System/Info endpoint.
type embySystemInfo struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
}

// embyLogFile represents one entry from the System/Logs endpoint.
type embyLogFile struct {
	Name         string    `json:"Name"`
	Size         int64     `json:"Size"`
	DateModified time.Time `json:"DateModified"`
}

// setLogger implements configurable for shared options.
func (c *embyClient) setLogger(logger zerolog.Logger) {
	c.logger = logger
}

// newEmbyClient creates a client for an Emby-compatible server.
func newEmbyClient(name, serverType string, cfg config.MediaServerConfig, opts ...Option) Server {
	c := &embyClient{
		name:       name,
		serverType: serverType,
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewEmby creates a new Emby client and returns it as Server.
func NewEmby(name string, cfg config.MediaServerConfig, opts ...Option) Server {
	return newEmbyClient(name, "emby", cfg, opts...)
}

// NewJellyfin creates a new Jellyfin client and returns it as Server.
func NewJellyfin(name string, cfg config.MediaServerConfig, opts ...Option) Server {
	return newEmbyClient(name, "jellyfin", cfg, opts...)
}

// Name returns the configured name of this server instance.
func (c *embyClient) Name() string {
	return c.name
}

// Type returns the type of server.
func (c *embyClient) Type() string {
	return c.serverType
}

// TestConnection tests the connection to the server.
func (c *embyClient) TestConnection(ctx context.Context) error {
	body, err := c.get(ctx, "/System/Info")
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.serverType, err)
	}

	var info embySystemInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug().
		Str("name", c.name).
		Str("server", info.ServerName).
		Str("version", info.Version).
		Msgf("%s connection test successful", c.serverType)

	return nil
}

// ListRecentLogs returns the server's log files, most recently modified first.
func (c *embyClient) ListRecentLogs(ctx context.Context) ([]LogFile, error) {
	body, err := c.get(ctx, "/System/Logs")
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	var files []embyLogFile
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("failed to decode log list: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].DateModified.After(files[j].DateModified)
	})

	logs := make([]LogFile, 0, len(files))
	for _, f := range files {
		logs = append(logs, LogFile{Name: f.Name, Size: f.Size})
	}
	return logs, nil
}

// FetchLog returns the full text of one log file.
func (c *embyClient) FetchLog(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, "/System/Logs/Log?name="+url.QueryEscape(name))
	if err != nil {
		return "", fmt.Errorf("failed to fetch log %s: %w", name, err)
	}
	return string(body), nil
}

func (c *embyClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Emby-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", c.serverType, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
