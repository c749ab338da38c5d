package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/config"
)

// qbittorrentClient implements the Downloader interface for qBittorrent.
// It is private and only exposed via the Downloader interface.
type qbittorrentClient struct {
	name       string
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// setLogger implements configurable for shared options.
func (c *qbittorrentClient) setLogger(logger zerolog.Logger) {
	c.logger = logger
}

// NewQBittorrent creates a new qBittorrent client and returns it as Downloader.
func NewQBittorrent(name string, cfg config.DownloaderConfig, opts ...Option) Downloader {
	jar, _ := cookiejar.New(nil)

	c := &qbittorrentClient{
		name:     name,
		baseURL:  strings.TrimSuffix(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.HTTPTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the configured name of this downloader instance.
func (c *qbittorrentClient) Name() string {
	return c.name
}

// Type returns the downloader type.
func (c *qbittorrentClient) Type() string {
	return "qbittorrent"
}

// Connect establishes a connection to the qBittorrent API.
func (c *qbittorrentClient) Connect(ctx context.Context) error {
	if err := c.login(ctx); err != nil {
		return fmt.Errorf("qbittorrent login failed: %w", err)
	}

	c.logger.Info().
		Str("name", c.name).
		Str("url", c.baseURL).
		Msg("connected to qbittorrent")

	return nil
}

// Close closes all connections.
func (c *qbittorrentClient) Close() error {
	// HTTP client doesn't need explicit closing
	return nil
}

func (c *qbittorrentClient) login(ctx context.Context) error {
	// If no credentials provided, skip authentication
	// (qBittorrent may be configured without auth)
	if c.username == "" && c.password == "" {
		c.logger.Debug().Msg("no credentials provided, skipping authentication")

		// Verify we can access the API without auth
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/app/version", nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusForbidden {
			return errors.New("authentication required but no credentials provided")
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("failed to connect: status %d", resp.StatusCode)
		}

		return nil
	}

	data := url.Values{
		"username": {c.username},
		"password": {c.password},
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/api/v2/auth/login",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "Ok." {
		return fmt.Errorf("login failed: %s", string(body))
	}

	return nil
}

// RemoveTorrent removes a torrent by hash via the torrents/delete endpoint.
func (c *qbittorrentClient) RemoveTorrent(ctx context.Context, hash string, deleteFiles bool) error {
	data := url.Values{
		"hashes":      {hash},
		"deleteFiles": {fmt.Sprintf("%t", deleteFiles)},
	}

	if err := c.post(ctx, "/api/v2/torrents/delete", data); err != nil {
		return fmt.Errorf("failed to remove torrent %s: %w", hash, err)
	}

	c.logger.Info().
		Str("hash", hash).
		Bool("delete_files", deleteFiles).
		Msg("removed torrent")

	return nil
}

// PauseTorrent pauses a torrent by hash. qBittorrent v5 renamed the endpoint
// to torrents/stop; the old name is tried first and the new one on 404.
func (c *qbittorrentClient) PauseTorrent(ctx context.Context, hash string) error {
	data := url.Values{
		"hashes": {hash},
	}

	err := c.post(ctx, "/api/v2/torrents/pause", data)
	if errors.Is(err, errNotFound) {
		err = c.post(ctx, "/api/v2/torrents/stop", data)
	}
	if err != nil {
		return fmt.Errorf("failed to pause torrent %s: %w", hash, err)
	}

	c.logger.Info().
		Str("hash", hash).
		Msg("paused torrent")

	return nil
}

// errNotFound marks a 404 from the API, used for endpoint fallback.
var errNotFound = errors.New("endpoint not found")

func (c *qbittorrentClient) post(ctx context.Context, path string, data url.Values) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+path,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
