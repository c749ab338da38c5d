//go:build e2e

// Package e2e provides end-to-end testing infrastructure.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/server"
	testutil "github.com/mediareap/mediareap/internal/testing"
)

// Test configuration constants.
const (
	serverReadyTimeout    = 10 * time.Second
	serverShutdownTimeout = 10 * time.Second
	defaultHTTPTimeout    = 10 * time.Second
	pollSleepInterval     = 100 * time.Millisecond

	// embyToken is the API key the harness configures for the mock Emby server.
	embyToken = "test-api-key"

	// canonicalPrefix is the canonical library root ledger rows use. The
	// library-path rule maps the media server's view of the library onto it.
	canonicalPrefix = "/media/emby"

	// serverViewPrefix is how the media server reports library paths in
	// deletion events.
	serverViewPrefix = `F:\emby`
)

// Harness provides a complete test environment for end-to-end tests.
// It manages mock servers, the source directory, and the application server.
type Harness struct {
	t *testing.T

	// Mock servers
	QBittorrent *testutil.QBittorrentServer
	Emby        *testutil.EmbyServer

	// Application server
	Server *server.Server

	// Database client (shortcut to Server.DB())
	DB *generated.Client

	// File paths
	TempDir   string
	SourceDir string

	// Internal
	ctx       context.Context
	ctxCancel context.CancelFunc
	logger    zerolog.Logger
	baseURL   string
	client    *http.Client
}

// Config configures the E2E test harness.
type Config struct {
	// LogMode switches deletion ingestion from webhooks to periodic log
	// scanning against the mock Emby server.
	LogMode bool

	// ScanInterval is the log-scan poll interval when LogMode is set.
	// Shorter = faster tests.
	ScanInterval time.Duration

	// Logger for the test harness
	Logger zerolog.Logger
}

// DefaultConfig returns sensible defaults for E2E tests.
func DefaultConfig() Config {
	return Config{
		ScanInterval: 500 * time.Millisecond,
		Logger:       zerolog.Nop(),
	}
}

// NewHarness creates a new E2E test harness.
// Call Start() to initialize all components.
func NewHarness(t *testing.T, cfg Config) *Harness {
	t.Helper()

	return &Harness{
		t:      t,
		logger: cfg.Logger,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Start initializes all components of the test harness.
// This starts the mock servers and the application server.
func (h *Harness) Start(ctx context.Context, cfg Config) {
	h.t.Helper()

	// Create cancellable context for cleanup
	h.ctx, h.ctxCancel = context.WithCancel(ctx)

	// Create temp directories
	h.TempDir = h.t.TempDir()
	h.SourceDir = filepath.Join(h.TempDir, "seedbox")
	require.NoError(h.t, os.MkdirAll(h.SourceDir, 0o755))

	// Start mock servers
	h.QBittorrent = testutil.NewQBittorrentServer()
	h.Emby = testutil.NewEmbyServer("emby-main", embyToken)

	// Build application config
	appCfg := h.buildConfig(cfg)

	// Start application server
	var err error
	h.Server, err = server.New(appCfg, server.Options{
		Logger: cfg.Logger,
	})
	require.NoError(h.t, err, "failed to create server")

	h.DB = h.Server.DB()

	// Start server in background
	go func() {
		_ = h.Server.Run(h.ctx)
	}()

	h.waitForServer()
}

// buildConfig creates the application config for the test.
func (h *Harness) buildConfig(cfg Config) config.Config {
	scanInterval := cfg.ScanInterval
	if scanInterval == 0 {
		scanInterval = 500 * time.Millisecond
	}

	scan := config.ScanConfig{
		Mode:      "webhook",
		Interval:  config.DefaultScanInterval,
		LogWindow: config.DefaultLogWindow,
	}
	if cfg.LogMode {
		scan = config.ScanConfig{
			Mode:      "log",
			Interval:  scanInterval,
			LogWindow: 1,
		}
	}

	return config.Config{
		Server: config.ServerConfig{
			Listen: "127.0.0.1:0", // Random port
		},
		Database: config.DatabaseConfig{
			Path: filepath.Join(h.TempDir, "mediareap.db"),
		},
		MediaServers: map[string]config.MediaServerConfig{
			"emby-main": {
				Type:        "emby",
				URL:         h.Emby.URL,
				APIKey:      embyToken,
				HTTPTimeout: defaultHTTPTimeout,
			},
		},
		Downloaders: map[string]config.DownloaderConfig{
			"seedbox": {
				Type:        "qbittorrent",
				URL:         h.QBittorrent.URL,
				Username:    "admin",
				Password:    "secret",
				HTTPTimeout: defaultHTTPTimeout,
			},
		},
		Reconcile: config.ReconcileConfig{
			DeleteSource:      true,
			Notify:            false,
			LibraryPaths:      serverViewPrefix + ":" + canonicalPrefix,
			DefaultDownloader: "seedbox",
		},
		Scan: scan,
	}
}

// waitForServer blocks until the API answers its health check.
func (h *Harness) waitForServer() {
	h.t.Helper()

	deadline := time.Now().Add(serverReadyTimeout)
	for time.Now().Before(deadline) {
		if addr := h.Server.ListenerAddr(); addr != nil {
			h.baseURL = "http://" + addr.String()

			resp, err := h.client.Get(h.baseURL + "/api/health")
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(pollSleepInterval)
	}

	h.t.Fatal("timeout waiting for the API server to become ready")
}

// Stop shuts down all components.
func (h *Harness) Stop() {
	h.t.Helper()

	// Cancel context to trigger shutdown
	if h.ctxCancel != nil {
		h.ctxCancel()
	}

	// Shutdown server gracefully
	if h.Server != nil {
		h.Server.PrepareShutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		_ = h.Server.Shutdown(shutdownCtx)
	}

	// Close mock servers
	if h.QBittorrent != nil {
		h.QBittorrent.Close()
	}
	if h.Emby != nil {
		h.Emby.Close()
	}
}

// CreateSourceFile creates a file under the harness source directory and
// returns its absolute path. The path is relative to the source root.
func (h *Harness) CreateSourceFile(relativePath string) string {
	h.t.Helper()

	path := filepath.Join(h.SourceDir, relativePath)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte("test data"), 0o644))
	return path
}

// SeedTransfer inserts one transfer-ledger row. A zero TransferredAt is
// backdated an hour so seeded rows pass the re-transfer guard.
func (h *Harness) SeedTransfer(rec ledger.TransferRecord) {
	h.t.Helper()

	transferredAt := rec.TransferredAt
	if transferredAt.IsZero() {
		transferredAt = time.Now().Add(-time.Hour)
	}

	_, err := h.DB.TransferRecord.Create().
		SetMediaKind(transferrecord.MediaKind(rec.MediaKind)).
		SetTitle(rec.Title).
		SetDestPath(rec.DestPath).
		SetSourcePath(rec.SourcePath).
		SetTmdbID(rec.TmdbID).
		SetSeason(rec.Season).
		SetEpisode(rec.Episode).
		SetDownloadHash(rec.DownloadHash).
		SetDownloader(rec.Downloader).
		SetTransferredAt(transferredAt).
		SetImageURL(rec.ImageURL).
		Save(h.ctx)
	require.NoError(h.t, err, "failed to seed transfer record")
}

// SeedDownloadFile inserts one download-history row.
func (h *Harness) SeedDownloadFile(file ledger.DownloadFile) {
	h.t.Helper()

	_, err := h.DB.DownloadFile.Create().
		SetDownloadHash(file.DownloadHash).
		SetDownloader(file.Downloader).
		SetFilePath(file.FilePath).
		SetFullPath(file.FullPath).
		SetState(file.State).
		Save(h.ctx)
	require.NoError(h.t, err, "failed to seed download file")
}

// PostWebhook posts a media server webhook payload and returns the response
// status code.
func (h *Harness) PostWebhook(server string, payload apitypes.WebhookPayload) int {
	h.t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(h.t, err)

	url := fmt.Sprintf("%s/api/webhook/%s", h.baseURL, server)
	resp, err := h.client.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(h.t, err, "failed to post webhook")
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode
}

// GetHistory fetches the deletion history through the API.
func (h *Harness) GetHistory() []apitypes.HistoryEntry {
	h.t.Helper()

	resp, err := h.client.Get(h.baseURL + "/api/history")
	require.NoError(h.t, err, "failed to fetch history")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(h.t, http.StatusOK, resp.StatusCode)

	var entries []apitypes.HistoryEntry
	require.NoError(h.t, json.NewDecoder(resp.Body).Decode(&entries))
	return entries
}

// GetStats fetches the aggregate stats through the API.
func (h *Harness) GetStats() apitypes.Stats {
	h.t.Helper()

	resp, err := h.client.Get(h.baseURL + "/api/stats")
	require.NoError(h.t, err, "failed to fetch stats")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(h.t, http.StatusOK, resp.StatusCode)

	var stats apitypes.Stats
	require.NoError(h.t, json.NewDecoder(resp.Body).Decode(&stats))
	return stats
}

// WaitForHistoryEntry polls the history API until an entry satisfies match.
func (h *Harness) WaitForHistoryEntry(match func(apitypes.HistoryEntry) bool, timeout time.Duration) apitypes.HistoryEntry {
	h.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, entry := range h.GetHistory() {
			if match(entry) {
				return entry
			}
		}
		time.Sleep(pollSleepInterval)
	}

	h.t.Fatal("timeout waiting for deletion-history entry")
	return apitypes.HistoryEntry{}
}

// WaitForLedgerGone polls until no ledger row remains for the canonical path.
func (h *Harness) WaitForLedgerGone(destPath string, timeout time.Duration) {
	h.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n, err := h.DB.TransferRecord.Query().
			Where(transferrecord.DestPathEQ(destPath)).
			Count(h.ctx)
		require.NoError(h.t, err, "failed to count ledger rows")

		if n == 0 {
			return
		}
		time.Sleep(pollSleepInterval)
	}

	h.t.Fatalf("timeout waiting for ledger row %s to be deleted", destPath)
}

// LedgerCount returns the number of rows left in the transfer ledger.
func (h *Harness) LedgerCount() int {
	h.t.Helper()

	n, err := h.DB.TransferRecord.Query().Count(h.ctx)
	require.NoError(h.t, err, "failed to count ledger rows")
	return n
}
