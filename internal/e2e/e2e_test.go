//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/e2e"
	"github.com/mediareap/mediareap/internal/ledger"
	testutil "github.com/mediareap/mediareap/internal/testing"
)

// TestE2E_WebhookDeletionCascade exercises the complete reconciliation flow:
// 1. A movie deletion webhook arrives from the media server.
// 2. The event path is canonicalized and matched against the ledger.
// 3. The ledger row, the source file, and the download history are removed.
// 4. The torrent is deleted from qBittorrent with its data.
// 5. The deletion shows up in the history API.
func TestE2E_WebhookDeletionCascade(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	cfg.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	const (
		torrentHash = "abc123def456"
		destPath    = "/media/emby/Movies/Foo (2020)/Foo.mkv"
		webhookPath = `F:\emby\Movies\Foo (2020)\Foo.mkv`
	)

	// Seed the seedbox-side file and the ledger state behind it.
	sourcePath := h.CreateSourceFile("downloads/Foo.2020.1080p/Foo.mkv")
	h.SeedTransfer(ledger.TransferRecord{
		MediaKind:    ledger.KindMovie,
		Title:        "Foo",
		DestPath:     destPath,
		SourcePath:   sourcePath,
		TmdbID:       123,
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
	})
	h.SeedDownloadFile(ledger.DownloadFile{
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
		FilePath:     "Foo.2020.1080p/Foo.mkv",
		FullPath:     sourcePath,
	})
	h.QBittorrent.AddTorrent(&testutil.FakeTorrent{
		Hash:  torrentHash,
		Name:  "Foo.2020.1080p",
		State: "uploading",
	})

	// Deliver the deletion webhook.
	status := h.PostWebhook("emby-main", apitypes.WebhookPayload{
		Event:    "library.deleted",
		ItemType: "Movie",
		ItemName: "Foo (2020)",
		ItemPath: webhookPath,
		TmdbID:   123,
	})
	require.Equal(t, http.StatusAccepted, status)

	// The torrent must be removed together with its data.
	call, err := h.QBittorrent.WaitForCall("delete", torrentHash, 30*time.Second)
	require.NoError(t, err, "qBittorrent should receive a delete call")
	assert.True(t, call.DeleteFiles, "torrent data should be deleted with the torrent")
	assert.Nil(t, h.QBittorrent.GetTorrent(torrentHash), "torrent should be gone from the client")

	// Ledger row and source file are gone.
	h.WaitForLedgerGone(destPath, 30*time.Second)
	_, err = os.Stat(sourcePath)
	assert.True(t, os.IsNotExist(err), "source file should be deleted")

	// The deletion is visible through the history API.
	entry := h.WaitForHistoryEntry(func(e apitypes.HistoryEntry) bool {
		return e.Title == "Foo (2020)"
	}, 30*time.Second)
	assert.Equal(t, "movie", entry.MediaType)
	assert.Equal(t, destPath, entry.Path)
}

// TestE2E_KeptFilePausesTorrent verifies the kept-file rule end to end: a
// torrent that still references a retained file is paused, never removed.
func TestE2E_KeptFilePausesTorrent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	cfg.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	const (
		torrentHash = "kept123"
		destPath    = "/media/emby/Movies/Bar (2021)/Bar.mkv"
	)

	sourcePath := h.CreateSourceFile("downloads/Bar.2021/Bar.mkv")
	keptPath := h.CreateSourceFile("downloads/Bar.2021/Extras/bonus.mkv")

	h.SeedTransfer(ledger.TransferRecord{
		MediaKind:    ledger.KindMovie,
		Title:        "Bar",
		DestPath:     destPath,
		SourcePath:   sourcePath,
		TmdbID:       456,
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
	})
	h.SeedDownloadFile(ledger.DownloadFile{
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
		FilePath:     "Bar.2021/Bar.mkv",
		FullPath:     sourcePath,
	})
	h.SeedDownloadFile(ledger.DownloadFile{
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
		FilePath:     "Bar.2021/Extras/bonus.mkv",
		FullPath:     keptPath,
		State:        ledger.StateKept,
	})
	h.QBittorrent.AddTorrent(&testutil.FakeTorrent{
		Hash:  torrentHash,
		Name:  "Bar.2021",
		State: "uploading",
	})

	status := h.PostWebhook("emby-main", apitypes.WebhookPayload{
		Event:    "library.deleted",
		ItemType: "Movie",
		ItemName: "Bar (2021)",
		ItemPath: `F:\emby\Movies\Bar (2021)\Bar.mkv`,
		TmdbID:   456,
	})
	require.Equal(t, http.StatusAccepted, status)

	// The torrent is paused, not deleted.
	_, err := h.QBittorrent.WaitForCall("pause", torrentHash, 30*time.Second)
	require.NoError(t, err, "qBittorrent should receive a pause call")

	torrent := h.QBittorrent.GetTorrent(torrentHash)
	require.NotNil(t, torrent, "torrent must survive the kept-file rule")
	assert.Equal(t, "pausedUP", torrent.State)

	// The ledger row still goes away; only the torrent is spared.
	h.WaitForLedgerGone(destPath, 30*time.Second)

	for _, call := range h.QBittorrent.GetCalls() {
		assert.NotEqual(t, "delete", call.Endpoint, "no delete call may reach the client")
	}

	// The retained file survives the source cleanup.
	_, err = os.Stat(keptPath)
	assert.NoError(t, err, "kept file must survive")
}

// TestE2E_UnmatchedDeletionIsSkipped verifies that a deletion with no ledger
// counterpart mutates nothing and is counted as skipped.
func TestE2E_UnmatchedDeletionIsSkipped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	cfg.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	// One unrelated ledger row that must survive.
	h.SeedTransfer(ledger.TransferRecord{
		MediaKind: ledger.KindMovie,
		Title:     "Unrelated",
		DestPath:  "/media/emby/Movies/Unrelated (2018)/Unrelated.mkv",
		TmdbID:    789,
	})

	status := h.PostWebhook("emby-main", apitypes.WebhookPayload{
		Event:    "library.deleted",
		ItemType: "Movie",
		ItemName: "Never Transferred (2022)",
		ItemPath: `F:\emby\Movies\Never Transferred (2022)\Never.mkv`,
	})
	require.Equal(t, http.StatusAccepted, status)

	// The skip shows up in the stats; the ledger and history stay untouched.
	require.Eventually(t, func() bool {
		return h.GetStats().EventsSkipped >= 1
	}, 30*time.Second, 100*time.Millisecond, "skip should be counted")

	assert.Equal(t, 1, h.LedgerCount(), "unrelated ledger row must survive")
	assert.Empty(t, h.GetHistory(), "no deletion-history entry for a skipped event")
	assert.Empty(t, h.QBittorrent.GetCalls(), "no disposal call for a skipped event")
}

// TestE2E_LogScanDeletion runs the server in log-scan mode and verifies a
// removal line in the Emby server log drives the same reconciliation flow as
// a webhook.
func TestE2E_LogScanDeletion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	cfg.LogMode = true
	cfg.ScanInterval = 500 * time.Millisecond
	cfg.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	const (
		torrentHash = "logscan789"
		destPath    = "/media/emby/Movies/Old Movie (2019)/Old.mkv"
	)

	sourcePath := h.CreateSourceFile("downloads/Old.Movie.2019/Old.mkv")
	h.SeedTransfer(ledger.TransferRecord{
		MediaKind:    ledger.KindMovie,
		Title:        "Old Movie",
		DestPath:     destPath,
		SourcePath:   sourcePath,
		TmdbID:       999,
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
	})
	h.SeedDownloadFile(ledger.DownloadFile{
		DownloadHash: torrentHash,
		Downloader:   "seedbox",
		FilePath:     "Old.Movie.2019/Old.mkv",
		FullPath:     sourcePath,
	})
	h.QBittorrent.AddTorrent(&testutil.FakeTorrent{
		Hash:  torrentHash,
		Name:  "Old.Movie.2019",
		State: "uploading",
	})

	// Publish the removal through the server log. UTC keeps the line's
	// timestamp ahead of the backdated transfer regardless of the local zone.
	stamp := time.Now().UTC().Add(-time.Minute).Format("2006-01-02 15:04:05.000")
	line := stamp + ` Info Server: Removing item from database, Type: Movie, Name: Old Movie (2019), Path: F:\emby\Movies\Old Movie (2019)\Old.mkv, Id: 42`
	h.Emby.AddLog(testutil.FakeLogFile{
		Name:         "embyserver.txt",
		Content:      line + "\n",
		DateModified: time.Now(),
	})

	// The scanner picks the line up and the cascade runs.
	call, err := h.QBittorrent.WaitForCall("delete", torrentHash, 30*time.Second)
	require.NoError(t, err, "qBittorrent should receive a delete call")
	assert.True(t, call.DeleteFiles)

	h.WaitForLedgerGone(destPath, 30*time.Second)
	_, err = os.Stat(sourcePath)
	assert.True(t, os.IsNotExist(err), "source file should be deleted")

	entry := h.WaitForHistoryEntry(func(e apitypes.HistoryEntry) bool {
		return e.Title == "Old Movie (2019)"
	}, 30*time.Second)
	assert.Equal(t, destPath, entry.Path)

	// The scanner fetched the log through the mock server.
	assert.Contains(t, h.Emby.FetchedLogs(), "embyserver.txt")

	// A second pass must not replay the same removal: the scan mark advanced.
	time.Sleep(2 * time.Second)
	deletes := 0
	for _, c := range h.QBittorrent.GetCalls() {
		if c.Endpoint == "delete" {
			deletes++
		}
	}
	assert.Equal(t, 1, deletes, "removal must not be replayed on later passes")
}
