package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/events"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		Server:   config.ServerConfig{Listen: "127.0.0.1:0"},
		Scan:     config.ScanConfig{Mode: "webhook", Interval: time.Minute, LogWindow: 1},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "mediareap.db")},
	}
}

func TestNew(t *testing.T) {
	t.Run("builds a webhook-mode server", func(t *testing.T) {
		s, err := New(testConfig(t), Options{})
		require.NoError(t, err)
		defer func() { _ = s.db.Close() }()

		assert.NotNil(t, s.apiServer)
		assert.NotNil(t, s.eventBus)
		// stats, events, reconcile; no log scanner in webhook mode
		assert.Len(t, s.controllers, 3)
	})

	t.Run("log mode adds the scanner", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Scan.Mode = "log"

		s, err := New(cfg, Options{})
		require.NoError(t, err)
		defer func() { _ = s.db.Close() }()

		assert.Len(t, s.controllers, 4)
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	s, err := New(testConfig(t), Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.Run(ctx)
	}()

	// Give the controllers and listener a moment to come up.
	time.Sleep(100 * time.Millisecond)

	s.PrepareShutdown()
	cancel()

	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	require.NoError(t, s.Shutdown(shutdownCtx))
}

type stubCounter struct {
	n int
}

func (s *stubCounter) Count(_ context.Context) (int, error) {
	return s.n, nil
}

func waitForStats(t *testing.T, collector *statsCollector, ok func(apitypes.Stats) bool) apitypes.Stats {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		stats, err := collector.Stats(context.Background())
		require.NoError(t, err)
		if ok(stats) {
			return stats
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("timed out waiting for stats")
	return apitypes.Stats{}
}

func TestStatsCollector(t *testing.T) {
	t.Run("accumulates counters from the bus", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()

		collector := newStatsCollector(bus, &stubCounter{n: 7}, &stubCounter{n: 2}, zerolog.Nop())
		require.NoError(t, collector.Start(context.Background()))
		defer func() { _ = collector.Stop() }()

		bus.Publish(events.Event{Type: events.MediaDeleted})
		bus.Publish(events.Event{
			Type: events.ReconcileCompleted,
			Data: map[string]any{"records_deleted": 2, "errors": 1},
		})
		bus.Publish(events.Event{Type: events.TorrentRemoved})
		bus.Publish(events.Event{Type: events.TorrentPaused})
		bus.Publish(events.Event{Type: events.ReconcileSkipped})

		stats := waitForStats(t, collector, func(s apitypes.Stats) bool {
			return s.EventsProcessed == 1 && s.RecordsDeleted == 2 && s.EventsSkipped == 1 &&
				s.TorrentsRemoved == 1 && s.TorrentsPaused == 1
		})

		assert.Equal(t, 1, stats.Errors)
		assert.Equal(t, 7, stats.LedgerRecords)
		assert.Equal(t, 2, stats.HistoryEntries)
	})

	t.Run("ignores unrelated events", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()

		collector := newStatsCollector(bus, &stubCounter{}, &stubCounter{}, zerolog.Nop())
		require.NoError(t, collector.Start(context.Background()))
		defer func() { _ = collector.Stop() }()

		bus.Publish(events.Event{Type: events.SystemStarted})
		bus.Publish(events.Event{Type: events.ScanCompleted})

		time.Sleep(50 * time.Millisecond)

		stats, err := collector.Stats(context.Background())
		require.NoError(t, err)
		assert.Zero(t, stats.EventsProcessed)
		assert.Zero(t, stats.RecordsDeleted)
	})
}
