package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/match"
	"github.com/mediareap/mediareap/internal/pathmap"
	"github.com/mediareap/mediareap/internal/reconcile"
)

func waitForEvent(t *testing.T, sub events.Subscription) events.Event {
	t.Helper()
	select {
	case event := <-sub:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for bus event")
		return events.Event{}
	}
}

func TestController(t *testing.T) {
	rules := []pathmap.Rule{{Source: "F:/emby", Canonical: "/media/emby"}}

	t.Run("reconciles a published deletion notice", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/emby/Movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		bus := events.New()
		defer bus.Close()
		done := bus.Subscribe(events.ReconcileCompleted)

		c := reconcile.NewController(h.build(), bus, rules)
		require.NoError(t, c.Start(t.Context()))
		defer func() { _ = c.Stop() }()

		bus.Publish(events.Event{
			Type: events.MediaDeleted,
			Subject: apitypes.DeletionNotice{
				MediaType: "movie",
				Name:      "Foo (2020)",
				Path:      `F:\emby\Movies\Foo (2020)\Foo.mkv`,
				TmdbID:    123,
				Origin:    "emby-main",
			},
		})

		event := waitForEvent(t, done)
		assert.Equal(t, 1, event.Data["records_deleted"])
		assert.Equal(t, "identity (movie tmdb 123)", event.Data["tier"])

		ev, ok := event.Subject.(reconcile.Event)
		require.True(t, ok)
		assert.Equal(t, "/media/emby/Movies/Foo (2020)/Foo.mkv", ev.Path)
	})

	t.Run("publishes skip outcomes with the guard reason", func(t *testing.T) {
		h := newHarness()
		h.matcher.result = match.Result{Tier: "no match"}

		bus := events.New()
		defer bus.Close()
		done := bus.Subscribe(events.ReconcileSkipped)

		c := reconcile.NewController(h.build(), bus, rules)
		require.NoError(t, c.Start(t.Context()))
		defer func() { _ = c.Stop() }()

		bus.Publish(events.Event{
			Type:    events.MediaDeleted,
			Subject: apitypes.DeletionNotice{MediaType: "movie", Name: "Unknown", Path: "/media/emby/Movies/Unknown.mkv"},
		})

		event := waitForEvent(t, done)
		assert.Equal(t, "no match", event.Data["reason"])
	})

	t.Run("publishes one torrent event per disposition", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/emby/Movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.disposer.outcome = dispose.Outcome{
			Torrents: []dispose.Disposition{
				{Hash: "abc123", Downloader: "seedbox", Action: dispose.ActionRemove},
				{Hash: "def456", Downloader: "seedbox", Action: dispose.ActionPause, CascadedFrom: "abc123"},
			},
		}

		bus := events.New()
		defer bus.Close()
		removed := bus.Subscribe(events.TorrentRemoved)
		paused := bus.Subscribe(events.TorrentPaused)

		c := reconcile.NewController(h.build(), bus, rules)
		require.NoError(t, c.Start(t.Context()))
		defer func() { _ = c.Stop() }()

		bus.Publish(events.Event{
			Type: events.MediaDeleted,
			Subject: apitypes.DeletionNotice{
				MediaType: "movie",
				Name:      "Foo (2020)",
				Path:      record.DestPath,
				TmdbID:    123,
			},
		})

		removeEvent := waitForEvent(t, removed)
		assert.Equal(t, "abc123", removeEvent.Data["hash"])

		pauseEvent := waitForEvent(t, paused)
		assert.Equal(t, "def456", pauseEvent.Data["hash"])
		assert.Equal(t, "abc123", pauseEvent.Data["cascaded_from"])
	})

	t.Run("ignores events with an unexpected subject", func(t *testing.T) {
		h := newHarness()

		bus := events.New()
		defer bus.Close()

		c := reconcile.NewController(h.build(), bus, rules)
		require.NoError(t, c.Start(t.Context()))

		bus.Publish(events.Event{Type: events.MediaDeleted, Subject: "not a notice"})

		require.NoError(t, c.Stop())
		assert.Zero(t, h.matcher.calls)
	})
}
