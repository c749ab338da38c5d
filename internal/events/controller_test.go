package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/timeline"
)

// waitForEvents polls the recorder until it holds n events or the deadline
// passes.
func waitForEvents(t *testing.T, recorder timeline.Recorder, n int) []timeline.Event {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if recorded := recorder.GetAll(); len(recorded) >= n {
			return recorded
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %d timeline events", n)
	return nil
}

func TestEventsController(t *testing.T) {
	t.Run("records all events", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		recorder := timeline.NewRecorder()

		c := events.NewController(bus, recorder, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		bus.Publish(events.Event{
			Type: events.SystemStarted,
		})

		bus.Publish(events.Event{
			Type: events.MediaDeleted,
			Subject: apitypes.DeletionNotice{
				Name:   "Foo (2020)",
				Path:   "/media/movies/Foo (2020)/Foo.mkv",
				Origin: "emby-main",
			},
		})

		bus.Publish(events.Event{
			Type: events.TorrentRemoved,
			Data: map[string]any{
				"title":      "Foo (2020)",
				"hash":       "abc123",
				"downloader": "seedbox",
			},
		})

		recorded := waitForEvents(t, recorder, 3)
		assert.Len(t, recorded, 3)
	})

	t.Run("generates correct messages", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		recorder := timeline.NewRecorder()

		c := events.NewController(bus, recorder, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		bus.Publish(events.Event{
			Type: events.MediaDeleted,
			Subject: apitypes.DeletionNotice{
				Name:   "Foo (2020)",
				Path:   "/media/movies/Foo (2020)/Foo.mkv",
				Origin: "emby-main",
			},
		})

		recorded := waitForEvents(t, recorder, 1)
		require.Len(t, recorded, 1)

		entry := recorded[0]
		assert.Equal(t, timeline.EventNoticeReceived, entry.Type)
		assert.Equal(t, "Deletion notice received: Foo (2020)", entry.Message)
		assert.Equal(t, "Foo (2020)", entry.Title)
		assert.Equal(t, "/media/movies/Foo (2020)/Foo.mkv", entry.Path)
		assert.Equal(t, "emby-main", entry.Server)
	})

	t.Run("extracts details from event data", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		recorder := timeline.NewRecorder()

		c := events.NewController(bus, recorder, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		bus.Publish(events.Event{
			Type: events.ReconcileCompleted,
			Data: map[string]any{
				"title":           "Foo (2020)",
				"path":            "/media/movies/Foo (2020)/Foo.mkv",
				"records_deleted": 2,
			},
		})

		recorded := waitForEvents(t, recorder, 1)
		require.Len(t, recorded, 1)

		entry := recorded[0]
		assert.Equal(t, timeline.EventReconcileComplete, entry.Type)
		assert.Equal(t, "Reconciled deletion: Foo (2020) (2 records)", entry.Message)
		assert.Equal(t, "/media/movies/Foo (2020)/Foo.mkv", entry.Path)
		assert.Equal(t, 2, entry.Details["records_deleted"])
	})

	t.Run("skip reason lands in the message", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		recorder := timeline.NewRecorder()

		c := events.NewController(bus, recorder, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		bus.Publish(events.Event{
			Type: events.ReconcileSkipped,
			Data: map[string]any{
				"title":  "Foo (2020)",
				"reason": "path still exists",
			},
		})

		recorded := waitForEvents(t, recorder, 1)
		require.Len(t, recorded, 1)
		assert.Equal(t, "Deletion skipped: Foo (2020) (path still exists)", recorded[0].Message)
	})
}
