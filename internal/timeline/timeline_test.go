package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/timeline"
)

func TestNewRecorder(t *testing.T) {
	t.Run("creates recorder with defaults", func(t *testing.T) {
		r := timeline.NewRecorder()
		require.NotNil(t, r)

		events := r.GetAll()
		assert.Empty(t, events)
	})

	t.Run("creates recorder with custom max events", func(t *testing.T) {
		r := timeline.NewRecorder(timeline.WithMaxEvents(5))
		require.NotNil(t, r)

		// Add 10 events
		for range 10 {
			r.Record(timeline.Event{
				Type:    timeline.EventNoticeReceived,
				Message: "test",
			})
		}

		events := r.GetAll()
		assert.Len(t, events, 5)
	})
}

func TestRecorder_Record(t *testing.T) {
	t.Run("records event with generated ID and timestamp", func(t *testing.T) {
		r := timeline.NewRecorder()

		before := time.Now()
		r.Record(timeline.Event{
			Type:    timeline.EventNoticeReceived,
			Message: "Test message",
		})
		after := time.Now()

		events := r.GetAll()
		require.Len(t, events, 1)

		event := events[0]
		assert.NotEmpty(t, event.ID)
		assert.True(t, event.Timestamp.After(before) || event.Timestamp.Equal(before))
		assert.True(t, event.Timestamp.Before(after) || event.Timestamp.Equal(after))
		assert.Equal(t, timeline.EventNoticeReceived, event.Type)
		assert.Equal(t, "Test message", event.Message)
	})

	t.Run("preserves provided ID and timestamp", func(t *testing.T) {
		r := timeline.NewRecorder()

		customID := "custom-id"
		customTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		r.Record(timeline.Event{
			ID:        customID,
			Timestamp: customTime,
			Type:      timeline.EventRecordDeleted,
			Message:   "Custom event",
		})

		events := r.GetAll()
		require.Len(t, events, 1)

		event := events[0]
		assert.Equal(t, customID, event.ID)
		assert.Equal(t, customTime, event.Timestamp)
	})

	t.Run("returns events newest first", func(t *testing.T) {
		r := timeline.NewRecorder()

		r.Record(timeline.Event{Type: timeline.EventNoticeReceived, Message: "first"})
		r.Record(timeline.Event{Type: timeline.EventRecordDeleted, Message: "second"})
		r.Record(timeline.Event{Type: timeline.EventReconcileComplete, Message: "third"})

		events := r.GetAll()
		require.Len(t, events, 3)

		assert.Equal(t, "third", events[0].Message)
		assert.Equal(t, "second", events[1].Message)
		assert.Equal(t, "first", events[2].Message)
	})
}

func TestRecorder_GetByPath(t *testing.T) {
	r := timeline.NewRecorder()

	r.Record(timeline.Event{Path: "/media/foo.mkv", Message: "event 1"})
	r.Record(timeline.Event{Path: "/media/bar.mkv", Message: "event 2"})
	r.Record(timeline.Event{Path: "/media/foo.mkv", Message: "event 3"})

	events := r.GetByPath("/media/foo.mkv")
	require.Len(t, events, 2)
	assert.Equal(t, "event 3", events[0].Message)
	assert.Equal(t, "event 1", events[1].Message)
}

func TestRecorder_GetByHash(t *testing.T) {
	r := timeline.NewRecorder()

	r.Record(timeline.Event{Hash: "abc123", Message: "event 1"})
	r.Record(timeline.Event{Hash: "def456", Message: "event 2"})
	r.Record(timeline.Event{Hash: "abc123", Message: "event 3"})

	events := r.GetByHash("abc123")
	require.Len(t, events, 2)
	assert.Equal(t, "event 3", events[0].Message)
	assert.Equal(t, "event 1", events[1].Message)
}

func TestRecorder_GetByDownloader(t *testing.T) {
	r := timeline.NewRecorder()

	r.Record(timeline.Event{Downloader: "seedbox-1", Message: "event 1"})
	r.Record(timeline.Event{Downloader: "seedbox-2", Message: "event 2"})
	r.Record(timeline.Event{Downloader: "seedbox-1", Message: "event 3"})

	events := r.GetByDownloader("seedbox-1")
	require.Len(t, events, 2)
	assert.Equal(t, "event 3", events[0].Message)
	assert.Equal(t, "event 1", events[1].Message)
}

func TestRecorder_EventTypes(t *testing.T) {
	// Test that all event types are defined as expected
	types := []timeline.EventType{
		timeline.EventSystemStarted,
		timeline.EventServerConnected,
		timeline.EventDownloaderConnect,
		timeline.EventNoticeReceived,
		timeline.EventRecordDeleted,
		timeline.EventFileRemoved,
		timeline.EventDirsPruned,
		timeline.EventTorrentRemoved,
		timeline.EventTorrentPaused,
		timeline.EventReconcileSkipped,
		timeline.EventReconcileComplete,
		timeline.EventScanStarted,
		timeline.EventScanComplete,
		timeline.EventHistoryPurged,
		timeline.EventError,
	}

	for _, et := range types {
		assert.NotEmpty(t, string(et))
	}
}
