package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/pathmap"
	"github.com/mediareap/mediareap/internal/reconcile"
)

func TestNoticeFromWebhook(t *testing.T) {
	t.Run("converts a deletion webhook", func(t *testing.T) {
		season, episode := 1, 3
		payload := apitypes.WebhookPayload{
			Event:     "library.deleted",
			ItemType:  "Episode",
			ItemName:  "Show S01E03",
			ItemPath:  `F:\emby\TV\Show\Season 01\Show S01E03.mkv`,
			TmdbID:    456,
			SeasonID:  &season,
			EpisodeID: &episode,
			UtcDate:   "2026-02-01 12:00:00.000",
		}

		notice, ok := reconcile.NoticeFromWebhook(payload, "emby-main")
		require.True(t, ok)

		assert.Equal(t, "series", notice.MediaType)
		assert.Equal(t, "Show S01E03", notice.Name)
		assert.Equal(t, payload.ItemPath, notice.Path)
		assert.Equal(t, int64(456), notice.TmdbID)
		assert.Equal(t, &season, notice.Season)
		assert.Equal(t, &episode, notice.Episode)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), notice.Time)
		assert.Equal(t, "emby-main", notice.Origin)
	})

	t.Run("drops non-deletion events", func(t *testing.T) {
		for _, event := range []string{"library.new", "playback.start", ""} {
			_, ok := reconcile.NoticeFromWebhook(apitypes.WebhookPayload{Event: event}, "emby-main")
			assert.False(t, ok, "event %q should be dropped", event)
		}
	})

	t.Run("movie item types map to the movie kind", func(t *testing.T) {
		for _, itemType := range []string{"Movie", "movie", "Movies"} {
			notice, ok := reconcile.NoticeFromWebhook(apitypes.WebhookPayload{
				Event:    "library.deleted",
				ItemType: itemType,
			}, "emby-main")
			require.True(t, ok)
			assert.Equal(t, "movie", notice.MediaType, "item type %q", itemType)
		}
	})

	t.Run("series seasons and episodes map to the series kind", func(t *testing.T) {
		for _, itemType := range []string{"Series", "Season", "Episode", ""} {
			notice, ok := reconcile.NoticeFromWebhook(apitypes.WebhookPayload{
				Event:    "library.deleted",
				ItemType: itemType,
			}, "emby-main")
			require.True(t, ok)
			assert.Equal(t, "series", notice.MediaType, "item type %q", itemType)
		}
	})
}

func TestNoticeFromAction(t *testing.T) {
	t.Run("converts a deletion action", func(t *testing.T) {
		payload := apitypes.ActionPayload{
			Action:    "media.deleted",
			MediaType: "movie",
			MediaName: "Foo (2020)",
			MediaPath: "/library/movies/Foo (2020)/Foo.mkv",
			TmdbID:    123,
			Timestamp: "2026-02-01T12:00:00Z",
		}

		notice, ok := reconcile.NoticeFromAction(payload, "plugin")
		require.True(t, ok)

		assert.Equal(t, "movie", notice.MediaType)
		assert.Equal(t, "Foo (2020)", notice.Name)
		assert.Equal(t, int64(123), notice.TmdbID)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), notice.Time)
	})

	t.Run("drops other actions", func(t *testing.T) {
		_, ok := reconcile.NoticeFromAction(apitypes.ActionPayload{Action: "media.added"}, "plugin")
		assert.False(t, ok)
	})
}

func TestEventFromNotice(t *testing.T) {
	rules := []pathmap.Rule{{Source: "F:/emby", Canonical: "/media/emby"}}

	t.Run("canonicalizes the path", func(t *testing.T) {
		notice := apitypes.DeletionNotice{
			MediaType: "movie",
			Name:      "Foo (2020)",
			Path:      `F:\emby\Movies\Foo (2020)\Foo.mkv`,
			TmdbID:    123,
			Origin:    "emby-main",
		}

		ev := reconcile.EventFromNotice(notice, rules)

		assert.Equal(t, ledger.KindMovie, ev.Kind)
		assert.Equal(t, notice.Path, ev.RawPath)
		assert.Equal(t, "/media/emby/Movies/Foo (2020)/Foo.mkv", ev.Path)
		assert.Equal(t, 123, ev.TmdbID)
	})

	t.Run("non-movie media types map to series", func(t *testing.T) {
		ev := reconcile.EventFromNotice(apitypes.DeletionNotice{MediaType: "series"}, nil)
		assert.Equal(t, ledger.KindSeries, ev.Kind)
	})
}

func TestParseTimestampLayouts(t *testing.T) {
	want := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp string
		want      time.Time
	}{
		{name: "emby log layout", timestamp: "2026-02-01 12:00:00.000", want: want},
		{name: "rfc3339", timestamp: "2026-02-01T12:00:00Z", want: want},
		{name: "layout without millis", timestamp: "2026-02-01 12:00:00", want: want},
		{name: "garbage fails open to zero", timestamp: "yesterday-ish", want: time.Time{}},
		{name: "empty fails open to zero", timestamp: "", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice, ok := reconcile.NoticeFromWebhook(apitypes.WebhookPayload{
				Event:   "library.deleted",
				UtcDate: tt.timestamp,
			}, "emby-main")
			require.True(t, ok)
			assert.True(t, notice.Time.Equal(tt.want), "got %v, want %v", notice.Time, tt.want)
		})
	}
}
