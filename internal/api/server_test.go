package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/api"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/mediaserver"
	mediareaptesting "github.com/mediareap/mediareap/internal/testing"
	"github.com/mediareap/mediareap/internal/timeline"
)

type stubHistory struct {
	entries []ledger.DeletionEntry
	deleted []string
}

func (s *stubHistory) List(_ context.Context) ([]ledger.DeletionEntry, error) {
	return s.entries, nil
}

func (s *stubHistory) DeleteByKey(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

type stubStats struct {
	stats apitypes.Stats
}

func (s *stubStats) Stats(_ context.Context) (apitypes.Stats, error) {
	return s.stats, nil
}

type fixture struct {
	server  *api.Server
	bus     *events.Bus
	history *stubHistory
	stats   *stubStats
}

func newFixture(t *testing.T, opts ...api.Option) *fixture {
	t.Helper()

	bus := events.New()
	t.Cleanup(bus.Close)

	history := &stubHistory{}
	stats := &stubStats{}

	recorder := timeline.NewRecorder()
	recorder.Record(timeline.Event{
		Type:    timeline.EventRecordDeleted,
		Message: "ledger row removed",
		Path:    "/media/movies/Foo (2020)/Foo.mkv",
		Hash:    "abc123",
	})

	servers := mediaserver.NewRegistry()
	downloaders := download.NewRegistry()
	downloaders.Register("seedbox", mediareaptesting.NewMockDownloader("seedbox"))

	return &fixture{
		server:  api.New(bus, history, stats, recorder, servers, downloaders, opts...),
		bus:     bus,
		history: history,
		stats:   stats,
	}
}

func (f *fixture) request(method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Webhook(t *testing.T) {
	t.Run("publishes a deletion notice", func(t *testing.T) {
		f := newFixture(t)
		sub := f.bus.Subscribe(events.MediaDeleted)

		body := `{
			"Event": "library.deleted",
			"ItemType": "Movie",
			"ItemName": "Foo (2020)",
			"ItemPath": "F:\\emby\\Movies\\Foo (2020)\\Foo.mkv",
			"TmdbId": 123
		}`
		rec := f.request(http.MethodPost, "/api/webhook/emby-main", body, nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)

		select {
		case event := <-sub:
			notice, ok := event.Subject.(apitypes.DeletionNotice)
			require.True(t, ok)
			assert.Equal(t, "Foo (2020)", notice.Name)
			assert.Equal(t, "movie", notice.MediaType)
			assert.Equal(t, int64(123), notice.TmdbID)
			assert.Equal(t, "emby-main", notice.Origin)
		case <-time.After(time.Second):
			t.Fatal("no notice published")
		}
	})

	t.Run("acknowledges and drops non-deletion events", func(t *testing.T) {
		f := newFixture(t)
		sub := f.bus.Subscribe(events.MediaDeleted)

		rec := f.request(http.MethodPost, "/api/webhook/emby-main", `{"Event":"library.new"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		select {
		case event := <-sub:
			t.Fatalf("unexpected notice: %v", event.Subject)
		default:
		}
	})

	t.Run("refuses the notice when a subscriber buffer is full", func(t *testing.T) {
		bus := events.New(events.WithBufferSize(1))
		t.Cleanup(bus.Close)
		// Subscribed but never drained, so the second notice has nowhere
		// to go.
		_ = bus.Subscribe(events.MediaDeleted)

		server := api.New(bus, &stubHistory{}, &stubStats{}, timeline.NewRecorder(),
			mediaserver.NewRegistry(), download.NewRegistry())

		post := func() *httptest.ResponseRecorder {
			body := `{"Event":"library.deleted","ItemType":"Movie","ItemName":"Foo (2020)"}`
			req := httptest.NewRequest(http.MethodPost, "/api/webhook/emby-main", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)
			return rec
		}

		assert.Equal(t, http.StatusAccepted, post().Code)
		assert.Equal(t, http.StatusServiceUnavailable, post().Code)
	})

	t.Run("rejects invalid server names", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodPost, "/api/webhook/bad%20name", `{"Event":"library.deleted"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodPost, "/api/webhook/emby-main", `{not json`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Action(t *testing.T) {
	t.Run("publishes a deletion notice", func(t *testing.T) {
		f := newFixture(t)
		sub := f.bus.Subscribe(events.MediaDeleted)

		body := `{
			"action": "media.deleted",
			"media_type": "movie",
			"media_name": "Foo (2020)",
			"media_path": "/library/movies/Foo (2020)/Foo.mkv",
			"tmdb_id": 123
		}`
		rec := f.request(http.MethodPost, "/api/actions/deleted", body, nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)

		select {
		case event := <-sub:
			notice, ok := event.Subject.(apitypes.DeletionNotice)
			require.True(t, ok)
			assert.Equal(t, "Foo (2020)", notice.Name)
			assert.Equal(t, "action", notice.Origin)
		case <-time.After(time.Second):
			t.Fatal("no notice published")
		}
	})

	t.Run("drops other actions", func(t *testing.T) {
		f := newFixture(t)
		sub := f.bus.Subscribe(events.MediaDeleted)

		rec := f.request(http.MethodPost, "/api/actions/deleted", `{"action":"media.added"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		select {
		case event := <-sub:
			t.Fatalf("unexpected notice: %v", event.Subject)
		default:
		}
	})
}

func TestServer_History(t *testing.T) {
	t.Run("lists entries", func(t *testing.T) {
		f := newFixture(t)
		f.history.entries = []ledger.DeletionEntry{
			{
				UniqueKey: "Foo (2020):123:2026-02-01 12:00:00",
				Title:     "Foo (2020)",
				MediaKind: ledger.KindMovie,
				Path:      "/media/movies/Foo (2020)/Foo.mkv",
				DeletedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
			},
		}

		rec := f.request(http.MethodGet, "/api/history", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var entries []apitypes.HistoryEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "Foo (2020)", entries[0].Title)
		assert.Equal(t, "movie", entries[0].MediaType)
	})

	t.Run("deletes an entry by key", func(t *testing.T) {
		f := newFixture(t)

		key := url.PathEscape("Foo (2020):123:2026-02-01 12:00:00")
		rec := f.request(http.MethodDelete, "/api/history/"+key, "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Foo (2020):123:2026-02-01 12:00:00"}, f.history.deleted)
	})

	t.Run("requires the api token when configured", func(t *testing.T) {
		f := newFixture(t, api.WithAPIToken("secret"))

		rec := f.request(http.MethodDelete, "/api/history/somekey", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, f.history.deleted)

		rec = f.request(http.MethodDelete, "/api/history/somekey", "", map[string]string{"X-Api-Token": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"somekey"}, f.history.deleted)
	})
}

func TestServer_Stats(t *testing.T) {
	f := newFixture(t)
	f.stats.stats = apitypes.Stats{
		LedgerRecords:   10,
		EventsProcessed: 4,
		RecordsDeleted:  3,
	}

	rec := f.request(http.MethodGet, "/api/stats", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats apitypes.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.LedgerRecords)
	assert.Equal(t, 3, stats.RecordsDeleted)
}

func TestServer_Timeline(t *testing.T) {
	t.Run("returns all events", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodGet, "/api/timeline", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var entries []timeline.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.Len(t, entries, 1)
	})

	t.Run("filters by hash", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodGet, "/api/timeline?hash=abc123", "", nil)

		var entries []timeline.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.Len(t, entries, 1)

		rec = f.request(http.MethodGet, "/api/timeline?hash=nope", "", nil)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.Empty(t, entries)
	})
}

func TestServer_ListDownloaders(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/downloaders", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var clients []apitypes.DownloadClient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "seedbox", clients[0].Name)
	assert.Equal(t, "mock", clients[0].Type)
}

func TestServer_Index(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MediaReap")
}
