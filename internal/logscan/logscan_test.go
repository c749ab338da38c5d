package logscan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/logscan"
	"github.com/mediareap/mediareap/internal/mediaserver"
)

type stubServer struct {
	name     string
	logs     []mediaserver.LogFile
	files    map[string]string
	fetchErr map[string]error
	fetched  []string
}

func (s *stubServer) Name() string { return s.name }

func (s *stubServer) Type() string { return "emby" }

func (s *stubServer) TestConnection(_ context.Context) error { return nil }

func (s *stubServer) ListRecentLogs(_ context.Context) ([]mediaserver.LogFile, error) {
	return s.logs, nil
}

func (s *stubServer) FetchLog(_ context.Context, name string) (string, error) {
	s.fetched = append(s.fetched, name)
	if err := s.fetchErr[name]; err != nil {
		return "", err
	}
	return s.files[name], nil
}

type stubMarks struct {
	marks map[string]time.Time
	sets  []time.Time
}

func newStubMarks() *stubMarks {
	return &stubMarks{marks: make(map[string]time.Time)}
}

func (s *stubMarks) Get(_ context.Context, server string) (time.Time, error) {
	return s.marks[server], nil
}

func (s *stubMarks) Set(_ context.Context, server string, lastSeen time.Time) error {
	s.marks[server] = lastSeen
	s.sets = append(s.sets, lastSeen)
	return nil
}

const sampleLog = `2026-02-01 11:00:00.000 Info Server: ItemRefreshed, Name: Something
2026-02-01 12:00:00.000 Info Server: Removing item from database, Type: Movie, Name: Foo (2020), Path: /media/movies/Foo (2020)/Foo.mkv, Id: 42
2026-02-01 12:05:00.000 Info Server: Removing item from database, Type: Episode, Name: Show S01E03, Path: /media/tv/Show/Season 01/Show S01E03.mkv, Id: 43
2026-02-01 12:10:00.000 Info Server: Playback started
`

func newScanner(srv mediaserver.Server, marks logscan.Marks, bus *events.Bus, opts ...logscan.Option) *logscan.Scanner {
	registry := mediaserver.NewRegistry()
	registry.Register(srv.Name(), srv)
	return logscan.New(registry, marks, bus, opts...)
}

func collectNotices(t *testing.T, sub events.Subscription, n int) []apitypes.DeletionNotice {
	t.Helper()

	var notices []apitypes.DeletionNotice
	deadline := time.After(5 * time.Second)
	for len(notices) < n {
		select {
		case event := <-sub:
			notice, ok := event.Subject.(apitypes.DeletionNotice)
			require.True(t, ok)
			notices = append(notices, notice)
		case <-deadline:
			t.Fatalf("timed out: got %d of %d notices", len(notices), n)
		}
	}
	return notices
}

func TestScanner_ScanAll(t *testing.T) {
	t.Run("publishes one notice per removal line", func(t *testing.T) {
		srv := &stubServer{
			name:  "emby-main",
			logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
			files: map[string]string{"embyserver.txt": sampleLog},
		}
		marks := newStubMarks()
		bus := events.New()
		defer bus.Close()
		deleted := bus.Subscribe(events.MediaDeleted)
		completed := bus.Subscribe(events.ScanCompleted)

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())

		notices := collectNotices(t, deleted, 2)

		movie := notices[0]
		assert.Equal(t, "movie", movie.MediaType)
		assert.Equal(t, "Foo (2020)", movie.Name)
		assert.Equal(t, "/media/movies/Foo (2020)/Foo.mkv", movie.Path)
		assert.Equal(t, "emby-main", movie.Origin)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), movie.Time)
		assert.Nil(t, movie.Season)

		episode := notices[1]
		assert.Equal(t, "series", episode.MediaType)
		require.NotNil(t, episode.Season)
		require.NotNil(t, episode.Episode)
		assert.Equal(t, 1, *episode.Season)
		assert.Equal(t, 3, *episode.Episode)

		event := <-completed
		assert.Equal(t, "emby-main", event.Data["server"])
		assert.Equal(t, 2, event.Data["notices"])
	})

	t.Run("advances the scan mark to the newest removal", func(t *testing.T) {
		srv := &stubServer{
			name:  "emby-main",
			logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
			files: map[string]string{"embyserver.txt": sampleLog},
		}
		marks := newStubMarks()
		bus := events.New()
		defer bus.Close()

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())

		require.Len(t, marks.sets, 1)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 5, 0, 0, time.UTC), marks.sets[0])
	})

	t.Run("drops removals at or before the mark", func(t *testing.T) {
		srv := &stubServer{
			name:  "emby-main",
			logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
			files: map[string]string{"embyserver.txt": sampleLog},
		}
		marks := newStubMarks()
		// Mark sits exactly on the first removal; only the second passes.
		marks.marks["emby-main"] = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
		bus := events.New()
		defer bus.Close()
		deleted := bus.Subscribe(events.MediaDeleted)

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())

		notices := collectNotices(t, deleted, 1)
		assert.Equal(t, "Show S01E03", notices[0].Name)
		select {
		case extra := <-deleted:
			t.Fatalf("unexpected extra notice: %v", extra.Subject)
		default:
		}
	})

	t.Run("second pass over the same log publishes nothing", func(t *testing.T) {
		srv := &stubServer{
			name:  "emby-main",
			logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
			files: map[string]string{"embyserver.txt": sampleLog},
		}
		marks := newStubMarks()
		bus := events.New()
		defer bus.Close()
		deleted := bus.Subscribe(events.MediaDeleted)

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())
		s.ScanAll(t.Context())

		notices := collectNotices(t, deleted, 2)
		assert.Len(t, notices, 2)
		select {
		case extra := <-deleted:
			t.Fatalf("unexpected extra notice: %v", extra.Subject)
		default:
		}
	})

	t.Run("holds the mark when a subscriber misses a notice", func(t *testing.T) {
		srv := &stubServer{
			name:  "emby-main",
			logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
			files: map[string]string{"embyserver.txt": sampleLog},
		}
		marks := newStubMarks()
		bus := events.New(events.WithBufferSize(1))
		defer bus.Close()
		deleted := bus.Subscribe(events.MediaDeleted)

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())

		// Only the first removal fit the subscriber buffer; the mark stays
		// behind the second one instead of skipping past it.
		require.Len(t, marks.sets, 1)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), marks.sets[0])

		notices := collectNotices(t, deleted, 1)
		assert.Equal(t, "Foo (2020)", notices[0].Name)

		// Once the subscriber drained, the next pass replays the missed
		// removal and the mark catches up.
		s.ScanAll(t.Context())

		notices = collectNotices(t, deleted, 1)
		assert.Equal(t, "Show S01E03", notices[0].Name)
		require.Len(t, marks.sets, 2)
		assert.Equal(t, time.Date(2026, 2, 1, 12, 5, 0, 0, time.UTC), marks.sets[1])
	})

	t.Run("honors the log window oldest first", func(t *testing.T) {
		srv := &stubServer{
			name: "emby-main",
			logs: []mediaserver.LogFile{
				{Name: "embyserver.txt"},
				{Name: "embyserver-1.txt"},
				{Name: "embyserver-2.txt"},
			},
			files: map[string]string{
				"embyserver.txt":   "",
				"embyserver-1.txt": "",
				"embyserver-2.txt": "",
			},
		}
		marks := newStubMarks()
		bus := events.New()
		defer bus.Close()

		s := newScanner(srv, marks, bus, logscan.WithLogWindow(2))
		s.ScanAll(t.Context())

		assert.Equal(t, []string{"embyserver-1.txt", "embyserver.txt"}, srv.fetched)
	})

	t.Run("continues past a log file that fails to fetch", func(t *testing.T) {
		srv := &stubServer{
			name: "emby-main",
			logs: []mediaserver.LogFile{
				{Name: "embyserver.txt"},
				{Name: "embyserver-1.txt"},
			},
			files:    map[string]string{"embyserver.txt": sampleLog},
			fetchErr: map[string]error{"embyserver-1.txt": errors.New("boom")},
		}
		marks := newStubMarks()
		bus := events.New()
		defer bus.Close()
		deleted := bus.Subscribe(events.MediaDeleted)

		s := newScanner(srv, marks, bus)
		s.ScanAll(t.Context())

		notices := collectNotices(t, deleted, 2)
		assert.Len(t, notices, 2)
	})
}

func TestScanner_StartStop(t *testing.T) {
	srv := &stubServer{
		name:  "emby-main",
		logs:  []mediaserver.LogFile{{Name: "embyserver.txt"}},
		files: map[string]string{"embyserver.txt": sampleLog},
	}
	marks := newStubMarks()
	bus := events.New()
	defer bus.Close()
	deleted := bus.Subscribe(events.MediaDeleted)

	s := newScanner(srv, marks, bus, logscan.WithInterval(time.Hour))
	require.NoError(t, s.Start(t.Context()))

	// The first pass runs immediately on start.
	notices := collectNotices(t, deleted, 2)
	assert.Len(t, notices, 2)

	require.NoError(t, s.Stop())
}
