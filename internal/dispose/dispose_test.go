package dispose_test

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/ledger"
	mediareaptest "github.com/mediareap/mediareap/internal/testing"
)

// ulidAt builds a ULID at a fixed millisecond so registration order is
// deterministic in tests.
func ulidAt(ms uint64) ulid.ULID {
	return ulid.MustNew(ms, rand.Reader)
}

type stubHistory struct {
	byHash  map[string][]ledger.DownloadFile
	byPath  map[string][]ledger.DownloadFile
	hashErr error
	pathErr error
}

func (s *stubHistory) FilesByHash(_ context.Context, hash string) ([]ledger.DownloadFile, error) {
	if s.hashErr != nil {
		return nil, s.hashErr
	}
	return s.byHash[hash], nil
}

func (s *stubHistory) FilesByFullPath(_ context.Context, fullPath string) ([]ledger.DownloadFile, error) {
	if s.pathErr != nil {
		return nil, s.pathErr
	}
	return s.byPath[fullPath], nil
}

type stubLinks struct {
	links   map[string][]apitypes.TorrentLink
	getErr  map[string]error
	deleted []string
}

func (s *stubLinks) Get(_ context.Context, rootHash string) ([]apitypes.TorrentLink, error) {
	if err := s.getErr[rootHash]; err != nil {
		return nil, err
	}
	return s.links[rootHash], nil
}

func (s *stubLinks) Delete(_ context.Context, rootHash string) error {
	s.deleted = append(s.deleted, rootHash)
	delete(s.links, rootHash)
	return nil
}

// newEngine wires an engine over the stubs with one mock downloader named
// "qbit" registered as the default.
func newEngine(history *stubHistory, links *stubLinks) (*dispose.Engine, *mediareaptest.MockDownloader) {
	client := mediareaptest.NewMockDownloader("qbit")
	registry := download.NewRegistry()
	registry.Register("qbit", client)

	engine := dispose.New(history, links, registry, dispose.WithDefaultDownloader("qbit"))
	return engine, client
}

func TestDisposeRemovesWhenNoFileIsKept(t *testing.T) {
	history := &stubHistory{
		byHash: map[string][]ledger.DownloadFile{
			"abc123": {
				{ID: ulidAt(100), DownloadHash: "abc123", State: 0},
				{ID: ulidAt(101), DownloadHash: "abc123", State: 0},
			},
		},
	}
	links := &stubLinks{}
	engine, client := newEngine(history, links)

	outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "abc123", "qbit")

	require.True(t, outcome.Succeeded())
	assert.True(t, outcome.FullyRemoved)
	assert.Equal(t, 1, outcome.Removed())
	assert.Zero(t, outcome.Paused())

	require.Len(t, client.RemoveCalls, 1)
	assert.Equal(t, "abc123", client.RemoveCalls[0].Hash)
	assert.True(t, client.RemoveCalls[0].DeleteFiles)
	assert.Empty(t, client.PauseCalls)
}

func TestDisposePausesWhenAnyFileIsKept(t *testing.T) {
	history := &stubHistory{
		byHash: map[string][]ledger.DownloadFile{
			"abc123": {
				{ID: ulidAt(100), DownloadHash: "abc123", State: ledger.StateKept},
				{ID: ulidAt(101), DownloadHash: "abc123", State: 0},
			},
		},
	}
	links := &stubLinks{}
	engine, client := newEngine(history, links)

	outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "abc123", "qbit")

	require.True(t, outcome.Succeeded())
	assert.False(t, outcome.FullyRemoved)
	assert.Equal(t, 1, outcome.Paused())
	assert.Zero(t, outcome.Removed())

	assert.Equal(t, []string{"abc123"}, client.Paused())
	assert.Empty(t, client.RemoveCalls)
}

func TestDisposeCrossSeedCascade(t *testing.T) {
	t.Run("applies the root action through the whole chain", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"h1": {{ID: ulidAt(100), DownloadHash: "h1"}},
			},
		}
		links := &stubLinks{
			links: map[string][]apitypes.TorrentLink{
				"h1": {{Downloader: "qbit", Hash: "h2"}},
				"h2": {{Downloader: "qbit", Hash: "h3"}},
			},
		}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "h1", "qbit")

		require.True(t, outcome.Succeeded())
		assert.Equal(t, []string{"h1", "h2", "h3"}, client.Removed())
		assert.Equal(t, 3, outcome.Removed())

		// Link sets are cleared because the action was remove.
		assert.ElementsMatch(t, []string{"h1", "h2"}, links.deleted)

		// Back-references name the hash that led to each torrent.
		froms := make(map[string]string)
		for _, d := range outcome.Torrents {
			froms[d.Hash] = d.CascadedFrom
		}
		assert.Equal(t, "", froms["h1"])
		assert.Equal(t, "h1", froms["h2"])
		assert.Equal(t, "h2", froms["h3"])
	})

	t.Run("pause action leaves link records in place", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"h1": {{ID: ulidAt(100), DownloadHash: "h1", State: ledger.StateKept}},
			},
		}
		links := &stubLinks{
			links: map[string][]apitypes.TorrentLink{
				"h1": {{Downloader: "qbit", Hash: "h2"}},
			},
		}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "h1", "qbit")

		require.True(t, outcome.Succeeded())
		assert.Equal(t, []string{"h1", "h2"}, client.Paused())
		assert.Empty(t, links.deleted)
	})

	t.Run("terminates on a link cycle without revisiting", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"hA": {{ID: ulidAt(100), DownloadHash: "hA"}},
			},
		}
		links := &stubLinks{
			links: map[string][]apitypes.TorrentLink{
				"hA": {{Downloader: "qbit", Hash: "hB"}},
				"hB": {{Downloader: "qbit", Hash: "hA"}},
			},
		}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "hA", "qbit")

		require.True(t, outcome.Succeeded())
		assert.Equal(t, []string{"hA", "hB"}, client.Removed())
		assert.Len(t, outcome.Torrents, 2)
	})

	t.Run("a broken link store stops that branch only", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"h1": {{ID: ulidAt(100), DownloadHash: "h1"}},
			},
		}
		links := &stubLinks{
			getErr: map[string]error{"h1": errors.New("collaborator store down")},
		}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "h1", "qbit")

		// The root torrent was still disposed; the error is captured.
		assert.Equal(t, []string{"h1"}, client.Removed())
		assert.False(t, outcome.Succeeded())
		assert.Len(t, outcome.Errors, 1)
	})
}

func TestDisposeCollectionCascade(t *testing.T) {
	t.Run("later siblings re-evaluate the kept rule independently", func(t *testing.T) {
		sourcePath := "/downloads/Show.Pack"
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"current": {{ID: ulidAt(100), DownloadHash: "current", FullPath: sourcePath}},
				"later":   {{ID: ulidAt(200), DownloadHash: "later", FullPath: sourcePath, State: ledger.StateKept}},
				"earlier": {{ID: ulidAt(50), DownloadHash: "earlier", FullPath: sourcePath}},
			},
			byPath: map[string][]ledger.DownloadFile{
				sourcePath: {
					{ID: ulidAt(50), DownloadHash: "earlier", FullPath: sourcePath},
					{ID: ulidAt(100), DownloadHash: "current", FullPath: sourcePath},
					{ID: ulidAt(200), DownloadHash: "later", FullPath: sourcePath, State: ledger.StateKept},
				},
			},
		}
		links := &stubLinks{}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindSeries, sourcePath, "current", "qbit")

		require.True(t, outcome.Succeeded())
		// The current torrent had nothing kept and was removed; the later
		// sibling had a kept file and was paused; the earlier sibling was
		// left alone.
		assert.Equal(t, []string{"current"}, client.Removed())
		assert.Equal(t, []string{"later"}, client.Paused())
		assert.True(t, outcome.FullyRemoved)

		// Siblings back-reference the torrent whose disposal found them.
		froms := make(map[string]string)
		for _, d := range outcome.Torrents {
			froms[d.Hash] = d.CascadedFrom
		}
		assert.Equal(t, "", froms["current"])
		assert.Equal(t, "current", froms["later"])
	})

	t.Run("movies never run the collection cascade", func(t *testing.T) {
		sourcePath := "/downloads/Foo"
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"current": {{ID: ulidAt(100), DownloadHash: "current", FullPath: sourcePath}},
			},
			byPath: map[string][]ledger.DownloadFile{
				sourcePath: {
					{ID: ulidAt(200), DownloadHash: "later", FullPath: sourcePath},
				},
			},
		}
		links := &stubLinks{}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, sourcePath, "current", "qbit")

		require.True(t, outcome.Succeeded())
		assert.Equal(t, []string{"current"}, client.Removed())
	})

	t.Run("sibling cross-seed links cascade too", func(t *testing.T) {
		sourcePath := "/downloads/Show.Pack"
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"current": {{ID: ulidAt(100), DownloadHash: "current", FullPath: sourcePath}},
				"later":   {{ID: ulidAt(200), DownloadHash: "later", FullPath: sourcePath}},
			},
			byPath: map[string][]ledger.DownloadFile{
				sourcePath: {
					{ID: ulidAt(100), DownloadHash: "current", FullPath: sourcePath},
					{ID: ulidAt(200), DownloadHash: "later", FullPath: sourcePath},
				},
			},
		}
		links := &stubLinks{
			links: map[string][]apitypes.TorrentLink{
				"later": {{Downloader: "qbit", Hash: "reseed"}},
			},
		}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindSeries, sourcePath, "current", "qbit")

		require.True(t, outcome.Succeeded())
		assert.ElementsMatch(t, []string{"current", "later", "reseed"}, client.Removed())
		assert.Equal(t, 3, outcome.Removed())
	})
}

func TestDisposeErrors(t *testing.T) {
	t.Run("history store failure aborts before any downloader call", func(t *testing.T) {
		history := &stubHistory{hashErr: errors.New("db gone")}
		links := &stubLinks{}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "abc123", "qbit")

		assert.False(t, outcome.Succeeded())
		assert.Empty(t, client.RemoveCalls)
		assert.Empty(t, client.PauseCalls)
	})

	t.Run("unknown downloader is a captured error", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"abc123": {{ID: ulidAt(100), DownloadHash: "abc123"}},
			},
		}
		links := &stubLinks{}
		engine, _ := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "abc123", "nonexistent")

		assert.False(t, outcome.Succeeded())
		require.Len(t, outcome.Errors, 1)
		assert.Contains(t, outcome.Errors[0].Error(), "nonexistent")
	})

	t.Run("downloader failure does not stop the cascade", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"h1": {{ID: ulidAt(100), DownloadHash: "h1"}},
			},
		}
		links := &stubLinks{
			links: map[string][]apitypes.TorrentLink{
				"h1": {{Downloader: "qbit", Hash: "h2"}},
			},
		}
		engine, client := newEngine(history, links)
		client.OnRemove = func(_ context.Context, hash string, _ bool) error {
			if hash == "h1" {
				return errors.New("client unavailable")
			}
			return nil
		}

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "h1", "qbit")

		assert.False(t, outcome.Succeeded())
		// h2 was still removed despite h1 failing.
		assert.Equal(t, []string{"h2"}, client.Removed())
		assert.Len(t, outcome.Torrents, 1)
	})

	t.Run("empty downloader name falls back to the default", func(t *testing.T) {
		history := &stubHistory{
			byHash: map[string][]ledger.DownloadFile{
				"abc123": {{ID: ulidAt(100), DownloadHash: "abc123"}},
			},
		}
		links := &stubLinks{}
		engine, client := newEngine(history, links)

		outcome := engine.Dispose(t.Context(), ledger.KindMovie, "/downloads/foo", "abc123", "")

		require.True(t, outcome.Succeeded())
		assert.Equal(t, []string{"abc123"}, client.Removed())
		require.Len(t, outcome.Torrents, 1)
		assert.Equal(t, "qbit", outcome.Torrents[0].Downloader)
	})
}
