package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/match"
)

// stubFinder records the queries it receives and answers them from a fixed
// result function.
type stubFinder struct {
	queries []ledger.TransferQuery
	answer  func(q ledger.TransferQuery) ([]ledger.TransferRecord, error)
}

func (s *stubFinder) Find(_ context.Context, q ledger.TransferQuery) ([]ledger.TransferRecord, error) {
	s.queries = append(s.queries, q)
	if s.answer == nil {
		return nil, nil
	}
	return s.answer(q)
}

func intPtr(v int) *int {
	return &v
}

func TestSeasonToken(t *testing.T) {
	assert.Equal(t, "S01", match.SeasonToken(1))
	assert.Equal(t, "S12", match.SeasonToken(12))
}

func TestEpisodeToken(t *testing.T) {
	assert.Equal(t, "E3", match.EpisodeToken(3))
	assert.Equal(t, "E12", match.EpisodeToken(12))
}

func TestMatchIdentityTier(t *testing.T) {
	t.Run("movie pins tmdb id and destination path", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(q ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				return []ledger.TransferRecord{{Title: "Foo", DestPath: q.DestPath}}, nil
			},
		}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind:   ledger.KindMovie,
			Path:   "/media/emby/Movies/Foo (2020)/Foo.mkv",
			TmdbID: 123,
		})
		require.NoError(t, err)
		require.True(t, result.Matched())
		assert.Contains(t, result.Tier, "identity")
		assert.Contains(t, result.Tier, "123")

		require.Len(t, finder.queries, 1)
		assert.Equal(t, ledger.TransferQuery{
			MediaKind: ledger.KindMovie,
			TmdbID:    123,
			DestPath:  "/media/emby/Movies/Foo (2020)/Foo.mkv",
		}, finder.queries[0])
	})

	t.Run("series with season and episode uses tokens", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				return []ledger.TransferRecord{{Title: "Show"}}, nil
			},
		}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind:    ledger.KindSeries,
			Path:    "/media/tv/Show/S01E03.mkv",
			TmdbID:  789,
			Season:  intPtr(1),
			Episode: intPtr(3),
		})
		require.NoError(t, err)
		require.True(t, result.Matched())

		require.Len(t, finder.queries, 1)
		assert.Equal(t, "S01", finder.queries[0].Season)
		assert.Equal(t, "E3", finder.queries[0].Episode)
		// Token queries never constrain the destination path.
		assert.Empty(t, finder.queries[0].DestPath)
	})

	t.Run("series with season only constrains the season token", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				return []ledger.TransferRecord{{Title: "Show"}}, nil
			},
		}
		m := match.New(finder)

		_, err := m.Match(t.Context(), match.Request{
			Kind:   ledger.KindSeries,
			Path:   "/media/tv/Show/Season 01",
			TmdbID: 789,
			Season: intPtr(1),
		})
		require.NoError(t, err)

		require.Len(t, finder.queries, 1)
		assert.Equal(t, "S01", finder.queries[0].Season)
		assert.Empty(t, finder.queries[0].Episode)
	})

	t.Run("bare series reference matches on tmdb id alone", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				return []ledger.TransferRecord{{Title: "Show"}, {Title: "Show"}}, nil
			},
		}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind:   ledger.KindSeries,
			Path:   "/media/tv/Show",
			TmdbID: 789,
		})
		require.NoError(t, err)
		assert.Len(t, result.Records, 2)

		require.Len(t, finder.queries, 1)
		assert.Equal(t, ledger.TransferQuery{
			MediaKind: ledger.KindSeries,
			TmdbID:    789,
		}, finder.queries[0])
	})
}

func TestMatchPathFallback(t *testing.T) {
	t.Run("missing tmdb id goes straight to the path tier", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(q ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				if q.DestPath == "/media/emby/Show/S01E01.mkv" {
					return []ledger.TransferRecord{{Title: "Show", DestPath: q.DestPath}}, nil
				}
				return nil, nil
			},
		}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind: ledger.KindSeries,
			Path: "/media/emby/Show/S01E01.mkv",
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "path fallback", result.Tier)

		// No identity query was ever issued.
		require.Len(t, finder.queries, 1)
		assert.Zero(t, finder.queries[0].TmdbID)
	})

	t.Run("empty identity tier falls back to the path tier", func(t *testing.T) {
		finder := &stubFinder{
			answer: func(q ledger.TransferQuery) ([]ledger.TransferRecord, error) {
				if q.TmdbID != 0 {
					return nil, nil // wrong identity on the notification
				}
				return []ledger.TransferRecord{{Title: "Foo", DestPath: q.DestPath}}, nil
			},
		}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind:   ledger.KindMovie,
			Path:   "/media/emby/Movies/Foo (2020)/Foo.mkv",
			TmdbID: 999,
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "path fallback", result.Tier)

		require.Len(t, finder.queries, 2)
	})

	t.Run("nothing matches anywhere", func(t *testing.T) {
		finder := &stubFinder{}
		m := match.New(finder)

		result, err := m.Match(t.Context(), match.Request{
			Kind: ledger.KindMovie,
			Path: "/media/unknown.mkv",
		})
		require.NoError(t, err)
		assert.False(t, result.Matched())
		assert.Equal(t, "no match", result.Tier)
	})
}

func TestMatchStoreError(t *testing.T) {
	storeErr := errors.New("db gone")
	finder := &stubFinder{
		answer: func(ledger.TransferQuery) ([]ledger.TransferRecord, error) {
			return nil, storeErr
		},
	}
	m := match.New(finder)

	_, err := m.Match(t.Context(), match.Request{
		Kind:   ledger.KindMovie,
		Path:   "/media/foo.mkv",
		TmdbID: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
