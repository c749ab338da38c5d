package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	"github.com/mediareap/mediareap/internal/ledger"
	mediareaptest "github.com/mediareap/mediareap/internal/testing"
)

func seedTransfer(t *testing.T, db *generated.Client, kind, title, destPath string, tmdbID int, season, episode, hash string) *generated.TransferRecord {
	t.Helper()
	row, err := db.TransferRecord.Create().
		SetMediaKind(transferrecord.MediaKind(kind)).
		SetTitle(title).
		SetDestPath(destPath).
		SetTmdbID(tmdbID).
		SetSeason(season).
		SetEpisode(episode).
		SetDownloadHash(hash).
		SetTransferredAt(time.Now()).
		Save(t.Context())
	require.NoError(t, err)
	return row
}

func TestTransferStore(t *testing.T) {
	t.Run("find by identity", func(t *testing.T) {
		db := mediareaptest.NewTestDB(t)
		store := ledger.NewTransferStore(db)

		seedTransfer(t, db, "movie", "Foo", "/media/emby/Movies/Foo (2020)/Foo.mkv", 123, "", "", "abc123")
		seedTransfer(t, db, "movie", "Bar", "/media/emby/Movies/Bar (2021)/Bar.mkv", 456, "", "", "def456")

		records, err := store.Find(t.Context(), ledger.TransferQuery{
			MediaKind: ledger.KindMovie,
			TmdbID:    123,
			DestPath:  "/media/emby/Movies/Foo (2020)/Foo.mkv",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Foo", records[0].Title)
		assert.Equal(t, "abc123", records[0].DownloadHash)
	})

	t.Run("find series by season and episode tokens", func(t *testing.T) {
		db := mediareaptest.NewTestDB(t)
		store := ledger.NewTransferStore(db)

		seedTransfer(t, db, "series", "Show", "/media/tv/Show/S01E01.mkv", 789, "S01", "E1", "h1")
		seedTransfer(t, db, "series", "Show", "/media/tv/Show/S01E02.mkv", 789, "S01", "E2", "h2")
		seedTransfer(t, db, "series", "Show", "/media/tv/Show/S02E01.mkv", 789, "S02", "E1", "h3")

		records, err := store.Find(t.Context(), ledger.TransferQuery{
			MediaKind: ledger.KindSeries,
			TmdbID:    789,
			Season:    "S01",
			Episode:   "E2",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "/media/tv/Show/S01E02.mkv", records[0].DestPath)

		// Season only matches both episodes.
		records, err = store.Find(t.Context(), ledger.TransferQuery{
			MediaKind: ledger.KindSeries,
			TmdbID:    789,
			Season:    "S01",
		})
		require.NoError(t, err)
		assert.Len(t, records, 2)

		// Bare series reference matches all.
		records, err = store.Find(t.Context(), ledger.TransferQuery{
			MediaKind: ledger.KindSeries,
			TmdbID:    789,
		})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("find by dest path alone", func(t *testing.T) {
		db := mediareaptest.NewTestDB(t)
		store := ledger.NewTransferStore(db)

		seedTransfer(t, db, "movie", "Foo", "/media/emby/Movies/Foo (2020)/Foo.mkv", 123, "", "", "abc123")

		records, err := store.Find(t.Context(), ledger.TransferQuery{
			DestPath: "/media/emby/Movies/Foo (2020)/Foo.mkv",
		})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("count over many rows", func(t *testing.T) {
		db := mediareaptest.NewTestDB(t)
		store := ledger.NewTransferStore(db)

		const rows = 25
		for i := range rows {
			title := gofakeit.MovieName()
			destPath := fmt.Sprintf("/media/emby/Movies/%s (%d)/%s.mkv", title, gofakeit.Year(), title)
			seedTransfer(t, db, "movie", title, destPath, i+1, "", "", gofakeit.UUID())
		}

		count, err := store.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, rows, count)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		db := mediareaptest.NewTestDB(t)
		store := ledger.NewTransferStore(db)

		row := seedTransfer(t, db, "movie", "Foo", "/media/foo.mkv", 123, "", "", "")

		require.NoError(t, store.Delete(t.Context(), row.ID))
		// Second delete of the same row is a no-op, not an error.
		require.NoError(t, store.Delete(t.Context(), row.ID))

		count, err := store.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestDownloadHistoryStore(t *testing.T) {
	db := mediareaptest.NewTestDB(t)
	store := ledger.NewDownloadHistoryStore(db)

	seed := func(hash, filePath, fullPath string, state int) {
		_, err := db.DownloadFile.Create().
			SetDownloadHash(hash).
			SetFilePath(filePath).
			SetFullPath(fullPath).
			SetState(state).
			Save(t.Context())
		require.NoError(t, err)
	}

	seed("abc123", "Foo/Foo.mkv", "/downloads/Foo/Foo.mkv", 0)
	seed("abc123", "Foo/Foo.srt", "/downloads/Foo/Foo.srt", ledger.StateKept)
	seed("zzz999", "Foo/Foo.mkv", "/downloads/Foo/Foo.mkv", 0)

	t.Run("files by hash", func(t *testing.T) {
		files, err := store.FilesByHash(t.Context(), "abc123")
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.False(t, files[0].Kept())
		assert.True(t, files[1].Kept())
	})

	t.Run("files by full path spans torrents", func(t *testing.T) {
		files, err := store.FilesByFullPath(t.Context(), "/downloads/Foo/Foo.mkv")
		require.NoError(t, err)
		require.Len(t, files, 2)
		hashes := []string{files[0].DownloadHash, files[1].DownloadHash}
		assert.Contains(t, hashes, "abc123")
		assert.Contains(t, hashes, "zzz999")
	})

	t.Run("delete by full path", func(t *testing.T) {
		require.NoError(t, store.DeleteByFullPath(t.Context(), "/downloads/Foo/Foo.mkv"))

		files, err := store.FilesByFullPath(t.Context(), "/downloads/Foo/Foo.mkv")
		require.NoError(t, err)
		assert.Empty(t, files)

		// Other paths untouched.
		files, err = store.FilesByHash(t.Context(), "abc123")
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})
}

func TestSeedLinkStore(t *testing.T) {
	db := mediareaptest.NewTestDB(t)
	store := ledger.NewSeedLinkStore(db)

	t.Run("get merges collaborators", func(t *testing.T) {
		require.NoError(t, store.Put(t.Context(), "reseeder", "abc123", []apitypes.TorrentLink{
			{Downloader: "seedbox", Hash: "bbb"},
		}))
		require.NoError(t, store.Put(t.Context(), "crossseed", "abc123", []apitypes.TorrentLink{
			{Downloader: "local", Hash: "ccc"},
		}))

		links, err := store.Get(t.Context(), "abc123")
		require.NoError(t, err)
		assert.Len(t, links, 2)
	})

	t.Run("put replaces existing record", func(t *testing.T) {
		require.NoError(t, store.Put(t.Context(), "reseeder", "abc123", []apitypes.TorrentLink{
			{Downloader: "seedbox", Hash: "ddd"},
		}))

		links, err := store.Get(t.Context(), "abc123")
		require.NoError(t, err)
		require.Len(t, links, 2)

		hashes := []string{links[0].Hash, links[1].Hash}
		assert.Contains(t, hashes, "ddd")
		assert.NotContains(t, hashes, "bbb")
	})

	t.Run("delete clears all collaborators", func(t *testing.T) {
		require.NoError(t, store.Delete(t.Context(), "abc123"))

		links, err := store.Get(t.Context(), "abc123")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("missing hash yields no links", func(t *testing.T) {
		links, err := store.Get(t.Context(), "nope")
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestDeletionLogStore(t *testing.T) {
	db := mediareaptest.NewTestDB(t)
	store := ledger.NewDeletionLogStore(db)

	entry := ledger.DeletionEntry{
		UniqueKey: "Foo:123:2024-01-15 10:30:00",
		Title:     "Foo",
		MediaKind: ledger.KindMovie,
		Path:      "/media/emby/Movies/Foo (2020)/Foo.mkv",
		TmdbID:    123,
		DeletedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	t.Run("append and list", func(t *testing.T) {
		require.NoError(t, store.Append(t.Context(), entry))

		entries, err := store.List(t.Context())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.UniqueKey, entries[0].UniqueKey)
		assert.Equal(t, ledger.KindMovie, entries[0].MediaKind)
	})

	t.Run("duplicate key is a no-op", func(t *testing.T) {
		require.NoError(t, store.Append(t.Context(), entry))

		count, err := store.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("list is newest first", func(t *testing.T) {
		later := entry
		later.UniqueKey = "Bar:456:2024-02-01 08:00:00"
		later.Title = "Bar"
		later.DeletedAt = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, store.Append(t.Context(), later))

		entries, err := store.List(t.Context())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Bar", entries[0].Title)
	})

	t.Run("delete by key", func(t *testing.T) {
		require.NoError(t, store.DeleteByKey(t.Context(), entry.UniqueKey))
		require.NoError(t, store.DeleteByKey(t.Context(), "missing"))

		count, err := store.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("purge", func(t *testing.T) {
		require.NoError(t, store.Purge(t.Context()))

		count, err := store.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestScanMarkStore(t *testing.T) {
	db := mediareaptest.NewTestDB(t)
	store := ledger.NewScanMarkStore(db)

	t.Run("missing mark is zero time", func(t *testing.T) {
		mark, err := store.Get(t.Context(), "emby")
		require.NoError(t, err)
		assert.True(t, mark.IsZero())
	})

	t.Run("set creates then advances", func(t *testing.T) {
		first := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		require.NoError(t, store.Set(t.Context(), "emby", first))

		mark, err := store.Get(t.Context(), "emby")
		require.NoError(t, err)
		assert.True(t, mark.Equal(first))

		second := first.Add(time.Hour)
		require.NoError(t, store.Set(t.Context(), "emby", second))

		mark, err = store.Get(t.Context(), "emby")
		require.NoError(t, err)
		assert.True(t, mark.Equal(second))
	})

	t.Run("marks are per server", func(t *testing.T) {
		mark, err := store.Get(t.Context(), "jellyfin")
		require.NoError(t, err)
		assert.True(t, mark.IsZero())
	})
}
