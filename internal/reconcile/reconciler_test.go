package reconcile_test

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/match"
	"github.com/mediareap/mediareap/internal/reconcile"
	mediareaptesting "github.com/mediareap/mediareap/internal/testing"
)

type stubMatcher struct {
	result match.Result
	err    error
	calls  int
}

func (s *stubMatcher) Match(_ context.Context, _ match.Request) (match.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubRecords struct {
	deleted []ulid.ULID
	err     error
}

func (s *stubRecords) Delete(_ context.Context, id ulid.ULID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubHistory struct {
	deleted []string
	err     error
}

func (s *stubHistory) DeleteByFullPath(_ context.Context, fullPath string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, fullPath)
	return nil
}

type disposeCall struct {
	kind       ledger.MediaKind
	sourcePath string
	hash       string
	downloader string
}

type stubDisposer struct {
	calls     []disposeCall
	outcome   dispose.Outcome
	onDispose func()
}

func (s *stubDisposer) Dispose(_ context.Context, kind ledger.MediaKind, sourcePath, hash, downloader string) dispose.Outcome {
	if s.onDispose != nil {
		s.onDispose()
	}
	s.calls = append(s.calls, disposeCall{kind: kind, sourcePath: sourcePath, hash: hash, downloader: downloader})
	return s.outcome
}

type stubDeletions struct {
	entries []ledger.DeletionEntry
	err     error
}

func (s *stubDeletions) Append(_ context.Context, entry ledger.DeletionEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

// harness bundles the reconciler with its stub collaborators.
type harness struct {
	matcher   *stubMatcher
	records   *stubRecords
	history   *stubHistory
	disposer  *stubDisposer
	remover   *mediareaptesting.MockRemover
	deletions *stubDeletions
	notifier  *mediareaptesting.MockNotifier
}

func newHarness() *harness {
	return &harness{
		matcher:   &stubMatcher{},
		records:   &stubRecords{},
		history:   &stubHistory{},
		disposer:  &stubDisposer{},
		remover:   mediareaptesting.NewMockRemover(),
		deletions: &stubDeletions{},
		notifier:  mediareaptesting.NewMockNotifier(),
	}
}

func (h *harness) build(opts ...reconcile.Option) *reconcile.Reconciler {
	return reconcile.New(h.matcher, h.records, h.history, h.disposer, h.remover, h.deletions, h.notifier, opts...)
}

func movieRecord(destPath string) ledger.TransferRecord {
	return ledger.TransferRecord{
		ID:            ulid.Make(),
		MediaKind:     ledger.KindMovie,
		Title:         "Foo",
		DestPath:      destPath,
		SourcePath:    "/downloads/foo/Foo.2020.mkv",
		TmdbID:        123,
		DownloadHash:  "abc123",
		Downloader:    "seedbox",
		TransferredAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		ImageURL:      "https://image.tmdb.org/foo.jpg",
	}
}

func movieEvent(path string) reconcile.Event {
	return reconcile.Event{
		Kind:   ledger.KindMovie,
		Name:   "Foo (2020)",
		Path:   path,
		TmdbID: 123,
		Time:   time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReconciler_Reconcile(t *testing.T) {
	t.Run("deletes record, source file, history, and torrent", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.remover.AddPath(record.SourcePath)
		h.remover.AddPath("/downloads/foo")
		h.disposer.outcome = dispose.Outcome{
			FullyRemoved: true,
			Torrents:     []dispose.Disposition{{Hash: "abc123", Downloader: "seedbox", Action: dispose.ActionRemove}},
		}

		r := h.build(reconcile.WithSourceDeletion(true))
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, 1, outcome.RecordsDeleted)
		assert.Equal(t, 1, outcome.FilesRemoved)
		assert.Equal(t, 1, outcome.DirsPruned)
		assert.Equal(t, 1, outcome.TorrentsRemoved())
		assert.Zero(t, outcome.Errors)

		assert.Equal(t, []ulid.ULID{record.ID}, h.records.deleted)
		assert.Equal(t, []string{record.SourcePath}, h.remover.RemovedFiles)
		assert.Equal(t, []string{"/downloads/foo"}, h.remover.RemovedTrees)
		assert.Equal(t, []string{record.SourcePath}, h.history.deleted)

		require.Len(t, h.disposer.calls, 1)
		assert.Equal(t, "abc123", h.disposer.calls[0].hash)
		assert.Equal(t, "seedbox", h.disposer.calls[0].downloader)

		summaries := h.notifier.GetSummaries()
		require.Len(t, summaries, 1)
		assert.Equal(t, "Foo (2020)", summaries[0].Title)
		assert.Equal(t, 1, summaries[0].TorrentsRemoved)
	})

	t.Run("always appends a deletion-log entry", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "path fallback", Records: []ledger.TransferRecord{record}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		require.Len(t, h.deletions.entries, 1)
		entry := h.deletions.entries[0]
		assert.Equal(t, "Foo (2020):123:2026-02-01 12:00:00", entry.UniqueKey)
		assert.Equal(t, "Foo (2020)", entry.Title)
		assert.Equal(t, ledger.KindMovie, entry.MediaKind)
		assert.Equal(t, record.ImageURL, entry.ImageURL)
	})

	t.Run("skips excluded path prefixes before touching anything", func(t *testing.T) {
		h := newHarness()

		r := h.build(reconcile.WithExcludePaths([]string{"/media/scratch"}))
		ev := movieEvent("/media/scratch/Foo (2020)/Foo.mkv")
		outcome := r.Reconcile(t.Context(), ev)

		assert.Equal(t, reconcile.StatusSkipped, outcome.Status)
		assert.Equal(t, "excluded path", outcome.Reason)
		assert.Zero(t, h.matcher.calls)
		assert.Empty(t, h.deletions.entries)
	})

	t.Run("skips when the path still exists", func(t *testing.T) {
		h := newHarness()
		ev := movieEvent("/media/movies/Foo (2020)/Foo.mkv")
		h.remover.AddPath(ev.Path)

		r := h.build()
		outcome := r.Reconcile(t.Context(), ev)

		assert.Equal(t, reconcile.StatusSkipped, outcome.Status)
		assert.Equal(t, "path still exists", outcome.Reason)
		assert.Zero(t, h.matcher.calls)
		assert.Empty(t, h.records.deleted)
	})

	t.Run("skips when no record matches", func(t *testing.T) {
		h := newHarness()
		h.matcher.result = match.Result{Tier: "no match"}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent("/media/movies/Foo (2020)/Foo.mkv"))

		assert.Equal(t, reconcile.StatusSkipped, outcome.Status)
		assert.Equal(t, "no match", outcome.Reason)
		assert.Empty(t, h.deletions.entries)
	})

	t.Run("skips when a matched record was re-transferred after the deletion", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		record.TransferredAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusSkipped, outcome.Status)
		assert.Equal(t, "record re-transferred after deletion", outcome.Reason)
		assert.Empty(t, h.records.deleted)
	})

	t.Run("zero event time disables the re-transfer guard", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		record.TransferredAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		ev := movieEvent(record.DestPath)
		ev.Time = time.Time{}

		r := h.build()
		outcome := r.Reconcile(t.Context(), ev)

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, 1, outcome.RecordsDeleted)
	})

	t.Run("accepts a record whose title appears in the event name", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/other-layout/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent("/media/movies/Foo (2020)/Foo.mkv"))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, 1, outcome.RecordsDeleted)
	})

	t.Run("drops near-miss records that fail the accept check", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Bar (2019)/Bar.mkv")
		record.Title = "Bar"
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent("/media/movies/Foo (2020)/Foo.mkv"))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Zero(t, outcome.RecordsDeleted)
		assert.Empty(t, h.records.deleted)
		assert.Empty(t, h.notifier.GetSummaries())
		// The event is still logged even when nothing was recovered.
		assert.Len(t, h.deletions.entries, 1)
	})

	t.Run("source cleanup is off by default", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.remover.AddPath(record.SourcePath)

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, 1, outcome.RecordsDeleted)
		assert.Zero(t, outcome.FilesRemoved)
		assert.Empty(t, h.remover.RemovedFiles)
		assert.Empty(t, h.history.deleted)
	})

	t.Run("ledger delete failure skips the record's cleanup", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.records.err = errors.New("database locked")

		r := h.build(reconcile.WithSourceDeletion(true))
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Zero(t, outcome.RecordsDeleted)
		assert.Equal(t, 1, outcome.Errors)
		assert.Empty(t, h.disposer.calls)
		assert.Empty(t, h.remover.RemovedFiles)
	})

	t.Run("disposal errors are counted but do not fail the run", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.disposer.outcome = dispose.Outcome{Errors: []error{errors.New("downloader unreachable")}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, 1, outcome.RecordsDeleted)
		assert.Equal(t, 1, outcome.Errors)

		summaries := h.notifier.GetSummaries()
		require.Len(t, summaries, 1)
		assert.Equal(t, 1, summaries[0].Errors)
	})

	t.Run("records without a hash never reach the disposer", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		record.DownloadHash = ""
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, 1, outcome.RecordsDeleted)
		assert.Empty(t, h.disposer.calls)
	})

	t.Run("match failure is reported as a skip with an error", func(t *testing.T) {
		h := newHarness()
		h.matcher.err = errors.New("query failed")

		r := h.build()
		outcome := r.Reconcile(t.Context(), movieEvent("/media/movies/Foo (2020)/Foo.mkv"))

		assert.Equal(t, reconcile.StatusSkipped, outcome.Status)
		assert.Equal(t, "match failed", outcome.Reason)
		assert.Equal(t, 1, outcome.Errors)
	})

	t.Run("episode tokens land in the deletion-log entry", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/tv/Show/Season 01/Show S01E03.mkv")
		record.MediaKind = ledger.KindSeries
		record.Title = "Show"
		h.matcher.result = match.Result{Tier: "identity (series tmdb 123 S01 E3)", Records: []ledger.TransferRecord{record}}

		season, episode := 1, 3
		ev := reconcile.Event{
			Kind:    ledger.KindSeries,
			Name:    "Show",
			Path:    record.DestPath,
			TmdbID:  123,
			Season:  &season,
			Episode: &episode,
			Time:    time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		}

		r := h.build()
		outcome := r.Reconcile(t.Context(), ev)

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		require.Len(t, h.deletions.entries, 1)
		assert.Equal(t, "S01", h.deletions.entries[0].Season)
		assert.Equal(t, "E3", h.deletions.entries[0].Episode)
	})
}

// memHistory backs the reconciler's pruning and the disposal engine's
// kept-file and sibling queries with the same rows, so tests observe the
// order the two consult it in.
type memHistory struct {
	files []ledger.DownloadFile
}

func (m *memHistory) FilesByHash(_ context.Context, hash string) ([]ledger.DownloadFile, error) {
	var out []ledger.DownloadFile
	for _, f := range m.files {
		if f.DownloadHash == hash {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memHistory) FilesByFullPath(_ context.Context, fullPath string) ([]ledger.DownloadFile, error) {
	var out []ledger.DownloadFile
	for _, f := range m.files {
		if f.FullPath == fullPath {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memHistory) DeleteByFullPath(_ context.Context, fullPath string) error {
	var remain []ledger.DownloadFile
	for _, f := range m.files {
		if f.FullPath != fullPath {
			remain = append(remain, f)
		}
	}
	m.files = remain
	return nil
}

type noLinks struct{}

func (noLinks) Get(_ context.Context, _ string) ([]apitypes.TorrentLink, error) { return nil, nil }

func (noLinks) Delete(_ context.Context, _ string) error { return nil }

// ulidAt builds a ULID at a fixed millisecond so registration order is
// deterministic.
func ulidAt(ms uint64) ulid.ULID {
	return ulid.MustNew(ms, rand.Reader)
}

// These tests run the reconciler against the real disposal engine over one
// shared history store: the remove/pause decision and the collection cascade
// must see the download-history rows before source cleanup prunes them.
func TestReconciler_DisposalReadsHistoryBeforePruning(t *testing.T) {
	buildEngine := func(history *memHistory) (*dispose.Engine, *mediareaptesting.MockDownloader) {
		client := mediareaptesting.NewMockDownloader("seedbox")
		registry := download.NewRegistry()
		registry.Register("seedbox", client)
		return dispose.New(history, noLinks{}, registry), client
	}

	t.Run("kept file at the reconciled source path pauses the torrent", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}
		h.remover.AddPath(record.SourcePath)

		history := &memHistory{files: []ledger.DownloadFile{
			{ID: ulidAt(100), DownloadHash: record.DownloadHash, FullPath: record.SourcePath, State: ledger.StateKept},
		}}
		engine, client := buildEngine(history)

		r := reconcile.New(h.matcher, h.records, history, engine, h.remover, h.deletions, h.notifier,
			reconcile.WithSourceDeletion(true))
		outcome := r.Reconcile(t.Context(), movieEvent(record.DestPath))

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, []string{record.DownloadHash}, client.Paused())
		assert.Empty(t, client.RemoveCalls, "a kept file must never let the torrent be removed")
		assert.Equal(t, 1, outcome.TorrentsPaused())

		// The rows still go away once the disposal decision is made.
		assert.Empty(t, history.files)
	})

	t.Run("collection siblings are found before their rows go away", func(t *testing.T) {
		h := newHarness()
		record := ledger.TransferRecord{
			ID:            ulid.Make(),
			MediaKind:     ledger.KindSeries,
			Title:         "Show",
			DestPath:      "/media/tv/Show/Season 01/Show S01E03.mkv",
			SourcePath:    "/downloads/Show.Pack",
			TmdbID:        789,
			DownloadHash:  "current",
			Downloader:    "seedbox",
			TransferredAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		}
		h.matcher.result = match.Result{Tier: "identity (series tmdb 789)", Records: []ledger.TransferRecord{record}}
		h.remover.AddPath(record.SourcePath)

		history := &memHistory{files: []ledger.DownloadFile{
			{ID: ulidAt(100), DownloadHash: "current", Downloader: "seedbox", FullPath: record.SourcePath},
			{ID: ulidAt(200), DownloadHash: "later", Downloader: "seedbox", FullPath: record.SourcePath},
		}}
		engine, client := buildEngine(history)

		r := reconcile.New(h.matcher, h.records, history, engine, h.remover, h.deletions, h.notifier,
			reconcile.WithSourceDeletion(true))
		ev := reconcile.Event{
			Kind:   ledger.KindSeries,
			Name:   "Show S01E03",
			Path:   record.DestPath,
			TmdbID: 789,
			Time:   time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		}
		outcome := r.Reconcile(t.Context(), ev)

		assert.Equal(t, reconcile.StatusCompleted, outcome.Status)
		assert.Equal(t, []string{"current", "later"}, client.Removed(),
			"the later sibling must cascade before the shared rows are pruned")
		assert.Equal(t, 2, outcome.TorrentsRemoved())
		assert.Empty(t, history.files)
	})

	t.Run("history is pruned only after the disposer ran", func(t *testing.T) {
		h := newHarness()
		record := movieRecord("/media/movies/Foo (2020)/Foo.mkv")
		h.matcher.result = match.Result{Tier: "identity (movie tmdb 123)", Records: []ledger.TransferRecord{record}}

		historyLenAtDispose := -1
		h.disposer.onDispose = func() {
			historyLenAtDispose = len(h.history.deleted)
		}

		r := h.build(reconcile.WithSourceDeletion(true))
		r.Reconcile(t.Context(), movieEvent(record.DestPath))

		require.Len(t, h.disposer.calls, 1)
		assert.Zero(t, historyLenAtDispose, "history must still be intact when the disposer runs")
		assert.Equal(t, []string{record.SourcePath}, h.history.deleted)
	})
}
