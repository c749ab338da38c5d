// Package reconcile drives the end-to-end deletion flow: guard, match,
// ledger mutation, source cleanup, torrent disposal, and outcome recording.
package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/fileutil"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/match"
	"github.com/mediareap/mediareap/internal/notify"
	"github.com/mediareap/mediareap/internal/source"
)

// defaultPruneDepth bounds how many ancestor levels source cleanup climbs.
const defaultPruneDepth = 3

// Matcher resolves events to ledger records.
type Matcher interface {
	Match(ctx context.Context, req match.Request) (match.Result, error)
}

// RecordDeleter removes resolved ledger rows.
type RecordDeleter interface {
	Delete(ctx context.Context, id ulid.ULID) error
}

// HistoryPruner removes download-history rows for a source path.
type HistoryPruner interface {
	DeleteByFullPath(ctx context.Context, fullPath string) error
}

// Disposer cascades the remove/pause decision for a torrent.
type Disposer interface {
	Dispose(ctx context.Context, kind ledger.MediaKind, sourcePath, hash, downloader string) dispose.Outcome
}

// DeletionLog records reconciled deletions for the history API.
type DeletionLog interface {
	Append(ctx context.Context, entry ledger.DeletionEntry) error
}

// Status classifies the outcome of one reconciliation.
type Status string

// Outcome statuses.
const (
	// StatusCompleted means the event passed the guards and was processed.
	StatusCompleted Status = "completed"
	// StatusSkipped means a guard dropped the event before any mutation.
	StatusSkipped Status = "skipped"
)

// Outcome aggregates one reconciliation for logging, the event bus, and the
// summary notification.
type Outcome struct {
	Status         Status
	Reason         string // populated for skips
	Tier           string
	RecordsDeleted int
	FilesRemoved   int
	DirsPruned     int
	Torrents       []dispose.Disposition
	Errors         int
}

// TorrentsRemoved returns the number of torrents removed.
func (o Outcome) TorrentsRemoved() int {
	return o.countTorrents(dispose.ActionRemove)
}

// TorrentsPaused returns the number of torrents paused.
func (o Outcome) TorrentsPaused() int {
	return o.countTorrents(dispose.ActionPause)
}

func (o Outcome) countTorrents(action dispose.Action) int {
	n := 0
	for _, d := range o.Torrents {
		if d.Action == action {
			n++
		}
	}
	return n
}

// Reconciler reconciles deletion events against the ledger, the source
// filesystem, and the download client. It never returns an error past its
// boundary: every failure is captured in the outcome.
type Reconciler struct {
	matcher   Matcher
	records   RecordDeleter
	history   HistoryPruner
	disposer  Disposer
	remover   source.Remover
	deletions DeletionLog
	notifier  notify.Service

	deleteSource bool
	excludePaths []string
	pruneDepth   int

	locks  *keyedMutex
	logger zerolog.Logger
}

// Option is a functional option for configuring the reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithSourceDeletion enables deleting source files and pruning their empty
// ancestor directories.
func WithSourceDeletion(enabled bool) Option {
	return func(r *Reconciler) {
		r.deleteSource = enabled
	}
}

// WithExcludePaths sets canonical path prefixes whose events are dropped.
func WithExcludePaths(prefixes []string) Option {
	return func(r *Reconciler) {
		r.excludePaths = prefixes
	}
}

// WithPruneDepth sets how many ancestor levels source cleanup climbs.
// Non-positive depths keep the default.
func WithPruneDepth(depth int) Option {
	return func(r *Reconciler) {
		if depth > 0 {
			r.pruneDepth = depth
		}
	}
}

// New creates a Reconciler.
func New(
	matcher Matcher,
	records RecordDeleter,
	history HistoryPruner,
	disposer Disposer,
	remover source.Remover,
	deletions DeletionLog,
	notifier notify.Service,
	opts ...Option,
) *Reconciler {
	r := &Reconciler{
		matcher:    matcher,
		records:    records,
		history:    history,
		disposer:   disposer,
		remover:    remover,
		deletions:  deletions,
		notifier:   notifier,
		pruneDepth: defaultPruneDepth,
		locks:      newKeyedMutex(),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reconcile processes one deletion event to completion. Concurrent calls for
// the same canonical path serialize on a per-path lock, so the ledger row
// behind a path is deleted at most once.
func (r *Reconciler) Reconcile(ctx context.Context, ev Event) Outcome {
	for _, prefix := range r.excludePaths {
		if prefix != "" && strings.HasPrefix(ev.Path, prefix) {
			return r.skip(ev, "excluded path")
		}
	}

	unlock := r.locks.Lock(ev.Path)
	defer unlock()

	// Race guard: a path that still exists is a reorganization in flight,
	// not a true deletion.
	if exists, err := r.remover.Exists(ctx, ev.Path); err != nil {
		r.logger.Warn().Err(err).Str("path", ev.Path).Msg("race-guard existence check failed")
	} else if exists {
		return r.skip(ev, "path still exists")
	}

	result, err := r.matcher.Match(ctx, match.Request{
		Kind:    ev.Kind,
		Path:    ev.Path,
		TmdbID:  ev.TmdbID,
		Season:  ev.Season,
		Episode: ev.Episode,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("path", ev.Path).Msg("match failed")
		return Outcome{Status: StatusSkipped, Reason: "match failed", Errors: 1}
	}
	if !result.Matched() {
		return r.skip(ev, "no match")
	}

	// Timestamp guard: a record transferred after the deletion describes a
	// re-transfer; removing it would destroy fresh state.
	if !ev.Time.IsZero() {
		for _, record := range result.Records {
			if record.TransferredAt.After(ev.Time) {
				return r.skip(ev, "record re-transferred after deletion")
			}
		}
	}

	outcome := Outcome{Status: StatusCompleted, Tier: result.Tier}
	var imageURL string

	for _, record := range result.Records {
		if !accepts(ev, record) {
			r.logger.Debug().
				Str("title", record.Title).
				Str("dest", record.DestPath).
				Msg("record failed the accept check, skipping")
			continue
		}
		if imageURL == "" {
			imageURL = record.ImageURL
		}
		r.reconcileRecord(ctx, ev, record, &outcome)
	}

	r.finish(ctx, ev, imageURL, &outcome)
	return outcome
}

// accepts is the per-record recovery filter: the record's destination must
// equal the event's canonical path, or its title must appear in the event's
// display name. Near-miss matches from the broader identity tiers fail both
// and are skipped, not errors.
func accepts(ev Event, record ledger.TransferRecord) bool {
	if record.DestPath == ev.Path {
		return true
	}
	return record.Title != "" && strings.Contains(ev.Name, record.Title)
}

// reconcileRecord deletes one ledger row and everything hanging off it. Every
// per-record failure is counted and processing continues.
func (r *Reconciler) reconcileRecord(ctx context.Context, ev Event, record ledger.TransferRecord, outcome *Outcome) {
	if err := r.records.Delete(ctx, record.ID); err != nil {
		r.logger.Error().Err(err).Str("id", record.ID.String()).Msg("failed to delete ledger row")
		outcome.Errors++
		return
	}
	outcome.RecordsDeleted++

	if r.deleteSource && record.SourcePath != "" {
		r.cleanupSource(ctx, record.SourcePath, outcome)
	}

	if record.DownloadHash != "" {
		unlock := r.locks.Lock("hash:" + record.DownloadHash)
		disposal := r.disposer.Dispose(ctx, record.MediaKind, record.SourcePath, record.DownloadHash, record.Downloader)
		unlock()

		outcome.Torrents = append(outcome.Torrents, disposal.Torrents...)
		outcome.Errors += len(disposal.Errors)
	}

	// The kept-file rule and the collection cascade read download-history
	// rows keyed by this source path; the rows may go away only after the
	// disposal decision.
	if r.deleteSource && record.SourcePath != "" {
		if err := r.history.DeleteByFullPath(ctx, record.SourcePath); err != nil {
			r.logger.Warn().Err(err).Str("path", record.SourcePath).Msg("failed to prune download history")
			outcome.Errors++
		}
	}
}

// cleanupSource deletes the physical source file and prunes empty ancestors.
func (r *Reconciler) cleanupSource(ctx context.Context, sourcePath string, outcome *Outcome) {
	exists, err := r.remover.Exists(ctx, sourcePath)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", sourcePath).Msg("failed to stat source file")
		outcome.Errors++
	} else if exists {
		if err := r.remover.RemoveFile(ctx, sourcePath); err != nil {
			r.logger.Warn().Err(err).Str("path", sourcePath).Msg("failed to delete source file")
			outcome.Errors++
		} else {
			outcome.FilesRemoved++

			pruned, err := fileutil.PruneEmptyAncestors(ctx, r.remover, sourcePath, r.pruneDepth)
			if err != nil {
				r.logger.Warn().Err(err).Str("path", sourcePath).Msg("ancestor pruning stopped early")
				outcome.Errors++
			}
			outcome.DirsPruned += len(pruned)
		}
	}
}

// finish appends the deletion-log entry and emits the summary notification.
func (r *Reconciler) finish(ctx context.Context, ev Event, imageURL string, outcome *Outcome) {
	deletedAt := ev.Time
	if deletedAt.IsZero() {
		deletedAt = time.Now()
	}

	entry := ledger.DeletionEntry{
		UniqueKey: deletionKey(ev, deletedAt),
		Title:     ev.Name,
		MediaKind: ev.Kind,
		Path:      ev.Path,
		TmdbID:    ev.TmdbID,
		ImageURL:  imageURL,
		DeletedAt: deletedAt,
	}
	if ev.Season != nil {
		entry.Season = match.SeasonToken(*ev.Season)
	}
	if ev.Episode != nil {
		entry.Episode = match.EpisodeToken(*ev.Episode)
	}

	if err := r.deletions.Append(ctx, entry); err != nil {
		r.logger.Error().Err(err).Str("key", entry.UniqueKey).Msg("failed to append deletion-log entry")
		outcome.Errors++
	}

	if outcome.RecordsDeleted > 0 {
		err := r.notifier.NotifyDeletion(ctx, notify.DeletionSummary{
			Title:           ev.Name,
			MediaKind:       string(ev.Kind),
			Path:            ev.Path,
			RecordsDeleted:  outcome.RecordsDeleted,
			TorrentsRemoved: outcome.TorrentsRemoved(),
			TorrentsPaused:  outcome.TorrentsPaused(),
			Errors:          outcome.Errors,
			ImageURL:        imageURL,
		})
		if err != nil {
			r.logger.Warn().Err(err).Msg("failed to send notification")
			outcome.Errors++
		}
	}

	r.logger.Info().
		Str("path", ev.Path).
		Str("tier", outcome.Tier).
		Int("records", outcome.RecordsDeleted).
		Int("removed", outcome.TorrentsRemoved()).
		Int("paused", outcome.TorrentsPaused()).
		Int("errors", outcome.Errors).
		Msg("reconciliation finished")
}

func (r *Reconciler) skip(ev Event, reason string) Outcome {
	r.logger.Info().
		Str("path", ev.Path).
		Str("reason", reason).
		Msg("deletion event skipped")
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// deletionKey builds the unique history key for one deletion.
func deletionKey(ev Event, deletedAt time.Time) string {
	return fmt.Sprintf("%s:%d:%s", ev.Name, ev.TmdbID, deletedAt.Format("2006-01-02 15:04:05"))
}
