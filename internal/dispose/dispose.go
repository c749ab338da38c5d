// Package dispose decides, per torrent, whether removal or pausing is safe
// and cascades that decision through cross-seed links and collection
// siblings.
package dispose

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/ledger"
)

// Action is the disposal decision for a torrent.
type Action string

// Disposal actions.
const (
	// ActionRemove removes the torrent and its data from the client.
	ActionRemove Action = "remove"
	// ActionPause pauses the torrent because it still references kept files.
	ActionPause Action = "pause"
)

// FileHistory is the download-history surface the engine queries.
type FileHistory interface {
	FilesByHash(ctx context.Context, hash string) ([]ledger.DownloadFile, error)
	FilesByFullPath(ctx context.Context, fullPath string) ([]ledger.DownloadFile, error)
}

// SeedLinks is the collaborator link store consulted for cross-seed cascades.
type SeedLinks interface {
	Get(ctx context.Context, rootHash string) ([]apitypes.TorrentLink, error)
	Delete(ctx context.Context, rootHash string) error
}

// Downloaders resolves a downloader by its configured name.
type Downloaders interface {
	Get(name string) (download.Downloader, bool)
}

// Disposition records one torrent the engine acted on. CascadedFrom names the
// hash whose links or siblings led here; empty for the root torrent.
type Disposition struct {
	Hash         string
	Downloader   string
	Action       Action
	CascadedFrom string
}

// Outcome aggregates one disposal call: every torrent touched and every
// per-item error captured along the way.
type Outcome struct {
	// FullyRemoved reports whether the root torrent was removed rather than
	// paused.
	FullyRemoved bool
	Torrents     []Disposition
	Errors       []error
}

// Succeeded reports whether the disposal completed without any per-item
// error.
func (o Outcome) Succeeded() bool {
	return len(o.Errors) == 0
}

// Removed returns the number of torrents removed.
func (o Outcome) Removed() int {
	return o.count(ActionRemove)
}

// Paused returns the number of torrents paused.
func (o Outcome) Paused() int {
	return o.count(ActionPause)
}

func (o Outcome) count(action Action) int {
	n := 0
	for _, d := range o.Torrents {
		if d.Action == action {
			n++
		}
	}
	return n
}

// Engine drives torrent disposal against a downloader registry, the
// download-file history, and the collaborator seed-link store.
type Engine struct {
	history     FileHistory
	links       SeedLinks
	downloaders Downloaders

	// defaultDownloader is used when a record carries no downloader name.
	defaultDownloader string
	logger            zerolog.Logger
}

// Option is a functional option for configuring the engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDefaultDownloader sets the downloader used for torrents whose history
// rows carry no downloader name.
func WithDefaultDownloader(name string) Option {
	return func(e *Engine) {
		e.defaultDownloader = name
	}
}

// New creates a disposal engine.
func New(history FileHistory, links SeedLinks, downloaders Downloaders, opts ...Option) *Engine {
	e := &Engine{
		history:     history,
		links:       links,
		downloaders: downloaders,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// target is one worklist entry of a cascade walk.
type target struct {
	hash         string
	downloader   string
	cascadedFrom string
}

// Dispose decides remove-vs-pause for the torrent behind a ledger record and
// cascades the decision. The kept-file rule: if ANY file the history
// associates with the hash is flagged kept, the torrent is paused, never
// removed. The decision made for the root torrent is applied unchanged to
// every cross-seed link; collection siblings re-evaluate the rule for
// themselves.
func (e *Engine) Dispose(ctx context.Context, kind ledger.MediaKind, sourcePath, hash, downloader string) Outcome {
	var outcome Outcome

	files, err := e.history.FilesByHash(ctx, hash)
	if err != nil {
		e.logger.Error().Err(err).Str("hash", hash).Msg("failed to load files for torrent")
		outcome.Errors = append(outcome.Errors, err)
		return outcome
	}

	action := decide(files)
	outcome.FullyRemoved = action == ActionRemove

	visited := make(map[string]bool)
	e.cascade(ctx, action, target{hash: hash, downloader: downloader}, visited, &outcome)

	if kind == ledger.KindSeries && sourcePath != "" {
		e.collectionCascade(ctx, hash, sourcePath, files, visited, &outcome)
	}

	e.logger.Info().
		Str("hash", hash).
		Str("action", string(action)).
		Int("torrents", len(outcome.Torrents)).
		Int("errors", len(outcome.Errors)).
		Msg("torrent disposal finished")

	return outcome
}

// decide applies the kept-file rule to a torrent's file set.
func decide(files []ledger.DownloadFile) Action {
	for _, f := range files {
		if f.Kept() {
			return ActionPause
		}
	}
	return ActionRemove
}

// cascade applies one action to a torrent and every torrent reachable through
// cross-seed links, as a worklist walk guarded by a visited set so cyclic
// link records terminate. Link records are cleared from the store only when
// the action was remove.
func (e *Engine) cascade(ctx context.Context, action Action, root target, visited map[string]bool, outcome *Outcome) {
	work := []target{root}

	for len(work) > 0 {
		item := work[0]
		work = work[1:]

		if visited[item.hash] {
			continue
		}
		visited[item.hash] = true

		if err := e.apply(ctx, action, item); err != nil {
			e.logger.Warn().Err(err).Str("hash", item.hash).Msg("disposal action failed")
			outcome.Errors = append(outcome.Errors, err)
		} else {
			outcome.Torrents = append(outcome.Torrents, Disposition{
				Hash:         item.hash,
				Downloader:   e.downloaderName(item.downloader),
				Action:       action,
				CascadedFrom: item.cascadedFrom,
			})
		}

		links, err := e.links.Get(ctx, item.hash)
		if err != nil {
			// A broken collaborator store stops this branch only.
			e.logger.Warn().Err(err).Str("hash", item.hash).Msg("failed to load seed links")
			outcome.Errors = append(outcome.Errors, err)
			continue
		}

		for _, link := range links {
			work = append(work, target{
				hash:         link.Hash,
				downloader:   link.Downloader,
				cascadedFrom: item.hash,
			})
		}

		if action == ActionRemove && len(links) > 0 {
			if err := e.links.Delete(ctx, item.hash); err != nil {
				e.logger.Warn().Err(err).Str("hash", item.hash).Msg("failed to clear seed links")
				outcome.Errors = append(outcome.Errors, err)
			}
		}
	}
}

// collectionCascade handles multi-torrent batch packs: sibling files under
// the same source path that belong to torrents registered after the current
// one. Each such sibling re-evaluates the kept-file rule for itself and runs
// its own cross-seed cascade.
func (e *Engine) collectionCascade(ctx context.Context, rootHash, sourcePath string, rootFiles []ledger.DownloadFile, visited map[string]bool, outcome *Outcome) {
	siblings, err := e.history.FilesByFullPath(ctx, sourcePath)
	if err != nil {
		e.logger.Warn().Err(err).Str("path", sourcePath).Msg("failed to load collection siblings")
		outcome.Errors = append(outcome.Errors, err)
		return
	}

	var newest ulid.ULID
	for _, f := range rootFiles {
		if f.ID.Compare(newest) > 0 {
			newest = f.ID
		}
	}

	// Later torrents registered their files after every file of the current
	// one, so a single id comparison identifies them.
	laterTorrents := make(map[string]string) // hash -> downloader
	for _, f := range siblings {
		if visited[f.DownloadHash] {
			continue
		}
		if f.ID.Compare(newest) > 0 {
			laterTorrents[f.DownloadHash] = f.Downloader
		}
	}

	for hash, downloader := range laterTorrents {
		files, err := e.history.FilesByHash(ctx, hash)
		if err != nil {
			e.logger.Warn().Err(err).Str("hash", hash).Msg("failed to load sibling files")
			outcome.Errors = append(outcome.Errors, err)
			continue
		}

		e.cascade(ctx, decide(files), target{
			hash:         hash,
			downloader:   downloader,
			cascadedFrom: rootHash,
		}, visited, outcome)
	}
}

// apply executes one action against the downloader registry.
func (e *Engine) apply(ctx context.Context, action Action, item target) error {
	name := e.downloaderName(item.downloader)
	client, ok := e.downloaders.Get(name)
	if !ok {
		return fmt.Errorf("no downloader named %q for torrent %s", name, item.hash)
	}

	switch action {
	case ActionPause:
		if err := client.PauseTorrent(ctx, item.hash); err != nil {
			return fmt.Errorf("failed to pause torrent %s: %w", item.hash, err)
		}
	case ActionRemove:
		if err := client.RemoveTorrent(ctx, item.hash, true); err != nil {
			return fmt.Errorf("failed to remove torrent %s: %w", item.hash, err)
		}
	}

	e.logger.Debug().
		Str("hash", item.hash).
		Str("downloader", name).
		Str("action", string(action)).
		Msg("torrent disposed")

	return nil
}

func (e *Engine) downloaderName(name string) string {
	if name == "" {
		return e.defaultDownloader
	}
	return name
}
