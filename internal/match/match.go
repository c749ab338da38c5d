// Package match resolves deletion events against the transfer ledger using a
// tiered lookup: identity first, exact destination path as a fallback.
package match

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/ledger"
)

// SeasonToken formats a season number as the zero-padded token stored on
// ledger rows, e.g. SeasonToken(1) == "S01".
func SeasonToken(season int) string {
	return fmt.Sprintf("S%02d", season)
}

// EpisodeToken formats an episode number as the token stored on ledger rows,
// e.g. EpisodeToken(3) == "E3".
func EpisodeToken(episode int) string {
	return fmt.Sprintf("E%d", episode)
}

// RecordFinder is the ledger surface the matcher queries.
type RecordFinder interface {
	Find(ctx context.Context, q ledger.TransferQuery) ([]ledger.TransferRecord, error)
}

// Request describes one deletion event to resolve. Path is the canonicalized
// destination path; TmdbID zero means the event carried no identity.
type Request struct {
	Kind    ledger.MediaKind
	Path    string
	TmdbID  int
	Season  *int
	Episode *int
}

// Result is the outcome of one match attempt. Tier is a human-readable tag
// naming the strategy that produced the records; it is used only for logs and
// notifications.
type Result struct {
	Tier    string
	Records []ledger.TransferRecord
}

// Matched reports whether any records were resolved.
func (r Result) Matched() bool {
	return len(r.Records) > 0
}

// Matcher resolves deletion events to transfer records.
type Matcher struct {
	records RecordFinder
	logger  zerolog.Logger
}

// Option is a functional option for configuring the matcher.
type Option func(*Matcher)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// New creates a matcher over the given record store.
func New(records RecordFinder, opts ...Option) *Matcher {
	m := &Matcher{
		records: records,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match resolves a request to a set of ledger records. The identity tier is
// attempted only when the request carries a tmdb id; the path fallback tier
// runs when the identity tier yields nothing. Upstream notifications often
// omit or mis-supply the identity, so the fallback is load-bearing, not a
// corner case.
func (m *Matcher) Match(ctx context.Context, req Request) (Result, error) {
	if req.TmdbID != 0 {
		result, err := m.matchIdentity(ctx, req)
		if err != nil {
			return Result{}, err
		}
		if result.Matched() {
			return result, nil
		}
	}

	records, err := m.records.Find(ctx, ledger.TransferQuery{DestPath: req.Path})
	if err != nil {
		return Result{}, fmt.Errorf("path fallback lookup failed: %w", err)
	}

	result := Result{Tier: "path fallback", Records: records}
	if !result.Matched() {
		result.Tier = "no match"
	}

	m.logger.Debug().
		Str("path", req.Path).
		Str("tier", result.Tier).
		Int("records", len(result.Records)).
		Msg("match resolved")

	return result, nil
}

// matchIdentity runs the identity tier. Movies are pinned to their
// destination path; series narrow by season/episode tokens when the event
// carries them, and fall back to every record sharing the tmdb id when it
// does not.
func (m *Matcher) matchIdentity(ctx context.Context, req Request) (Result, error) {
	q := ledger.TransferQuery{
		MediaKind: req.Kind,
		TmdbID:    req.TmdbID,
	}

	var tier string
	switch {
	case req.Kind == ledger.KindMovie:
		q.DestPath = req.Path
		tier = fmt.Sprintf("identity (movie tmdb %d)", req.TmdbID)
	case req.Season != nil && req.Episode != nil:
		q.Season = SeasonToken(*req.Season)
		q.Episode = EpisodeToken(*req.Episode)
		tier = fmt.Sprintf("identity (series tmdb %d %s%s)", req.TmdbID, q.Season, q.Episode)
	case req.Season != nil:
		q.Season = SeasonToken(*req.Season)
		tier = fmt.Sprintf("identity (series tmdb %d %s)", req.TmdbID, q.Season)
	default:
		tier = fmt.Sprintf("identity (series tmdb %d)", req.TmdbID)
	}

	records, err := m.records.Find(ctx, q)
	if err != nil {
		return Result{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return Result{Tier: tier, Records: records}, nil
}
