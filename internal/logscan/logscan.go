// Package logscan synthesizes deletion notices from media-server logs for
// installations where webhooks are unavailable.
package logscan

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/mediaserver"
)

// Default configuration values.
const (
	defaultInterval        = 30 * time.Minute
	defaultLogWindow       = 3
	defaultShutdownTimeout = 10 * time.Second
)

// embyTimeLayout is the timestamp format Emby and Jellyfin write to their
// server logs.
const embyTimeLayout = "2006-01-02 15:04:05.000"

// removalLine matches the line Emby-compatible servers write when an item is
// deleted from the library, e.g.
//
//	2026-02-01 12:00:00.000 Info Server: Removing item from database, Type: Movie, Name: Foo (2020), Path: /media/movies/Foo (2020)/Foo.mkv, Id: 42
//
//nolint:gochecknoglobals // compiled once
var removalLine = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})\s+\w+\s+\S+:\s+Removing item from database, Type: (\w+), Name: (.+?), Path: (.+), Id: \d+\s*$`)

// Patterns for deriving season/episode tokens from a library path.
//
//nolint:gochecknoglobals // compiled once
var (
	episodePattern = regexp.MustCompile(`(?i)S(\d{1,2})\s*E(\d{1,3})`)
	seasonPattern  = regexp.MustCompile(`(?i)Season[ ._]?(\d{1,2})`)
)

// Marks persists the last-processed log timestamp per media server, so a
// restart does not replay deletions already reconciled.
type Marks interface {
	Get(ctx context.Context, server string) (time.Time, error)
	Set(ctx context.Context, server string, lastSeen time.Time) error
}

// Scanner periodically fetches recent server logs, extracts removal lines
// newer than the persisted scan mark, and publishes the resulting deletion
// notices on the event bus. Each pass is a finite producer bounded by the
// fetched log window.
type Scanner struct {
	servers   *mediaserver.Registry
	marks     Marks
	eventBus  *events.Bus
	interval  time.Duration
	logWindow int
	logger    zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option is a functional option for configuring the scanner.
type Option func(*Scanner)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithInterval sets the time between scan passes.
func WithInterval(interval time.Duration) Option {
	return func(s *Scanner) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithLogWindow sets how many recent log files are fetched per pass.
func WithLogWindow(window int) Option {
	return func(s *Scanner) {
		if window > 0 {
			s.logWindow = window
		}
	}
}

// New creates a Scanner over the registered media servers.
func New(servers *mediaserver.Registry, marks Marks, eventBus *events.Bus, opts ...Option) *Scanner {
	s := &Scanner{
		servers:   servers,
		marks:     marks,
		eventBus:  eventBus,
		interval:  defaultInterval,
		logWindow: defaultLogWindow,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the scan loop. The first pass runs immediately.
func (s *Scanner) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run()

	s.logger.Info().Dur("interval", s.interval).Msg("log scanner started")
	return nil
}

// Stop shuts down the scan loop, waiting up to the shutdown timeout for an
// in-flight pass to finish.
func (s *Scanner) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(defaultShutdownTimeout):
		s.logger.Warn().Msg("timed out waiting for log scanner to stop")
	}

	s.logger.Info().Msg("log scanner stopped")
	return nil
}

func (s *Scanner) run() {
	defer s.wg.Done()

	s.ScanAll(s.ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.ScanAll(s.ctx)
		}
	}
}

// ScanAll runs one scan pass over every registered media server.
func (s *Scanner) ScanAll(ctx context.Context) {
	for name, srv := range s.servers.All() {
		notices, err := s.scanServer(ctx, name, srv)
		if err != nil {
			s.logger.Error().Err(err).Str("server", name).Msg("log scan failed")
			continue
		}
		s.logger.Debug().Str("server", name).Int("notices", notices).Msg("log scan pass finished")
	}
}

// scanServer fetches the server's recent logs and publishes one deletion
// notice per removal line newer than the scan mark. The mark advances only
// past notices every subscriber accepted; when a full subscriber misses one,
// the pass stops there and the next pass replays from the mark.
func (s *Scanner) scanServer(ctx context.Context, name string, srv mediaserver.Server) (int, error) {
	s.eventBus.Publish(events.Event{
		Type: events.ScanStarted,
		Data: map[string]any{"server": name},
	})

	mark, err := s.marks.Get(ctx, name)
	if err != nil {
		return 0, err
	}

	logs, err := srv.ListRecentLogs(ctx)
	if err != nil {
		return 0, err
	}
	if len(logs) > s.logWindow {
		logs = logs[:s.logWindow]
	}

	notices := 0
	newest := mark

	// Walk the window oldest-first so notices publish in log order.
walk:
	for i := len(logs) - 1; i >= 0; i-- {
		text, err := srv.FetchLog(ctx, logs[i].Name)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("server", name).
				Str("log", logs[i].Name).
				Msg("failed to fetch log file")
			continue
		}

		for _, rm := range parseRemovals(text) {
			if !rm.time.After(mark) {
				continue
			}

			dropped := s.eventBus.Publish(events.Event{
				Type:    events.MediaDeleted,
				Subject: rm.notice(name),
			})
			if dropped > 0 {
				// The notice never reached a subscriber. Hold the mark
				// behind it so the next pass replays from here.
				s.logger.Warn().
					Str("server", name).
					Time("removal", rm.time).
					Msg("removal notice missed a subscriber, stopping the pass")
				break walk
			}
			notices++

			if rm.time.After(newest) {
				newest = rm.time
			}
		}
	}

	if newest.After(mark) {
		if err := s.marks.Set(ctx, name, newest); err != nil {
			s.logger.Warn().Err(err).Str("server", name).Msg("failed to persist scan mark")
		}
	}

	s.eventBus.Publish(events.Event{
		Type: events.ScanCompleted,
		Data: map[string]any{"server": name, "notices": notices},
	})

	return notices, nil
}

// removal is one parsed "Removing item from database" log line.
type removal struct {
	time     time.Time
	itemType string
	name     string
	path     string
}

// parseRemovals extracts every removal line from a log file's text. Lines
// whose timestamp does not parse are dropped; a truncated tail line is the
// usual cause.
func parseRemovals(text string) []removal {
	var removals []removal

	for line := range strings.SplitSeq(text, "\n") {
		m := removalLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		ts, err := time.Parse(embyTimeLayout, m[1])
		if err != nil {
			continue
		}

		removals = append(removals, removal{
			time:     ts,
			itemType: m[2],
			name:     strings.TrimSpace(m[3]),
			path:     strings.TrimSpace(m[4]),
		})
	}

	return removals
}

// notice converts the removal into the synthetic deletion notice published on
// the bus. Logs carry no external identity, so matching falls through to the
// path tier.
func (r removal) notice(origin string) apitypes.DeletionNotice {
	season, episode := deriveTokens(r.itemType, r.path)

	mediaType := "series"
	if strings.EqualFold(r.itemType, "movie") || strings.EqualFold(r.itemType, "movies") {
		mediaType = "movie"
	}

	return apitypes.DeletionNotice{
		MediaType: mediaType,
		Name:      r.name,
		Path:      r.path,
		Season:    season,
		Episode:   episode,
		Time:      r.time,
		Origin:    origin,
	}
}

// deriveTokens extracts season/episode numbers from the path when the item
// type indicates an episode or a season.
func deriveTokens(itemType, path string) (season, episode *int) {
	switch strings.ToLower(itemType) {
	case "episode":
		if m := episodePattern.FindStringSubmatch(path); m != nil {
			s, _ := strconv.Atoi(m[1])
			e, _ := strconv.Atoi(m[2])
			return &s, &e
		}
	case "season":
		if m := seasonPattern.FindStringSubmatch(path); m != nil {
			s, _ := strconv.Atoi(m[1])
			return &s, nil
		}
		if m := episodePattern.FindStringSubmatch(path); m != nil {
			s, _ := strconv.Atoi(m[1])
			return &s, nil
		}
	}
	return nil, nil
}
