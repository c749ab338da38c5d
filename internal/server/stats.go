package server

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/events"
)

// Counter is the store surface the stats collector polls for row counts.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// statsCollector accumulates reconciliation counters from the event bus and
// combines them with live store counts for the stats API.
type statsCollector struct {
	eventBus *events.Bus
	records  Counter
	history  Counter
	logger   zerolog.Logger

	mu              sync.Mutex
	eventsProcessed int
	recordsDeleted  int
	torrentsRemoved int
	torrentsPaused  int
	eventsSkipped   int
	errors          int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newStatsCollector(eventBus *events.Bus, records, history Counter, logger zerolog.Logger) *statsCollector {
	return &statsCollector{
		eventBus: eventBus,
		records:  records,
		history:  history,
		logger:   logger,
	}
}

// Start subscribes to the bus and begins counting.
func (s *statsCollector) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	sub := s.eventBus.Subscribe(
		events.MediaDeleted,
		events.ReconcileCompleted,
		events.ReconcileSkipped,
		events.TorrentRemoved,
		events.TorrentPaused,
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-sub:
				if !ok {
					return
				}
				s.count(event)
			}
		}
	}()

	return nil
}

// Stop shuts down the counting loop.
func (s *statsCollector) Stop() error {
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
		s.logger.Warn().Msg("timed out waiting for stats collector to stop")
	}

	return nil
}

func (s *statsCollector) count(event events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case events.MediaDeleted:
		s.eventsProcessed++
	case events.ReconcileCompleted:
		s.recordsDeleted += dataInt(event.Data, "records_deleted")
		s.errors += dataInt(event.Data, "errors")
	case events.ReconcileSkipped:
		s.eventsSkipped++
	case events.TorrentRemoved:
		s.torrentsRemoved++
	case events.TorrentPaused:
		s.torrentsPaused++
	}
}

// Stats implements the stats surface of the API server.
func (s *statsCollector) Stats(ctx context.Context) (apitypes.Stats, error) {
	ledgerRecords, err := s.records.Count(ctx)
	if err != nil {
		return apitypes.Stats{}, err
	}

	historyEntries, err := s.history.Count(ctx)
	if err != nil {
		return apitypes.Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return apitypes.Stats{
		LedgerRecords:   ledgerRecords,
		HistoryEntries:  historyEntries,
		EventsProcessed: s.eventsProcessed,
		RecordsDeleted:  s.recordsDeleted,
		TorrentsRemoved: s.torrentsRemoved,
		TorrentsPaused:  s.torrentsPaused,
		EventsSkipped:   s.eventsSkipped,
		Errors:          s.errors,
	}, nil
}

func dataInt(data map[string]any, key string) int {
	if data == nil {
		return 0
	}
	n, _ := data[key].(int)
	return n
}
