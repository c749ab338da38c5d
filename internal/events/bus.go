// Package events provides an in-process event bus for decoupled communication.
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Type represents the type of event.
type Type string

// Event types for the deletion-reconciliation pipeline.
const (
	// SystemStarted indicates the system has started.
	SystemStarted Type = "system.started"
	// MediaServerConnected indicates a media server has connected.
	MediaServerConnected Type = "mediaserver.connected"
	// DownloaderConnected indicates a downloader has connected.
	DownloaderConnected Type = "downloader.connected"

	// MediaDeleted carries a normalized deletion notice (apitypes.DeletionNotice
	// as Subject). Published by the webhook handler, the action handler, and
	// the log scanner; consumed by the reconcile controller.
	MediaDeleted Type = "media.deleted"

	// ScanStarted indicates a log-scan pass has started.
	ScanStarted Type = "scan.started"
	// ScanCompleted indicates a log-scan pass finished, with the number of
	// synthesized notices in Data["notices"].
	ScanCompleted Type = "scan.completed"

	// ReconcileCompleted indicates a deletion event was fully reconciled.
	ReconcileCompleted Type = "reconcile.completed"
	// ReconcileSkipped indicates a deletion event was dropped by a guard
	// (path still exists, excluded prefix, no match, stale timestamp).
	ReconcileSkipped Type = "reconcile.skipped"

	// TorrentRemoved indicates a torrent was removed from its downloader.
	TorrentRemoved Type = "torrent.removed"
	// TorrentPaused indicates a torrent was paused instead of removed
	// because it still references kept files.
	TorrentPaused Type = "torrent.paused"
)

// Event represents an event in the system.
// Subject should be the primary entity the event is about (e.g.,
// apitypes.DeletionNotice for MediaDeleted). Data contains additional
// event-specific information not available on the Subject.
type Event struct {
	Type      Type           `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Subject   any            `json:"-"`
	Data      map[string]any `json:"data,omitempty"`
}

// Subscription is a channel that receives events.
type Subscription <-chan Event

// subscriberEntry tracks a subscriber and its filter.
type subscriberEntry struct {
	ch     chan Event
	types  map[Type]bool // nil means all events
	closed bool
}

// Bus is an in-process event bus that supports pub/sub.
type Bus struct {
	subscribers []*subscriberEntry
	mu          sync.RWMutex
	logger      zerolog.Logger
	bufferSize  int
}

// Option is a functional option for configuring the bus.
type Option func(*Bus)

// WithLogger sets the logger for the bus.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bus) {
		b.logger = logger
	}
}

// WithBufferSize sets the channel buffer size for subscribers.
func WithBufferSize(size int) Option {
	return func(b *Bus) {
		b.bufferSize = size
	}
}

// Default buffer size for subscriber channels.
const defaultBufferSize = 100

// New creates a new event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		logger:     zerolog.Nop(),
		bufferSize: defaultBufferSize,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe creates a subscription for specific event types.
// If no types are provided, the subscription receives all events.
func (b *Bus) Subscribe(types ...Type) Subscription {
	ch := make(chan Event, b.bufferSize)

	entry := &subscriberEntry{
		ch: ch,
	}

	if len(types) > 0 {
		entry.types = make(map[Type]bool, len(types))
		for _, t := range types {
			entry.types[t] = true
		}
	}

	b.mu.Lock()
	b.subscribers = append(b.subscribers, entry)
	b.mu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, entry := range b.subscribers {
		if entry.ch == sub {
			if !entry.closed {
				close(entry.ch)
				entry.closed = true
			}
			// Remove from slice
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all matching subscribers. Delivery is
// non-blocking: a subscriber whose buffer is full misses the event. The
// return value counts the subscribers that missed it, so publishers with
// replay semantics can refuse to advance past an undelivered event.
func (b *Bus) Publish(event Event) int {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	dropped := 0
	for _, entry := range b.subscribers {
		if entry.closed {
			continue
		}

		// Check if subscriber wants this event type
		if entry.types != nil && !entry.types[event.Type] {
			continue
		}

		// Non-blocking send - drop if buffer full
		select {
		case entry.ch <- event:
		default:
			dropped++
			b.logger.Warn().
				Str("type", string(event.Type)).
				Msg("event dropped - subscriber buffer full")
		}
	}

	b.logger.Debug().
		Str("type", string(event.Type)).
		Msg("event published")

	return dropped
}

// Close closes all subscriber channels and cleans up.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, entry := range b.subscribers {
		if !entry.closed {
			close(entry.ch)
			entry.closed = true
		}
	}
	b.subscribers = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
