package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/timeline"
)

// Controller bridges the event bus onto the timeline recorder. It follows a
// microservice pattern: communicating only via the bus and the recorder, with
// no direct dependencies on other domain packages.
//
// The Controller is responsible for:
// - Subscribing to all events on the bus
// - Translating them into timeline entries
// - Generating human-readable messages for events.
type Controller struct {
	eventBus *Bus
	recorder timeline.Recorder
	logger   zerolog.Logger

	subscription Subscription
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// ControllerOption is a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger for the controller.
func WithControllerLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a new events Controller.
func NewController(eventBus *Bus, recorder timeline.Recorder, opts ...ControllerOption) *Controller {
	c := &Controller{
		eventBus: eventBus,
		recorder: recorder,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins translating bus events onto the timeline.
func (c *Controller) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	// Subscribe to all events (no filter)
	c.subscription = c.eventBus.Subscribe()

	c.wg.Add(1)
	go c.run(ctx)

	c.logger.Info().Msg("events controller started")
	return nil
}

// Stop stops the controller and waits for it to finish.
func (c *Controller) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}

	c.eventBus.Unsubscribe(c.subscription)
	c.wg.Wait()

	c.logger.Info().Msg("events controller stopped")
	return nil
}

func (c *Controller) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.subscription:
			if !ok {
				return
			}
			c.recordEvent(event)
		}
	}
}

// timelineTypes maps bus event types onto timeline entry types.
var timelineTypes = map[Type]timeline.EventType{
	SystemStarted:        timeline.EventSystemStarted,
	MediaServerConnected: timeline.EventServerConnected,
	DownloaderConnected:  timeline.EventDownloaderConnect,
	MediaDeleted:         timeline.EventNoticeReceived,
	ScanStarted:          timeline.EventScanStarted,
	ScanCompleted:        timeline.EventScanComplete,
	ReconcileCompleted:   timeline.EventReconcileComplete,
	ReconcileSkipped:     timeline.EventReconcileSkipped,
	TorrentRemoved:       timeline.EventTorrentRemoved,
	TorrentPaused:        timeline.EventTorrentPaused,
}

func (c *Controller) recordEvent(ev Event) {
	entryType, ok := timelineTypes[ev.Type]
	if !ok {
		entryType = timeline.EventError
	}

	entry := timeline.Event{
		Type:      entryType,
		Timestamp: ev.Timestamp,
		Message:   c.generateMessage(ev),
		Details:   ev.Data,
	}

	if notice, ok := ev.Subject.(apitypes.DeletionNotice); ok {
		entry.Title = notice.Name
		entry.Path = notice.Path
		entry.Server = notice.Origin
	}

	entry.Title = firstNonEmpty(entry.Title, dataString(ev, "title"))
	entry.Path = firstNonEmpty(entry.Path, dataString(ev, "path"))
	entry.Hash = dataString(ev, "hash")
	entry.Server = firstNonEmpty(entry.Server, dataString(ev, "server"))
	entry.Downloader = dataString(ev, "downloader")

	c.recorder.Record(entry)

	c.logger.Debug().
		Str("event_type", string(ev.Type)).
		Msg("recorded timeline event")
}

//nolint:cyclop // switch statement for message generation is intentionally long
func (c *Controller) generateMessage(ev Event) string {
	title := dataString(ev, "title")
	if notice, ok := ev.Subject.(apitypes.DeletionNotice); ok && title == "" {
		title = notice.Name
	}

	switch ev.Type {
	case SystemStarted:
		return "System started"
	case MediaServerConnected:
		return fmt.Sprintf("Connected to media server: %s", dataString(ev, "server"))
	case DownloaderConnected:
		return fmt.Sprintf("Connected to downloader: %s", dataString(ev, "downloader"))
	case MediaDeleted:
		return fmt.Sprintf("Deletion notice received: %s", title)
	case ScanStarted:
		return fmt.Sprintf("Log scan started: %s", dataString(ev, "server"))
	case ScanCompleted:
		return fmt.Sprintf("Log scan complete: %s (%d notices)", dataString(ev, "server"), dataInt(ev, "notices"))
	case ReconcileCompleted:
		return fmt.Sprintf("Reconciled deletion: %s (%d records)", title, dataInt(ev, "records_deleted"))
	case ReconcileSkipped:
		return fmt.Sprintf("Deletion skipped: %s (%s)", title, dataString(ev, "reason"))
	case TorrentRemoved:
		return fmt.Sprintf("Torrent removed: %s", dataString(ev, "hash"))
	case TorrentPaused:
		return fmt.Sprintf("Torrent paused: %s", dataString(ev, "hash"))
	default:
		return fmt.Sprintf("Event: %s", ev.Type)
	}
}

func dataString(ev Event, key string) string {
	s, _ := ev.Data[key].(string)
	return s
}

func dataInt(ev Event, key string) int {
	n, _ := ev.Data[key].(int)
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
