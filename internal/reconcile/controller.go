package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/pathmap"
)

// defaultShutdownTimeout is how long Stop waits for the run loop to drain.
const defaultShutdownTimeout = 10 * time.Second

// Controller consumes MediaDeleted notices from the event bus, normalizes
// them, and feeds them to the reconciler one at a time. Sequential
// consumption keeps the reconciler's per-path locks uncontended in the
// common case while still protecting against concurrent API calls.
type Controller struct {
	reconciler *Reconciler
	eventBus   *events.Bus
	rules      []pathmap.Rule
	logger     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ControllerOption is a functional option for configuring the controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger.
func WithControllerLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller that reconciles deletion notices
// published on the bus.
func NewController(reconciler *Reconciler, eventBus *events.Bus, rules []pathmap.Rule, opts ...ControllerOption) *Controller {
	c := &Controller{
		reconciler: reconciler,
		eventBus:   eventBus,
		rules:      rules,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins consuming deletion notices.
func (c *Controller) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	sub := c.eventBus.Subscribe(events.MediaDeleted)

	c.wg.Add(1)
	go c.run(sub)

	c.logger.Info().Msg("reconcile controller started")
	return nil
}

// Stop shuts down the controller, waiting up to the shutdown timeout for the
// in-flight reconciliation to finish.
func (c *Controller) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(defaultShutdownTimeout):
		c.logger.Warn().Msg("timed out waiting for reconcile controller to stop")
	}

	c.logger.Info().Msg("reconcile controller stopped")
	return nil
}

func (c *Controller) run(sub events.Subscription) {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}

			notice, ok := event.Subject.(apitypes.DeletionNotice)
			if !ok {
				c.logger.Warn().Msg("media.deleted event without a deletion notice subject")
				continue
			}
			c.handle(notice)
		}
	}
}

func (c *Controller) handle(notice apitypes.DeletionNotice) {
	ev := EventFromNotice(notice, c.rules)

	c.logger.Info().
		Str("origin", ev.Origin).
		Str("kind", string(ev.Kind)).
		Str("name", ev.Name).
		Str("path", ev.Path).
		Msg("reconciling deletion notice")

	outcome := c.reconciler.Reconcile(c.ctx, ev)
	c.publish(ev, outcome)
}

// publish mirrors the outcome back onto the bus for the timeline and stats.
func (c *Controller) publish(ev Event, outcome Outcome) {
	for _, d := range outcome.Torrents {
		eventType := events.TorrentRemoved
		if d.Action == dispose.ActionPause {
			eventType = events.TorrentPaused
		}
		c.eventBus.Publish(events.Event{
			Type:    eventType,
			Subject: ev,
			Data: map[string]any{
				"title":         ev.Name,
				"hash":          d.Hash,
				"downloader":    d.Downloader,
				"cascaded_from": d.CascadedFrom,
			},
		})
	}

	eventType := events.ReconcileCompleted
	data := map[string]any{
		"title":           ev.Name,
		"path":            ev.Path,
		"tier":            outcome.Tier,
		"records_deleted": outcome.RecordsDeleted,
		"files_removed":   outcome.FilesRemoved,
		"dirs_pruned":     outcome.DirsPruned,
		"errors":          outcome.Errors,
	}
	if outcome.Status == StatusSkipped {
		eventType = events.ReconcileSkipped
		data = map[string]any{
			"title":  ev.Name,
			"path":   ev.Path,
			"reason": outcome.Reason,
		}
	}

	c.eventBus.Publish(events.Event{
		Type:    eventType,
		Subject: ev,
		Data:    data,
	})
}
