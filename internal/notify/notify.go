// Package notify sends reconciliation summaries to an ntfy topic. When no
// topic is configured a noop implementation is returned, so callers never
// branch on whether notifications are enabled.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/config"
)

const userAgent = "MediaReap/1.0"

const defaultTimeout = 10 * time.Second

// DeletionSummary is the outcome of one reconciled deletion event.
type DeletionSummary struct {
	Title           string
	MediaKind       string
	Path            string
	RecordsDeleted  int
	TorrentsRemoved int
	TorrentsPaused  int
	Errors          int
	ImageURL        string
}

// Service is the notification surface the reconciler uses.
type Service interface {
	// NotifyDeletion posts one summary message for a reconciled deletion.
	NotifyDeletion(ctx context.Context, summary DeletionSummary) error

	// TestNotification posts a test message to verify the topic works.
	TestNotification(ctx context.Context) error
}

// Option is a functional option for configuring the service.
type Option func(*ntfyService)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(n *ntfyService) {
		n.logger = logger
	}
}

// NewService builds a notification service backed by ntfy when configured.
// An empty topic yields a noop implementation.
func NewService(cfg config.NotifyConfig, opts ...Option) Service {
	topic := strings.TrimSpace(cfg.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	n := &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
	attach   string
}

func (n *ntfyService) NotifyDeletion(ctx context.Context, summary DeletionSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Deleted %s: %s\n", summary.MediaKind, summary.Title)
	fmt.Fprintf(&b, "Path: %s\n", summary.Path)
	fmt.Fprintf(&b, "Ledger rows removed: %d\n", summary.RecordsDeleted)
	fmt.Fprintf(&b, "Torrents removed: %d, paused: %d", summary.TorrentsRemoved, summary.TorrentsPaused)
	if summary.Errors > 0 {
		fmt.Fprintf(&b, "\nErrors: %d", summary.Errors)
	}

	data := payload{
		title:   "MediaReap - Media Deleted",
		message: b.String(),
		tags:    []string{"mediareap", "deleted"},
		attach:  summary.ImageURL,
	}
	if summary.Errors > 0 {
		data.priority = "high"
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "MediaReap - Test",
		message:  "Notification system test",
		tags:     []string{"mediareap", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("failed to build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" {
		req.Header.Set("Priority", data.priority)
	}
	if data.attach != "" {
		req.Header.Set("Attach", data.attach)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send ntfy notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	n.logger.Debug().Str("title", data.title).Msg("notification sent")
	return nil
}

type noopService struct{}

func (noopService) NotifyDeletion(context.Context, DeletionSummary) error { return nil }

func (noopService) TestNotification(context.Context) error { return nil }
