// Package api provides the HTTP API server.
package api //nolint:revive // api is a common, well-understood package name

import (
	"context"
	"embed"
	"io/fs"
	"net"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/mediaserver"
	"github.com/mediareap/mediareap/internal/reconcile"
	"github.com/mediareap/mediareap/internal/timeline"
)

// validNamePattern matches valid server-name and hash parameters: alphanumeric,
// hyphens, underscores. Permissive enough for configured instance names and
// torrent hashes while blocking path traversal and injection.
var validNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Parameter length bounds.
const (
	maxNameLength = 256
	maxKeyLength  = 512
)

// validateName checks that a name parameter is non-empty, of reasonable
// length, and contains only safe characters.
func validateName(name string) error {
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if len(name) > maxNameLength {
		return echo.NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if !validNamePattern.MatchString(name) {
		return echo.NewHTTPError(http.StatusBadRequest, "name contains invalid characters")
	}
	return nil
}

// History is the deletion-log surface the API exposes.
type History interface {
	List(ctx context.Context) ([]ledger.DeletionEntry, error)
	DeleteByKey(ctx context.Context, key string) error
}

// StatsProvider supplies the aggregate reconciliation statistics.
type StatsProvider interface {
	Stats(ctx context.Context) (apitypes.Stats, error)
}

// Server is the HTTP API server.
type Server struct {
	echo         *echo.Echo
	eventBus     *events.Bus
	history      History
	stats        StatsProvider
	timeline     timeline.Recorder
	mediaservers *mediaserver.Registry
	downloaders  *download.Registry
	apiToken     string
	logger       zerolog.Logger
	uiFS         fs.FS
}

// Option is a functional option for configuring the server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithUI sets the embedded UI filesystem.
func WithUI(uiFS embed.FS, subdir string) Option {
	return func(s *Server) {
		sub, err := fs.Sub(uiFS, subdir)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to get ui subdirectory")
			return
		}
		s.uiFS = sub
	}
}

// WithAPIToken requires the given token to delete deletion-history entries.
// The ingestion endpoints stay open: webhook senders cannot carry custom
// headers. An empty token leaves the delete endpoint open too.
func WithAPIToken(token string) Option {
	return func(s *Server) {
		s.apiToken = token
	}
}

// New creates a new API server.
func New(
	eventBus *events.Bus,
	history History,
	stats StatsProvider,
	recorder timeline.Recorder,
	mediaservers *mediaserver.Registry,
	downloaders *download.Registry,
	opts ...Option,
) *Server {
	s := &Server{
		echo:         echo.New(),
		eventBus:     eventBus,
		history:      history,
		stats:        stats,
		timeline:     recorder,
		mediaservers: mediaservers,
		downloaders:  downloaders,
		logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Request logging
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request error")
			} else {
				s.logger.Debug().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request")
			}
			return nil
		},
	}))

	// Recovery
	s.echo.Use(middleware.Recover())

	// CORS
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))
}

func (s *Server) setupRoutes() {
	// API routes
	api := s.echo.Group("/api")

	// Health check
	api.GET("/health", s.healthHandler)

	// Stats
	api.GET("/stats", s.statsHandler)

	// Deletion ingestion
	api.POST("/webhook/:server", s.webhookHandler)
	api.POST("/actions/deleted", s.actionHandler)

	// Deletion history
	api.GET("/history", s.listHistoryHandler)
	api.DELETE("/history/:key", s.deleteHistoryHandler)

	// Timeline
	api.GET("/timeline", s.timelineHandler)

	// Configured instances
	api.GET("/mediaservers", s.listMediaServersHandler)
	api.GET("/downloaders", s.listDownloadersHandler)

	// Serve UI if available
	if s.uiFS != nil {
		s.echo.GET("/*", echo.WrapHandler(http.FileServer(http.FS(s.uiFS))))
	} else {
		// Serve a basic status page
		s.echo.GET("/", s.indexHandler)
	}
}

// Start starts the server.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("starting http server")
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ListenerAddr returns the bound listener address, or nil before Start.
func (s *Server) ListenerAddr() net.Addr {
	return s.echo.ListenerAddr()
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Handlers

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, apitypes.HealthResponse{Status: "ok"})
}

func (s *Server) statsHandler(c echo.Context) error {
	stats, err := s.stats.Stats(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to collect stats")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to collect stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

// webhookHandler ingests an Emby/Jellyfin webhook. Non-deletion events are
// acknowledged and dropped, so the webhook can be configured for all event
// types without generating errors.
func (s *Server) webhookHandler(c echo.Context) error {
	server := c.Param("server")
	if err := validateName(server); err != nil {
		return err
	}

	var payload apitypes.WebhookPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "invalid payload"})
	}

	notice, ok := reconcile.NoticeFromWebhook(payload, server)
	if !ok {
		return c.JSON(http.StatusOK, apitypes.Response{Success: true, Message: "event ignored"})
	}

	return s.publishNotice(c, notice)
}

// actionHandler ingests a generic plugin-to-plugin deletion action.
func (s *Server) actionHandler(c echo.Context) error {
	var payload apitypes.ActionPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "invalid payload"})
	}

	notice, ok := reconcile.NoticeFromAction(payload, "action")
	if !ok {
		return c.JSON(http.StatusOK, apitypes.Response{Success: true, Message: "action ignored"})
	}

	return s.publishNotice(c, notice)
}

// publishNotice hands a deletion notice to the bus. A notice a full
// subscriber missed is refused rather than acknowledged, so the sender can
// retry instead of losing the deletion.
func (s *Server) publishNotice(c echo.Context, notice apitypes.DeletionNotice) error {
	if dropped := s.eventBus.Publish(events.Event{
		Type:    events.MediaDeleted,
		Subject: notice,
	}); dropped > 0 {
		s.logger.Warn().Str("path", notice.Path).Msg("deletion notice missed a subscriber, refusing")
		return c.JSON(http.StatusServiceUnavailable, apitypes.ErrorResponse{Error: "event queue full, retry later"})
	}

	return c.JSON(http.StatusAccepted, apitypes.Response{Success: true})
}

func (s *Server) listHistoryHandler(c echo.Context) error {
	entries, err := s.history.List(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list deletion history")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to list history"})
	}

	response := make([]apitypes.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		response = append(response, apitypes.HistoryEntry{
			UniqueKey: entry.UniqueKey,
			Title:     entry.Title,
			MediaType: string(entry.MediaKind),
			Path:      entry.Path,
			Season:    entry.Season,
			Episode:   entry.Episode,
			ImageURL:  entry.ImageURL,
			DeletedAt: entry.DeletedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// deleteHistoryHandler removes one deletion-log entry by its unique key. The
// key embeds the title and a timestamp, so it only gets a length check, not
// the strict name pattern.
func (s *Server) deleteHistoryHandler(c echo.Context) error {
	if err := s.checkToken(c); err != nil {
		return err
	}

	key := c.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}
	if len(key) > maxKeyLength {
		return echo.NewHTTPError(http.StatusBadRequest, "key too long")
	}

	if err := s.history.DeleteByKey(c.Request().Context(), key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete history entry")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to delete entry"})
	}

	return c.JSON(http.StatusOK, apitypes.Response{Success: true})
}

func (s *Server) timelineHandler(c echo.Context) error {
	if s.timeline == nil {
		return c.JSON(http.StatusOK, []any{})
	}

	if path := c.QueryParam("path"); path != "" {
		return c.JSON(http.StatusOK, s.timeline.GetByPath(path))
	}
	if hash := c.QueryParam("hash"); hash != "" {
		return c.JSON(http.StatusOK, s.timeline.GetByHash(hash))
	}
	if downloader := c.QueryParam("downloader"); downloader != "" {
		return c.JSON(http.StatusOK, s.timeline.GetByDownloader(downloader))
	}

	return c.JSON(http.StatusOK, s.timeline.GetAll())
}

func (s *Server) listMediaServersHandler(c echo.Context) error {
	servers := s.mediaservers.All()

	response := make([]apitypes.MediaServer, 0, len(servers))
	for name, srv := range servers {
		response = append(response, apitypes.MediaServer{
			Name: name,
			Type: srv.Type(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) listDownloadersHandler(c echo.Context) error {
	downloaders := s.downloaders.All()

	response := make([]apitypes.DownloadClient, 0, len(downloaders))
	for name, dl := range downloaders {
		response = append(response, apitypes.DownloadClient{
			Name: name,
			Type: dl.Type(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// checkToken enforces the configured API token.
func (s *Server) checkToken(c echo.Context) error {
	if s.apiToken == "" {
		return nil
	}
	if c.Request().Header.Get("X-Api-Token") != s.apiToken {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid api token")
	}
	return nil
}

func (s *Server) indexHandler(c echo.Context) error {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>MediaReap</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 40px; }
        h1 { color: #333; }
        .status { color: #28a745; }
        a { color: #007bff; }
    </style>
</head>
<body>
    <h1>MediaReap</h1>
    <p class="status">Status: Running</p>
    <h2>API Endpoints</h2>
    <ul>
        <li><a href="/api/health">/api/health</a> - Health check</li>
        <li><a href="/api/stats">/api/stats</a> - Statistics</li>
        <li><a href="/api/history">/api/history</a> - Deletion history</li>
        <li><a href="/api/timeline">/api/timeline</a> - Activity timeline</li>
        <li><a href="/api/mediaservers">/api/mediaservers</a> - Configured media servers</li>
        <li><a href="/api/downloaders">/api/downloaders</a> - Configured download clients</li>
    </ul>
</body>
</html>`
	return c.HTML(http.StatusOK, html)
}
