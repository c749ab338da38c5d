// Package server wires configuration into the running application: database,
// stores, clients, the reconciliation pipeline, and the HTTP API.
package server

import (
	"context"
	"embed"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediareap/mediareap/internal/api"
	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/dispose"
	"github.com/mediareap/mediareap/internal/download"
	"github.com/mediareap/mediareap/internal/ent"
	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/events"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/logscan"
	"github.com/mediareap/mediareap/internal/match"
	"github.com/mediareap/mediareap/internal/mediaserver"
	"github.com/mediareap/mediareap/internal/notify"
	"github.com/mediareap/mediareap/internal/pathmap"
	"github.com/mediareap/mediareap/internal/reconcile"
	"github.com/mediareap/mediareap/internal/source"
	"github.com/mediareap/mediareap/internal/timeline"
)

const defaultShutdownTimeout = 10 * time.Second

// Options holds additional server options not in config.
type Options struct {
	// UI filesystem (optional)
	UIFS   embed.FS
	UIPath string

	// Logger
	Logger zerolog.Logger
}

// controller is the shared lifecycle of every background component.
type controller interface {
	Start(ctx context.Context) error
	Stop() error
}

// Server is the main application server.
type Server struct {
	cfg  config.Config
	opts Options

	db           *generated.Client
	deletions    *ledger.DeletionLogStore
	eventBus     *events.Bus
	apiServer    *api.Server
	remover      source.Remover
	mediaservers *mediaserver.Registry
	downloaders  *download.Registry
	controllers  []controller
	logger       zerolog.Logger
}

// New creates a new server with the given configuration.
//
//nolint:funlen // initialization function needs to set up multiple components
func New(cfg config.Config, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	// Open the database and build the stores
	db, err := ent.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Database.Path, err)
	}

	transfers := ledger.NewTransferStore(db)
	history := ledger.NewDownloadHistoryStore(db)
	links := ledger.NewSeedLinkStore(db)
	deletions := ledger.NewDeletionLogStore(db)
	marks := ledger.NewScanMarkStore(db)

	// Build downloaders from config
	dlRegistry := download.NewRegistry()
	for name, dlCfg := range cfg.Downloaders {
		logger.Debug().Str("name", name).Str("type", dlCfg.Type).Msg("configuring downloader")

		switch dlCfg.Type {
		case "qbittorrent":
			client := download.NewQBittorrent(
				name,
				dlCfg,
				download.WithLogger(logger.With().Str("downloader", name).Logger()),
			)
			dlRegistry.Register(name, client)

		default:
			logger.Warn().Str("type", dlCfg.Type).Msg("unknown downloader type")
		}
	}

	// Build media servers from config
	msRegistry := mediaserver.NewRegistry()
	for name, msCfg := range cfg.MediaServers {
		logger.Debug().Str("name", name).Str("type", msCfg.Type).Msg("configuring media server")

		switch msCfg.Type {
		case "emby":
			msRegistry.Register(name, mediaserver.NewEmby(
				name,
				msCfg,
				mediaserver.WithLogger(logger.With().Str("mediaserver", name).Logger()),
			))

		case "jellyfin":
			msRegistry.Register(name, mediaserver.NewJellyfin(
				name,
				msCfg,
				mediaserver.WithLogger(logger.With().Str("mediaserver", name).Logger()),
			))

		default:
			logger.Warn().Str("type", msCfg.Type).Msg("unknown media server type")
		}
	}

	logger.Info().
		Int("mediaservers", len(cfg.MediaServers)).
		Int("downloaders", len(cfg.Downloaders)).
		Str("scan_mode", cfg.Scan.Mode).
		Msg("configuration loaded")

	// Source remover for cleanup behind reconciled deletions
	var remover source.Remover
	if cfg.Source.Backend == string(source.BackendSFTP) {
		remover = source.NewRclone(source.SSHConfig{
			Host:           cfg.Source.SSH.Host,
			Port:           cfg.Source.SSH.Port,
			User:           cfg.Source.SSH.User,
			KeyFile:        cfg.Source.SSH.KeyFile,
			KnownHostsFile: cfg.Source.SSH.KnownHostsFile,
			IgnoreHostKey:  cfg.Source.SSH.IgnoreHostKey,
		}, source.WithLogger(logger.With().Str("component", "source").Logger()))
		logger.Info().
			Str("backend", "sftp").
			Str("host", cfg.Source.SSH.Host).
			Int("port", cfg.Source.SSH.Port).
			Str("user", cfg.Source.SSH.User).
			Msg("source backend configured")
	} else {
		remover = source.NewLocal(source.WithLogger(logger.With().Str("component", "source").Logger()))
	}

	// Notifications are routed through a noop service when disabled.
	notifyCfg := cfg.Notify
	if !cfg.Reconcile.Notify {
		notifyCfg = config.NotifyConfig{}
	}
	notifier := notify.NewService(notifyCfg, notify.WithLogger(logger.With().Str("component", "notify").Logger()))

	// Event bus and timeline
	eventBus := events.New(events.WithLogger(logger.With().Str("component", "events").Logger()))
	timelineRecorder := timeline.NewRecorder(
		timeline.WithLogger(logger.With().Str("component", "timeline").Logger()),
	)
	eventsController := events.NewController(
		eventBus,
		timelineRecorder,
		events.WithControllerLogger(logger.With().Str("component", "events").Logger()),
	)

	// Reconciliation pipeline
	matcher := match.New(transfers, match.WithLogger(logger.With().Str("component", "match").Logger()))

	engine := dispose.New(
		history,
		links,
		dlRegistry,
		dispose.WithDefaultDownloader(cfg.Reconcile.DefaultDownloader),
		dispose.WithLogger(logger.With().Str("component", "dispose").Logger()),
	)

	reconciler := reconcile.New(
		matcher,
		transfers,
		history,
		engine,
		remover,
		deletions,
		notifier,
		reconcile.WithSourceDeletion(cfg.Reconcile.DeleteSource),
		reconcile.WithExcludePaths(cfg.Reconcile.ExcludePaths),
		reconcile.WithPruneDepth(cfg.Reconcile.PruneDepth),
		reconcile.WithLogger(logger.With().Str("component", "reconcile").Logger()),
	)

	rules := pathmap.ParseRules(cfg.Reconcile.LibraryPaths)
	reconcileController := reconcile.NewController(
		reconciler,
		eventBus,
		rules,
		reconcile.WithControllerLogger(logger.With().Str("component", "reconcile").Logger()),
	)

	statsCollector := newStatsCollector(
		eventBus,
		transfers,
		deletions,
		logger.With().Str("component", "stats").Logger(),
	)

	controllers := []controller{statsCollector, eventsController, reconcileController}

	// The log scanner runs only in log mode; webhook mode is push-driven.
	if cfg.Scan.Mode == "log" {
		scanner := logscan.New(
			msRegistry,
			marks,
			eventBus,
			logscan.WithInterval(cfg.Scan.Interval),
			logscan.WithLogWindow(cfg.Scan.LogWindow),
			logscan.WithLogger(logger.With().Str("component", "logscan").Logger()),
		)
		controllers = append(controllers, scanner)
	}

	// API server
	apiOpts := []api.Option{
		api.WithLogger(logger.With().Str("component", "api").Logger()),
	}
	if cfg.Server.APIToken != "" {
		apiOpts = append(apiOpts, api.WithAPIToken(cfg.Server.APIToken))
	}
	if opts.UIFS != (embed.FS{}) {
		apiOpts = append(apiOpts, api.WithUI(opts.UIFS, opts.UIPath))
	}

	apiServer := api.New(
		eventBus,
		deletions,
		statsCollector,
		timelineRecorder,
		msRegistry,
		dlRegistry,
		apiOpts...,
	)

	return &Server{
		cfg:          cfg,
		opts:         opts,
		db:           db,
		deletions:    deletions,
		eventBus:     eventBus,
		apiServer:    apiServer,
		remover:      remover,
		mediaservers: msRegistry,
		downloaders:  dlRegistry,
		controllers:  controllers,
		logger:       logger,
	}, nil
}

// Run starts the server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().
		Str("listen", s.cfg.Server.Listen).
		Str("database", s.cfg.Database.Path).
		Str("scan_mode", s.cfg.Scan.Mode).
		Msg("starting mediareap")

	if err := ent.Migrate(ctx, s.db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if s.cfg.Reconcile.PurgeHistory {
		if err := s.deletions.Purge(ctx); err != nil {
			return fmt.Errorf("failed to purge deletion history: %w", err)
		}
		s.logger.Info().Msg("deletion history purged")
	}

	for _, c := range s.controllers {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("failed to start controller: %w", err)
		}
	}

	s.eventBus.Publish(events.Event{Type: events.SystemStarted})

	// Connection checks run in the background so an unreachable client does
	// not hold up startup.
	go s.connectClients(ctx)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.apiServer.Start(s.cfg.Server.Listen); err != nil {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// connectClients verifies every configured client and publishes a connected
// event for each one that answers.
func (s *Server) connectClients(ctx context.Context) {
	for name, dl := range s.downloaders.All() {
		if err := dl.Connect(ctx); err != nil {
			s.logger.Warn().Err(err).Str("downloader", name).Msg("downloader connection failed")
			continue
		}
		s.eventBus.Publish(events.Event{
			Type: events.DownloaderConnected,
			Data: map[string]any{"downloader": name},
		})
	}

	for name, ms := range s.mediaservers.All() {
		if err := ms.TestConnection(ctx); err != nil {
			s.logger.Warn().Err(err).Str("mediaserver", name).Msg("media server connection failed")
			continue
		}
		s.eventBus.Publish(events.Event{
			Type: events.MediaServerConnected,
			Data: map[string]any{"server": name},
		})
	}
}

// DB returns the database client, for tests that seed or inspect rows.
func (s *Server) DB() *generated.Client {
	return s.db
}

// ListenerAddr returns the API server's bound address, or nil before Run has
// started the listener.
func (s *Server) ListenerAddr() net.Addr {
	return s.apiServer.ListenerAddr()
}

// PrepareShutdown prepares for graceful shutdown by suppressing expected errors.
// Call this before cancelling the main context.
func (s *Server) PrepareShutdown() {
	s.remover.PrepareShutdown()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down...")

	if err := s.apiServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown error")
	}

	// Stop controllers in reverse start order so producers drain first.
	for i := len(s.controllers) - 1; i >= 0; i-- {
		if err := s.controllers[i].Stop(); err != nil {
			s.logger.Error().Err(err).Msg("controller stop error")
		}
	}

	s.eventBus.Close()

	if err := s.remover.Close(); err != nil {
		s.logger.Error().Err(err).Msg("source remover close error")
	}

	for name, dl := range s.downloaders.All() {
		if err := dl.Close(); err != nil {
			s.logger.Error().Err(err).Str("downloader", name).Msg("downloader close error")
		}
	}

	if err := s.db.Close(); err != nil {
		s.logger.Error().Err(err).Msg("database close error")
	}

	s.logger.Info().Msg("shutdown complete")
	return nil
}
