package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-admin/internal/config"
	httpserver "github.com/preston-bernstein/league-admin/internal/http"
	"github.com/preston-bernstein/league-admin/internal/http/handlers"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/navigation"
	"github.com/preston-bernstein/league-admin/internal/session"
	"github.com/preston-bernstein/league-admin/internal/store"
	"github.com/preston-bernstein/league-admin/internal/teamlist"
	"github.com/preston-bernstein/league-admin/internal/upstream"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	pages         *store.MemoryStore
	api           upstream.TeamAPI
	events        *navigation.Events
	indicator     *navigation.Indicator
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	navRelease    func()
}

// New constructs a server with the configured upstream and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithAPI(cfg, logger, nil, nil)
}

// newServerWithAPI lets tests inject the team API and recorder. A nil api is built from config.
func newServerWithAPI(cfg config.Config, logger *slog.Logger, api upstream.TeamAPI, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if api == nil {
		api = newUpstreamFactory(logger, recorder).build(cfg.Upstream)
	} else {
		api = upstream.NewInstrumentedAPI(api, logger, recorder, upstreamName(cfg.Upstream.Kind, api))
	}

	pages := store.NewMemoryStore(cfg.PageStateTTL, store.WithMaxPages(cfg.PageStateMax))
	events := navigation.NewEvents()
	indicator := navigation.NewIndicator()
	release := mountNavigation(events, indicator, recorder)

	httpSrv := buildHTTPServer(cfg, api, pages, events, indicator, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		pages:         pages,
		api:           api,
		events:        events,
		indicator:     indicator,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		navRelease:    release,
	}
}

func buildHTTPServer(cfg config.Config, api upstream.TeamAPI, pages *store.MemoryStore, events *navigation.Events, indicator *navigation.Indicator, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	controller := teamlist.NewController(api, pages, logger)
	sessions := session.New(cfg.Session.CookieName, cfg.Session.StaticToken)
	handler := handlers.NewHandler(controller, sessions, indicator, cfg.Session.LandingPath, logger)
	router := httpserver.NewRouter(handler, logger, recorder, events)

	return newPageServer(cfg.Port, router, cfg.Upstream.Timeout)
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	s.logger.Info("shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	s.logger.Info("http server starting",
		slog.String("addr", s.httpServer.Addr()),
		slog.String(logging.FieldUpstream, upstreamName(s.cfg.Upstream.Kind, s.api)),
	)
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.navRelease != nil {
		s.navRelease()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	s.logger.Info("shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newScrapeServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
