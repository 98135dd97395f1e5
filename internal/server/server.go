package server

import (
	"context"
	"log/slog"
	"net/http"

	capsapp "nhl-cap-service/internal/app/caps"
	rosterapp "nhl-cap-service/internal/app/roster"
	teamsapp "nhl-cap-service/internal/app/teams"
	"nhl-cap-service/internal/config"
	httpserver "nhl-cap-service/internal/http"
	"nhl-cap-service/internal/http/handlers"
	"nhl-cap-service/internal/http/middleware"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/metrics"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/store"
)

var (
	metricsSetup = metrics.Setup
	tracingSetup = metrics.SetupTracing
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.DataProvider
	teamsService  *teamsapp.Service
	capsService   *capsapp.Service
	rosterService *rosterapp.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	tracingStop   func(context.Context) error
}

// New constructs a server with the configured provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	tracingShutdown := buildTracing(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(provider)
	}
	teamSvc, capSvc, rosterSvc := buildServices(cfg, provider)
	httpSrv := buildHTTPServer(cfg, teamSvc, capSvc, rosterSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		teamsService:  teamSvc,
		capsService:   capSvc,
		rosterService: rosterSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		tracingStop:   tracingShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, provider providers.DataProvider) (*teamsapp.Service, *capsapp.Service, *rosterapp.Service) {
	teamSvc := teamsapp.NewService(store.MustLoadTeams())
	capSvc := capsapp.NewService(teamSvc, provider, seasonsFor(cfg))
	rosterSvc := rosterapp.NewService(teamSvc, provider, provider)
	return teamSvc, capSvc, rosterSvc
}

func buildHTTPServer(cfg config.Config, teamSvc *teamsapp.Service, capSvc *capsapp.Service, rosterSvc *rosterapp.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(teamSvc, capSvc, rosterSvc, logger)
	router := httpserver.NewRouter(handler)
	withCORS := middleware.CORS(cfg.CORS.AllowedOrigins)(router)
	wrapped := middleware.LoggingMiddleware(logger, recorder, withCORS)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.tracingStop != nil {
		if err := s.tracingStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "tracing shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := telemetryConfig(cfg)

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func telemetryConfig(cfg config.Config) metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}
}

// buildTracing installs the tracer provider used by the upstream clients.
// Failures leave the no-op global provider in place.
func buildTracing(cfg config.Config, logger *slog.Logger) func(context.Context) error {
	_, shutdown, err := tracingSetup(context.Background(), telemetryConfig(cfg))
	if err != nil {
		logging.Warn(logger, "tracing setup failed, continuing without spans", "err", err)
		return nil
	}
	return shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
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
