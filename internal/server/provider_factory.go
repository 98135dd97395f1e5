package server

import (
	"log/slog"

	"nhl-cap-service/internal/config"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/metrics"
	"nhl-cap-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	logging.Info(f.logger, "provider selected", slog.String(logging.FieldProvider, normalizeProviderName(cfg.Provider)))
	return f.wrap(selectProvider(cfg, f.logger))
}

// wrap instruments an already constructed provider.
func (f providerFactory) wrap(base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics)
}

// NewProvider builds the instrumented provider the server runs with, for
// tools that share its wiring.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}
