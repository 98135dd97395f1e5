package server

import (
	"log/slog"

	"nhl-cap-service/internal/config"
	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/capwages"
	"nhl-cap-service/internal/providers/espn"
	"nhl-cap-service/internal/providers/fixture"
	"nhl-cap-service/internal/providers/nhlapi"
)

// seasonsFor returns the cap-hit column labels for the configured first season.
func seasonsFor(cfg config.Config) []string {
	return caps.SeasonLabels(cfg.FirstSeason)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	seasons := seasonsFor(cfg)
	switch name := normalizeProviderName(cfg.Provider); name {
	case providerLive:
		return liveProvider(cfg.Upstream, seasons)
	case providerFixture:
		return fixture.New(seasons)
	default:
		logging.Warn(logger, "unknown provider, falling back to live", slog.String(logging.FieldProvider, name))
		return liveProvider(cfg.Upstream, seasons)
	}
}

func liveProvider(up config.UpstreamConfig, seasons []string) providers.DataProvider {
	return providers.Combine(
		capwages.NewClient(capwages.Config{
			BaseURL:          up.CapwagesBaseURL,
			Timeout:          up.Timeout,
			UserAgent:        up.UserAgent,
			CloudflareBypass: up.CloudflareBypass,
			Seasons:          seasons,
		}),
		espn.NewClient(espn.Config{
			BaseURL:          up.ESPNBaseURL,
			Timeout:          up.Timeout,
			UserAgent:        up.UserAgent,
			CloudflareBypass: up.CloudflareBypass,
		}),
		nhlapi.NewClient(nhlapi.Config{
			BaseURL:   up.NHLAPIBaseURL,
			Timeout:   up.Timeout,
			UserAgent: up.UserAgent,
		}),
	)
}
