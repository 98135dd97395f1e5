package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.FirstSeason != defaultFirstSeason {
		t.Fatalf("expected default first season %d, got %d", defaultFirstSeason, cfg.FirstSeason)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Upstream.CapwagesBaseURL != defaultCapwagesURL {
		t.Fatalf("expected default capwages url %s, got %s", defaultCapwagesURL, cfg.Upstream.CapwagesBaseURL)
	}
	if cfg.Upstream.ESPNBaseURL != defaultESPNURL {
		t.Fatalf("expected default espn url %s, got %s", defaultESPNURL, cfg.Upstream.ESPNBaseURL)
	}
	if cfg.Upstream.NHLAPIBaseURL != defaultNHLAPIURL {
		t.Fatalf("expected default nhl api url %s, got %s", defaultNHLAPIURL, cfg.Upstream.NHLAPIBaseURL)
	}
	if cfg.Upstream.Timeout != defaultUpstreamTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultUpstreamTimeout, cfg.Upstream.Timeout)
	}
	if !cfg.Upstream.CloudflareBypass {
		t.Fatalf("expected cloudflare bypass enabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envFirstSeason, "2026")
	t.Setenv(envCORSOrigins, "http://localhost:3000, https://caps.example.com")
	t.Setenv(envCapwagesURL, "http://caps.local")
	t.Setenv(envUpstreamTTL, "3s")
	t.Setenv(envCloudflare, "false")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.FirstSeason != 2026 {
		t.Fatalf("expected first season 2026, got %d", cfg.FirstSeason)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://caps.example.com" {
		t.Fatalf("expected trimmed origin list, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Upstream.CapwagesBaseURL != "http://caps.local" {
		t.Fatalf("expected capwages override, got %s", cfg.Upstream.CapwagesBaseURL)
	}
	if cfg.Upstream.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.CloudflareBypass {
		t.Fatalf("expected cloudflare bypass disabled")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envUpstreamTTL, "not-a-duration")

	cfg := Load()

	if cfg.Upstream.Timeout != defaultUpstreamTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Upstream.Timeout)
	}
}

func TestLoadNonPositiveSeasonFallsBack(t *testing.T) {
	t.Setenv(envFirstSeason, "-4")

	cfg := Load()

	if cfg.FirstSeason != defaultFirstSeason {
		t.Fatalf("expected default season on non-positive value, got %d", cfg.FirstSeason)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PROVIDER=fixture\nPORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv(envPort, "6000")
	// Registered so t.Setenv restores the original value after godotenv sets it.
	t.Setenv(envProvider, "")
	os.Unsetenv(envProvider)

	cfg := Load()

	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider from .env, got %s", cfg.Provider)
	}
	if cfg.Port != "6000" {
		t.Fatalf("expected real env to win over .env, got %s", cfg.Port)
	}
}
