package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envFirstSeason  = "FIRST_SEASON"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCapwagesURL  = "CAPWAGES_BASE_URL"
	envESPNURL      = "ESPN_BASE_URL"
	envNHLAPIURL    = "NHL_API_BASE_URL"
	envUpstreamTTL  = "UPSTREAM_TIMEOUT"
	envUserAgent    = "UPSTREAM_USER_AGENT"
	envCloudflare   = "CLOUDFLARE_BYPASS"

	defaultPort        = "4000"
	defaultProvider    = "live"
	defaultFirstSeason = 2025
	defaultCORSOrigin  = "*"
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-cap-service"

	defaultCapwagesURL = "https://capwages.com"
	defaultESPNURL     = "https://www.espn.com"
	defaultNHLAPIURL   = "https://statsapi.web.nhl.com"
	// Bounds the single attempt made per upstream fetch.
	defaultUpstreamTimeout = 15 * Duration(time.Second)
	defaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)
