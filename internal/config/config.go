package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port        string
	Provider    string
	FirstSeason int
	CORS        CORSConfig
	Upstream    UpstreamConfig
	Metrics     MetricsConfig
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; real
// environment variables always win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		FirstSeason: intEnvOrDefault(envFirstSeason, defaultFirstSeason),
		CORS: CORSConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		},
		Upstream: loadUpstream(),
		Metrics:  loadMetrics(),
	}
}
