package config

import "time"

// UpstreamConfig controls how we reach capwages.com, espn.com and the NHL stats API.
type UpstreamConfig struct {
	CapwagesBaseURL  string
	ESPNBaseURL      string
	NHLAPIBaseURL    string
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		CapwagesBaseURL:  envOrDefault(envCapwagesURL, defaultCapwagesURL),
		ESPNBaseURL:      envOrDefault(envESPNURL, defaultESPNURL),
		NHLAPIBaseURL:    envOrDefault(envNHLAPIURL, defaultNHLAPIURL),
		Timeout:          durationEnvOrDefault(envUpstreamTTL, defaultUpstreamTimeout),
		UserAgent:        envOrDefault(envUserAgent, defaultUserAgent),
		CloudflareBypass: boolEnvOrDefault(envCloudflare, true),
	}
}
