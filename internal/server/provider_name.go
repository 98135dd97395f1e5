package server

import "strings"

const (
	providerLive    = "live"
	providerFixture = "fixture"
)

// normalizeProviderName lower-cases the configured provider, defaulting to live scraping.
// Used across server wiring and the provider factory to keep naming consistent in logs.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerLive
	}
	return name
}
