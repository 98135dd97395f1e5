// Package espn scrapes team rosters from espn.com.
package espn

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/upstream"
)

// Config controls how the ESPN client reaches the site.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
	HTTPClient       *http.Client
}

// Client fetches a team's roster page and maps it to roster players.
type Client struct {
	http *resty.Client
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		http: upstream.NewClient(upstream.Options{
			BaseURL:          strings.TrimSuffix(base, "/"),
			Timeout:          timeout,
			UserAgent:        cfg.UserAgent,
			CloudflareBypass: cfg.CloudflareBypass,
			TracerName:       "nhl-cap-service/espn",
			HTTPClient:       cfg.HTTPClient,
		}),
	}
}

// FetchRoster retrieves the team's roster grouped by position heading.
func (c *Client) FetchRoster(ctx context.Context, team teams.Team) ([]roster.Player, providers.ParseReport, error) {
	if team.ESPNPath == "" {
		return nil, providers.ParseReport{}, providers.ErrInvalidInput
	}
	doc, err := upstream.FetchHTML(ctx, c.http, providers.SourceESPN, rosterPathPrefix+team.ESPNPath)
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return Parse(doc, team.ESPNPath)
}
