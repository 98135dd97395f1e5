// Package nhlapi reads team rosters from the legacy NHL stats API.
package nhlapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/upstream"
)

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com"
	defaultHTTPTimeout = 15 * time.Second
)

// Config controls how the stats API client is reached.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches legacy rosters by numeric team id.
type Client struct {
	http *resty.Client
}

// NewClient constructs a stats API client.
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
			BaseURL:    strings.TrimSuffix(base, "/"),
			Timeout:    timeout,
			UserAgent:  cfg.UserAgent,
			TracerName: "nhl-cap-service/nhlapi",
			HTTPClient: cfg.HTTPClient,
		}),
	}
}

// FetchLegacyRoster returns the projected roster for teamID. A response
// without a roster list yields an empty slice.
func (c *Client) FetchLegacyRoster(ctx context.Context, teamID int) ([]roster.LegacyPlayer, error) {
	if teamID <= 0 {
		return nil, providers.ErrInvalidInput
	}
	var payload rosterResponse
	if err := upstream.FetchJSON(ctx, c.http, providers.SourceNHLAPI, fmt.Sprintf("/api/v1/teams/%d/roster", teamID), &payload); err != nil {
		return nil, err
	}
	return mapRoster(payload), nil
}
