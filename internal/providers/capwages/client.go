// Package capwages scrapes team contract tables from capwages.com.
package capwages

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/upstream"
)

// Config controls how the capwages client reaches the site.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
	HTTPClient       *http.Client
	// Seasons are the cap-hit column labels in table order.
	Seasons []string
}

// Client fetches a team's cap table and maps each row to a PlayerCap.
type Client struct {
	http    *resty.Client
	seasons []string
}

// NewClient constructs a capwages client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		http: upstream.NewClient(upstream.Options{
			BaseURL:          normalizeBaseURL(cfg.BaseURL),
			Timeout:          resolveTimeout(cfg.Timeout),
			UserAgent:        cfg.UserAgent,
			CloudflareBypass: cfg.CloudflareBypass,
			TracerName:       "nhl-cap-service/capwages",
			HTTPClient:       cfg.HTTPClient,
		}),
		seasons: cfg.Seasons,
	}
}

// FetchCaps retrieves the team's contract table.
func (c *Client) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, providers.ParseReport, error) {
	if team.CapwagesSlug == "" {
		return nil, providers.ParseReport{}, providers.ErrInvalidInput
	}
	doc, err := upstream.FetchHTML(ctx, c.http, providers.SourceCapwages, "/teams/"+team.CapwagesSlug)
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return Parse(doc, c.seasons)
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultHTTPTimeout
	}
	return d
}
