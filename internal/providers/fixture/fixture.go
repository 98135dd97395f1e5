// Package fixture serves embedded sample pages through the real parsers so
// the service runs without reaching any upstream site.
package fixture

import (
	"bytes"
	"context"
	"embed"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/capwages"
	"nhl-cap-service/internal/providers/espn"
	"nhl-cap-service/internal/providers/nhlapi"
)

//go:embed data/*
var data embed.FS

// Provider returns the same sample roster for every team.
type Provider struct {
	seasons []string
}

// New creates a fixture provider labelling cap hits with seasons.
func New(seasons []string) *Provider {
	return &Provider{seasons: seasons}
}

// FetchCaps parses the embedded cap table.
func (p *Provider) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, providers.ParseReport, error) {
	if team.CapwagesSlug == "" {
		return nil, providers.ParseReport{}, providers.ErrInvalidInput
	}
	doc, err := loadDoc("data/capwages.html")
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return capwages.Parse(doc, p.seasons)
}

// FetchRoster parses the embedded roster page.
func (p *Provider) FetchRoster(ctx context.Context, team teams.Team) ([]roster.Player, providers.ParseReport, error) {
	if team.ESPNPath == "" {
		return nil, providers.ParseReport{}, providers.ErrInvalidInput
	}
	doc, err := loadDoc("data/espn.html")
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return espn.Parse(doc, team.ESPNPath)
}

// FetchLegacyRoster decodes the embedded stats API payload.
func (p *Provider) FetchLegacyRoster(ctx context.Context, teamID int) ([]roster.LegacyPlayer, error) {
	if teamID <= 0 {
		return nil, providers.ErrInvalidInput
	}
	raw, err := data.ReadFile("data/nhlapi.json")
	if err != nil {
		return nil, fmt.Errorf("fixture: read roster: %w", err)
	}
	players, err := nhlapi.DecodeRoster(raw)
	if err != nil {
		return nil, fmt.Errorf("fixture: decode roster: %w", err)
	}
	return players, nil
}

func loadDoc(name string) (*goquery.Document, error) {
	raw, err := data.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", name, err)
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(raw))
}
