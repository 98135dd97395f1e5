package providers

import (
	"context"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
)

// Source names used as the provider label in logs and metrics.
const (
	SourceCapwages = "capwages"
	SourceESPN     = "espn"
	SourceNHLAPI   = "nhlapi"
)

// CapProvider fetches a team's contract table and normalizes each row.
type CapProvider interface {
	FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, ParseReport, error)
}

// RosterProvider fetches a team's ESPN roster grouped by position heading.
type RosterProvider interface {
	FetchRoster(ctx context.Context, team teams.Team) ([]roster.Player, ParseReport, error)
}

// LegacyRosterProvider fetches a roster from the legacy stats API by numeric team id.
type LegacyRosterProvider interface {
	FetchLegacyRoster(ctx context.Context, teamID int) ([]roster.LegacyPlayer, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CapProvider
	RosterProvider
	LegacyRosterProvider
}

type combined struct {
	CapProvider
	RosterProvider
	LegacyRosterProvider
}

// Combine joins independent upstream clients into a single DataProvider.
func Combine(c CapProvider, r RosterProvider, l LegacyRosterProvider) DataProvider {
	return combined{CapProvider: c, RosterProvider: r, LegacyRosterProvider: l}
}
