// Package roster serves ESPN rosters by team name and legacy rosters by team id.
package roster

import (
	"context"
	"fmt"

	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

// TeamLookup resolves a display name to a registered team.
type TeamLookup interface {
	TeamByName(name string) (teams.Team, error)
}

// Service coordinates roster lookups.
type Service struct {
	teams  TeamLookup
	roster providers.RosterProvider
	legacy providers.LegacyRosterProvider
}

// NewService constructs a Service.
func NewService(lookup TeamLookup, rosterProvider providers.RosterProvider, legacy providers.LegacyRosterProvider) *Service {
	return &Service{teams: lookup, roster: rosterProvider, legacy: legacy}
}

// Roster returns the named team's ESPN roster.
func (s *Service) Roster(ctx context.Context, teamName string) ([]roster.Player, providers.ParseReport, error) {
	team, err := s.teams.TeamByName(teamName)
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return s.roster.FetchRoster(ctx, team)
}

// LegacyRoster returns the stats API roster for teamID.
func (s *Service) LegacyRoster(ctx context.Context, teamID int) (roster.LegacyRoster, error) {
	if teamID <= 0 {
		return roster.LegacyRoster{}, fmt.Errorf("%w: team id must be positive", providers.ErrInvalidInput)
	}
	players, err := s.legacy.FetchLegacyRoster(ctx, teamID)
	if err != nil {
		return roster.LegacyRoster{}, err
	}
	if players == nil {
		players = []roster.LegacyPlayer{}
	}
	return roster.LegacyRoster{Roster: players}, nil
}
