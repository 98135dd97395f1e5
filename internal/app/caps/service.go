// Package caps serves team cap tables and the summaries derived from them.
package caps

import (
	"context"
	"fmt"
	"time"

	"nhl-cap-service/internal/aggregate"
	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

// TeamLookup resolves a display name to a registered team.
type TeamLookup interface {
	TeamByName(name string) (teams.Team, error)
}

// Service fetches cap tables through a provider.
type Service struct {
	teams    TeamLookup
	provider providers.CapProvider
	seasons  []string
	now      func() time.Time
}

// NewService constructs a Service. seasons label the cap-hit columns.
func NewService(lookup TeamLookup, provider providers.CapProvider, seasons []string) *Service {
	return &Service{
		teams:    lookup,
		provider: provider,
		seasons:  seasons,
		now:      time.Now,
	}
}

// Seasons returns the season labels in table order.
func (s *Service) Seasons() []string {
	return append([]string(nil), s.seasons...)
}

// Caps returns the normalized cap table for the named team.
func (s *Service) Caps(ctx context.Context, teamName string) ([]caps.PlayerCap, providers.ParseReport, error) {
	team, err := s.teams.TeamByName(teamName)
	if err != nil {
		return nil, providers.ParseReport{}, err
	}
	return s.provider.FetchCaps(ctx, team)
}

// SummaryRequest selects the team, season and status to summarize.
type SummaryRequest struct {
	TeamName string
	Season   string
	Status   string
}

// Summary is the cap overview for one team and season.
type Summary struct {
	Team    string                               `json:"team"`
	Season  string                               `json:"season"`
	Status  string                               `json:"status"`
	Seasons []string                             `json:"seasons"`
	Overall aggregate.Totals                     `json:"overall"`
	Groups  map[aggregate.Group]aggregate.Totals `json:"groups"`
	Trend   []aggregate.TrendPoint               `json:"trend"`
	Donut   aggregate.Donut                      `json:"donut"`
	Scatter []aggregate.ScatterPoint             `json:"scatter"`
}

// Summary fetches the team's cap table, filters it and derives totals and
// chart series. Season defaults to the first label and status to All.
func (s *Service) Summary(ctx context.Context, req SummaryRequest) (Summary, providers.ParseReport, error) {
	team, err := s.teams.TeamByName(req.TeamName)
	if err != nil {
		return Summary{}, providers.ParseReport{}, err
	}
	season, err := s.resolveSeason(req.Season)
	if err != nil {
		return Summary{}, providers.ParseReport{}, err
	}
	status, err := resolveStatus(req.Status)
	if err != nil {
		return Summary{}, providers.ParseReport{}, err
	}

	records, report, err := s.provider.FetchCaps(ctx, team)
	if err != nil {
		return Summary{}, report, err
	}

	filtered := aggregate.Apply(records, aggregate.Filter{Season: season, Status: status})
	totals := aggregate.Summarize(filtered, season)
	return Summary{
		Team:    team.Name,
		Season:  season,
		Status:  status,
		Seasons: s.Seasons(),
		Overall: totals.Overall,
		Groups:  totals.Groups,
		Trend:   aggregate.Trend(filtered, s.seasons),
		Donut:   aggregate.BuildDonut(filtered, season),
		Scatter: aggregate.Scatter(filtered, season, s.now().Year()),
	}, report, nil
}

func (s *Service) resolveSeason(season string) (string, error) {
	if season == "" {
		if len(s.seasons) == 0 {
			return "", fmt.Errorf("%w: no seasons configured", providers.ErrInvalidInput)
		}
		return s.seasons[0], nil
	}
	for _, label := range s.seasons {
		if label == season {
			return season, nil
		}
	}
	return "", fmt.Errorf("%w: unknown season %q", providers.ErrInvalidInput, season)
}

func resolveStatus(status string) (string, error) {
	canonical, ok := aggregate.CanonicalStatus(status)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", providers.ErrInvalidInput, status)
	}
	return canonical, nil
}
