package teams

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.75

// Store defines the read side of the team registry.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(name string) (teams.Team, bool)
	GetTeamByNHLID(id int) (teams.Team, bool)
}

// Service resolves team names against the registry.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns every registered team.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByName looks up a team by its exact display name.
func (s *Service) TeamByName(name string) (teams.Team, error) {
	if name == "" {
		return teams.Team{}, fmt.Errorf("%w: missing team name", providers.ErrInvalidInput)
	}
	team, ok := s.store.GetTeam(name)
	if !ok {
		return teams.Team{}, fmt.Errorf("%w: unknown team %q", providers.ErrInvalidInput, name)
	}
	return team, nil
}

// TeamByNHLID looks up a team by its stats API id.
func (s *Service) TeamByNHLID(id int) (teams.Team, bool) {
	return s.store.GetTeamByNHLID(id)
}

// Suggest returns up to limit registered names that resemble name, best first.
func (s *Service) Suggest(name string, limit int) []string {
	query := strings.ToUpper(strings.TrimSpace(name))
	if query == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}
	var matches []scored
	for _, team := range s.store.ListTeams() {
		score := matchr.JaroWinkler(query, team.Name, false)
		if strings.Contains(team.Name, query) {
			score = 1
		}
		if score >= suggestThreshold {
			matches = append(matches, scored{name: team.Name, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}
