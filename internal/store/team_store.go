package store

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/titanous/json5"

	"nhl-cap-service/internal/domain/teams"
)

//go:embed teams.json5
var teamsFile []byte

type teamsDocument struct {
	Teams []teams.Team `json:"teams"`
}

// TeamStore is a read-only registry of franchises keyed by display name and legacy id.
type TeamStore struct {
	teams  []teams.Team
	byName map[string]teams.Team
	byID   map[int]teams.Team
}

// LoadTeams builds a TeamStore from the embedded franchise table.
func LoadTeams() (*TeamStore, error) {
	return ParseTeams(teamsFile)
}

// MustLoadTeams is LoadTeams for wiring code where the embedded table is known good.
func MustLoadTeams() *TeamStore {
	s, err := LoadTeams()
	if err != nil {
		panic(err)
	}
	return s
}

// ParseTeams decodes a JSON5 franchise table and validates that every entry
// carries the keys the scrapers need.
func ParseTeams(raw []byte) (*TeamStore, error) {
	var doc teamsDocument
	if err := json5.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	if len(doc.Teams) == 0 {
		return nil, errors.New("decode teams: no teams defined")
	}
	return NewTeamStore(doc.Teams)
}

// NewTeamStore indexes the given teams. Names and legacy ids must be unique.
func NewTeamStore(items []teams.Team) (*TeamStore, error) {
	s := &TeamStore{
		teams:  make([]teams.Team, 0, len(items)),
		byName: make(map[string]teams.Team, len(items)),
		byID:   make(map[int]teams.Team, len(items)),
	}
	for _, t := range items {
		if t.Name == "" || t.CapwagesSlug == "" || t.ESPNPath == "" {
			return nil, fmt.Errorf("team %q: name, capwagesSlug and espnPath are required", t.Name)
		}
		if _, dup := s.byName[t.Name]; dup {
			return nil, fmt.Errorf("team %q defined twice", t.Name)
		}
		if t.NHLID > 0 {
			if _, dup := s.byID[t.NHLID]; dup {
				return nil, fmt.Errorf("team %q reuses nhl id %d", t.Name, t.NHLID)
			}
			s.byID[t.NHLID] = t
		}
		s.byName[t.Name] = t
		s.teams = append(s.teams, t)
	}
	sort.Slice(s.teams, func(i, j int) bool { return s.teams[i].Name < s.teams[j].Name })
	return s, nil
}

// ListTeams returns a copy of the teams ordered by name.
func (s *TeamStore) ListTeams() []teams.Team {
	out := make([]teams.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// GetTeam looks up a team by exact display name. The match is case and punctuation sensitive.
func (s *TeamStore) GetTeam(name string) (teams.Team, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// GetTeamByNHLID looks up a team by its legacy stats-API id.
func (s *TeamStore) GetTeamByNHLID(id int) (teams.Team, bool) {
	t, ok := s.byID[id]
	return t, ok
}
