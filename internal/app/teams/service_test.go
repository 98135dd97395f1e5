package teams

import (
	"errors"
	"testing"

	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/store"
)

type stubTeamStore struct {
	items []teams.Team
}

func (s *stubTeamStore) ListTeams() []teams.Team { return s.items }
func (s *stubTeamStore) GetTeam(name string) (teams.Team, bool) {
	for _, t := range s.items {
		if t.Name == name {
			return t, true
		}
	}
	return teams.Team{}, false
}
func (s *stubTeamStore) GetTeamByNHLID(id int) (teams.Team, bool) {
	for _, t := range s.items {
		if t.NHLID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

func TestTeamsService(t *testing.T) {
	svc := NewService(&stubTeamStore{items: []teams.Team{{Name: "BOSTON BRUINS", NHLID: 6}}})

	if len(svc.Teams()) != 1 {
		t.Fatalf("expected teams from store")
	}
	if _, err := svc.TeamByName("BOSTON BRUINS"); err != nil {
		t.Fatalf("expected team by name, got %v", err)
	}
	if _, ok := svc.TeamByNHLID(6); !ok {
		t.Fatalf("expected team by id")
	}
}

func TestTeamByNameInvalidInput(t *testing.T) {
	svc := NewService(&stubTeamStore{items: []teams.Team{{Name: "BOSTON BRUINS"}}})

	for _, name := range []string{"", "Boston Bruins", "BOSTON"} {
		if _, err := svc.TeamByName(name); !errors.Is(err, providers.ErrInvalidInput) {
			t.Fatalf("name %q: expected invalid input, got %v", name, err)
		}
	}
}

func TestSuggestAgainstRegistry(t *testing.T) {
	svc := NewService(store.MustLoadTeams())

	got := svc.Suggest("boston bruns", 3)
	if len(got) == 0 || got[0] != "BOSTON BRUINS" {
		t.Fatalf("expected BOSTON BRUINS first, got %v", got)
	}

	got = svc.Suggest("new york", 5)
	if len(got) < 2 {
		t.Fatalf("expected both New York teams, got %v", got)
	}
	for _, name := range got[:2] {
		if name != "NEW YORK ISLANDERS" && name != "NEW YORK RANGERS" {
			t.Fatalf("expected New York teams first, got %v", got)
		}
	}

	if got := svc.Suggest("", 3); got != nil {
		t.Fatalf("expected no suggestions for empty query, got %v", got)
	}
	if got := svc.Suggest("zzzzqqq", 3); len(got) != 0 {
		t.Fatalf("expected no suggestions for nonsense, got %v", got)
	}
}
