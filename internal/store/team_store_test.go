package store

import (
	"strings"
	"testing"

	"nhl-cap-service/internal/domain/teams"
)

func TestLoadTeamsEmbeddedTable(t *testing.T) {
	s, err := LoadTeams()
	if err != nil {
		t.Fatalf("expected embedded table to load, got %v", err)
	}

	all := s.ListTeams()
	if len(all) != 32 {
		t.Fatalf("expected 32 franchises, got %d", len(all))
	}
	for _, team := range all {
		if team.CapwagesSlug == "" || team.ESPNPath == "" || team.NHLID == 0 {
			t.Fatalf("incomplete team %+v", team)
		}
		if strings.ToUpper(team.Name) != team.Name {
			t.Fatalf("expected upper-case display name, got %s", team.Name)
		}
		if len(team.Colors) == 0 || !strings.HasPrefix(team.Logo, "https://") {
			t.Fatalf("expected colours and logo for %s", team.Name)
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("expected teams sorted by name")
		}
	}
}

func TestGetTeamSlugs(t *testing.T) {
	s := MustLoadTeams()

	cases := map[string][2]string{
		"BOSTON BRUINS":        {"boston_bruins", "bos/boston-bruins"},
		"ST. LOUIS BLUES":      {"st_louis_blues", "stl/st-louis-blues"},
		"LOS ANGELES KINGS":    {"los_angeles_kings", "la/los-angeles-kings"},
		"VEGAS GOLDEN KNIGHTS": {"vegas_golden_knights", "vgk/vegas-golden-knights"},
		"ARIZONA COYOTES":      {"arizona_coyotes", "ari/arizona-coyotes"},
	}
	for name, want := range cases {
		team, ok := s.GetTeam(name)
		if !ok {
			t.Fatalf("expected %s to resolve", name)
		}
		if team.CapwagesSlug != want[0] || team.ESPNPath != want[1] {
			t.Fatalf("%s: expected %v, got %s %s", name, want, team.CapwagesSlug, team.ESPNPath)
		}
	}
}

func TestGetTeamIsExactMatch(t *testing.T) {
	s := MustLoadTeams()
	for _, name := range []string{"", "boston bruins", "ST LOUIS BLUES", " BOSTON BRUINS"} {
		if _, ok := s.GetTeam(name); ok {
			t.Fatalf("expected %q not to resolve", name)
		}
	}
}

func TestGetTeamByNHLID(t *testing.T) {
	s := MustLoadTeams()
	team, ok := s.GetTeamByNHLID(6)
	if !ok || team.Name != "BOSTON BRUINS" {
		t.Fatalf("expected id 6 to be Boston, got %+v", team)
	}
	if _, ok := s.GetTeamByNHLID(999); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestParseTeamsRejectsBadInput(t *testing.T) {
	if _, err := ParseTeams([]byte("{teams: [")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := ParseTeams([]byte("{teams: []}")); err == nil {
		t.Fatalf("expected error for empty table")
	}
	if _, err := ParseTeams([]byte(`{teams: [{name: "X"}]}`)); err == nil {
		t.Fatalf("expected error for missing slugs")
	}
}

func TestNewTeamStoreRejectsDuplicates(t *testing.T) {
	team := teams.Team{Name: "A", CapwagesSlug: "a", ESPNPath: "a/a", NHLID: 1}
	if _, err := NewTeamStore([]teams.Team{team, team}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	other := teams.Team{Name: "B", CapwagesSlug: "b", ESPNPath: "b/b", NHLID: 1}
	if _, err := NewTeamStore([]teams.Team{team, other}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestListTeamsReturnsCopy(t *testing.T) {
	s := MustLoadTeams()
	list := s.ListTeams()
	list[0].Name = "MUTATED"
	if s.ListTeams()[0].Name == "MUTATED" {
		t.Fatalf("expected ListTeams to return a copy")
	}
}
