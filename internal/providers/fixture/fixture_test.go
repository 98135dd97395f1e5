package fixture

import (
	"context"
	"errors"
	"testing"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

var team = teams.Team{Name: "BOSTON BRUINS", CapwagesSlug: "boston_bruins", ESPNPath: "bos/boston-bruins", NHLID: 6}

func TestFixtureCapsRunThroughParser(t *testing.T) {
	p := New(caps.SeasonLabels(2025))
	records, report, err := p.FetchCaps(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	if report.SkippedCount() != 1 {
		t.Fatalf("expected the buried row to be skipped, got %+v", report)
	}
	if records[4].Age != nil {
		t.Fatalf("expected unknown age for %s", records[4].Name)
	}
	if records[0].ExpiryYear != "2028-29" {
		t.Fatalf("unexpected expiry %q", records[0].ExpiryYear)
	}
}

func TestFixtureRosterIsDeterministic(t *testing.T) {
	p := New(caps.SeasonLabels(2025))
	first, _, err := p.FetchRoster(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	second, _, _ := p.FetchRoster(context.Background(), team)
	if len(first) != 5 || first[0].PlayerID != second[0].PlayerID {
		t.Fatalf("expected 5 players with stable ids, got %d", len(first))
	}
	if first[4].PositionGroup != "Goalies" {
		t.Fatalf("unexpected group %q", first[4].PositionGroup)
	}
}

func TestFixtureLegacyRoster(t *testing.T) {
	p := New(nil)
	players, err := p.FetchLegacyRoster(context.Background(), 6)
	if err != nil || len(players) != 4 || players[1].Position != "LW" {
		t.Fatalf("unexpected legacy roster %+v err %v", players, err)
	}
	if _, err := p.FetchLegacyRoster(context.Background(), 0); !errors.Is(err, providers.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFixtureImplementsDataProvider(t *testing.T) {
	var _ providers.DataProvider = New(nil)
}
