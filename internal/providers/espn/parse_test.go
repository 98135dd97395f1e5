package espn

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/providers"
)

const bruinsPath = "bos/boston-bruins"

func loadDoc(t *testing.T) *goquery.Document {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "boston_bruins.html"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseGroupsByHeading(t *testing.T) {
	players, report, err := Parse(loadDoc(t), bruinsPath)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := []roster.Player{
		{FirstName: "Brad", LastName: "Marchand", SweaterNumber: "63", Age: "37", PositionGroup: "Centers", Weight: "181 lbs"},
		{FirstName: "Pavel", LastName: "Zacha", SweaterNumber: "18", Age: "28", PositionGroup: "Centers", Weight: "210 lbs"},
		{FirstName: "Charlie", LastName: "McAvoy", SweaterNumber: "73", Age: "27", PositionGroup: "Defense", Weight: "208 lbs"},
		{FirstName: "Mason", LastName: "Lohrei Van Der Berg", SweaterNumber: "6", Age: "24", PositionGroup: "Defense", Weight: "215 lbs"},
		{FirstName: "Jeremy", LastName: "Swayman", SweaterNumber: "1", Age: "26", PositionGroup: "Goalies", Weight: "196 lbs"},
	}
	if diff := cmp.Diff(want, players, cmpopts.IgnoreFields(roster.Player{}, "PlayerID")); diff != "" {
		t.Fatalf("players mismatch (-want +got):\n%s", diff)
	}

	if report.Rows != 6 || report.SkippedCount() != 1 {
		t.Fatalf("expected 6 rows with 1 skipped, got %+v", report)
	}
	if got := report.Skipped[0]; got.Index != 3 || got.Columns != 1 {
		t.Fatalf("unexpected skipped row %+v", got)
	}
}

func TestParsePlayerIDsAreStable(t *testing.T) {
	first, _, _ := Parse(loadDoc(t), bruinsPath)
	second, _, _ := Parse(loadDoc(t), bruinsPath)

	seen := map[int64]bool{}
	for i := range first {
		if first[i].PlayerID != second[i].PlayerID {
			t.Fatalf("expected stable id for %s, got %d and %d", first[i].LastName, first[i].PlayerID, second[i].PlayerID)
		}
		if first[i].PlayerID <= 0 || first[i].PlayerID >= 1<<53 {
			t.Fatalf("expected id within 53 bits, got %d", first[i].PlayerID)
		}
		if seen[first[i].PlayerID] {
			t.Fatalf("duplicate id %d", first[i].PlayerID)
		}
		seen[first[i].PlayerID] = true
	}
}

func TestPlayerIDDependsOnTeam(t *testing.T) {
	if PlayerID("bos/boston-bruins", "Brad", "Marchand") == PlayerID("fla/florida-panthers", "Brad", "Marchand") {
		t.Fatalf("expected team path to influence id")
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Brad Marchand", "Brad", "Marchand"},
		{"Brad Marchand63", "Brad", "Marchand"},
		{"Mason  Lohrei Jr.", "Mason", "Lohrei Jr."},
		{"Zdeno", "Zdeno", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("splitName(%q) = %q, %q; want %q, %q", tc.in, first, last, tc.first, tc.last)
		}
	}
}

func TestParseWithoutTablesIsLayoutDrift(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString("<h2>Centers</h2><p>No roster</p>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	players, _, err := Parse(doc, bruinsPath)
	var layoutErr *providers.LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected layout error, got %v", err)
	}
	if layoutErr.Provider != providers.SourceESPN || layoutErr.Selector != "table" {
		t.Fatalf("unexpected layout error %+v", layoutErr)
	}
	if !providers.IsFetchFailure(err) {
		t.Fatalf("expected layout drift to classify as fetch failure")
	}
	if players != nil {
		t.Fatalf("expected no players, got %v", players)
	}
}

func TestParseEmptyTableIsEmptyRoster(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString("<h2>Centers</h2><table><tbody></tbody></table>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	players, report, err := Parse(doc, bruinsPath)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if players == nil || len(players) != 0 || report.Rows != 0 {
		t.Fatalf("expected empty roster, got %v %+v", players, report)
	}
}
