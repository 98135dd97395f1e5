package testutil

import (
	"time"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
)

// Seasons is the default six-season window starting 2025-26.
var Seasons = caps.SeasonLabels(2025)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// IntPtr returns a pointer to v for optional ages.
func IntPtr(v int) *int { return &v }

// SampleCap builds a contract row whose cap hits fill Seasons in order.
// Seasons past the given hits are blank.
func SampleCap(name string, positions []string, status string, age *int, hits ...string) caps.PlayerCap {
	capHits := make(map[string]string, len(Seasons))
	for i, s := range Seasons {
		capHits[s] = ""
		if i < len(hits) {
			capHits[s] = hits[i]
		}
	}
	return caps.PlayerCap{
		Name:           name,
		YearsRemaining: "1",
		Term:           "1 yrs",
		Position:       positions,
		Status:         status,
		Age:            age,
		CapHits:        capHits,
		ExpiryYear:     caps.ExpiryYear(capHits, Seasons),
	}
}

// SampleCaps returns a small cap table spanning every position group.
func SampleCaps() []caps.PlayerCap {
	return []caps.PlayerCap{
		SampleCap("David Pastrnak", []string{"RW"}, "NHL", IntPtr(29), "$11,250,000", "$11,250,000", "$11,250,000"),
		SampleCap("Charlie McAvoy", []string{"RD"}, "NHL", IntPtr(27), "$9,500,000", "$9,500,000"),
		SampleCap("Fabian Lysell", []string{"RW"}, "Minor", nil, "$863,333"),
		SampleCap("Jeremy Swayman", []string{"G"}, "NHL", IntPtr(26), "$8,250,000", "$8,250,000", "$8,250,000", "$8,250,000"),
	}
}

// SamplePlayers returns a two-player ESPN roster.
func SamplePlayers() []roster.Player {
	return []roster.Player{
		{PlayerID: 101, FirstName: "David", LastName: "Pastrnak", SweaterNumber: "88", Age: "29", PositionGroup: "Right Wings", Weight: "196 lbs"},
		{PlayerID: 102, FirstName: "Jeremy", LastName: "Swayman", SweaterNumber: "1", Age: "26", PositionGroup: "Goalies", Weight: "196 lbs"},
	}
}
