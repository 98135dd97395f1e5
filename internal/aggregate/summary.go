package aggregate

import (
	"math"

	"nhl-cap-service/internal/domain/caps"
)

// Totals are the headline numbers for a set of contracts in one season.
type Totals struct {
	Count    int   `json:"count"`
	CapTotal int64 `json:"capTotal"`
	// AverageAge covers records with a known age only, rounded to one decimal.
	AverageAge float64 `json:"averageAge"`
	Expiring   int     `json:"expiring"`
}

// Summary holds overall totals and a breakdown per position group.
type Summary struct {
	Overall Totals           `json:"overall"`
	Groups  map[Group]Totals `json:"groups"`
}

// Summarize totals records for season.
func Summarize(records []caps.PlayerCap, season string) Summary {
	summary := Summary{
		Overall: totals(records, season),
		Groups:  make(map[Group]Totals, len(Groups)),
	}
	for _, g := range Groups {
		summary.Groups[g] = totals(membersOf(records, g), season)
	}
	return summary
}

func membersOf(records []caps.PlayerCap, g Group) []caps.PlayerCap {
	out := make([]caps.PlayerCap, 0, len(records))
	for _, r := range records {
		if InGroup(r.Position, g) {
			out = append(out, r)
		}
	}
	return out
}

func totals(records []caps.PlayerCap, season string) Totals {
	t := Totals{Count: len(records)}
	ageSum, aged := 0, 0
	for _, r := range records {
		t.CapTotal += ParseMoney(r.CapHits[season])
		if r.Age != nil {
			ageSum += *r.Age
			aged++
		}
		if season != "" && r.ExpiryYear == season {
			t.Expiring++
		}
	}
	if aged > 0 {
		t.AverageAge = math.Round(float64(ageSum)/float64(aged)*10) / 10
	}
	return t
}
