package aggregate

import (
	"sort"

	"nhl-cap-service/internal/domain/caps"
)

// TrendPoint is the team's cap commitment for one season.
type TrendPoint struct {
	Season   string `json:"season"`
	Total    int64  `json:"total"`
	Forwards int64  `json:"forwards"`
	Defense  int64  `json:"defense"`
	Goalies  int64  `json:"goalies"`
}

// Trend totals every season in order. Group figures may overlap when a
// player is listed in more than one group; Total counts each player once.
func Trend(records []caps.PlayerCap, seasons []string) []TrendPoint {
	out := make([]TrendPoint, 0, len(seasons))
	for _, season := range seasons {
		point := TrendPoint{Season: season}
		for _, r := range records {
			amount := ParseMoney(r.CapHits[season])
			point.Total += amount
			if InGroup(r.Position, Forwards) {
				point.Forwards += amount
			}
			if InGroup(r.Position, Defense) {
				point.Defense += amount
			}
			if InGroup(r.Position, Goalies) {
				point.Goalies += amount
			}
		}
		out = append(out, point)
	}
	return out
}

// DonutSlice is one player's share of the season's cap.
type DonutSlice struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	CapHit int64  `json:"capHit"`
}

// Donut is the per-player breakdown of a season's cap.
type Donut struct {
	Slices  []DonutSlice `json:"slices"`
	Total   int64        `json:"total"`
	Average float64      `json:"average"`
}

// BuildDonut keeps players with a positive cap hit in season.
func BuildDonut(records []caps.PlayerCap, season string) Donut {
	d := Donut{Slices: make([]DonutSlice, 0, len(records))}
	for _, r := range records {
		amount := ParseMoney(r.CapHits[season])
		if amount <= 0 {
			continue
		}
		d.Slices = append(d.Slices, DonutSlice{Name: r.Name, Status: r.Status, CapHit: amount})
		d.Total += amount
	}
	if len(d.Slices) > 0 {
		d.Average = float64(d.Total) / float64(len(d.Slices))
	}
	return d
}

// ScatterPoint plots a player's projected age against cap hit.
type ScatterPoint struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	CapHit int64  `json:"capHit"`
}

// Scatter projects each player's age to the start of season, counting from
// currentYear. Players with an unknown age or no cap hit are dropped.
func Scatter(records []caps.PlayerCap, season string, currentYear int) []ScatterPoint {
	shift := LeadingYear(season) - currentYear
	out := make([]ScatterPoint, 0, len(records))
	for _, r := range records {
		amount := ParseMoney(r.CapHits[season])
		if r.Age == nil || amount <= 0 {
			continue
		}
		out = append(out, ScatterPoint{Name: r.Name, Age: *r.Age + shift, CapHit: amount})
	}
	return out
}

// SeriesPoint is one season of a player's contract.
type SeriesPoint struct {
	Season string `json:"season"`
	CapHit int64  `json:"capHit"`
}

// PlayerSeries lists the seasons with a positive cap hit, ordered by label.
func PlayerSeries(record caps.PlayerCap) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(record.CapHits))
	for season, text := range record.CapHits {
		if amount := ParseMoney(text); amount > 0 {
			out = append(out, SeriesPoint{Season: season, CapHit: amount})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}
