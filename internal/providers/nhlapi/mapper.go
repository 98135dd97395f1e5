package nhlapi

import (
	"encoding/json"

	"nhl-cap-service/internal/domain/roster"
)

func mapRoster(resp rosterResponse) []roster.LegacyPlayer {
	out := make([]roster.LegacyPlayer, 0, len(resp.Roster))
	for _, entry := range resp.Roster {
		if entry.Person == nil {
			continue
		}
		out = append(out, roster.LegacyPlayer{
			ID:           entry.Person.ID,
			FullName:     entry.Person.FullName,
			Position:     mapPosition(entry.Position),
			JerseyNumber: entry.JerseyNumber,
		})
	}
	return out
}

func mapPosition(p *positionResponse) string {
	if p == nil {
		return ""
	}
	if p.Abbreviation != "" {
		return p.Abbreviation
	}
	return p.Name
}

// DecodeRoster projects a raw stats API roster payload.
func DecodeRoster(raw []byte) ([]roster.LegacyPlayer, error) {
	var resp rosterResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return mapRoster(resp), nil
}
