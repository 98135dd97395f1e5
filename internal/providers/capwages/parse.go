package capwages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/providers"
)

// Parse extracts contract rows from a capwages team page. seasons labels the
// cap-hit columns in order. A page without the roster table is layout drift.
func Parse(doc *goquery.Document, seasons []string) ([]caps.PlayerCap, providers.ParseReport, error) {
	var report providers.ParseReport
	if doc.Find(tableSelector).Length() == 0 {
		return nil, report, &providers.LayoutError{Provider: providers.SourceCapwages, Selector: tableSelector}
	}

	records := make([]caps.PlayerCap, 0)
	doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		report.Rows++
		tds := row.Find("td")
		if tds.Length() < minColumns {
			report.Skip(i, tds.Length(), fmt.Sprintf("fewer than %d columns", minColumns))
			return
		}
		records = append(records, mapRow(tds, seasons))
	})
	return records, report, nil
}

func mapRow(tds *goquery.Selection, seasons []string) caps.PlayerCap {
	capHits := make(map[string]string, len(seasons))
	for i, label := range seasons {
		capHits[label] = strings.TrimSpace(tds.Eq(capHitColumn + i).Find("div").First().Text())
	}

	return caps.PlayerCap{
		Name:           strings.TrimSpace(tds.Eq(0).Find("a").Text()),
		YearsRemaining: cellText(tds, 1),
		Term:           cellText(tds, 2),
		Position:       splitPositions(cellText(tds, 3)),
		Status:         cellText(tds, 4),
		Age:            parseAge(cellText(tds, ageColumn)),
		CapHits:        capHits,
		ExpiryYear:     caps.ExpiryYear(capHits, seasons),
	}
}

func cellText(tds *goquery.Selection, idx int) string {
	return strings.TrimSpace(tds.Eq(idx).Text())
}

func splitPositions(raw string) []string {
	positions := make([]string, 0, 2)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			positions = append(positions, p)
		}
	}
	return positions
}

func parseAge(raw string) *int {
	age, ok := caps.LeadingInt(raw)
	if !ok {
		return nil
	}
	return &age
}
