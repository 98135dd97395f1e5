package espn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"

	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/providers"
)

var trailingDigits = regexp.MustCompile(`\d+$`)

// Parse walks headings and tables in document order. Each h2 names the
// position group for the tables that follow it. A page without any table
// is a LayoutError.
func Parse(doc *goquery.Document, teamPath string) ([]roster.Player, providers.ParseReport, error) {
	var report providers.ParseReport
	if doc.Find(tableSelector).Length() == 0 {
		return nil, report, &providers.LayoutError{Provider: providers.SourceESPN, Selector: tableSelector}
	}
	players := make([]roster.Player, 0)
	group := ""
	index := 0

	doc.Find("h2, " + tableSelector).Each(func(_ int, el *goquery.Selection) {
		if goquery.NodeName(el) == "h2" {
			group = strings.TrimSpace(el.Text())
			return
		}
		el.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			report.Rows++
			i := index
			index++

			tds := row.Find("td")
			if tds.Length() < minColumns {
				report.Skip(i, tds.Length(), fmt.Sprintf("fewer than %d columns", minColumns))
				return
			}
			players = append(players, mapRow(tds, group, teamPath))
		})
	})
	return players, report, nil
}

func mapRow(tds *goquery.Selection, group, teamPath string) roster.Player {
	first, last := splitName(strings.TrimSpace(tds.Eq(1).Find("a").Text()))
	return roster.Player{
		PlayerID:      PlayerID(teamPath, first, last),
		FirstName:     first,
		LastName:      last,
		SweaterNumber: strings.TrimSpace(tds.Eq(0).Text()),
		Age:           strings.TrimSpace(tds.Eq(2).Text()),
		PositionGroup: group,
		Weight:        strings.TrimSpace(tds.Eq(4).Text()),
	}
}

// splitName takes the first token as the first name. ESPN appends the
// jersey number to the name link on some layouts, so it is trimmed from the last name.
func splitName(full string) (string, string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return "", ""
	}
	last := strings.Join(tokens[1:], " ")
	last = strings.TrimSpace(trailingDigits.ReplaceAllString(last, ""))
	return tokens[0], last
}

// PlayerID derives a stable id from the team path and player name. The
// result fits in 53 bits so JSON consumers can hold it as a float64.
func PlayerID(teamPath, first, last string) int64 {
	sum := xxhash.Sum64String(teamPath + "\x00" + first + "\x00" + last)
	return int64(sum >> 11)
}
