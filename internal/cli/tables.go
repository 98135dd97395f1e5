package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nhl-cap-service/internal/aggregate"
	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
)

var money = message.NewPrinter(language.English)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func formatMoney(amount int64) string {
	return money.Sprintf("$%d", amount)
}

func formatAge(age *int) string {
	if age == nil {
		return "-"
	}
	return strconv.Itoa(*age)
}

func renderTeams(out io.Writer, items []teams.Team) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Team", "Abbr", "NHL ID", "Capwages", "ESPN"})
	for _, team := range items {
		t.AppendRow(table.Row{team.Name, team.Abbreviation, team.NHLID, team.CapwagesSlug, team.ESPNPath})
	}
	t.Render()
}

func renderCaps(out io.Writer, records []caps.PlayerCap, seasons []string) {
	t := newTable(out)
	header := table.Row{"Player", "Pos", "Status", "Age"}
	for _, s := range seasons {
		header = append(header, s)
	}
	t.AppendHeader(append(header, "Expires"))

	configs := make([]table.ColumnConfig, 0, len(seasons))
	for i := range seasons {
		configs = append(configs, table.ColumnConfig{Number: 5 + i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	for _, r := range records {
		row := table.Row{r.Name, strings.Join(r.Position, ", "), r.Status, formatAge(r.Age)}
		for _, s := range seasons {
			row = append(row, r.CapHits[s])
		}
		t.AppendRow(append(row, r.ExpiryYear))
	}
	t.Render()
}

func renderSeries(out io.Writer, name string, points []aggregate.SeriesPoint) {
	t := newTable(out)
	t.SetTitle(name)
	t.AppendHeader(table.Row{"Season", "Cap hit"})
	for _, p := range points {
		t.AppendRow(table.Row{p.Season, formatMoney(p.CapHit)})
	}
	t.Render()
}

func renderPlayers(out io.Writer, players []roster.Player) {
	t := newTable(out)
	t.AppendHeader(table.Row{"#", "First", "Last", "Group", "Age", "Weight"})
	for _, p := range players {
		t.AppendRow(table.Row{p.SweaterNumber, p.FirstName, p.LastName, p.PositionGroup, p.Age, p.Weight})
	}
	t.Render()
}

func renderLegacy(out io.Writer, title string, players []roster.LegacyPlayer) {
	t := newTable(out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"ID", "Name", "Pos", "#"})
	for _, p := range players {
		t.AppendRow(table.Row{p.ID, p.FullName, p.Position, p.JerseyNumber})
	}
	t.Render()
}

func renderTotals(out io.Writer, title string, overall aggregate.Totals, groups map[aggregate.Group]aggregate.Totals) {
	t := newTable(out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Group", "Players", "Cap total", "Avg age", "Expiring"})
	row := func(label string, v aggregate.Totals) table.Row {
		return table.Row{label, v.Count, formatMoney(v.CapTotal), strconv.FormatFloat(v.AverageAge, 'f', 1, 64), v.Expiring}
	}
	for _, g := range aggregate.Groups {
		t.AppendRow(row(string(g), groups[g]))
	}
	t.AppendFooter(row("Overall", overall))
	t.Render()
}

func renderTrend(out io.Writer, points []aggregate.TrendPoint) {
	t := newTable(out)
	t.SetTitle("Cap commitments")
	t.AppendHeader(table.Row{"Season", "Forwards", "Defense", "Goalies", "Total"})
	for _, p := range points {
		t.AppendRow(table.Row{p.Season, formatMoney(p.Forwards), formatMoney(p.Defense), formatMoney(p.Goalies), formatMoney(p.Total)})
	}
	t.Render()
}

func renderDonut(out io.Writer, season string, d aggregate.Donut) {
	t := newTable(out)
	t.SetTitle("Cap by player, " + season)
	t.AppendHeader(table.Row{"Player", "Status", "Cap hit"})
	for _, s := range d.Slices {
		t.AppendRow(table.Row{s.Name, s.Status, formatMoney(s.CapHit)})
	}
	t.AppendFooter(table.Row{"Average " + formatMoney(int64(d.Average)), "", formatMoney(d.Total)})
	t.Render()
}
