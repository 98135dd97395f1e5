package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nhl-cap-service/internal/aggregate"
	capsapp "nhl-cap-service/internal/app/caps"
	"nhl-cap-service/internal/providers"
)

func newTeamsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Lists the registered teams.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderTeams(cmd.OutOrStdout(), deps.Teams.Teams())
			return nil
		},
	}
}

func newCapsCmd(deps Deps) *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "caps <TEAM NAME>",
		Short: "Shows a team's contract table from capwages.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := teamArg(args)
			records, report, err := deps.Caps.Caps(cmd.Context(), name)
			if err != nil {
				return explain(deps, name, err)
			}
			warnSkipped(cmd.ErrOrStderr(), report)

			if player == "" {
				renderCaps(cmd.OutOrStdout(), records, deps.Caps.Seasons())
				return nil
			}
			for _, r := range records {
				if strings.EqualFold(r.Name, player) {
					renderSeries(cmd.OutOrStdout(), r.Name, aggregate.PlayerSeries(r))
					return nil
				}
			}
			return fmt.Errorf("no player %q on %s", player, name)
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "show one player's cap hit by season")
	return cmd
}

func newRosterCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <TEAM NAME>",
		Short: "Shows a team's ESPN roster.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := teamArg(args)
			players, report, err := deps.Roster.Roster(cmd.Context(), name)
			if err != nil {
				return explain(deps, name, err)
			}
			warnSkipped(cmd.ErrOrStderr(), report)
			renderPlayers(cmd.OutOrStdout(), players)
			return nil
		},
	}
}

func newNHLRosterCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "nhl-roster <TEAM ID>",
		Short: "Shows a roster from the legacy NHL stats API.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid team id %q", args[0])
			}
			resp, err := deps.Roster.LegacyRoster(cmd.Context(), id)
			if err != nil {
				return err
			}
			title := "Team " + args[0]
			if team, ok := deps.Teams.TeamByNHLID(id); ok {
				title = team.Name
			}
			renderLegacy(cmd.OutOrStdout(), title, resp.Roster)
			return nil
		},
	}
}

func newSummaryCmd(deps Deps) *cobra.Command {
	var season, status string
	cmd := &cobra.Command{
		Use:   "summary <TEAM NAME>",
		Short: "Shows cap totals and commitments for a team.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := teamArg(args)
			summary, report, err := deps.Caps.Summary(cmd.Context(), capsapp.SummaryRequest{
				TeamName: name,
				Season:   season,
				Status:   status,
			})
			if err != nil {
				return explain(deps, name, err)
			}
			warnSkipped(cmd.ErrOrStderr(), report)

			out := cmd.OutOrStdout()
			renderTotals(out, fmt.Sprintf("%s %s (%s)", summary.Team, summary.Season, summary.Status), summary.Overall, summary.Groups)
			renderTrend(out, summary.Trend)
			renderDonut(out, summary.Season, summary.Donut)
			return nil
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "season label such as 2025-26 (default: first season)")
	cmd.Flags().StringVar(&status, "status", "", "All, NHL or Minor (default: All)")
	return cmd
}

func warnSkipped(w io.Writer, report providers.ParseReport) {
	if n := report.SkippedCount(); n > 0 {
		fmt.Fprintf(w, "warning: skipped %d of %d upstream rows\n", n, report.Rows)
	}
}
