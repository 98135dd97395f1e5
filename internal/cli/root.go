// Package cli implements the capctl command tree on top of the same app
// services the HTTP server uses.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	capsapp "nhl-cap-service/internal/app/caps"
	rosterapp "nhl-cap-service/internal/app/roster"
	teamsapp "nhl-cap-service/internal/app/teams"
	"nhl-cap-service/internal/config"
	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/store"
)

// suggestLimit caps how many alternatives an unknown team name lists.
const suggestLimit = 3

// Deps are the services commands run against.
type Deps struct {
	Teams  *teamsapp.Service
	Caps   *capsapp.Service
	Roster *rosterapp.Service
}

// NewDeps wires the app services over provider using the embedded team registry.
func NewDeps(cfg config.Config, provider providers.DataProvider) Deps {
	teamSvc := teamsapp.NewService(store.MustLoadTeams())
	return Deps{
		Teams:  teamSvc,
		Caps:   capsapp.NewService(teamSvc, provider, caps.SeasonLabels(cfg.FirstSeason)),
		Roster: rosterapp.NewService(teamSvc, provider, provider),
	}
}

// NewRootCmd builds the capctl command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "capctl",
		Short:         "capctl is a CLI for browsing NHL cap tables and rosters.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newTeamsCmd(deps),
		newCapsCmd(deps),
		newRosterCmd(deps),
		newNHLRosterCmd(deps),
		newSummaryCmd(deps),
		newBrowseCmd(deps),
	)
	return root
}

// ExecuteContext runs capctl with args.
func ExecuteContext(ctx context.Context, deps Deps, args []string) error {
	root := NewRootCmd(deps)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// teamArg joins positional words into a registry name so that
// `capctl caps boston bruins` works unquoted.
func teamArg(args []string) string {
	return strings.ToUpper(strings.TrimSpace(strings.Join(args, " ")))
}

// explain adds suggestions when err came from an unknown team name.
func explain(deps Deps, name string, err error) error {
	if !errors.Is(err, providers.ErrInvalidInput) {
		return err
	}
	if _, lookupErr := deps.Teams.TeamByName(name); lookupErr == nil {
		return err
	}
	if suggestions := deps.Teams.Suggest(name, suggestLimit); len(suggestions) > 0 {
		return fmt.Errorf("unknown team %q, did you mean: %s", name, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown team %q", name)
}
