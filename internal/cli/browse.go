package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"nhl-cap-service/internal/app/selection"
	"nhl-cap-service/internal/domain/caps"
)

func newBrowseCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Reads team names from stdin and shows each selection's cap table.",
		Long: "Reads one team name per line. A new line replaces the current selection " +
			"and cancels its load if it has not finished.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse(cmd, deps)
		},
	}
}

func browse(cmd *cobra.Command, deps Deps) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := selection.NewTracker(func(ctx context.Context, team string) ([]caps.PlayerCap, error) {
		records, _, err := deps.Caps.Caps(ctx, team)
		return records, err
	})
	defer tracker.Close()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rendered = map[uint64]bool{}
	)
	show := func(name string, st selection.State[[]caps.PlayerCap]) {
		mu.Lock()
		defer mu.Unlock()
		if rendered[st.Version] {
			return
		}
		out := cmd.OutOrStdout()
		switch st.Phase {
		case selection.PhaseReady:
			rendered[st.Version] = true
			fmt.Fprintf(out, "%s\n", st.Team)
			renderCaps(out, st.Value, deps.Caps.Seasons())
		case selection.PhaseError:
			rendered[st.Version] = true
			fmt.Fprintf(out, "%s: %v\n", st.Team, explain(deps, st.Team, st.Err))
		default:
			fmt.Fprintf(out, "%s: superseded (now %s %s)\n", name, st.Phase, st.Team)
		}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		name := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if name == "" {
			continue
		}
		// Begin here so the last line read is the newest selection.
		pending := tracker.Begin(ctx, name)
		wg.Add(1)
		go func() {
			defer wg.Done()
			show(name, pending.Run())
		}()
	}
	wg.Wait()
	return scanner.Err()
}
