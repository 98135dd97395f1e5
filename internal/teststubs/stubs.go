package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Caps    []caps.PlayerCap
	Players []roster.Player
	Legacy  []roster.LegacyPlayer
	Report  providers.ParseReport
	Err     error
	Calls   atomic.Int32

	mu       sync.Mutex
	teams    []string
	legacyID []int
}

// FetchCaps returns configured cap records and error while tracking calls.
func (s *StubProvider) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, providers.ParseReport, error) {
	s.track(team.Name)
	return s.Caps, s.Report, s.Err
}

// FetchRoster returns configured players and error while tracking calls.
func (s *StubProvider) FetchRoster(ctx context.Context, team teams.Team) ([]roster.Player, providers.ParseReport, error) {
	s.track(team.Name)
	return s.Players, s.Report, s.Err
}

// FetchLegacyRoster returns configured legacy players and error while tracking calls.
func (s *StubProvider) FetchLegacyRoster(ctx context.Context, teamID int) ([]roster.LegacyPlayer, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.legacyID = append(s.legacyID, teamID)
	s.mu.Unlock()
	return s.Legacy, s.Err
}

// Teams returns the team names requested so far.
func (s *StubProvider) Teams() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.teams...)
}

// LegacyIDs returns the team ids requested so far.
func (s *StubProvider) LegacyIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.legacyID...)
}

func (s *StubProvider) track(team string) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.teams = append(s.teams, team)
	s.mu.Unlock()
}

// BlockingCapProvider waits for Release or context cancellation before returning.
type BlockingCapProvider struct {
	Release chan struct{}
	Started chan string
	Caps    []caps.PlayerCap
}

// FetchCaps blocks until released, returning ctx.Err() when cancelled first.
func (b *BlockingCapProvider) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, providers.ParseReport, error) {
	if b.Started != nil {
		b.Started <- team.Name
	}
	select {
	case <-ctx.Done():
		return nil, providers.ParseReport{}, ctx.Err()
	case <-b.Release:
		return b.Caps, providers.ParseReport{}, nil
	}
}

// SlowCapProvider returns Caps after Delay unless the context ends first.
type SlowCapProvider struct {
	Delay time.Duration
	Caps  []caps.PlayerCap
	Calls atomic.Int32
}

func (s *SlowCapProvider) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, providers.ParseReport, error) {
	s.Calls.Add(1)
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, providers.ParseReport{}, ctx.Err()
	case <-timer.C:
		return s.Caps, providers.ParseReport{}, nil
	}
}
