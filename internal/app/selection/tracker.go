// Package selection tracks which team is selected and the state of its load.
// A new selection cancels the load it supersedes, and late results from
// superseded loads are discarded.
package selection

import (
	"context"
	"sync"
)

// Phase is the state of the current selection.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// Loader fetches the value for a team.
type Loader[T any] func(ctx context.Context, team string) (T, error)

// State is a snapshot of the tracker.
type State[T any] struct {
	Phase   Phase
	Team    string
	Version uint64
	Err     error
	Value   T
}

// Tracker is safe for concurrent use.
type Tracker[T any] struct {
	load Loader[T]

	mu      sync.Mutex
	state   State[T]
	cancel  context.CancelFunc
	version uint64
}

// NewTracker returns an idle tracker that loads selections with load.
func NewTracker[T any](load Loader[T]) *Tracker[T] {
	return &Tracker[T]{load: load, state: State[T]{Phase: PhaseIdle}}
}

// Select makes team the current selection and runs the loader. It blocks
// until the load finishes and returns the state it produced. When a later
// Select supersedes this one, the returned state is the tracker's current
// state and this load's result is dropped.
func (t *Tracker[T]) Select(ctx context.Context, team string) State[T] {
	return t.Begin(ctx, team).Run()
}

// Pending is a selection whose version is already assigned but whose load
// has not run yet.
type Pending[T any] struct {
	tracker *Tracker[T]
	team    string
	version uint64
	ctx     context.Context
	cancel  context.CancelFunc
}

// Begin makes team the current selection without loading it. The previous
// load is cancelled and the version is bumped before Begin returns, so
// selections are ordered by Begin calls rather than by when Run is
// scheduled.
func (t *Tracker[T]) Begin(ctx context.Context, team string) *Pending[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.version++
	loadCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.state = State[T]{Phase: PhaseLoading, Team: team, Version: t.version}
	return &Pending[T]{tracker: t, team: team, version: t.version, ctx: loadCtx, cancel: cancel}
}

// Version is the version Begin assigned.
func (p *Pending[T]) Version() uint64 {
	return p.version
}

// Run loads the pending selection and publishes the result unless a later
// Begin superseded it. It returns the tracker's state after the load.
func (p *Pending[T]) Run() State[T] {
	t := p.tracker
	var (
		value T
		err   error
	)
	if err = p.ctx.Err(); err == nil {
		value, err = t.load(p.ctx, p.team)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	p.cancel()
	if p.version != t.version {
		return t.state
	}
	t.cancel = nil
	if err != nil {
		t.state = State[T]{Phase: PhaseError, Team: p.team, Version: p.version, Err: err}
	} else {
		t.state = State[T]{Phase: PhaseReady, Team: p.team, Version: p.version, Value: value}
	}
	return t.state
}

// State returns the current snapshot.
func (t *Tracker[T]) State() State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close cancels any in-flight load.
func (t *Tracker[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
