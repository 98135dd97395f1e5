package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nhl-cap-service/internal/domain/caps"
	"nhl-cap-service/internal/domain/roster"
	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with metrics and structured logs.
// Each call makes exactly one upstream attempt.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider records attempts, latency, failures and skipped rows for every fetch.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchCaps(ctx context.Context, team teams.Team) ([]caps.PlayerCap, ParseReport, error) {
	start := p.now()
	records, report, err := p.inner.FetchCaps(ctx, team)
	p.observe(ctx, SourceCapwages, team.Name, start, len(records), report, err)
	return records, report, err
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context, team teams.Team) ([]roster.Player, ParseReport, error) {
	start := p.now()
	records, report, err := p.inner.FetchRoster(ctx, team)
	p.observe(ctx, SourceESPN, team.Name, start, len(records), report, err)
	return records, report, err
}

func (p *instrumentedProvider) FetchLegacyRoster(ctx context.Context, teamID int) ([]roster.LegacyPlayer, error) {
	start := p.now()
	records, err := p.inner.FetchLegacyRoster(ctx, teamID)
	p.observe(ctx, SourceNHLAPI, "", start, len(records), ParseReport{}, err, slog.Int("team_id", teamID))
	return records, err
}

func (p *instrumentedProvider) observe(ctx context.Context, provider, team string, start time.Time, count int, report ParseReport, err error, extra ...any) {
	if errors.Is(err, ErrInvalidInput) {
		return
	}
	duration := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(provider, duration, err)

	logger := logging.FromContext(ctx, p.logger)
	args := append([]any{
		slog.String(logging.FieldTeam, team),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}, extra...)

	if err != nil {
		if fetchErr, ok := AsFetchError(err); ok {
			args = append(args, slog.String(logging.FieldURL, fetchErr.URL))
			if fetchErr.StatusCode > 0 {
				args = append(args, slog.Int(logging.FieldStatusCode, fetchErr.StatusCode))
			}
		}
		args = append(args, "error", err)
		logWithProvider(ctx, logger, slog.LevelError, provider, "provider fetch failed", args...)
		return
	}

	if skipped := report.SkippedCount(); skipped > 0 {
		p.metrics.RecordSkippedRows(provider, skipped)
		logWithProvider(ctx, logger, slog.LevelWarn, provider, "skipped upstream rows",
			append(args, slog.Int(logging.FieldSkipped, skipped), slog.Int("rows", report.Rows), slog.String("first_reason", report.Skipped[0].Reason))...)
	}
	logWithProvider(ctx, logger, slog.LevelInfo, provider, "provider fetch complete",
		append(args, slog.Int(logging.FieldCount, count))...)
}
