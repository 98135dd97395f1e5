package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"nhl-cap-service/internal/config"
	"nhl-cap-service/internal/metrics"
	"nhl-cap-service/internal/testutil"
)

// metricsSetupSuccess forces a handler so buildMetrics takes its success path.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec := metrics.NewRecorder()
	return rec, http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics server on :9999, got %s", srv.Addr())
	}
}

func TestRunStartsAndStopsMetricsServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, &testutil.CloseableHTTPServer{})
	srv.metricsServer = metricsSrv

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}
	if metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected metrics server shut down once, got %d", metricsSrv.ShutdownCalls)
	}
}
