package capwages

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nhl-cap-service/internal/domain/teams"
	"nhl-cap-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var bruins = teams.Team{Name: "BOSTON BRUINS", CapwagesSlug: "boston_bruins"}

func TestFetchCapsHitsTeamPage(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "boston_bruins.html"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var gotPath, gotUA string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.Path
		gotUA = req.Header.Get("User-Agent")
		return htmlResponse(http.StatusOK, string(fixture)), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://capwages.test/",
		UserAgent:  "test-agent",
		HTTPClient: &http.Client{Transport: rt},
		Seasons:    testSeasons,
	})
	records, report, err := client.FetchCaps(context.Background(), bruins)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if gotPath != "/teams/boston_bruins" {
		t.Fatalf("expected team path, got %s", gotPath)
	}
	if gotUA != "test-agent" {
		t.Fatalf("expected configured user agent, got %q", gotUA)
	}
	if len(records) != 4 || report.SkippedCount() != 1 {
		t.Fatalf("expected 4 records and 1 skipped row, got %d and %d", len(records), report.SkippedCount())
	}
}

func TestFetchCapsUpstreamError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return htmlResponse(http.StatusForbidden, "challenge"), nil
	})
	client := NewClient(Config{BaseURL: "http://capwages.test", HTTPClient: &http.Client{Transport: rt}, Seasons: testSeasons})

	_, _, err := client.FetchCaps(context.Background(), bruins)
	fetchErr, ok := providers.AsFetchError(err)
	if !ok || fetchErr.StatusCode != http.StatusForbidden || fetchErr.Provider != providers.SourceCapwages {
		t.Fatalf("expected capwages fetch error with 403, got %v", err)
	}
}

func TestFetchCapsRejectsTeamWithoutSlug(t *testing.T) {
	called := false
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return htmlResponse(http.StatusOK, ""), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, _, err := client.FetchCaps(context.Background(), teams.Team{Name: "NOWHERE"})
	if !errors.Is(err, providers.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if called {
		t.Fatalf("expected no upstream request")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := normalizeBaseURL("http://x/"); got != "http://x" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
	if got := resolveTimeout(0); got != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %v", got)
	}
}
