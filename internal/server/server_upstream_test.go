package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"nhl-cap-service/internal/providers"
	"nhl-cap-service/internal/providers/capwages"
	"nhl-cap-service/internal/teststubs"
	"nhl-cap-service/internal/testutil"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// unreachableCapwages records every outbound URL and fails the request.
type unreachableCapwages struct {
	mu   sync.Mutex
	urls []string
}

func (u *unreachableCapwages) client() *http.Client {
	return &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		u.mu.Lock()
		u.urls = append(u.urls, req.URL.String())
		u.mu.Unlock()
		return nil, errors.New("dial tcp: connection refused")
	})}
}

func (u *unreachableCapwages) requested() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.urls...)
}

func newCapwagesBackedServer(upstream *unreachableCapwages) *Server {
	capClient := capwages.NewClient(capwages.Config{HTTPClient: upstream.client(), Seasons: testutil.Seasons})
	stub := &teststubs.StubProvider{}
	return newServerWithProvider(testConfig(), nil, providers.Combine(capClient, stub, stub))
}

func TestCapWagesFetchFailureThroughRealClient(t *testing.T) {
	upstream := &unreachableCapwages{}
	srv := newCapwagesBackedServer(upstream)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/cap-wages?teamName=BOSTON+BRUINS", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Failed to fetch cap data" {
		t.Fatalf("unexpected error body %v", body)
	}
	if strings.Contains(rr.Body.String(), "connection refused") {
		t.Fatalf("expected transport detail to stay out of the response, got %s", rr.Body.String())
	}

	urls := upstream.requested()
	if len(urls) != 1 || urls[0] != "https://capwages.com/teams/boston_bruins" {
		t.Fatalf("expected one request to the default capwages url, got %v", urls)
	}
}

func TestCapWagesBlankTeamNameNeverFetches(t *testing.T) {
	upstream := &unreachableCapwages{}
	srv := newCapwagesBackedServer(upstream)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/cap-wages?teamName=", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Invalid team name" {
		t.Fatalf("unexpected error body %v", body)
	}
	if urls := upstream.requested(); len(urls) != 0 {
		t.Fatalf("expected no upstream requests, got %v", urls)
	}
}
