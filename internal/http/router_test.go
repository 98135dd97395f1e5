package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	capsapp "nhl-cap-service/internal/app/caps"
	rosterapp "nhl-cap-service/internal/app/roster"
	teamsapp "nhl-cap-service/internal/app/teams"
	"nhl-cap-service/internal/http/handlers"
	"nhl-cap-service/internal/store"
	"nhl-cap-service/internal/teststubs"
	"nhl-cap-service/internal/testutil"
)

func newTestRouter() http.Handler {
	stub := &teststubs.StubProvider{Caps: testutil.SampleCaps(), Players: testutil.SamplePlayers()}
	teamSvc := teamsapp.NewService(store.MustLoadTeams())
	h := handlers.NewHandler(
		teamSvc,
		capsapp.NewService(teamSvc, stub, testutil.Seasons),
		rosterapp.NewService(teamSvc, stub, stub),
		nil,
	)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":                               http.StatusOK,
		"/api/teams":                            http.StatusOK,
		"/api/cap-wages?teamName=BOSTON+BRUINS": http.StatusOK,
		"/api/cap-summary?teamName=BOSTON+BRUINS": http.StatusOK,
		"/api/roster?teamName=BOSTON+BRUINS":      http.StatusOK,
		"/api/nhl-roster?teamId=6":                http.StatusOK,
		"/api/cap-wages":                          http.StatusBadRequest,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/does-not-exist", "/api/cap-wages/extra"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, rr.Code)
		}
	}
}
