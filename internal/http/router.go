package http

import (
	nethttp "net/http"

	"nhl-cap-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/api/teams", handler.Teams)
	mux.HandleFunc("/api/cap-wages", handler.CapWages)
	mux.HandleFunc("/api/cap-summary", handler.CapSummary)
	mux.HandleFunc("/api/roster", handler.Roster)
	mux.HandleFunc("/api/nhl-roster", handler.NHLRoster)
	return mux
}
