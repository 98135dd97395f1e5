package handlers

import (
	"log/slog"
	"net/http"

	capsapp "nhl-cap-service/internal/app/caps"
	rosterapp "nhl-cap-service/internal/app/roster"
	teamsapp "nhl-cap-service/internal/app/teams"
	"nhl-cap-service/internal/http/requestutil"
	"nhl-cap-service/internal/logging"
)

// Client-facing messages. They never carry upstream detail.
const (
	msgInvalidCapTeam = "Invalid or missing team name"
	msgCapFetchFailed = "Failed to fetch cap data"
	msgInvalidTeam    = "Invalid team name"
	msgRosterFailed   = "Failed to fetch roster"
	msgInvalidTeamID  = "Invalid or missing team id"
	msgInvalidSummary = "Invalid team name, season or status"
	msgSummaryFailed  = "Failed to build cap summary"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	teams  *teamsapp.Service
	caps   *capsapp.Service
	roster *rosterapp.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(teams *teamsapp.Service, caps *capsapp.Service, roster *rosterapp.Service, logger *slog.Logger) *Handler {
	return &Handler{
		teams:  teams,
		caps:   caps,
		roster: roster,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams lists the registered teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.teams.Teams(), h.logger)
}

// CapWages returns the named team's contract table.
func (h *Handler) CapWages(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	teamName := requestutil.Query(r, "teamName")

	records, report, err := h.caps.Caps(r.Context(), teamName)
	if err != nil {
		writeLookupError(w, r, err, msgInvalidCapTeam, msgCapFetchFailed, logger)
		return
	}
	logging.Info(logger, "served cap table",
		slog.String(logging.FieldTeam, teamName),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int(logging.FieldSkipped, report.SkippedCount()),
	)
	writeScraped(w, records, report, logger)
}

// Roster returns the named team's ESPN roster. Numeric ids belong to NHLRoster.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if requestutil.HasQuery(r, "teamId") {
		logging.Warn(logger, "team id sent to name-keyed roster route")
		writeError(w, r, http.StatusBadRequest, msgInvalidTeam, logger)
		return
	}
	teamName := requestutil.Query(r, "teamName")

	players, report, err := h.roster.Roster(r.Context(), teamName)
	if err != nil {
		writeLookupError(w, r, err, msgInvalidTeam, msgRosterFailed, logger)
		return
	}
	logging.Info(logger, "served roster",
		slog.String(logging.FieldTeam, teamName),
		slog.Int(logging.FieldCount, len(players)),
		slog.Int(logging.FieldSkipped, report.SkippedCount()),
	)
	writeScraped(w, players, report, logger)
}

// NHLRoster returns the legacy stats API roster for a numeric team id.
func (h *Handler) NHLRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	teamID, ok := requestutil.PositiveInt(r, "teamId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, msgInvalidTeamID, logger)
		return
	}

	resp, err := h.roster.LegacyRoster(r.Context(), teamID)
	if err != nil {
		writeLookupError(w, r, err, msgInvalidTeamID, msgRosterFailed, logger)
		return
	}
	logging.Info(logger, "served legacy roster",
		slog.Int("team_id", teamID),
		slog.Int(logging.FieldCount, len(resp.Roster)),
	)
	writeJSON(w, http.StatusOK, resp, logger)
}

// CapSummary returns totals and chart series for one team, season and status.
func (h *Handler) CapSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	req := capsapp.SummaryRequest{
		TeamName: requestutil.Query(r, "teamName"),
		Season:   requestutil.Query(r, "season"),
		Status:   requestutil.Query(r, "status"),
	}

	summary, report, err := h.caps.Summary(r.Context(), req)
	if err != nil {
		writeLookupError(w, r, err, msgInvalidSummary, msgSummaryFailed, logger)
		return
	}
	writeScraped(w, summary, report, logger)
}
