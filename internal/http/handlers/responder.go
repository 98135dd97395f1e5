package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"nhl-cap-service/internal/http/middleware"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/providers"
)

// HeaderSkippedRows reports how many upstream rows were dropped while parsing.
const HeaderSkippedRows = "X-Skipped-Rows"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeScraped sends records with the parse report's skipped-row count.
func writeScraped(w http.ResponseWriter, payload any, report providers.ParseReport, logger *slog.Logger) {
	w.Header().Set(HeaderSkippedRows, strconv.Itoa(report.SkippedCount()))
	writeJSON(w, http.StatusOK, payload, logger)
}

// writeLookupError maps invalid input to 400 and everything else to 500.
// Messages are fixed; the cause only goes to the log.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error, invalidMsg, failedMsg string, logger *slog.Logger) {
	if errors.Is(err, providers.ErrInvalidInput) {
		logging.Warn(logger, "rejected request", slog.String("reason", err.Error()))
		writeError(w, r, http.StatusBadRequest, invalidMsg, logger)
		return
	}
	logging.Error(logger, "request failed", err)
	writeError(w, r, http.StatusInternalServerError, failedMsg, logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
