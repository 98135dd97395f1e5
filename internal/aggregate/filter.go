// Package aggregate derives the cap-table views shown alongside a team's
// contracts: filtered subsets, position-group totals and chart series.
package aggregate

import (
	"strings"

	"nhl-cap-service/internal/domain/caps"
)

// StatusAll disables the status test.
const StatusAll = "All"

// Statuses lists the accepted status filter values.
var Statuses = []string{StatusAll, "NHL", "Minor"}

// Filter selects records by contract status and expiry.
type Filter struct {
	// Season keeps records whose expiry year starts at or after this label. Empty keeps all.
	Season string
	Status string
}

// CanonicalStatus maps status onto its entry in Statuses, ignoring case.
// Empty maps to StatusAll.
func CanonicalStatus(status string) (string, bool) {
	if status == "" {
		return StatusAll, true
	}
	for _, s := range Statuses {
		if strings.EqualFold(s, status) {
			return s, true
		}
	}
	return "", false
}

// Apply returns the records that match f, preserving order.
func Apply(records []caps.PlayerCap, f Filter) []caps.PlayerCap {
	out := make([]caps.PlayerCap, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r caps.PlayerCap) bool {
	if f.Status != "" && !strings.EqualFold(f.Status, StatusAll) && !strings.EqualFold(f.Status, r.Status) {
		return false
	}
	if f.Season == "" {
		return true
	}
	if r.ExpiryYear == "" {
		return false
	}
	expiry, ok := caps.LeadingYear(r.ExpiryYear)
	if !ok {
		return false
	}
	season, ok := caps.LeadingYear(f.Season)
	return ok && expiry >= season
}
