package capwages

import "time"

const (
	defaultBaseURL     = "https://capwages.com"
	defaultHTTPTimeout = 15 * time.Second

	tableSelector = "table.teamProfileRosterSection__table"
	rowSelector   = tableSelector + " tbody tr"

	// Cells 0-8 hold player details; the cap hits start at capHitColumn.
	minColumns   = 10
	capHitColumn = 9
	ageColumn    = 6
)
