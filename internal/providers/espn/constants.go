package espn

import "time"

const (
	defaultBaseURL     = "https://www.espn.com"
	defaultHTTPTimeout = 15 * time.Second

	rosterPathPrefix = "/nhl/team/roster/_/name/"
	minColumns       = 5
	tableSelector    = "table"
)
