package roster

// Player is a roster row scraped from ESPN, grouped under the page heading it appeared beneath.
type Player struct {
	PlayerID      int64  `json:"playerId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	SweaterNumber string `json:"sweaterNumber"`
	Age           string `json:"age"`
	PositionGroup string `json:"positionGroup"`
	Weight        string `json:"weight"`
}

// LegacyPlayer is a roster entry projected from the legacy NHL stats API.
type LegacyPlayer struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jerseyNumber"`
}

// LegacyRoster is the response envelope for legacy roster lookups.
type LegacyRoster struct {
	Roster []LegacyPlayer `json:"roster"`
}
