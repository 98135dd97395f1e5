package nhlapi

type rosterResponse struct {
	Roster []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Person       *personResponse   `json:"person"`
	JerseyNumber string            `json:"jerseyNumber"`
	Position     *positionResponse `json:"position"`
}

type personResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type positionResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}
