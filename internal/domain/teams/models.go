package teams

// Team is the static metadata for one NHL franchise.
// Name is the upper-case display key clients send as teamName.
type Team struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	CapwagesSlug string   `json:"capwagesSlug"`
	ESPNPath     string   `json:"espnPath"`
	NHLID        int      `json:"nhlId"`
	Colors       []string `json:"colors"`
	Logo         string   `json:"logo"`
}
