package caps

// PlayerCap is one contract row from a team's cap table.
// Age is nil when the upstream cell does not start with a number.
// ExpiryYear is empty when no season lists a cap hit.
type PlayerCap struct {
	Name           string            `json:"name"`
	YearsRemaining string            `json:"yearsRemaining"`
	Term           string            `json:"term"`
	Position       []string          `json:"position"`
	Status         string            `json:"status"`
	Age            *int              `json:"age"`
	CapHits        map[string]string `json:"capHits"`
	ExpiryYear     string            `json:"expiryYear,omitempty"`
}
