package aggregate

// Group is a position bucket used for totals.
type Group string

const (
	Forwards Group = "Forwards"
	Defense  Group = "Defense"
	Goalies  Group = "Goalies"
)

// Groups lists the buckets in display order.
var Groups = []Group{Forwards, Defense, Goalies}

var groupPositions = map[Group][]string{
	Forwards: {"LW", "RW", "C"},
	Defense:  {"LD", "RD"},
	Goalies:  {"G"},
}

// InGroup reports whether any of positions maps to g. A player listed at
// positions spanning groups belongs to each of them.
func InGroup(positions []string, g Group) bool {
	for _, p := range positions {
		for _, member := range groupPositions[g] {
			if p == member {
				return true
			}
		}
	}
	return false
}
