package caps

import (
	"fmt"
	"strconv"
	"strings"
)

// SeasonCount is the number of seasons a cap table lists.
const SeasonCount = 6

// SeasonLabel formats the season starting in year as "2025-26".
func SeasonLabel(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// SeasonLabels returns SeasonCount consecutive labels beginning at firstYear.
func SeasonLabels(firstYear int) []string {
	labels := make([]string, 0, SeasonCount)
	for i := 0; i < SeasonCount; i++ {
		labels = append(labels, SeasonLabel(firstYear+i))
	}
	return labels
}

// ExpiryYear returns the latest label in seasons with a non-empty cap hit.
func ExpiryYear(capHits map[string]string, seasons []string) string {
	for i := len(seasons) - 1; i >= 0; i-- {
		if strings.TrimSpace(capHits[seasons[i]]) != "" {
			return seasons[i]
		}
	}
	return ""
}

// LeadingYear parses the starting year of a label such as "2025-26".
func LeadingYear(label string) (int, bool) {
	return LeadingInt(label)
}

// LeadingInt parses an optionally signed run of digits at the start of s,
// ignoring leading whitespace. Anything after the digits is ignored. A run
// that does not fit in an int is not ok.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
