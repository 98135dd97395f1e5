package aggregate

import (
	"strings"

	"nhl-cap-service/internal/domain/caps"
)

// ParseMoney reads a currency cell such as "$11,250,000". Everything except
// digits, '.' and '-' is discarded before the leading integer is read.
// Text with no digits yields 0.
func ParseMoney(text string) int64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)
	n, ok := caps.LeadingInt(cleaned)
	if !ok {
		return 0
	}
	return int64(n)
}

// LeadingYear returns the starting year of a season label, or 0.
func LeadingYear(label string) int {
	year, _ := caps.LeadingYear(label)
	return year
}
