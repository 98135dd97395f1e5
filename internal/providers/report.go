package providers

// SkippedRow describes an upstream table row that could not be mapped.
type SkippedRow struct {
	Index   int    `json:"index"`
	Columns int    `json:"columns"`
	Reason  string `json:"reason"`
}

// ParseReport accompanies scraped records and lists rows that were dropped.
type ParseReport struct {
	Rows    int          `json:"rows"`
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

// Skip records a dropped row.
func (r *ParseReport) Skip(index, columns int, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Index: index, Columns: columns, Reason: reason})
}

// SkippedCount returns how many rows were dropped.
func (r ParseReport) SkippedCount() int {
	return len(r.Skipped)
}
