package reconcile

import "time"

// Report is the complete output of one run, handed to exporters unchanged.
type Report struct {
	// RunID identifies the run in storage and logs.
	RunID string `json:"run_id"`

	// Source names the catalog source.
	Source string `json:"source"`

	// GeneratedAt is the RFC3339 completion time.
	GeneratedAt string `json:"generated_at"`

	// ExecutionTime is the wall-clock duration of the run.
	ExecutionTime string `json:"execution_time"`

	// Records holds one result per base record, in catalog order.
	Records []RecordResult `json:"records"`

	// Columns holds one result per column mapping, in mapping order.
	Columns []ComparisonResult `json:"columns"`

	Summary ReportSummary `json:"summary"`
}

// ReportSummary provides aggregate counts.
type ReportSummary struct {
	BaseRecords int `json:"base_records"`
	Matched     int `json:"matched"`
	Unmatched   int `json:"unmatched"`
	Ambiguous   int `json:"ambiguous"`

	// RecordsByStatus counts records per overall status.
	RecordsByStatus map[Severity]int `json:"records_by_status"`

	// MatchedByRule counts matched records per cascade branch.
	MatchedByRule map[ResolutionRule]int `json:"matched_by_rule"`

	ColumnMappings int `json:"column_mappings"`

	// ColumnsByStatus counts column mappings per overall status.
	ColumnsByStatus map[Severity]int `json:"columns_by_status"`
}

// BuildReport aggregates record and column results. The slices are kept in the
// order given, which is the original scan order.
func BuildReport(runID, source string, started time.Time, records []RecordResult, columns []ComparisonResult) *Report {
	if records == nil {
		records = []RecordResult{}
	}
	if columns == nil {
		columns = []ComparisonResult{}
	}
	return &Report{
		RunID:         runID,
		Source:        source,
		GeneratedAt:   time.Now().Format(time.RFC3339),
		ExecutionTime: time.Since(started).String(),
		Records:       records,
		Columns:       columns,
		Summary:       Summarize(records, columns),
	}
}

// Summarize counts match outcomes and statuses.
func Summarize(records []RecordResult, columns []ComparisonResult) ReportSummary {
	s := ReportSummary{
		BaseRecords:     len(records),
		RecordsByStatus: map[Severity]int{SeverityOK: 0, SeverityWarning: 0, SeverityError: 0},
		MatchedByRule:   map[ResolutionRule]int{},
		ColumnMappings:  len(columns),
		ColumnsByStatus: map[Severity]int{SeverityOK: 0, SeverityWarning: 0, SeverityError: 0},
	}

	for _, r := range records {
		switch r.MatchStatus {
		case MatchStatusMatched:
			s.Matched++
			s.MatchedByRule[r.Rule]++
		case MatchStatusUnmatched:
			s.Unmatched++
		case MatchStatusAmbiguous:
			s.Ambiguous++
		}
		s.RecordsByStatus[r.Status]++
	}

	for _, c := range columns {
		s.ColumnsByStatus[c.Status]++
	}
	return s
}

// Unresolved returns the ambiguous records, whose candidates need manual review.
func (r *Report) Unresolved() []RecordResult {
	var out []RecordResult
	for _, rec := range r.Records {
		if rec.MatchStatus == MatchStatusAmbiguous {
			out = append(out, rec)
		}
	}
	return out
}
