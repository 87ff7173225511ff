package models

// Report is the full output of one analysis run.
//
// A successful run carries Summary, Scorecard and Ledger. A run stopped by a
// gating condition (no documents, non-energy industry) carries only Error -
// the single top-level failure signal that replaces the scorecard entirely.
type Report struct {
	Ticker    string            `json:"ticker"`
	Summary   string            `json:"summary,omitempty"`
	Scorecard []CheckResult     `json:"scorecard,omitempty"`
	Ledger    []*EvidenceBundle `json:"ledger,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Score counts scorecard entries with status OK.
func (r *Report) Score() int {
	count := 0
	for _, result := range r.Scorecard {
		if result.Status == StatusOK {
			count++
		}
	}
	return count
}

// RedFlags counts scorecard entries with status RED.
func (r *Report) RedFlags() int {
	count := 0
	for _, result := range r.Scorecard {
		if result.Status == StatusRED {
			count++
		}
	}
	return count
}

// Rejected reports whether the run was stopped before any checks executed.
func (r *Report) Rejected() bool {
	return r.Error != ""
}
