package models

// Status is the outcome classification for a scoring check.
type Status string

const (
	// StatusOK means the check passed its threshold.
	StatusOK Status = "OK"
	// StatusRED means the check breached its threshold.
	StatusRED Status = "RED"
	// StatusWATCH means the value sits in a cautionary band.
	StatusWATCH Status = "WATCH"
	// StatusNA means insufficient data to evaluate. Never an error.
	StatusNA Status = "NA"
	// StatusREJECTED is reserved for the whole-analysis industry gate,
	// never a per-check outcome.
	StatusREJECTED Status = "REJECTED"
)

// CheckResult is the standard output format for every scoring check.
//
// Invariant: a nil Value implies StatusNA, except the ROIC-WACC spread check
// whose value is nil precisely when either dependency was NA.
type CheckResult struct {
	CheckName      string            `json:"check_name"`
	Value          interface{}       `json:"value"` // float64, string, or nil
	Status         Status            `json:"status"`
	Interpretation string            `json:"interpretation"`
	Formula        string            `json:"formula"`
	Evidence       []*EvidenceBundle `json:"evidence"`
	Notes          []string          `json:"errors_or_notes"`
}

// NumericValue returns the check value as a float64 when it holds one.
func (r CheckResult) NumericValue() (float64, bool) {
	switch v := r.Value.(type) {
	case float64:
		return v, true
	case *float64:
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// NAResult builds the canonical "insufficient data" result for a check.
// Evidence gathered before the data gap was discovered is retained.
func NAResult(name, interpretation string, evidence ...*EvidenceBundle) CheckResult {
	return CheckResult{
		CheckName:      name,
		Value:          nil,
		Status:         StatusNA,
		Interpretation: interpretation,
		Evidence:       evidence,
	}
}
