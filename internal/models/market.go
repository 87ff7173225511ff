package models

import (
	"sort"
	"strings"
	"time"
)

// LiveData holds the point-in-time market fields consumed by the checks.
// Any field may be nil when the provider did not supply it; checks degrade
// to NA rather than failing.
type LiveData struct {
	CurrentPrice      *float64 `json:"current_price"`
	MarketCap         *float64 `json:"market_cap"`
	TrailingEPS       *float64 `json:"trailing_eps"`
	ForwardEPS        *float64 `json:"forward_eps"`
	DividendRate      *float64 `json:"dividend_rate"` // Annual dividend per share
	DividendYield     *float64 `json:"dividend_yield"` // Decimal, e.g. 0.05 for 5%
	PayoutRatio       *float64 `json:"payout_ratio"`   // Decimal
	Sector            string   `json:"sector"`
	Industry          string   `json:"industry"`
	EBITDA            *float64 `json:"ebitda"`
	TotalDebt         *float64 `json:"total_debt"`
	TotalCash         *float64 `json:"total_cash"`
	OperatingCashflow *float64 `json:"operating_cashflow"`
	FreeCashflow      *float64 `json:"free_cashflow"`
	SharesOutstanding *float64 `json:"shares_outstanding"`
	Beta              *float64 `json:"beta"`
}

// StatementTable is one financial statement keyed by line-item label with
// time-ordered value columns, most recent first.
type StatementTable struct {
	Currency string               `json:"currency"`
	Lines    map[string][]float64 `json:"lines"`
}

// Line returns the columns for an exact line-item label.
func (t *StatementTable) Line(label string) ([]float64, bool) {
	if t == nil || t.Lines == nil {
		return nil, false
	}
	values, ok := t.Lines[label]
	return values, ok
}

// FindLine scans the line-item labels for the first one containing every
// given substring (case-insensitive) and returns its label and columns.
// Labels are scanned in sorted order so lookups are deterministic.
func (t *StatementTable) FindLine(substrings ...string) (string, []float64, bool) {
	if t == nil || len(t.Lines) == 0 {
		return "", nil, false
	}
	for _, label := range t.SortedLabels() {
		lower := strings.ToLower(label)
		matched := true
		for _, sub := range substrings {
			if !strings.Contains(lower, strings.ToLower(sub)) {
				matched = false
				break
			}
		}
		if matched {
			return label, t.Lines[label], true
		}
	}
	return "", nil, false
}

// SortedLabels returns the line-item labels in lexical order.
func (t *StatementTable) SortedLabels() []string {
	labels := make([]string, 0, len(t.Lines))
	for label := range t.Lines {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Latest returns the most recent column of an exact line-item label.
func (t *StatementTable) Latest(label string) (float64, bool) {
	values, ok := t.Line(label)
	if !ok || len(values) == 0 {
		return 0, false
	}
	return values[0], true
}

// Statements bundles the three financial statements for a ticker.
// Any statement may be nil when the provider did not supply it.
type Statements struct {
	IncomeStatement *StatementTable `json:"income_statement"`
	BalanceSheet    *StatementTable `json:"balance_sheet"`
	CashFlow        *StatementTable `json:"cash_flow"`
}

// DividendPayment is one historical dividend payment.
type DividendPayment struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
