package market

import (
	"math"
	"sort"
	"strconv"

	"github.com/ternarybob/strata/internal/eodhd"
	"github.com/ternarybob/strata/internal/models"
)

// statementMetaKeys are non-numeric column entries in EODHD statements.
var statementMetaKeys = map[string]bool{
	"date":            true,
	"filing_date":     true,
	"currency_symbol": true,
}

// liveDataFrom maps an EODHD fundamentals payload (and optional delayed
// quote) onto the point-in-time fields the checks consume. The provider
// reports absent values as zero, so zero maps to nil here; balance-sheet and
// cash-flow fields not covered by Highlights are derived from the latest
// yearly statement columns.
func liveDataFrom(f *eodhd.FundamentalsResponse, quote *eodhd.Quote) *models.LiveData {
	live := &models.LiveData{}
	if f == nil {
		return live
	}

	if f.General != nil {
		live.Sector = f.General.Sector
		live.Industry = f.General.Industry
	}

	if h := f.Highlights; h != nil {
		live.MarketCap = nonZero(h.MarketCapitalization)
		live.EBITDA = nonZero(h.EBITDA)
		live.TrailingEPS = nonZero(h.EarningsShare)
		live.ForwardEPS = nonZero(h.EPSEstimateNextYear)
		live.DividendRate = nonZero(h.DividendShare)
		live.DividendYield = nonZero(h.DividendYield)
	}

	if sd := f.SplitsDividends; sd != nil {
		live.PayoutRatio = nonZero(sd.PayoutRatio)
	}

	if t := f.Technicals; t != nil {
		live.Beta = nonZero(t.Beta)
	}

	if os := f.OutstandingShares; os != nil && len(os.Annual) > 0 {
		live.SharesOutstanding = nonZero(float64(os.Annual[0].Shares))
	}

	if quote != nil {
		live.CurrentPrice = nonZero(quote.Close)
	}

	if fin := f.Financials; fin != nil {
		balance := statementTableFrom(fin.BalanceSheet)
		cashflow := statementTableFrom(fin.CashFlow)

		live.TotalDebt = latestLine(balance, "shortLongTermDebtTotal")
		live.TotalCash = latestLine(balance, "cashAndShortTermInvestments")
		if live.TotalCash == nil {
			live.TotalCash = latestLine(balance, "cash")
		}
		live.OperatingCashflow = latestLine(cashflow, "totalCashFromOperatingActivities")
		live.FreeCashflow = latestLine(cashflow, "freeCashFlow")
	}

	return live
}

// statementsFrom maps the raw EODHD statements onto aligned tables.
func statementsFrom(f *eodhd.Financials) *models.Statements {
	if f == nil {
		return &models.Statements{}
	}
	return &models.Statements{
		IncomeStatement: statementTableFrom(f.IncomeStatement),
		BalanceSheet:    statementTableFrom(f.BalanceSheet),
		CashFlow:        statementTableFrom(f.CashFlow),
	}
}

// statementTableFrom aligns the yearly columns of one statement into a table
// keyed by line-item label, most recent column first. Gaps are NaN so a
// missing year stays distinguishable from a reported zero.
func statementTableFrom(fs *eodhd.FinancialStatement) *models.StatementTable {
	if fs == nil || len(fs.Yearly) == 0 {
		return nil
	}

	dates := make([]string, 0, len(fs.Yearly))
	for date := range fs.Yearly {
		dates = append(dates, date)
	}
	// ISO dates sort lexically; reverse for most recent first
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	labels := map[string]bool{}
	for _, date := range dates {
		for label := range fs.Yearly[date] {
			if !statementMetaKeys[label] {
				labels[label] = true
			}
		}
	}

	table := &models.StatementTable{
		Currency: fs.Currency,
		Lines:    make(map[string][]float64, len(labels)),
	}
	for label := range labels {
		values := make([]float64, len(dates))
		for i, date := range dates {
			if v, ok := parseNumber(fs.Yearly[date][label]); ok {
				values[i] = v
			} else {
				values[i] = math.NaN()
			}
		}
		table.Lines[label] = values
	}
	return table
}

// parseNumber accepts the numeric encodings EODHD uses for line items:
// plain numbers or numeric strings depending on endpoint tier.
func parseNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// latestLine returns the most recent value of a statement line as an
// optional field, treating NaN gaps as absent.
func latestLine(table *models.StatementTable, label string) *float64 {
	if table == nil {
		return nil
	}
	value, ok := table.Latest(label)
	if !ok || math.IsNaN(value) {
		return nil
	}
	return &value
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
