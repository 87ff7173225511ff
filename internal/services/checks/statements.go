package checks

import (
	"fmt"
	"math"

	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/models"
)

// latestLine returns the most recent value of the first statement line whose
// label contains every substring. NaN gap columns count as missing.
func latestLine(table *models.StatementTable, substrings ...string) (float64, bool) {
	_, values, ok := table.FindLine(substrings...)
	if !ok || len(values) == 0 || math.IsNaN(values[0]) {
		return 0, false
	}
	return values[0], true
}

// derivedEvidence marks a value computed from structured market data rather
// than filing text.
func derivedEvidence(section string, value float64) *models.EvidenceBundle {
	return models.NewEvidenceBundle(common.NewEvidenceRowID(), "", section, "", "Derived from Market Data", &value, "USD")
}

// CheckNetDebtEBITDAX scores Net Debt / EBITDAX. Rule: < 1.0, RED otherwise.
// EBITDAX is EBITDA plus exploration expense; exploration is rarely broken
// out by the provider, so EBITDA stands in for it here.
func CheckNetDebtEBITDAX(live *models.LiveData, statements *models.Statements) models.CheckResult {
	if live == nil || live.TotalDebt == nil || live.TotalCash == nil || live.EBITDA == nil || *live.EBITDA == 0 {
		return models.NAResult("Net Debt / EBITDAX", "Missing Debt/EBITDA")
	}

	netDebt := *live.TotalDebt - *live.TotalCash
	explorationExpense := 0.0
	ebitdax := *live.EBITDA + explorationExpense

	ratio := netDebt / ebitdax
	status := models.StatusOK
	if ratio >= 1.0 {
		status = models.StatusRED
	}

	return models.CheckResult{
		CheckName:      "Net Debt / EBITDAX",
		Value:          ratio,
		Status:         status,
		Interpretation: fmt.Sprintf("Ratio: %.2fx (Target < 1.0)", ratio),
		Formula:        "Net Debt / (EBITDA + Explor)",
		Evidence:       []*models.EvidenceBundle{derivedEvidence("Financials", ratio)},
	}
}

// CheckBuybackRate scores share repurchases against market cap using the
// latest cash-flow repurchase line.
func CheckBuybackRate(live *models.LiveData, statements *models.Statements) models.CheckResult {
	if statements == nil || statements.CashFlow == nil || live == nil || live.MarketCap == nil {
		return models.NAResult("Buyback Rate", "Missing Cash Flow Data")
	}

	repurchase, ok := latestLine(statements.CashFlow, "purchase", "stock")
	if !ok {
		return models.NAResult("Buyback Rate", "Missing Cash Flow Data")
	}

	// Repurchases are reported as outflows
	buybackYield := math.Abs(repurchase) / *live.MarketCap

	return models.CheckResult{
		CheckName:      "Buyback Rate",
		Value:          buybackYield,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Buyback Yield: %.1f%%", buybackYield*100),
		Formula:        "Repurchase / Market Cap",
	}
}

// CheckAccountsPayableChange reports the year-over-year change in accounts
// payable. Informational: no threshold, always OK when computable.
func CheckAccountsPayableChange(statements *models.Statements) models.CheckResult {
	if statements == nil || statements.BalanceSheet == nil {
		return models.NAResult("Accounts Payable Change", "Data not found")
	}

	_, values, ok := statements.BalanceSheet.FindLine("accountsPayable")
	if !ok || len(values) < 2 || math.IsNaN(values[0]) || math.IsNaN(values[1]) {
		return models.NAResult("Accounts Payable Change", "Data not found")
	}

	current, previous := values[0], values[1]
	change := current - previous
	pctChange := 0.0
	if previous != 0 {
		pctChange = change / previous
	}

	return models.CheckResult{
		CheckName:      "Accounts Payable Change",
		Value:          change,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Change: $%.1fM (%.1f%%)", change/1e6, pctChange*100),
		Formula:        "Current AP - Prev AP",
	}
}

// CheckCapitalIntensity scores Capex / Operating Cash Flow.
func CheckCapitalIntensity(live *models.LiveData, statements *models.Statements) models.CheckResult {
	capex := 0.0
	if statements != nil && statements.CashFlow != nil {
		if v, ok := latestLine(statements.CashFlow, "capitalExpenditures"); ok {
			capex = math.Abs(v)
		}
	}

	if live == nil || live.OperatingCashflow == nil || *live.OperatingCashflow <= 0 {
		return models.NAResult("Capital Intensity", "Missing Capex/OCF")
	}

	intensity := capex / *live.OperatingCashflow

	return models.CheckResult{
		CheckName:      "Capital Intensity",
		Value:          intensity,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Intensity: %.1f%%", intensity*100),
		Formula:        "Capex / OCF",
	}
}

// CheckDebtPayback compares debt repayment against new issuance in the
// cash-flow statement. Net reduction is OK, net increase is WATCH.
func CheckDebtPayback(statements *models.Statements) models.CheckResult {
	if statements == nil || statements.CashFlow == nil {
		return models.NAResult("Debt Payback", "CF Data missing")
	}

	repayment := 0.0
	if v, ok := latestLine(statements.CashFlow, "repayment", "debt"); ok {
		repayment = math.Abs(v)
	}
	issuance := 0.0
	if v, ok := latestLine(statements.CashFlow, "issuance", "debt"); ok {
		issuance = math.Abs(v)
	}

	netPayback := repayment - issuance

	interpretation := "Net Debt Increase"
	status := models.StatusWATCH
	if netPayback > 0 {
		interpretation = "Net Debt Reduction"
		status = models.StatusOK
	}

	return models.CheckResult{
		CheckName:      "Debt Payback",
		Value:          netPayback,
		Status:         status,
		Interpretation: fmt.Sprintf("%s ($%.1fM)", interpretation, netPayback/1e6),
		Formula:        "Repayment - Issuance",
	}
}
