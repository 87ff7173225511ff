package checks

import (
	"fmt"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// CheckDividendYield scores the dividend yield. This is an income screen:
// a yield under 7% is RED.
func CheckDividendYield(live *models.LiveData) models.CheckResult {
	if live == nil || live.DividendYield == nil {
		return models.NAResult("Dividend Yield", "Yield not found")
	}

	yieldPct := *live.DividendYield * 100
	status := models.StatusRED
	if yieldPct >= 7.0 {
		status = models.StatusOK
	}

	return models.CheckResult{
		CheckName:      "Dividend Yield",
		Value:          yieldPct,
		Status:         status,
		Interpretation: fmt.Sprintf("Yield is %.2f%% (Target >= 7%%)", yieldPct),
		Formula:        "Dividend / Price",
	}
}

// CheckDividendPersistence counts the distinct calendar years with dividend
// payments. Five or more is OK, under two is RED.
func CheckDividendPersistence(history []models.DividendPayment) models.CheckResult {
	if len(history) == 0 {
		return models.CheckResult{
			CheckName:      "Dividend Persistence",
			Value:          0.0,
			Status:         models.StatusRED,
			Interpretation: "No dividend history found",
			Formula:        "Years of Payouts",
		}
	}

	yearTotals := map[int]float64{}
	for _, payment := range history {
		yearTotals[payment.Date.Year()] += payment.Value
	}
	payingYears := 0
	for _, total := range yearTotals {
		if total > 0 {
			payingYears++
		}
	}

	status := models.StatusWATCH
	if payingYears >= 5 {
		status = models.StatusOK
	}
	if payingYears < 2 {
		status = models.StatusRED
	}

	return models.CheckResult{
		CheckName:      "Dividend Persistence",
		Value:          float64(payingYears),
		Status:         status,
		Interpretation: fmt.Sprintf("Paid dividends in %d separate years.", payingYears),
		Formula:        "Historical Dividend Analysis",
	}
}

// CheckPayoutRatio scores the payout ratio as an income screen: below 50%
// of earnings paid out is RED.
func CheckPayoutRatio(live *models.LiveData) models.CheckResult {
	if live == nil || live.PayoutRatio == nil || *live.PayoutRatio == 0 {
		return models.NAResult("Payout Ratio", "Missing Payout Ratio")
	}

	payoutPct := *live.PayoutRatio * 100
	status := models.StatusRED
	if payoutPct >= 50 {
		status = models.StatusOK
	}

	return models.CheckResult{
		CheckName:      "Payout Ratio",
		Value:          payoutPct,
		Status:         status,
		Interpretation: fmt.Sprintf("Payout is %.1f%% (Min 50%%)", payoutPct),
		Formula:        "Div / Earnings",
	}
}

// CheckShareBuybacksTrend looks for repurchase activity in the filing text.
// Informational: presence is OK, no threshold.
func CheckShareBuybacksTrend(ex *extract.Extractor) models.CheckResult {
	bundle := ex.Metric("share_repurchases")
	if bundle == nil {
		return models.NAResult("check_share_buybacks_trend", "No buyback info found.")
	}

	return models.CheckResult{
		CheckName:      "check_share_buybacks_trend",
		Value:          *bundle.ValueParsed,
		Status:         models.StatusOK,
		Interpretation: "Company mentions share repurchases.",
		Evidence:       []*models.EvidenceBundle{bundle},
	}
}

// CheckDebtLow scores Net Debt / EBITDA from filing text. Under 1.5 is OK,
// over 2.5 is RED, the band between is WATCH.
func CheckDebtLow(ex *extract.Extractor) models.CheckResult {
	debtBundle := ex.Metric("total_debt")
	cashBundle := ex.Metric("cash_and_equivalents")
	ebitdaBundle := ex.Metric("ebitda")

	var evidence []*models.EvidenceBundle

	if debtBundle != nil && ebitdaBundle != nil {
		evidence = append(evidence, debtBundle, ebitdaBundle)
		cash := 0.0
		if cashBundle != nil {
			evidence = append(evidence, cashBundle)
			cash = *cashBundle.ValueParsed
		}

		netDebt := *debtBundle.ValueParsed - cash
		ebitda := *ebitdaBundle.ValueParsed

		if ebitda > 0 {
			ratio := netDebt / ebitda
			status := models.StatusOK
			if ratio > 1.5 {
				status = models.StatusWATCH
			}
			if ratio > 2.5 {
				status = models.StatusRED
			}

			return models.CheckResult{
				CheckName:      "check_debt_low",
				Value:          ratio,
				Status:         status,
				Interpretation: fmt.Sprintf("Net Debt/EBITDA: %.2f", ratio),
				Formula:        "(Debt-Cash)/EBITDA",
				Evidence:       evidence,
			}
		}
	}

	return models.NAResult("check_debt_low", "Missing Debt or EBITDA.", evidence...)
}

// CheckCapitalRunRate reports capital expenditure per BOE of production.
// Informational: lower is better, no threshold.
func CheckCapitalRunRate(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	bundle := ex.Metric("capital_expenditures")
	if bundle == nil || productionBOE == 0 {
		return models.NAResult("check_capital_run_rate", "Missing Capex or Production.")
	}

	ratio := *bundle.ValueParsed / productionBOE

	return models.CheckResult{
		CheckName:      "check_capital_run_rate",
		Value:          ratio,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Capex/BOE: $%.2f", ratio),
		Formula:        "Capex / Production",
		Evidence:       []*models.EvidenceBundle{bundle},
	}
}
