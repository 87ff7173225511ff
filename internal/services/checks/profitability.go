package checks

import (
	"fmt"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// defaultTaxRate is the statutory US corporate tax rate used for NOPAT.
const defaultTaxRate = 0.21

// magnitudeThreshold separates per-BOE figures from totals: an extracted
// value above it is assumed to be a total and gets divided by production.
const magnitudeThreshold = 200

// CheckOperatingMarginPerBOE scores realized price per BOE minus total cost
// per BOE. Higher is better; no RED threshold.
func CheckOperatingMarginPerBOE(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	priceBundle := ex.Metric("realized_price")
	costBundle := ex.Metric("total_operating_expenses")

	if priceBundle == nil || costBundle == nil || productionBOE == 0 {
		return models.NAResult("check_operating_margin_per_boe", "Data missing for Operating Margin.")
	}

	realizedPrice := *priceBundle.ValueParsed
	totalCost := *costBundle.ValueParsed

	// Extraction cannot tell a unit price from a total; large magnitudes are
	// assumed to be totals.
	pricePerBOE := realizedPrice
	if realizedPrice > magnitudeThreshold {
		pricePerBOE = realizedPrice / productionBOE
	}
	costPerBOE := totalCost
	if totalCost > magnitudeThreshold {
		costPerBOE = totalCost / productionBOE
	}

	margin := pricePerBOE - costPerBOE

	return models.CheckResult{
		CheckName:      "check_operating_margin_per_boe",
		Value:          margin,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Operating Margin: $%.2f/BOE (Price: $%.2f - Cost: $%.2f)", margin, pricePerBOE, costPerBOE),
		Formula:        "Realized Price/BOE - Total Cost/BOE",
		Evidence:       []*models.EvidenceBundle{priceBundle, costBundle},
	}
}

// ComputeROIC computes Return On Invested Capital from filing text:
// NOPAT / (equity + debt - cash).
func ComputeROIC(ex *extract.Extractor) models.CheckResult {
	opIncomeBundle := ex.Metric("operating_income")
	equityBundle := ex.Metric("total_equity")
	debtBundle := ex.Metric("Total Debt", "total debt", "long-term debt", "debt")
	cashBundle := ex.Metric("Cash", "cash and cash equivalents", "cash")

	var evidence []*models.EvidenceBundle

	if opIncomeBundle != nil && equityBundle != nil && debtBundle != nil {
		evidence = append(evidence, opIncomeBundle, equityBundle, debtBundle)
		cash := 0.0
		if cashBundle != nil {
			evidence = append(evidence, cashBundle)
			cash = *cashBundle.ValueParsed
		}

		nopat := *opIncomeBundle.ValueParsed * (1 - defaultTaxRate)
		investedCapital := *equityBundle.ValueParsed + *debtBundle.ValueParsed - cash

		if investedCapital > 0 {
			roic := nopat / investedCapital
			return models.CheckResult{
				CheckName:      "compute_roic",
				Value:          roic,
				Status:         models.StatusOK,
				Interpretation: fmt.Sprintf("ROIC is %.1f%%", roic*100),
				Formula:        "NOPAT / (Equity + Debt - Cash)",
				Evidence:       evidence,
			}
		}
	}

	return models.NAResult("compute_roic", "Missing data for ROIC", evidence...)
}

// ComputeWACC estimates the weighted average cost of capital. Cost of debt
// comes from interest expense over total debt when both are disclosed; cost
// of equity defaults to 10% since a 10-K carries no beta.
func ComputeWACC(ex *extract.Extractor, marketCap *float64) models.CheckResult {
	interestBundle := ex.Metric("Interest Expense", "interest expense")
	debtBundle := ex.Metric("total_debt")

	costOfEquity := 0.10
	costOfDebt := 0.05

	var evidence []*models.EvidenceBundle
	if interestBundle != nil && debtBundle != nil && *debtBundle.ValueParsed > 0 {
		evidence = append(evidence, interestBundle, debtBundle)
		costOfDebt = *interestBundle.ValueParsed / *debtBundle.ValueParsed
	}

	if marketCap != nil && debtBundle != nil {
		d := *debtBundle.ValueParsed
		e := *marketCap
		v := d + e
		wacc := (e/v)*costOfEquity + (d/v)*costOfDebt*(1-defaultTaxRate)

		return models.CheckResult{
			CheckName:      "compute_wacc",
			Value:          wacc,
			Status:         models.StatusOK,
			Interpretation: fmt.Sprintf("WACC estimated at %.1f%%", wacc*100),
			Formula:        "Weighted Avg Cost of Capital",
			Evidence:       evidence,
		}
	}

	return models.NAResult("compute_wacc", "Missing Market Cap or Debt for WACC", evidence...)
}

// CheckROICMinusWACCSpread scores value creation as ROIC minus WACC. The
// dependencies are passed explicitly; the spread is NA whenever either was.
func CheckROICMinusWACCSpread(roic, wacc models.CheckResult) models.CheckResult {
	if roic.Status == models.StatusNA || wacc.Status == models.StatusNA {
		return models.NAResult("check_roic_minus_wacc_spread", "Dependencies missing")
	}

	roicValue, _ := roic.NumericValue()
	waccValue, _ := wacc.NumericValue()
	spread := roicValue - waccValue

	status := models.StatusRED
	if spread > 0 {
		status = models.StatusOK
	}

	return models.CheckResult{
		CheckName:      "check_roic_minus_wacc_spread",
		Value:          spread,
		Status:         status,
		Interpretation: fmt.Sprintf("Spread: %.1f%%", spread*100),
		Formula:        "ROIC - WACC",
	}
}
