package checks

import (
	"fmt"
	"strings"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// CalculateNetbackWaterfall computes field and corporate netback per BOE and
// flags the classic reporting traps:
//
//  1. Non-cash G&A (stock-based compensation inflating cash G&A)
//  2. Netted revenue (GP&T hidden inside the realized price)
//
// Field netback margin over 50% is OK, under 30% is RED, between is WATCH.
func CalculateNetbackWaterfall(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	priceBundle := ex.Metric("netback_realized_price")
	realizedPrice := bundleValue(priceBundle)

	loeBundle := ex.Metric("lifting_costs")
	loePerBOE := perBOE(bundleValue(loeBundle), productionBOE)

	taxBundle := ex.Metric("production_taxes")
	taxPerBOE := perBOE(bundleValue(taxBundle), productionBOE)

	gptBundle := ex.Metric("gathering_transport", "gathering", "transportation", "processing")
	gptPerBOE := perBOE(bundleValue(gptBundle), productionBOE)

	gnaBundle := ex.Metric("general_administrative")
	gnaTotal := bundleValue(gnaBundle)

	sbcBundle := ex.Metric("stock_based_compensation")
	sbcTotal := bundleValue(sbcBundle)

	cashGNA := gnaTotal - sbcTotal
	if cashGNA < 0 {
		cashGNA = 0
	}
	cashGNAPerBOE := perBOE(cashGNA, productionBOE)

	interestBundle := ex.Metric("interest_expense")
	interestPerBOE := perBOE(bundleValue(interestBundle), productionBOE)

	// Last resort for a missing realized price: total product revenue over
	// production. Risky when reporting periods mismatch, but better than NA.
	if realizedPrice <= 0 && productionBOE > 0 {
		if revBundle := ex.Metric("oil_gas_revenue"); revBundle != nil {
			realizedPrice = *revBundle.ValueParsed / productionBOE
		}
	}

	if realizedPrice <= 0 {
		return models.NAResult("Netback Analysis", "Could not determine Realized Price per BOE")
	}

	fieldNetback := realizedPrice - loePerBOE - taxPerBOE - gptPerBOE
	corpNetback := fieldNetback - cashGNAPerBOE - interestPerBOE

	netbackMargin := fieldNetback / realizedPrice
	marginRating := "Low (<50%)"
	if netbackMargin > 0.7 {
		marginRating = "High (>70%)"
	} else if netbackMargin > 0.5 {
		marginRating = "Medium (50-70%)"
	}

	var warnings []string

	if sbcTotal > 0 {
		warnings = append(warnings, fmt.Sprintf("Adjusted for SBC of $%.1fM", sbcTotal/1e6))
	} else if gnaTotal > 0 {
		warnings = append(warnings, "WARNING: Could not identify SBC. Cash G&A might be overstated.")
	}

	// A near-zero explicit GP&T usually means the cost was netted out of the
	// reported price rather than genuinely absent.
	nettedStatus := "Explicit Expense"
	if gptPerBOE < 0.50 {
		nettedStatus = "Likely Netted (Hidden Cost)"
		warnings = append(warnings, "GP&T appears netted out of revenue (Low explicit cost).")
	}

	status := models.StatusWATCH
	if netbackMargin > 0.5 {
		status = models.StatusOK
	}
	if netbackMargin < 0.3 {
		status = models.StatusRED
	}

	interpretation := strings.Join([]string{
		fmt.Sprintf("Realized Price: $%.2f", realizedPrice),
		fmt.Sprintf("- LOE: $%.2f", loePerBOE),
		fmt.Sprintf("- Taxes: $%.2f", taxPerBOE),
		fmt.Sprintf("- GP&T: $%.2f (%s)", gptPerBOE, nettedStatus),
		fmt.Sprintf("= Field Netback: $%.2f (%.0f%% Margin - %s)", fieldNetback, netbackMargin*100, marginRating),
		fmt.Sprintf("- Cash G&A: $%.2f", cashGNAPerBOE),
		fmt.Sprintf("- Interest: $%.2f", interestPerBOE),
		fmt.Sprintf("= Corp Netback: $%.2f", corpNetback),
		"",
		"Notes: " + strings.Join(warnings, ", "),
	}, "\n")

	var evidence []*models.EvidenceBundle
	for _, bundle := range []*models.EvidenceBundle{priceBundle, loeBundle, taxBundle, gptBundle, gnaBundle, sbcBundle} {
		if bundle != nil {
			evidence = append(evidence, bundle)
		}
	}

	return models.CheckResult{
		CheckName:      "Netback Calculation",
		Value:          corpNetback,
		Status:         status,
		Interpretation: interpretation,
		Formula:        "Waterfall Analysis",
		Evidence:       evidence,
	}
}

// bundleValue returns the parsed value of a bundle, or zero when absent.
func bundleValue(bundle *models.EvidenceBundle) float64 {
	if bundle == nil || bundle.ValueParsed == nil {
		return 0
	}
	return *bundle.ValueParsed
}

// perBOE divides a total by production, or zero when production is unknown.
func perBOE(total, productionBOE float64) float64 {
	if productionBOE <= 0 {
		return 0
	}
	return total / productionBOE
}
