package checks

import (
	"fmt"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// CheckLOEPerBOE scores Lease Operating Expense per BOE (USD/BOE).
// Rule: must be < 8. RED at or above 8.
func CheckLOEPerBOE(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	bundle := ex.Metric("lease_operating_expense")

	if bundle != nil && productionBOE > 0 {
		loePerBOE := *bundle.ValueParsed / productionBOE

		status := models.StatusOK
		direction := "below"
		if loePerBOE >= 8 {
			status = models.StatusRED
			direction = "above"
		}

		return models.CheckResult{
			CheckName:      "check_loe_per_boe",
			Value:          loePerBOE,
			Status:         status,
			Interpretation: fmt.Sprintf("LOE per BOE is $%.2f, which is %s the $8 threshold.", loePerBOE, direction),
			Formula:        "Lease Operating Expense / Production (BOE)",
			Evidence:       []*models.EvidenceBundle{bundle},
		}
	}

	// Evidence found before the gap was discovered stays on the result
	if bundle != nil {
		return models.NAResult("check_loe_per_boe", "Could not extract Lease Operating Expense or Production data.", bundle)
	}
	return models.NAResult("check_loe_per_boe", "Could not extract Lease Operating Expense or Production data.")
}

// CheckGatheringTransportPerBOE scores Gathering, Processing and
// Transportation expense per BOE. Rule: must be < 2.50, lower is better.
func CheckGatheringTransportPerBOE(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	bundle := ex.Metric("gathering_transport")

	if bundle != nil && productionBOE > 0 {
		gtPerBOE := *bundle.ValueParsed / productionBOE

		status := models.StatusOK
		if gtPerBOE >= 2.5 {
			status = models.StatusRED
		}

		return models.CheckResult{
			CheckName:      "check_gathering_transport_per_boe",
			Value:          gtPerBOE,
			Status:         status,
			Interpretation: fmt.Sprintf("G&T per BOE is $%.2f (Strict Limit < $2.50).", gtPerBOE),
			Formula:        "G&T Expense / Production (BOE)",
			Evidence:       []*models.EvidenceBundle{bundle},
		}
	}

	if bundle != nil {
		return models.NAResult("check_gathering_transport_per_boe", "Could not extract G&T Expense.", bundle)
	}
	return models.NAResult("check_gathering_transport_per_boe", "Could not extract G&T Expense.")
}

// CheckGNAPerBOE scores General and Administrative expense per BOE.
// Rule: must be < 3. RED at or above 3.
func CheckGNAPerBOE(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	bundle := ex.Metric("general_administrative")

	if bundle != nil && productionBOE > 0 {
		gnaPerBOE := *bundle.ValueParsed / productionBOE

		status := models.StatusOK
		if gnaPerBOE >= 3 {
			status = models.StatusRED
		}

		return models.CheckResult{
			CheckName:      "check_gna_per_boe",
			Value:          gnaPerBOE,
			Status:         status,
			Interpretation: fmt.Sprintf("G&A per BOE is $%.2f.", gnaPerBOE),
			Formula:        "G&A Expense / Production (BOE)",
			Evidence:       []*models.EvidenceBundle{bundle},
		}
	}

	if bundle != nil {
		return models.NAResult("check_gna_per_boe", "Could not extract G&A Expense.", bundle)
	}
	return models.NAResult("check_gna_per_boe", "Could not extract G&A Expense.")
}
