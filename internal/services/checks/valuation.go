package checks

import (
	"fmt"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// napkinMultiple is the free-cash-flow multiple used by the napkin method.
const napkinMultiple = 8.0

// IntrinsicValueSMOG estimates per-share value from the standardized measure
// of discounted future net cash flows: (SMOG + land + cash - debt) / shares.
// Undeveloped land value is rarely disclosed explicitly, which makes this
// method NA for most filers.
func IntrinsicValueSMOG(ex *extract.Extractor) models.CheckResult {
	smogBundle := ex.Metric("smog")
	landBundle := ex.Metric("undeveloped_land")

	if landBundle == nil {
		return models.NAResult("intrinsic_value_method_1_smog", "Undeveloped Land Value not explicitly disclosed.")
	}

	debtBundle := ex.Metric("Total Debt", "total debt")
	cashBundle := ex.Metric("cash_and_equivalents")
	sharesBundle := ex.Metric("diluted_shares")

	debt := 0.0
	if debtBundle != nil {
		debt = *debtBundle.ValueParsed
	}
	cash := 0.0
	if cashBundle != nil {
		cash = *cashBundle.ValueParsed
	}
	shares := 1.0
	if sharesBundle != nil {
		shares = *sharesBundle.ValueParsed
	}

	if smogBundle != nil && shares > 0 {
		intrinsicValue := (*smogBundle.ValueParsed + *landBundle.ValueParsed + cash - debt) / shares

		return models.CheckResult{
			CheckName:      "intrinsic_value_method_1_smog",
			Value:          intrinsicValue,
			Status:         models.StatusOK,
			Interpretation: fmt.Sprintf("SMOG Intrinsic Value: $%.2f/share", intrinsicValue),
			Formula:        "SMOG Method",
			Evidence:       []*models.EvidenceBundle{smogBundle},
		}
	}

	return models.NAResult("intrinsic_value_method_1_smog", "Missing SMOG or Shares.")
}

// IntrinsicValueNapkin estimates per-share value as a flat multiple of free
// cash flow spread over the share count implied by market cap and price.
func IntrinsicValueNapkin(ex *extract.Extractor, live *models.LiveData) models.CheckResult {
	fcfBundle := ex.Metric("free_cash_flow")
	if fcfBundle == nil {
		return models.NAResult("intrinsic_value_method_2_napkin", "Missing Free Cash Flow data.")
	}

	shares := 1.0
	if live != nil && live.MarketCap != nil && live.CurrentPrice != nil && *live.CurrentPrice != 0 {
		shares = *live.MarketCap / *live.CurrentPrice
	}

	intrinsic := (*fcfBundle.ValueParsed * napkinMultiple) / shares

	return models.CheckResult{
		CheckName:      "intrinsic_value_method_2_napkin",
		Value:          intrinsic,
		Status:         models.StatusOK,
		Interpretation: fmt.Sprintf("Napkin Value (FCF x%.1f): $%.2f", napkinMultiple, intrinsic),
		Evidence:       []*models.EvidenceBundle{fcfBundle},
	}
}
