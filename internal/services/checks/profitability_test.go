package checks

import (
	"math"
	"testing"

	"github.com/ternarybob/strata/internal/models"
)

func TestCheckOperatingMarginPerBOE(t *testing.T) {
	// Price is already per-BOE (below the magnitude threshold); cost is a
	// total and gets divided by production.
	text := "The realized price was 45.50 per barrel equivalent. Total operating expenses were 3,000 for the year."
	result := CheckOperatingMarginPerBOE(extractorFor(text), 100)

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	// 45.50 - 3000/100 = 15.50
	if got := numericValue(t, result); math.Abs(got-15.50) > 0.001 {
		t.Errorf("margin = %.2f, want 15.50", got)
	}
	if len(result.Evidence) != 2 {
		t.Errorf("evidence count = %d, want 2", len(result.Evidence))
	}
}

func TestCheckOperatingMarginMissingData(t *testing.T) {
	result := CheckOperatingMarginPerBOE(extractorFor("The realized price was 45.50."), 100)
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without total cost", result.Status)
	}
}

func TestComputeROIC(t *testing.T) {
	text := "Operating income was 1,000 for fiscal 2024. " +
		"Total equity was 5,000 at year end. " +
		"Total debt was 2,000 outstanding. " +
		"Cash and cash equivalents were 1,000."
	result := ComputeROIC(extractorFor(text))

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	// NOPAT = 1000 * 0.79 = 790; invested capital = 5000 + 2000 - 1000 = 6000
	if got := numericValue(t, result); math.Abs(got-790.0/6000.0) > 0.0001 {
		t.Errorf("roic = %.4f, want %.4f", got, 790.0/6000.0)
	}
	if len(result.Evidence) != 4 {
		t.Errorf("evidence count = %d, want 4", len(result.Evidence))
	}
}

func TestComputeROICMissingEquity(t *testing.T) {
	text := "Operating income was 1,000. Total debt was 2,000."
	result := ComputeROIC(extractorFor(text))
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA", result.Status)
	}
}

func TestComputeWACC(t *testing.T) {
	text := "Interest expense was 100 for the year. Total debt was 2,000 outstanding."
	marketCap := 8000.0
	result := ComputeWACC(extractorFor(text), &marketCap)

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	// Rd = 100/2000 = 0.05; V = 10000
	// WACC = 0.8*0.10 + 0.2*0.05*0.79 = 0.0879
	if got := numericValue(t, result); math.Abs(got-0.0879) > 0.0001 {
		t.Errorf("wacc = %.4f, want 0.0879", got)
	}
}

func TestComputeWACCMissingMarketCap(t *testing.T) {
	text := "Interest expense was 100. Total debt was 2,000."
	result := ComputeWACC(extractorFor(text), nil)
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without market cap", result.Status)
	}
}

func TestCheckROICMinusWACCSpread(t *testing.T) {
	roic := models.CheckResult{CheckName: "compute_roic", Value: 0.15, Status: models.StatusOK}
	wacc := models.CheckResult{CheckName: "compute_wacc", Value: 0.09, Status: models.StatusOK}

	result := CheckROICMinusWACCSpread(roic, wacc)
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK for positive spread", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-0.06) > 0.0001 {
		t.Errorf("spread = %.4f, want 0.06", got)
	}

	negative := CheckROICMinusWACCSpread(
		models.CheckResult{Value: 0.05, Status: models.StatusOK},
		models.CheckResult{Value: 0.09, Status: models.StatusOK},
	)
	if negative.Status != models.StatusRED {
		t.Errorf("status = %s, want RED for negative spread", negative.Status)
	}

	depMissing := CheckROICMinusWACCSpread(
		models.NAResult("compute_roic", "Missing data for ROIC"),
		wacc,
	)
	if depMissing.Status != models.StatusNA {
		t.Errorf("status = %s, want NA when a dependency is NA", depMissing.Status)
	}
	if depMissing.Value != nil {
		t.Errorf("value = %v, want nil when a dependency is NA", depMissing.Value)
	}
}
