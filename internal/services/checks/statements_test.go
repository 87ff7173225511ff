package checks

import (
	"math"
	"testing"

	"github.com/ternarybob/strata/internal/models"
)

func fptr(v float64) *float64 {
	return &v
}

func TestCheckNetDebtEBITDAX(t *testing.T) {
	tests := []struct {
		name       string
		live       *models.LiveData
		wantStatus models.Status
		wantValue  float64
	}{
		{
			name: "healthy leverage",
			live: &models.LiveData{
				TotalDebt: fptr(3e9),
				TotalCash: fptr(1e9),
				EBITDA:    fptr(4e9),
			},
			wantStatus: models.StatusOK,
			wantValue:  0.5,
		},
		{
			name: "at 1.0x is RED",
			live: &models.LiveData{
				TotalDebt: fptr(5e9),
				TotalCash: fptr(1e9),
				EBITDA:    fptr(4e9),
			},
			wantStatus: models.StatusRED,
			wantValue:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckNetDebtEBITDAX(tt.live, nil)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tt.wantStatus)
			}
			if got := numericValue(t, result); math.Abs(got-tt.wantValue) > 0.001 {
				t.Errorf("value = %.4f, want %.4f", got, tt.wantValue)
			}
			if len(result.Evidence) != 1 {
				t.Errorf("evidence count = %d, want 1 derived bundle", len(result.Evidence))
			}
		})
	}
}

func TestCheckNetDebtEBITDAXMissingDebt(t *testing.T) {
	live := &models.LiveData{TotalCash: fptr(1e9), EBITDA: fptr(4e9)}
	result := CheckNetDebtEBITDAX(live, nil)
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA when debt is missing", result.Status)
	}
	if result.Value != nil {
		t.Errorf("value = %v, want nil", result.Value)
	}
	if len(result.Evidence) != 0 {
		t.Errorf("evidence count = %d, want 0", len(result.Evidence))
	}
}

func TestCheckBuybackRate(t *testing.T) {
	statements := &models.Statements{
		CashFlow: &models.StatementTable{
			Lines: map[string][]float64{
				"salePurchaseOfStock": {-2e9},
			},
		},
	}
	live := &models.LiveData{MarketCap: fptr(20e9)}

	result := CheckBuybackRate(live, statements)
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-0.10) > 0.001 {
		t.Errorf("buyback yield = %.4f, want 0.10", got)
	}

	result = CheckBuybackRate(live, &models.Statements{})
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without cash flow", result.Status)
	}
}

func TestCheckAccountsPayableChange(t *testing.T) {
	statements := &models.Statements{
		BalanceSheet: &models.StatementTable{
			Lines: map[string][]float64{
				"accountsPayable": {1.2e9, 1.0e9},
			},
		},
	}

	result := CheckAccountsPayableChange(statements)
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-2e8) > 1 {
		t.Errorf("change = %.0f, want 2e8", got)
	}

	// A single column cannot produce a change
	single := &models.Statements{
		BalanceSheet: &models.StatementTable{
			Lines: map[string][]float64{"accountsPayable": {1.2e9}},
		},
	}
	if result := CheckAccountsPayableChange(single); result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA with one column", result.Status)
	}
}

func TestCheckCapitalIntensity(t *testing.T) {
	statements := &models.Statements{
		CashFlow: &models.StatementTable{
			Lines: map[string][]float64{
				"capitalExpenditures": {-1.5e9},
			},
		},
	}
	live := &models.LiveData{OperatingCashflow: fptr(3e9)}

	result := CheckCapitalIntensity(live, statements)
	if got := numericValue(t, result); math.Abs(got-0.5) > 0.001 {
		t.Errorf("intensity = %.4f, want 0.5", got)
	}

	if result := CheckCapitalIntensity(&models.LiveData{}, statements); result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without OCF", result.Status)
	}
}

func TestCheckDebtPayback(t *testing.T) {
	statements := &models.Statements{
		CashFlow: &models.StatementTable{
			Lines: map[string][]float64{
				"repaymentOfDebt": {-800e6},
				"issuanceOfDebt":  {300e6},
			},
		},
	}

	result := CheckDebtPayback(statements)
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK for net reduction", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-500e6) > 1 {
		t.Errorf("net payback = %.0f, want 5e8", got)
	}

	increase := &models.Statements{
		CashFlow: &models.StatementTable{
			Lines: map[string][]float64{
				"repaymentOfDebt": {-100e6},
				"issuanceOfDebt":  {900e6},
			},
		},
	}
	if result := CheckDebtPayback(increase); result.Status != models.StatusWATCH {
		t.Errorf("status = %s, want WATCH for net increase", result.Status)
	}

	if result := CheckDebtPayback(nil); result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without statements", result.Status)
	}
}
