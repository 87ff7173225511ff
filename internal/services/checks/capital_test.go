package checks

import (
	"math"
	"testing"
	"time"

	"github.com/ternarybob/strata/internal/models"
)

func TestCheckDividendYield(t *testing.T) {
	// Income screen: a high yield passes, a low yield fails
	result := CheckDividendYield(&models.LiveData{DividendYield: fptr(0.08)})
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK at 8%% yield", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-8.0) > 0.001 {
		t.Errorf("value = %.2f, want 8.0", got)
	}

	result = CheckDividendYield(&models.LiveData{DividendYield: fptr(0.05)})
	if result.Status != models.StatusRED {
		t.Errorf("status = %s, want RED at 5%% yield", result.Status)
	}

	result = CheckDividendYield(&models.LiveData{})
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without yield", result.Status)
	}
}

func paymentsForYears(years ...int) []models.DividendPayment {
	var payments []models.DividendPayment
	for _, year := range years {
		payments = append(payments, models.DividendPayment{
			Date:  time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC),
			Value: 0.5,
		})
	}
	return payments
}

func TestCheckDividendPersistence(t *testing.T) {
	tests := []struct {
		name       string
		history    []models.DividendPayment
		wantYears  float64
		wantStatus models.Status
	}{
		{"long record", paymentsForYears(2019, 2020, 2021, 2022, 2023, 2024), 6, models.StatusOK},
		{"short record", paymentsForYears(2023, 2024, 2024), 2, models.StatusWATCH},
		{"single year", paymentsForYears(2024), 1, models.StatusRED},
		{"no history", nil, 0, models.StatusRED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDividendPersistence(tt.history)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tt.wantStatus)
			}
			if got := numericValue(t, result); got != tt.wantYears {
				t.Errorf("years = %.0f, want %.0f", got, tt.wantYears)
			}
		})
	}
}

func TestCheckPayoutRatio(t *testing.T) {
	// Income screen: a high payout passes, a low payout fails
	result := CheckPayoutRatio(&models.LiveData{PayoutRatio: fptr(0.60)})
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK at 60%% payout", result.Status)
	}

	result = CheckPayoutRatio(&models.LiveData{PayoutRatio: fptr(0.30)})
	if result.Status != models.StatusRED {
		t.Errorf("status = %s, want RED at 30%% payout", result.Status)
	}

	result = CheckPayoutRatio(&models.LiveData{})
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without payout ratio", result.Status)
	}
}

func TestCheckShareBuybacksTrend(t *testing.T) {
	result := CheckShareBuybacksTrend(extractorFor("The company repurchased 12 million shares during 2024."))
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}

	result = CheckShareBuybacksTrend(extractorFor("No capital returns this year."))
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA", result.Status)
	}
}

func TestCheckDebtLow(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantStatus models.Status
	}{
		{
			name: "low leverage",
			text: "Total debt was 1,000. Cash and cash equivalents were 200. EBITDA was 800.",
			// (1000-200)/800 = 1.0
			wantStatus: models.StatusOK,
		},
		{
			name: "watch band",
			text: "Total debt was 2,000. Cash and cash equivalents were 200. EBITDA was 900.",
			// (2000-200)/900 = 2.0
			wantStatus: models.StatusWATCH,
		},
		{
			name: "over-levered",
			text: "Total debt was 3,000. Cash and cash equivalents were 200. EBITDA was 1,000.",
			// (3000-200)/1000 = 2.8
			wantStatus: models.StatusRED,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDebtLow(extractorFor(tt.text))
			if result.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestCheckCapitalRunRate(t *testing.T) {
	result := CheckCapitalRunRate(extractorFor("Capital expenditures were 1,200 in 2024."), 100)
	if got := numericValue(t, result); math.Abs(got-12.0) > 0.001 {
		t.Errorf("capex/BOE = %.2f, want 12.00", got)
	}

	result = CheckCapitalRunRate(extractorFor("Nothing disclosed."), 100)
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA", result.Status)
	}
}
