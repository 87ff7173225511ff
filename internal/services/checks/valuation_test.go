package checks

import (
	"math"
	"testing"

	"github.com/ternarybob/strata/internal/models"
)

func TestIntrinsicValueSMOGRequiresLandValue(t *testing.T) {
	text := "The standardized measure was 9,000 at year end."
	result := IntrinsicValueSMOG(extractorFor(text))

	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without disclosed land value", result.Status)
	}
	if result.Interpretation != "Undeveloped Land Value not explicitly disclosed." {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
}

func TestIntrinsicValueSMOG(t *testing.T) {
	text := "The standardized measure was 9,000 at year end. " +
		"Value of undeveloped acreage was estimated at 1,000. " +
		"Total debt was 2,000. " +
		"Cash and cash equivalents were 500. " +
		"Diluted shares outstanding were 100."
	result := IntrinsicValueSMOG(extractorFor(text))

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	// (9000 + 1000 + 500 - 2000) / 100 = 85
	if got := numericValue(t, result); math.Abs(got-85.0) > 0.001 {
		t.Errorf("intrinsic value = %.2f, want 85.00", got)
	}
}

func TestIntrinsicValueNapkin(t *testing.T) {
	text := "Free cash flow was 1,000 for the year."
	marketCap := 8000.0
	price := 80.0
	live := &models.LiveData{MarketCap: &marketCap, CurrentPrice: &price}

	result := IntrinsicValueNapkin(extractorFor(text), live)
	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	// shares = 8000/80 = 100; value = 1000*8/100 = 80
	if got := numericValue(t, result); math.Abs(got-80.0) > 0.001 {
		t.Errorf("napkin value = %.2f, want 80.00", got)
	}

	missing := IntrinsicValueNapkin(extractorFor("No cash flow figures."), live)
	if missing.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without FCF", missing.Status)
	}
}
