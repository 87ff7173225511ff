package checks

import (
	"strings"
	"testing"

	"github.com/ternarybob/strata/internal/models"
)

func TestCheckAssetQualityOilWeightedTier1(t *testing.T) {
	text := "Crude oil production was 70 MBOE per day from our Permian acreage in the Delaware Basin."
	result := CheckAssetQuality(extractorFor(text), 100)

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK for oil-weighted Permian producer", result.Status)
	}
	if got := numericValue(t, result); got != 70 {
		t.Errorf("oil mix = %.0f%%, want 70", got)
	}
	if !strings.Contains(result.Interpretation, "Oil Weighted (70%)") {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
	if !strings.Contains(result.Interpretation, "Permian") {
		t.Errorf("interpretation missing basin: %s", result.Interpretation)
	}
}

func TestCheckAssetQualityGasHeavy(t *testing.T) {
	text := "Crude oil production was 20 MBOE per day in the Marcellus region."
	result := CheckAssetQuality(extractorFor(text), 100)

	if result.Status != models.StatusWATCH {
		t.Errorf("status = %s, want WATCH for gas-heavy non-core producer", result.Status)
	}
	if !strings.Contains(result.Interpretation, "Gas Heavy (20% Oil)") {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
	if !strings.Contains(result.Interpretation, "No Core Basin Identified") {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
}

func TestCheckAssetQualityMixUnknown(t *testing.T) {
	result := CheckAssetQuality(extractorFor("Operations span several regions in the Permian."), 100)
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA when the mix is unknown", result.Status)
	}
	if !strings.Contains(result.Interpretation, "Mix Unknown") {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
}

func TestCheckAssetQualityMixCapped(t *testing.T) {
	// Oil volume above total production: different units, cap at 100%
	text := "Crude oil production was 500 MBbl in total for our Midland Basin wells."
	result := CheckAssetQuality(extractorFor(text), 100)
	if got := numericValue(t, result); got != 100 {
		t.Errorf("oil mix = %.0f%%, want capped at 100", got)
	}
}
