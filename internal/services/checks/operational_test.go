package checks

import (
	"math"
	"strings"
	"testing"

	"github.com/ternarybob/strata/internal/models"
)

func TestCheckOwnershipPipelinesAndWater(t *testing.T) {
	text := "We own 400 miles of pipelines and operate water disposal wells handling 50 thousand barrels per day."
	result := CheckOwnershipPipelinesAndWater(extractorFor(text))

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK", result.Status)
	}
	if !strings.Contains(result.Interpretation, "Pipelines/Midstream found") {
		t.Errorf("interpretation = %s", result.Interpretation)
	}
	if len(result.Evidence) != 2 {
		t.Errorf("evidence count = %d, want 2", len(result.Evidence))
	}

	none := CheckOwnershipPipelinesAndWater(extractorFor("We lease all transport capacity from third parties."))
	if none.Status != models.StatusNA {
		t.Errorf("status = %s, want NA", none.Status)
	}
	if none.Interpretation != "No specific midstream/water assets mentions found." {
		t.Errorf("interpretation = %s", none.Interpretation)
	}
}

func TestCheckProductionEfficiency(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		production float64
		wantStatus models.Status
	}{
		{
			name:       "efficient",
			text:       "Production capacity is 100 MBOE per day.",
			production: 90,
			wantStatus: models.StatusOK,
		},
		{
			name:       "below 85 percent",
			text:       "Production capacity is 100 MBOE per day.",
			production: 80,
			wantStatus: models.StatusRED,
		},
		{
			name: "unit mismatch over 120 percent",
			text: "Production capacity is 100 MBOE per day.",
			// Annual production against daily capacity: nonsense ratio
			production: 150,
			wantStatus: models.StatusNA,
		},
		{
			name:       "capacity not disclosed",
			text:       "We produce from 300 wells.",
			production: 90,
			wantStatus: models.StatusNA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckProductionEfficiency(extractorFor(tt.text), tt.production)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestComputeRecycleRatio(t *testing.T) {
	text := "Operating netback was 30 per BOE. Finding and development costs were 12 per BOE."
	result := ComputeRecycleRatio(extractorFor(text))

	if result.Status != models.StatusOK {
		t.Errorf("status = %s, want OK at 2.5x", result.Status)
	}
	if got := numericValue(t, result); math.Abs(got-2.5) > 0.001 {
		t.Errorf("ratio = %.2f, want 2.5", got)
	}

	// Exactly 2x does not clear the > 2 hurdle
	text = "Operating netback was 24 per BOE. Finding and development costs were 12 per BOE."
	result = ComputeRecycleRatio(extractorFor(text))
	if result.Status != models.StatusRED {
		t.Errorf("status = %s, want RED at 2.0x", result.Status)
	}

	result = ComputeRecycleRatio(extractorFor("Netback was 30 per BOE."))
	if result.Status != models.StatusNA {
		t.Errorf("status = %s, want NA without F&D cost", result.Status)
	}
	if len(result.Evidence) != 0 {
		t.Errorf("evidence count = %d, want 0", len(result.Evidence))
	}
}
