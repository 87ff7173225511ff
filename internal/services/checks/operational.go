package checks

import (
	"fmt"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// CheckOwnershipPipelinesAndWater looks for owned midstream and water
// handling infrastructure in the filing text.
func CheckOwnershipPipelinesAndWater(ex *extract.Extractor) models.CheckResult {
	pipelineBundle := ex.Metric("pipelines")
	waterBundle := ex.Metric("water_infrastructure")

	status := models.StatusNA
	interpretation := "Ownership: "
	if pipelineBundle != nil {
		status = models.StatusOK
		interpretation += "Pipelines/Midstream found. "
	}
	if waterBundle != nil {
		status = models.StatusOK
		interpretation += "Water Infra found."
	}
	if pipelineBundle == nil && waterBundle == nil {
		interpretation = "No specific midstream/water assets mentions found."
	}

	var evidence []*models.EvidenceBundle
	if pipelineBundle != nil {
		evidence = append(evidence, pipelineBundle)
	}
	if waterBundle != nil {
		evidence = append(evidence, waterBundle)
	}

	return models.CheckResult{
		CheckName:      "check_ownership_pipelines_and_water",
		Value:          "See Notes",
		Status:         status,
		Interpretation: interpretation,
		Evidence:       evidence,
	}
}

// CheckProductionEfficiency scores actual production against disclosed
// capacity. Rule: must be > 85%. A ratio over 120% means the two figures are
// on different bases and the check is NA.
func CheckProductionEfficiency(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	bundle := ex.Metric("production_capacity")

	if bundle != nil && productionBOE != 0 {
		capacity := *bundle.ValueParsed
		if capacity > 0 {
			efficiency := productionBOE / capacity

			if efficiency > 1.2 {
				return models.CheckResult{
					CheckName:      "check_production_efficiency",
					Value:          efficiency,
					Status:         models.StatusNA,
					Interpretation: fmt.Sprintf("Calculated efficiency %.1f%% seems disparate. Check units.", efficiency*100),
					Evidence:       []*models.EvidenceBundle{bundle},
				}
			}

			status := models.StatusRED
			if efficiency > 0.85 {
				status = models.StatusOK
			}

			return models.CheckResult{
				CheckName:      "check_production_efficiency",
				Value:          efficiency,
				Status:         status,
				Interpretation: fmt.Sprintf("Efficiency: %.1f%%", efficiency*100),
				Formula:        "Actual / Capacity",
				Evidence:       []*models.EvidenceBundle{bundle},
			}
		}
	}

	return models.NAResult("check_production_efficiency", "Max capacity not disclosed.")
}

// ComputeRecycleRatio scores netback per BOE against finding and development
// cost per BOE. Rule: must be > 2. RED at or below 2.
func ComputeRecycleRatio(ex *extract.Extractor) models.CheckResult {
	netbackBundle := ex.Metric("netback")
	fdCostBundle := ex.Metric("fd_cost")

	var evidence []*models.EvidenceBundle

	if netbackBundle != nil && fdCostBundle != nil {
		evidence = append(evidence, netbackBundle, fdCostBundle)
		netback := *netbackBundle.ValueParsed
		fdCost := *fdCostBundle.ValueParsed

		if fdCost > 0 {
			ratio := netback / fdCost
			status := models.StatusRED
			if ratio > 2 {
				status = models.StatusOK
			}

			return models.CheckResult{
				CheckName:      "compute_recycle_ratio",
				Value:          ratio,
				Status:         status,
				Interpretation: fmt.Sprintf("Recycle Ratio: %.2fx", ratio),
				Formula:        "Netback / F&D Cost",
				Evidence:       evidence,
			}
		}
	}

	return models.NAResult("compute_recycle_ratio", "Missing Netback or F&D Cost.", evidence...)
}
