package checks

import (
	"fmt"
	"strings"

	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/extract"
)

// basinKeywords maps premium basin labels to the phrases that identify them.
// Order matters for the interpretation text.
var basinKeywords = []struct {
	basin    string
	keywords []string
}{
	{"Permian", []string{"permian", "delaware basin", "midland basin"}},
	{"Bakken", []string{"bakken", "williston"}},
	{"Eagle Ford", []string{"eagle ford"}},
	{"Tier 1", []string{"tier 1", "premium inventory", "core acreage"}},
}

// CheckAssetQuality rates the production mix (oil weighting) and acreage
// quality (premium basin presence). Oil-weighted production in a core basin
// is OK; anything else is WATCH, or NA when the mix is unknown.
func CheckAssetQuality(ex *extract.Extractor, productionBOE float64) models.CheckResult {
	oilBundle := ex.Metric("oil_production")

	oilMixPct := 0.0
	if oilBundle != nil && *oilBundle.ValueParsed > 0 && productionBOE > 0 {
		oilMixPct = (*oilBundle.ValueParsed / productionBOE) * 100
		if oilMixPct > 100 {
			oilMixPct = 100
		}
	}

	var mixStr string
	var mixRating models.Status
	switch {
	case oilMixPct > 50:
		mixStr = fmt.Sprintf("Oil Weighted (%.0f%%)", oilMixPct)
		mixRating = models.StatusOK
	case oilMixPct > 30:
		mixStr = fmt.Sprintf("Balanced/Gassy (%.0f%% Oil)", oilMixPct)
		mixRating = models.StatusWATCH
	case oilMixPct > 0:
		mixStr = fmt.Sprintf("Gas Heavy (%.0f%% Oil)", oilMixPct)
		mixRating = models.StatusWATCH
	default:
		mixStr = "Mix Unknown"
		mixRating = models.StatusNA
	}

	textLower := strings.ToLower(ex.Text())
	var foundBasins []string
	for _, entry := range basinKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(textLower, keyword) {
				foundBasins = append(foundBasins, entry.basin)
				break
			}
		}
	}

	isTier1 := false
	for _, basin := range foundBasins {
		if basin == "Tier 1" || basin == "Permian" {
			isTier1 = true
		}
	}
	locationStatus := models.StatusWATCH
	if isTier1 {
		locationStatus = models.StatusOK
	}

	finalStatus := models.StatusWATCH
	if mixRating == models.StatusOK && locationStatus == models.StatusOK {
		finalStatus = models.StatusOK
	}
	if mixRating == models.StatusNA {
		finalStatus = models.StatusNA
	}

	locations := "No Core Basin Identified"
	if len(foundBasins) > 0 {
		locations = strings.Join(foundBasins, ", ")
	}

	var evidence []*models.EvidenceBundle
	if oilBundle != nil {
		evidence = append(evidence, oilBundle)
	}

	return models.CheckResult{
		CheckName:      "Asset Quality (Mix & Location)",
		Value:          oilMixPct,
		Status:         finalStatus,
		Interpretation: fmt.Sprintf("%s. \nLocations: %s.", mixStr, locations),
		Formula:        "Oil % + Basin Check",
		Evidence:       evidence,
	}
}
