// Package analysis orchestrates a full scorecard run: document and market
// data retrieval, the industry gate, the fixed check sequence and the
// evidence ledger.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/interfaces"
	"github.com/ternarybob/strata/internal/models"
	"github.com/ternarybob/strata/internal/services/checks"
	"github.com/ternarybob/strata/internal/services/extract"
)

// scoreDenominator is the fixed scorecard denominator reported in the
// summary line.
const scoreDenominator = 18

// industryKeywords gate the analysis to energy filers.
var industryKeywords = []string{"oil", "gas", "energy"}

// Service runs the evidence-backed scorecard for one ticker.
type Service struct {
	market  interfaces.MarketDataService
	filings interfaces.FilingProvider
	logger  arbor.ILogger
}

// NewService creates an analysis service.
func NewService(market interfaces.MarketDataService, filings interfaces.FilingProvider, logger arbor.ILogger) *Service {
	return &Service{
		market:  market,
		filings: filings,
		logger:  logger,
	}
}

// Run executes the full analysis for a ticker and returns the report. Gating
// conditions (no documents, wrong industry) produce an error report; data
// gaps inside checks degrade to NA results instead.
func (s *Service) Run(ctx context.Context, ticker string) *models.Report {
	parsed := common.ParseTicker(ticker)
	name := parsed.String()

	s.logger.Info().Str("ticker", name).Msg("Starting analysis")

	live, err := s.market.GetLiveData(ctx, ticker)
	if err != nil || live == nil {
		// The market service degrades internally; an error here is a
		// programming error, not a provider outage.
		s.logger.Warn().Err(err).Str("ticker", name).Msg("Live data unavailable")
		live = &models.LiveData{}
	}

	// Filings are stored under the bare ticker code, so lookups use the
	// normalized code rather than the raw input.
	documents, err := s.filings.GetDocuments(ctx, parsed.Code)
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", name).Msg("Filing lookup failed")
		return &models.Report{Ticker: name, Error: "No documents found for ticker."}
	}
	if len(documents) == 0 {
		return &models.Report{Ticker: name, Error: "No documents found for ticker."}
	}

	// The most recent filing drives the run
	doc, err := s.filings.Parse(documents[0])
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", name).Msg("Filing parse failed")
		return &models.Report{Ticker: name, Error: "No documents found for ticker."}
	}

	if !validIndustry(doc.FullText) {
		s.logger.Warn().Str("ticker", name).Msg("Industry gate rejected ticker")
		return &models.Report{Ticker: name, Error: "REJECTED_NON_OIL_GAS: Industry check failed."}
	}

	ex := extract.NewExtractor(doc)

	// Production is the shared denominator for every per-BOE check. The 1.0
	// fallback keeps those checks computable when production is missing; the
	// note marks the resulting values as unreliable.
	productionBOE := 1.0
	var productionNote string
	if bundle := ex.Metric("production_boe"); bundle != nil {
		productionBOE = *bundle.ValueParsed
	} else {
		productionNote = "Production (BOE) not found; per-BOE figures use a baseline of 1.0."
	}

	statements, err := s.market.GetFinancialStatements(ctx, ticker)
	if err != nil {
		statements = &models.Statements{}
	}
	dividends, err := s.market.GetDividendHistory(ctx, ticker)
	if err != nil {
		dividends = nil
	}

	results := s.runChecks(ex, live, statements, dividends, productionBOE)

	if productionNote != "" {
		for i := range results {
			if strings.Contains(results[i].Formula, "Production (BOE)") {
				results[i].Notes = append(results[i].Notes, productionNote)
			}
		}
	}

	ledger := models.NewEvidenceLedger()
	for _, result := range results {
		for _, bundle := range result.Evidence {
			ledger.Append(bundle)
		}
	}

	report := &models.Report{
		Ticker:    name,
		Scorecard: results,
		Ledger:    ledger.Entries(),
	}
	report.Summary = fmt.Sprintf("Analysis complete for %s. Score: %d/%d OK. Red Flags: %d.",
		name, report.Score(), scoreDenominator, report.RedFlags())

	s.logger.Info().
		Str("ticker", name).
		Int("score", report.Score()).
		Int("red_flags", report.RedFlags()).
		Int("ledger_entries", ledger.Len()).
		Msg("Analysis complete")

	return report
}

// runChecks invokes every check in the fixed category order: cost structure,
// statement-derived checks, netback, profitability, capital allocation,
// operational, asset quality, valuation.
func (s *Service) runChecks(ex *extract.Extractor, live *models.LiveData, statements *models.Statements, dividends []models.DividendPayment, productionBOE float64) []models.CheckResult {
	results := make([]models.CheckResult, 0, 25)

	// Cost structure
	results = append(results, checks.CheckLOEPerBOE(ex, productionBOE))
	results = append(results, checks.CheckGatheringTransportPerBOE(ex, productionBOE))
	results = append(results, checks.CheckGNAPerBOE(ex, productionBOE))

	// Structured statement checks
	results = append(results, checks.CheckNetDebtEBITDAX(live, statements))
	results = append(results, checks.CheckBuybackRate(live, statements))
	results = append(results, checks.CheckAccountsPayableChange(statements))
	results = append(results, checks.CheckCapitalIntensity(live, statements))
	results = append(results, checks.CheckDebtPayback(statements))

	// Netback waterfall
	results = append(results, checks.CalculateNetbackWaterfall(ex, productionBOE))

	// Profitability; the spread consumes the ROIC and WACC results directly
	results = append(results, checks.CheckOperatingMarginPerBOE(ex, productionBOE))
	roic := checks.ComputeROIC(ex)
	wacc := checks.ComputeWACC(ex, live.MarketCap)
	results = append(results, roic, wacc)
	results = append(results, checks.CheckROICMinusWACCSpread(roic, wacc))

	// Capital allocation
	results = append(results, checks.CheckDividendYield(live))
	results = append(results, checks.CheckDividendPersistence(dividends))
	results = append(results, checks.CheckPayoutRatio(live))
	results = append(results, checks.CheckShareBuybacksTrend(ex))
	results = append(results, checks.CheckDebtLow(ex))
	results = append(results, checks.CheckCapitalRunRate(ex, productionBOE))

	// Operational
	results = append(results, checks.CheckOwnershipPipelinesAndWater(ex))
	results = append(results, checks.CheckProductionEfficiency(ex, productionBOE))
	results = append(results, checks.ComputeRecycleRatio(ex))

	// Asset quality
	results = append(results, checks.CheckAssetQuality(ex, productionBOE))

	// Valuation
	results = append(results, checks.IntrinsicValueSMOG(ex))
	results = append(results, checks.IntrinsicValueNapkin(ex, live))

	return results
}

// validIndustry is the eligibility gate: the filing must read like an
// energy company's.
func validIndustry(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range industryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
