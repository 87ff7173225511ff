// Package market provides EODHD-backed market data behind a read-through
// cache. Provider failures degrade to stale or empty data so the analysis
// core never sees a fetch error.
package market

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/eodhd"
	"github.com/ternarybob/strata/internal/interfaces"
	"github.com/ternarybob/strata/internal/models"
)

// DefaultCacheTTL is how long a cached market payload stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// apiClient is the subset of the EODHD client the service consumes.
type apiClient interface {
	GetFundamentals(ctx context.Context, symbol string) (*eodhd.FundamentalsResponse, error)
	GetDividends(ctx context.Context, symbol string, opts ...eodhd.QueryOption) (eodhd.DividendsResponse, error)
	GetRealTimeQuote(ctx context.Context, symbol string) (*eodhd.Quote, error)
}

// cacheEnvelope wraps a cached payload with its fetch time so staleness is
// decided at read time rather than baked into the store.
type cacheEnvelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Service implements MarketDataService over the EODHD API with a
// read-through key/value cache.
type Service struct {
	client apiClient
	cache  interfaces.KeyValueStorage
	ttl    time.Duration
	logger arbor.ILogger
}

// NewService creates a market data service. A non-positive ttl falls back to
// DefaultCacheTTL.
func NewService(client apiClient, cache interfaces.KeyValueStorage, ttl time.Duration, logger arbor.ILogger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetLiveData returns point-in-time market fields for a ticker. A provider
// failure serves the stale cache when present, otherwise empty data.
func (s *Service) GetLiveData(ctx context.Context, ticker string) (*models.LiveData, error) {
	symbol := common.ParseTicker(ticker).EODHDSymbol()
	key := "market:live:" + symbol

	envelope, cached := s.readCache(ctx, key)
	if cached && s.fresh(envelope) {
		var live models.LiveData
		if err := json.Unmarshal(envelope.Payload, &live); err == nil {
			return &live, nil
		}
	}

	fundamentals, err := s.client.GetFundamentals(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Fundamentals fetch failed")
		if cached {
			var live models.LiveData
			if uerr := json.Unmarshal(envelope.Payload, &live); uerr == nil {
				s.logger.Warn().Str("symbol", symbol).Msg("Serving stale live data from cache")
				return &live, nil
			}
		}
		return &models.LiveData{}, nil
	}

	// The delayed quote is a nice-to-have on top of fundamentals; skip the
	// price rather than fail the whole payload.
	quote, err := s.client.GetRealTimeQuote(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
		quote = nil
	}

	live := liveDataFrom(fundamentals, quote)
	s.writeCache(ctx, key, live)
	return live, nil
}

// GetFinancialStatements returns the three statement tables with columns
// ordered most recent first. Missing line-item columns are NaN, which is why
// the cache stores the raw provider payload rather than the mapped tables.
func (s *Service) GetFinancialStatements(ctx context.Context, ticker string) (*models.Statements, error) {
	symbol := common.ParseTicker(ticker).EODHDSymbol()
	key := "market:statements:" + symbol

	envelope, cached := s.readCache(ctx, key)
	if cached && s.fresh(envelope) {
		var financials eodhd.Financials
		if err := json.Unmarshal(envelope.Payload, &financials); err == nil {
			return statementsFrom(&financials), nil
		}
	}

	fundamentals, err := s.client.GetFundamentals(ctx, symbol)
	if err != nil || fundamentals.Financials == nil {
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Statements fetch failed")
		}
		if cached {
			var financials eodhd.Financials
			if uerr := json.Unmarshal(envelope.Payload, &financials); uerr == nil {
				s.logger.Warn().Str("symbol", symbol).Msg("Serving stale statements from cache")
				return statementsFrom(&financials), nil
			}
		}
		return &models.Statements{}, nil
	}

	s.writeCache(ctx, key, fundamentals.Financials)
	return statementsFrom(fundamentals.Financials), nil
}

// GetDividendHistory returns historical dividend payments, oldest first.
func (s *Service) GetDividendHistory(ctx context.Context, ticker string) ([]models.DividendPayment, error) {
	symbol := common.ParseTicker(ticker).EODHDSymbol()
	key := "market:dividends:" + symbol

	envelope, cached := s.readCache(ctx, key)
	if cached && s.fresh(envelope) {
		var payments []models.DividendPayment
		if err := json.Unmarshal(envelope.Payload, &payments); err == nil {
			return payments, nil
		}
	}

	dividends, err := s.client.GetDividends(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Dividend history fetch failed")
		if cached {
			var payments []models.DividendPayment
			if uerr := json.Unmarshal(envelope.Payload, &payments); uerr == nil {
				s.logger.Warn().Str("symbol", symbol).Msg("Serving stale dividend history from cache")
				return payments, nil
			}
		}
		return nil, nil
	}

	payments := make([]models.DividendPayment, 0, len(dividends))
	for _, d := range dividends {
		if d.Date.IsZero() {
			continue
		}
		payments = append(payments, models.DividendPayment{Date: d.Date, Value: d.Value})
	}

	s.writeCache(ctx, key, payments)
	return payments, nil
}

func (s *Service) fresh(envelope *cacheEnvelope) bool {
	return envelope != nil && time.Since(envelope.FetchedAt) < s.ttl
}

func (s *Service) readCache(ctx context.Context, key string) (*cacheEnvelope, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != interfaces.ErrKeyNotFound {
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return nil, false
	}
	var envelope cacheEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Corrupt cache entry ignored")
		return nil, false
	}
	return &envelope, true
}

func (s *Service) writeCache(ctx context.Context, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache payload marshal failed")
		return
	}
	envelope, err := json.Marshal(cacheEnvelope{FetchedAt: time.Now(), Payload: data})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(envelope)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Ensure Service implements MarketDataService
var _ interfaces.MarketDataService = (*Service)(nil)
