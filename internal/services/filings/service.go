// Package filings provides storage-backed access to regulatory filings and
// their plain-text projection for analysis.
package filings

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/interfaces"
	"github.com/ternarybob/strata/internal/models"
)

// Service provides filing retrieval and ingestion.
type Service struct {
	storage    interfaces.FilingStorage
	parser     *Parser
	filingType string
	logger     arbor.ILogger
}

// NewService creates a new filings service. filingType is the primary filing
// type served to the analysis engine (e.g. "10-K").
func NewService(storage interfaces.FilingStorage, filingType string, logger arbor.ILogger) *Service {
	if filingType == "" {
		filingType = "10-K"
	}
	return &Service{
		storage:    storage,
		parser:     NewParser(logger),
		filingType: filingType,
		logger:     logger,
	}
}

// GetDocuments returns the stored filings for a ticker, most recent first.
// An empty result is the "no documents" condition, not an error.
func (s *Service) GetDocuments(ctx context.Context, ticker string) ([]*models.Filing, error) {
	filings, err := s.storage.ListFilings(ticker, s.filingType)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings for %s: %w", ticker, err)
	}

	s.logger.Debug().
		Str("ticker", ticker).
		Str("type", s.filingType).
		Int("count", len(filings)).
		Msg("Listed filings")

	return filings, nil
}

// Parse produces the read-only plain-text projection of a filing.
func (s *Service) Parse(filing *models.Filing) (*models.ParsedDocument, error) {
	return s.parser.Parse(filing)
}

// Ingest normalizes raw filing HTML and stores it for later analysis.
// Returns the stored filing.
func (s *Service) Ingest(ctx context.Context, ticker, filingType, title, sourceURL, html string) (*models.Filing, error) {
	text, markdown, err := s.parser.NormalizeHTML(html)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize filing HTML: %w", err)
	}

	now := time.Now()
	filing := &models.Filing{
		ID:              common.NewDocumentID(),
		Ticker:          ticker,
		Type:            filingType,
		Title:           title,
		ContentText:     text,
		ContentMarkdown: markdown,
		SourceURL:       sourceURL,
		LastSynced:      &now,
	}

	if err := s.storage.SaveFiling(filing); err != nil {
		return nil, fmt.Errorf("failed to store filing: %w", err)
	}

	s.logger.Info().
		Str("ticker", ticker).
		Str("type", filingType).
		Str("doc_id", filing.ID).
		Int("text_size", len(text)).
		Msg("Filing ingested")

	return filing, nil
}

// Ensure Service implements FilingProvider
var _ interfaces.FilingProvider = (*Service)(nil)
