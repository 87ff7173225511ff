package interfaces

import (
	"context"

	"github.com/ternarybob/strata/internal/models"
)

// FilingProvider supplies stored filings and their plain-text projection.
type FilingProvider interface {
	// GetDocuments returns the available filings for a ticker, most recent
	// first. An empty result is the "no documents" condition, not an error.
	GetDocuments(ctx context.Context, ticker string) ([]*models.Filing, error)
	// Parse produces the read-only plain-text projection of a filing.
	Parse(filing *models.Filing) (*models.ParsedDocument, error)
}
