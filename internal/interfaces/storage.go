// Package interfaces provides service interfaces for dependency injection.
package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/strata/internal/models"
)

// ErrKeyNotFound is returned when a key does not exist in KV storage.
var ErrKeyNotFound = errors.New("key not found")

// FilingStorage provides persistence for regulatory filings.
type FilingStorage interface {
	// SaveFiling upserts a filing by ID.
	SaveFiling(filing *models.Filing) error
	// GetFiling retrieves a filing by ID.
	GetFiling(id string) (*models.Filing, error)
	// ListFilings returns filings for a ticker, most recently synced first.
	// filingType narrows to one type when non-empty.
	ListFilings(ticker, filingType string) ([]*models.Filing, error)
	// DeleteFiling removes a filing by ID. Deleting a missing filing is not an error.
	DeleteFiling(id string) error
}

// KeyValueStorage provides simple string KV persistence, used as the backing
// store for the market data read-through cache.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
