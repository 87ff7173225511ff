package badger

import (
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/interfaces"
	"github.com/ternarybob/strata/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// FilingStorage implements the FilingStorage interface for Badger
type FilingStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewFilingStorage creates a new FilingStorage instance
func NewFilingStorage(db *BadgerDB, logger arbor.ILogger) interfaces.FilingStorage {
	return &FilingStorage{
		db:     db,
		logger: logger,
	}
}

func (s *FilingStorage) SaveFiling(filing *models.Filing) error {
	if filing.ID == "" {
		return fmt.Errorf("filing ID is required")
	}

	now := time.Now()
	if filing.CreatedAt.IsZero() {
		filing.CreatedAt = now
	}
	filing.UpdatedAt = now

	if err := s.db.Store().Upsert(filing.ID, filing); err != nil {
		return fmt.Errorf("failed to save filing: %w", err)
	}
	return nil
}

func (s *FilingStorage) GetFiling(id string) (*models.Filing, error) {
	var filing models.Filing
	if err := s.db.Store().Get(id, &filing); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("filing not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get filing: %w", err)
	}
	return &filing, nil
}

func (s *FilingStorage) ListFilings(ticker, filingType string) ([]*models.Filing, error) {
	query := badgerhold.Where("Ticker").Eq(ticker)
	if filingType != "" {
		query = query.And("Type").Eq(filingType)
	}

	var filings []models.Filing
	if err := s.db.Store().Find(&filings, query); err != nil {
		return nil, fmt.Errorf("failed to list filings: %w", err)
	}

	result := make([]*models.Filing, len(filings))
	for i := range filings {
		result[i] = &filings[i]
	}

	// Most recently synced first; filings without a sync timestamp sort last
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].LastSynced == nil {
			return false
		}
		if result[j].LastSynced == nil {
			return true
		}
		return result[i].LastSynced.After(*result[j].LastSynced)
	})

	return result, nil
}

func (s *FilingStorage) DeleteFiling(id string) error {
	if err := s.db.Store().Delete(id, &models.Filing{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete filing: %w", err)
	}
	return nil
}
