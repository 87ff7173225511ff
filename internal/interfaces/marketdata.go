package interfaces

import (
	"context"

	"github.com/ternarybob/strata/internal/models"
)

// MarketDataService provides live market data and financial statements.
//
// Implementations never surface provider errors to the analysis core: a
// failed fetch degrades to empty data so dependent checks resolve to NA.
type MarketDataService interface {
	// GetLiveData returns point-in-time market fields. Fields the provider
	// did not supply are nil.
	GetLiveData(ctx context.Context, ticker string) (*models.LiveData, error)
	// GetFinancialStatements returns the income statement, balance sheet and
	// cash flow tables with time-ordered columns, most recent first.
	GetFinancialStatements(ctx context.Context, ticker string) (*models.Statements, error)
	// GetDividendHistory returns historical dividend payments, oldest first.
	GetDividendHistory(ctx context.Context, ticker string) ([]models.DividendPayment, error)
}
