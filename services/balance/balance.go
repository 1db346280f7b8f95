package balance

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// BalanceRepo defines the ledger storage interface
type BalanceRepo interface {
	ListEntries(ctx context.Context) ([]models.BalanceEntry, error)
}

// BalanceUC defines the balance-sheet business logic operations
type BalanceUC interface {
	Entries(ctx context.Context) ([]models.BalanceEntry, error)
	Balance(ctx context.Context) (int64, error)
}
