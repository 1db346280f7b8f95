package usecase

import (
	"context"
	"fmt"

	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/services/balance"
)

// BalanceUC implements the balance-sheet operations over a ledger repository
type BalanceUC struct {
	repo balance.BalanceRepo
}

// NewBalanceUC creates the balance usecase
func NewBalanceUC(repo balance.BalanceRepo) *BalanceUC {
	return &BalanceUC{repo: repo}
}

// Entries returns the ledger entries in chronological order
func (u *BalanceUC) Entries(ctx context.Context) ([]models.BalanceEntry, error) {
	entries, err := u.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	return entries, nil
}

// Balance returns the running sum of all ledger entries
func (u *BalanceUC) Balance(ctx context.Context) (int64, error) {
	entries, err := u.Entries(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total, nil
}
