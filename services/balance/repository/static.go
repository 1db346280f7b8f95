package repository

import (
	"context"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/services/balance"
)

// StaticBalanceRepo serves a fixed set of ledger entries. Used when no
// ledger database is configured.
type StaticBalanceRepo struct {
	entries []models.BalanceEntry
}

// NewStaticBalanceRepository creates a repository seeded with the sample
// ledger shipped in the app.
func NewStaticBalanceRepository() balance.BalanceRepo {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return &StaticBalanceRepo{
		entries: []models.BalanceEntry{
			{ID: "1", Date: day("2024-06-01"), Description: "Initial Credit", Amount: 10000, EntryType: models.BalanceEntryCredit},
			{ID: "2", Date: day("2024-06-05"), Description: "Debit for Supplies", Amount: -2500, EntryType: models.BalanceEntryDebit},
			{ID: "3", Date: day("2024-06-10"), Description: "Credit from Client", Amount: 5000, EntryType: models.BalanceEntryCredit},
			{ID: "4", Date: day("2024-06-15"), Description: "Debit for Maintenance", Amount: -1500, EntryType: models.BalanceEntryDebit},
		},
	}
}

// ListEntries returns the seeded entries
func (r *StaticBalanceRepo) ListEntries(ctx context.Context) ([]models.BalanceEntry, error) {
	out := make([]models.BalanceEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
