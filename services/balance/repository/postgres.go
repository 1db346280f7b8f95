package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/services/balance"
)

// PostgresBalanceRepo implements the BalanceRepo interface over a ledger table
type PostgresBalanceRepo struct {
	db *sqlx.DB
}

// NewBalanceRepository creates a new database-backed ledger repository
func NewBalanceRepository(db *sqlx.DB) balance.BalanceRepo {
	return &PostgresBalanceRepo{
		db: db,
	}
}

// ListEntries returns all ledger entries in chronological order
func (r *PostgresBalanceRepo) ListEntries(ctx context.Context) ([]models.BalanceEntry, error) {
	var entries []models.BalanceEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, entry_date, description, amount, entry_type
		FROM balance_entries
		ORDER BY entry_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance entries: %w", err)
	}

	return entries, nil
}
