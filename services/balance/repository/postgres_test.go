package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

func setupBalanceRepoTest(t *testing.T) (*PostgresBalanceRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresBalanceRepo{
		db: sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestListEntries(t *testing.T) {
	entryDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, entries []models.BalanceEntry, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "entry_date", "description", "amount", "entry_type"}).
					AddRow("1", entryDate, "Initial Credit", int64(10000), "credit").
					AddRow("2", entryDate.AddDate(0, 0, 4), "Debit for Supplies", int64(-2500), "debit")
				mock.ExpectQuery("^\\s*SELECT id, entry_date, description, amount, entry_type").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, entries []models.BalanceEntry, err error) {
				assert.NoError(t, err)
				require.Len(t, entries, 2)
				assert.Equal(t, "Initial Credit", entries[0].Description)
				assert.Equal(t, int64(10000), entries[0].Amount)
				assert.Equal(t, models.BalanceEntryDebit, entries[1].EntryType)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*SELECT id, entry_date, description, amount, entry_type").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, entries []models.BalanceEntry, err error) {
				assert.Error(t, err)
				assert.Nil(t, entries)
				assert.Contains(t, err.Error(), "failed to list balance entries")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBalanceRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			entries, err := repo.ListEntries(context.Background())
			tc.assertFunc(t, entries, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
