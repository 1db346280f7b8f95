package models

import (
	"time"
)

// BalanceEntryType distinguishes ledger credits from debits
type BalanceEntryType string

const (
	BalanceEntryCredit BalanceEntryType = "credit"
	BalanceEntryDebit  BalanceEntryType = "debit"
)

// BalanceEntry is a single row of the vendor's balance sheet.
// Amount is signed: credits positive, debits negative.
type BalanceEntry struct {
	ID          string           `json:"id" db:"id"`
	Date        time.Time        `json:"date" db:"entry_date"`
	Description string           `json:"description" db:"description"`
	Amount      int64            `json:"amount" db:"amount"`
	EntryType   BalanceEntryType `json:"type" db:"entry_type"`
}
