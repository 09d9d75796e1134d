// Package models defines the core data structures for the converter.
package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized statement row. Amount is signed: positive
// amounts are income, negative amounts are expenses.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// IsIncome reports whether the transaction routes to the income rules.
// Zero amounts route to the expense rules.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// SortTransactions orders transactions ascending by date. Rows sharing a date
// keep their input order.
func SortTransactions(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
}
