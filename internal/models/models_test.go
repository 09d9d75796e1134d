package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsIncome(t *testing.T) {
	cases := []struct {
		amount   string
		expected bool
	}{
		{"2500.00", true},
		{"-52.30", false},
		{"0", false}, // zero routes to expense by convention
	}
	for _, tc := range cases {
		tx := Transaction{Amount: decimal.RequireFromString(tc.amount)}
		assert.Equal(t, tc.expected, tx.IsIncome(), "amount %s", tc.amount)
	}
}

func TestSortTransactions(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2023, 8, d, 0, 0, 0, 0, time.UTC) }
	txs := []Transaction{
		{Date: day(3), Description: "c"},
		{Date: day(1), Description: "a"},
		{Date: day(2), Description: "b1"},
		{Date: day(2), Description: "b2"},
	}

	SortTransactions(txs)

	got := make([]string, len(txs))
	for i, tx := range txs {
		got[i] = tx.Description
	}
	// stable: b1 stays before b2
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, got)
}

func TestResolveHeaders(t *testing.T) {
	headers := ResolveHeaders(map[string]string{HeaderDate: "Txn Date"})
	assert.Equal(t, "Txn Date", headers[HeaderDate])
	assert.Equal(t, "Description", headers[HeaderDescription])
	assert.Equal(t, "Amount", headers[HeaderAmount])
}
