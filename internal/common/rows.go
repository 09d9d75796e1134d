// Package common provides shared functionality across the input parsers.
package common

import (
	"fmt"
	"strings"

	"dl/bank2ledger/internal/dateutils"
	"dl/bank2ledger/internal/models"

	"github.com/shopspring/decimal"
)

// RowToTransaction builds a normalized transaction from a header-keyed row.
// The signed amount comes from a single amount column when the export has
// one, otherwise from the deposit and withdrawal columns; withdrawal columns
// hold positive magnitudes and are negated.
func RowToTransaction(row map[string]string, headers map[string]string) (models.Transaction, error) {
	dateStr := row[headers[models.HeaderDate]]
	date, _, err := dateutils.ParseDate(dateStr)
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := signedAmount(row, headers)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:        date,
		Description: row[headers[models.HeaderDescription]],
		Amount:      amount,
	}, nil
}

func signedAmount(row map[string]string, headers map[string]string) (decimal.Decimal, error) {
	if raw, ok := row[headers[models.HeaderAmount]]; ok && strings.TrimSpace(raw) != "" {
		return ParseAmount(raw)
	}

	total := decimal.Zero
	if raw := row[headers[models.HeaderDeposit]]; strings.TrimSpace(raw) != "" {
		deposit, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(deposit)
	}
	if raw := row[headers[models.HeaderWithdrawal]]; strings.TrimSpace(raw) != "" {
		withdrawal, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Sub(withdrawal)
	}
	return total, nil
}

// ParseAmount parses a statement amount, tolerating thousands separators and
// surrounding whitespace.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing amount '%s': %w", raw, err)
	}
	return amount, nil
}
