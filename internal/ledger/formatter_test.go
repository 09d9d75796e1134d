package ledger

import (
	"fmt"
	"testing"
	"time"

	"dl/bank2ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleTx(description, amount string) models.Transaction {
	return models.Transaction{
		Date:        time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestFormatEndToEnd(t *testing.T) {
	rule := &models.Rule{
		Pattern:       "*salary*",
		DebitAccount:  "Assets:DL:Multiplier:DBS",
		CreditAccount: "Income:DL:DBS:Rebate",
	}
	entry := Format(rule, sampleTx("SALARY PAYMENT", "2500.00"), "$")

	expected := fmt.Sprintf("2023/01/15 Salary Payment\n\t%-50s$2500.00\n\tIncome:DL:DBS:Rebate",
		"Assets:DL:Multiplier:DBS")
	assert.Equal(t, expected, entry.String())
}

func TestFormatUsesDescriptionOverride(t *testing.T) {
	rule := &models.Rule{
		DebitAccount:  "Assets:Bank:Checking",
		CreditAccount: "Income:Salary",
		Description:   "Monthly salary",
	}
	entry := Format(rule, sampleTx("ACME CORP PAYROLL #42", "2500.00"), "$")
	assert.Equal(t, "Monthly Salary", entry.Description)
}

func TestFormatAbsoluteAmount(t *testing.T) {
	rule := &models.Rule{DebitAccount: "Expenses:Food", CreditAccount: "Assets:Bank:Checking"}
	entry := Format(rule, sampleTx("GROCERY", "-52.3"), "$")
	assert.Equal(t, "52.30", entry.Amount.StringFixed(2))
	assert.Contains(t, entry.String(), "$52.30")
}

func TestFormatDefaultPrefix(t *testing.T) {
	rule := &models.Rule{DebitAccount: "A:B", CreditAccount: "C:D"}
	entry := Format(rule, sampleTx("X", "1"), "")
	assert.Equal(t, "$", entry.AmountPrefix)
}

func TestFormatCustomPrefix(t *testing.T) {
	rule := &models.Rule{DebitAccount: "A:B", CreditAccount: "C:D"}
	entry := Format(rule, sampleTx("X", "1"), "CHF ")
	assert.Contains(t, entry.String(), "CHF 1.00")
}

func TestCleanDescription(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"SALARY PAYMENT", "Salary Payment"},
		{"POS #42 - COFFEE", "Pos 42 Coffee"},
		{"line one\nline two", "Line One Line Two"},
		{"  spaced   out  ", "Spaced Out"},
	}
	for _, tc := range cases {
		if got := cleanDescription(tc.in); got != tc.expected {
			t.Errorf("cleanDescription(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
