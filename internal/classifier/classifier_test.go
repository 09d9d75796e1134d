package classifier

import (
	"testing"
	"time"

	"dl/bank2ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(description string, amount string) models.Transaction {
	return models.Transaction{
		Date:        time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func testDocument() *models.RuleDocument {
	return &models.RuleDocument{
		Income: []models.Rule{
			{Pattern: "*salary*", DebitAccount: "Assets:Bank:Checking", CreditAccount: "Income:Salary"},
			{Pattern: "*", DebitAccount: "Assets:Bank:Checking", CreditAccount: "Income:Other"},
		},
		Expense: []models.Rule{
			{Pattern: "*grocery*", DebitAccount: "Expenses:Food", CreditAccount: "Assets:Bank:Checking"},
			{Pattern: "*", DebitAccount: "Expenses:Misc", CreditAccount: "Assets:Bank:Checking"},
		},
	}
}

func TestClassifyRoutesBySign(t *testing.T) {
	cls, err := New(testDocument())
	require.NoError(t, err)

	income := cls.Classify(tx("SALARY PAYMENT", "2500.00"))
	require.True(t, income.Matched)
	assert.Equal(t, "Income:Salary", income.Rule.CreditAccount)

	expense := cls.Classify(tx("GROCERY STORE", "-52.30"))
	require.True(t, expense.Matched)
	assert.Equal(t, "Expenses:Food", expense.Rule.DebitAccount)
}

func TestClassifyZeroAmountRoutesToExpense(t *testing.T) {
	cls, err := New(testDocument())
	require.NoError(t, err)

	result := cls.Classify(tx("SALARY PAYMENT", "0"))
	require.True(t, result.Matched)
	// the income list has a salary rule; landing on the expense catch-all
	// proves zero routed to expense
	assert.Equal(t, "Expenses:Misc", result.Rule.DebitAccount)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	cls, err := New(testDocument())
	require.NoError(t, err)

	upper := cls.Classify(tx("SALARY PAYMENT", "100"))
	lower := cls.Classify(tx("salary payment", "100"))
	require.True(t, upper.Matched)
	require.True(t, lower.Matched)
	assert.Equal(t, upper.Rule, lower.Rule)
}

func TestClassifyOrderIsTheTieBreak(t *testing.T) {
	specific := models.Rule{Pattern: "*salary*", DebitAccount: "A", CreditAccount: "B"}
	catchAll := models.Rule{Pattern: "*", DebitAccount: "C", CreditAccount: "D"}

	cls, err := New(&models.RuleDocument{Income: []models.Rule{specific, catchAll}})
	require.NoError(t, err)
	result := cls.Classify(tx("SALARY PAYMENT", "100"))
	require.True(t, result.Matched)
	assert.Equal(t, "A", result.Rule.DebitAccount)

	reversed, err := New(&models.RuleDocument{Income: []models.Rule{catchAll, specific}})
	require.NoError(t, err)
	result = reversed.Classify(tx("SALARY PAYMENT", "100"))
	require.True(t, result.Matched)
	assert.Equal(t, "C", result.Rule.DebitAccount)
}

func TestClassifyNoMatchIsNotAnError(t *testing.T) {
	doc := &models.RuleDocument{
		Income:  []models.Rule{{Pattern: "*salary*", DebitAccount: "A", CreditAccount: "B"}},
		Expense: []models.Rule{{Pattern: "*grocery*", DebitAccount: "C", CreditAccount: "D"}},
	}
	cls, err := New(doc)
	require.NoError(t, err)

	result := cls.Classify(tx("UNKNOWN MERCHANT", "-10"))
	assert.False(t, result.Matched)
	assert.Nil(t, result.Rule)
}

func TestClassifyDeterministic(t *testing.T) {
	cls, err := New(testDocument())
	require.NoError(t, err)

	transaction := tx("salary payment", "2500.00")
	first := cls.Classify(transaction)
	second := cls.Classify(transaction)
	assert.Equal(t, first, second)
}

func TestNewRejectsMalformedPattern(t *testing.T) {
	doc := &models.RuleDocument{
		Income: []models.Rule{{Pattern: "[bad", DebitAccount: "A", CreditAccount: "B"}},
	}
	_, err := New(doc)
	require.Error(t, err)
}
