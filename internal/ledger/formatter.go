// Package ledger renders matched transactions as double-entry ledger text.
package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dl/bank2ledger/internal/dateutils"
	"dl/bank2ledger/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountColumnWidth is the column the amount starts at in a debit posting.
const AccountColumnWidth = 50

// DefaultAmountPrefix is used when the rule document sets none.
const DefaultAmountPrefix = "$"

// Entry is one double-entry ledger record: a header line and two indented
// posting lines. Amount is the absolute transaction amount.
type Entry struct {
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	AmountPrefix  string
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
	spaceRuns  = regexp.MustCompile(` {2,}`)
	titleCaser = cases.Title(language.English)
)

// Format renders a matched (rule, transaction) pair into an Entry. The
// rule's description override, when set, replaces the transaction
// description in the header.
func Format(rule *models.Rule, tx models.Transaction, amountPrefix string) Entry {
	description := rule.Description
	if description == "" {
		description = tx.Description
	}
	if amountPrefix == "" {
		amountPrefix = DefaultAmountPrefix
	}
	return Entry{
		Date:          tx.Date,
		Description:   cleanDescription(description),
		DebitAccount:  rule.DebitAccount,
		CreditAccount: rule.CreditAccount,
		Amount:        tx.Amount.Abs(),
		AmountPrefix:  amountPrefix,
	}
}

// String renders the entry as ledger text:
//
//	2023/01/15 Salary Payment
//		Assets:DL:Multiplier:DBS                          $2500.00
//		Income:DL:DBS:Rebate
func (e Entry) String() string {
	return fmt.Sprintf("%s %s\n\t%-*s%s%s\n\t%s",
		dateutils.FormatLedgerDate(e.Date),
		e.Description,
		AccountColumnWidth, e.DebitAccount,
		e.AmountPrefix, e.Amount.StringFixed(2),
		e.CreditAccount)
}

// cleanDescription strips punctuation, collapses whitespace and title-cases
// the result so statement descriptions in all caps render readably.
func cleanDescription(description string) string {
	cleaned := strings.ReplaceAll(description, "\n", " ")
	cleaned = nonAlnum.ReplaceAllString(cleaned, " ")
	cleaned = spaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	return titleCaser.String(cleaned)
}
