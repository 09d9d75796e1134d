package models

// Rule is one canonical classification rule. Pattern is a glob and both
// account fields are fully resolved paths by the time a Rule enters a
// RuleDocument.
type Rule struct {
	Pattern       string
	DebitAccount  string
	CreditAccount string
	// Description, when set, replaces the transaction description in the
	// ledger entry header.
	Description string
	// Extra holds fields the normalizer did not recognize. The validator
	// rejects rules that still carry any.
	Extra map[string]string
}

// RuleDocument is the canonical, validated rule set for one run. It is built
// once and read-only afterwards.
type RuleDocument struct {
	PresetName    string
	UserShortcuts map[string]string
	// Income and Expense are ordered; list position encodes match priority.
	Income  []Rule
	Expense []Rule
	Input   InputOptions
	Output  OutputOptions
	// ExtraKeys holds unrecognized top-level keys for the validator.
	ExtraKeys []string
}

// InputOptions carries per-document input reader settings.
type InputOptions struct {
	CSV CSVOptions `yaml:"csv"`
	XLS XLSOptions `yaml:"xls"`
}

// CSVOptions overrides the default statement column headers.
type CSVOptions struct {
	Header map[string]string `yaml:"header"`
}

// XLSOptions overrides spreadsheet headers and selects the first
// data-bearing row (1-based).
type XLSOptions struct {
	Header map[string]string `yaml:"header"`
	Sheet  struct {
		FirstRow int `yaml:"first_row"`
	} `yaml:"sheet"`
}

// OutputOptions carries ledger rendering settings from the rule document.
type OutputOptions struct {
	Amount struct {
		Prefix string `yaml:"prefix"`
	} `yaml:"amount"`
}

// Header keys understood by the input readers, with their default column
// names in bank statement exports.
const (
	HeaderDate        = "date"
	HeaderDescription = "description"
	HeaderAmount      = "amount"
	HeaderDeposit     = "deposit"
	HeaderWithdrawal  = "withdrawal"
)

// DefaultHeaders returns the default column name for each header key.
func DefaultHeaders() map[string]string {
	return map[string]string{
		HeaderDate:        "Date",
		HeaderDescription: "Description",
		HeaderAmount:      "Amount",
		HeaderDeposit:     "Deposit",
		HeaderWithdrawal:  "Withdrawal",
	}
}

// ResolveHeaders merges per-document overrides over the defaults.
func ResolveHeaders(overrides map[string]string) map[string]string {
	headers := DefaultHeaders()
	for k, v := range overrides {
		headers[k] = v
	}
	return headers
}
