package rules

import (
	"fmt"

	"dl/bank2ledger/internal/models"
)

// Canonical per-rule field names. The legacy surface syntax already uses
// these; the aliased syntax maps onto them.
const (
	fieldPattern     = "transaction_type"
	fieldDebit       = "debit_account"
	fieldCredit      = "credit_account"
	fieldDescription = "description"

	aliasMatch = "match"
	aliasTo    = "to"
	aliasFrom  = "from"
)

// Normalize rewrites a raw document into the canonical RuleDocument:
// aliased fields are renamed, match phrases become glob patterns and account
// references are resolved through the combined shortcut tables. Rule order
// is preserved; it encodes match priority.
//
// Syntax detection is per rule: a rule carrying an aliased key has that key
// renamed, a rule already in canonical form passes through. Documents mixing
// the two styles therefore normalize cleanly.
func Normalize(raw *rawDocument, presetTable map[string]string) (*models.RuleDocument, error) {
	userTable := raw.UserShortcuts
	if userTable == nil {
		userTable = map[string]string{}
	}

	income, err := normalizeList(raw.Rules.Income, userTable, presetTable)
	if err != nil {
		return nil, err
	}
	expense, err := normalizeList(raw.Rules.Expense, userTable, presetTable)
	if err != nil {
		return nil, err
	}

	return &models.RuleDocument{
		PresetName:    raw.PresetName,
		UserShortcuts: userTable,
		Income:        income,
		Expense:       expense,
		Input:         raw.Input,
		Output:        raw.Output,
		ExtraKeys:     raw.extraKeys,
	}, nil
}

func normalizeList(rawRules []map[string]interface{}, userTable, presetTable map[string]string) ([]models.Rule, error) {
	rules := make([]models.Rule, 0, len(rawRules))
	for _, rawRule := range rawRules {
		rule, err := normalizeRule(rawRule, userTable, presetTable)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func normalizeRule(rawRule map[string]interface{}, userTable, presetTable map[string]string) (models.Rule, error) {
	fields := make(map[string]string, len(rawRule))
	for key, value := range rawRule {
		fields[key] = stringify(value)
	}

	// Alias renames. The aliased key wins over a canonical one if a rule
	// carries both.
	for alias, canonical := range map[string]string{
		aliasMatch: fieldPattern,
		aliasTo:    fieldDebit,
		aliasFrom:  fieldCredit,
	} {
		if value, ok := fields[alias]; ok {
			fields[canonical] = value
			delete(fields, alias)
		}
	}

	var rule models.Rule
	rule.Pattern = TranslatePattern(fields[fieldPattern])
	rule.Description = fields[fieldDescription]
	delete(fields, fieldPattern)
	delete(fields, fieldDescription)

	for field, target := range map[string]*string{
		fieldDebit:  &rule.DebitAccount,
		fieldCredit: &rule.CreditAccount,
	} {
		reference, ok := fields[field]
		delete(fields, field)
		if !ok || reference == "" {
			continue // validator reports missing accounts
		}
		resolved, err := ResolveAccount(reference, userTable, presetTable)
		if err != nil {
			return models.Rule{}, err
		}
		*target = resolved
	}

	if len(fields) > 0 {
		rule.Extra = fields
	}
	return rule, nil
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
