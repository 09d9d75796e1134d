package rules

import (
	"fmt"
	"sort"

	"dl/bank2ledger/internal/classifier"
	"dl/bank2ledger/internal/ledgererror"
	"dl/bank2ledger/internal/models"
)

// Validate checks a canonical RuleDocument against the structural schema:
// both category lists non-empty, every rule with a pattern and two resolved
// accounts, no unrecognized fields. Patterns are compiled here so malformed
// glob syntax surfaces at validation time rather than at first use.
//
// All violations are collected into a single SchemaValidationError.
func Validate(doc *models.RuleDocument) error {
	var violations []string

	if len(doc.Income) == 0 {
		violations = append(violations, "rules.income must contain at least one rule")
	}
	if len(doc.Expense) == 0 {
		violations = append(violations, "rules.expense must contain at least one rule")
	}

	violations = append(violations, validateList("rules.income", doc.Income)...)
	violations = append(violations, validateList("rules.expense", doc.Expense)...)

	for _, key := range doc.ExtraKeys {
		violations = append(violations, fmt.Sprintf("unrecognized key %q", key))
	}

	if len(violations) > 0 {
		return &ledgererror.SchemaValidationError{Violations: violations}
	}
	return nil
}

func validateList(listName string, rules []models.Rule) []string {
	var violations []string
	for i, rule := range rules {
		name := fmt.Sprintf("%s[%d]", listName, i)
		if rule.Pattern == "" {
			violations = append(violations, name+": pattern must not be empty")
		} else if _, err := classifier.CompilePattern(rule.Pattern); err != nil {
			violations = append(violations, fmt.Sprintf("%s: %v", name, err))
		}
		if rule.DebitAccount == "" {
			violations = append(violations, name+": debit account must not be empty")
		}
		if rule.CreditAccount == "" {
			violations = append(violations, name+": credit account must not be empty")
		}
		for _, field := range sortedKeys(rule.Extra) {
			violations = append(violations, fmt.Sprintf("%s: unrecognized field %q", name, field))
		}
	}
	return violations
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
