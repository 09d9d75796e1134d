package classifier

import (
	"regexp"

	"dl/bank2ledger/internal/models"
)

// MatchResult is the outcome of classifying one transaction: either a rule
// matched, or no rule in the selected category's list did. No-match is a
// first-class outcome, not an error.
type MatchResult struct {
	Rule    *models.Rule
	Matched bool
}

type compiledRule struct {
	rule *models.Rule
	re   *regexp.Regexp
}

// Classifier matches transactions against a validated rule document. It is
// built once per run and is safe to reuse across transactions; Classify has
// no side effects.
type Classifier struct {
	income  []compiledRule
	expense []compiledRule
}

// New compiles the patterns of a rule document. The document is expected to
// have passed validation; a pattern failing to compile here still yields a
// MalformedPatternError rather than a panic.
func New(doc *models.RuleDocument) (*Classifier, error) {
	income, err := compileList(doc.Income)
	if err != nil {
		return nil, err
	}
	expense, err := compileList(doc.Expense)
	if err != nil {
		return nil, err
	}
	return &Classifier{income: income, expense: expense}, nil
}

func compileList(rules []models.Rule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i := range rules {
		re, err := CompilePattern(rules[i].Pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRule{rule: &rules[i], re: re})
	}
	return compiled, nil
}

// Classify selects the category list by the sign of the transaction amount
// (positive is income, zero and negative are expense) and returns the first
// rule in stored order whose pattern matches the description. List order is
// the tie-break: authors place specific patterns before catch-alls.
func (c *Classifier) Classify(tx models.Transaction) MatchResult {
	list := c.expense
	if tx.IsIncome() {
		list = c.income
	}
	for _, cr := range list {
		if cr.re.MatchString(tx.Description) {
			return MatchResult{Rule: cr.rule, Matched: true}
		}
	}
	return MatchResult{}
}
