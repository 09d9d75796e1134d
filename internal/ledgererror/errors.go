// Package ledgererror defines the typed errors shared by the rule engine and
// the conversion pipeline.
package ledgererror

import (
	"fmt"
	"strings"
)

// SchemaValidationError reports every structural problem found in a rule
// document. All violations are collected so the user sees them in one pass.
type SchemaValidationError struct {
	FilePath   string
	Violations []string
}

func (e *SchemaValidationError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("rule document %s is invalid:\n  - %s",
			e.FilePath, strings.Join(e.Violations, "\n  - "))
	}
	return fmt.Sprintf("rule document is invalid:\n  - %s",
		strings.Join(e.Violations, "\n  - "))
}

// UnresolvedAccountError indicates an account reference that is neither a
// known shortcut nor a literal account path.
type UnresolvedAccountError struct {
	Reference string
}

func (e *UnresolvedAccountError) Error() string {
	return fmt.Sprintf("account reference '%s' is not a known shortcut or a full account path", e.Reference)
}

// MalformedPatternError indicates a rule pattern whose glob syntax cannot be
// compiled.
type MalformedPatternError struct {
	Pattern string
	Err     error
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern '%s': %v", e.Pattern, e.Err)
}

func (e *MalformedPatternError) Unwrap() error {
	return e.Err
}
