package ledgererror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSchemaValidationError(t *testing.T) {
	err := &SchemaValidationError{
		FilePath:   "rules.yaml",
		Violations: []string{"rules.income must contain at least one rule", `unrecognized key "banana"`},
	}

	msg := err.Error()
	for _, want := range []string{"rules.yaml", "rules.income must contain at least one rule", "banana"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestSchemaValidationErrorWithoutPath(t *testing.T) {
	err := &SchemaValidationError{Violations: []string{"x"}}
	if !strings.Contains(err.Error(), "rule document is invalid") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUnresolvedAccountError(t *testing.T) {
	err := &UnresolvedAccountError{Reference: "mystery"}
	if !strings.Contains(err.Error(), "'mystery'") {
		t.Errorf("error message %q missing reference", err.Error())
	}
}

func TestMalformedPatternErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("unterminated character class at offset 1")
	err := &MalformedPatternError{Pattern: "*[bad", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if !strings.Contains(err.Error(), "*[bad") {
		t.Errorf("error message %q missing pattern", err.Error())
	}
}
