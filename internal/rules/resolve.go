package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"dl/bank2ledger/internal/ledgererror"
)

// ResolveAccount resolves an account reference to a full ledger account path.
// User shortcuts win over preset shortcuts; a reference that already looks
// like a full account path passes through unchanged. Anything else fails with
// an UnresolvedAccountError.
func ResolveAccount(reference string, userTable, presetTable map[string]string) (string, error) {
	if path, ok := userTable[reference]; ok {
		return path, nil
	}
	if path, ok := presetTable[reference]; ok {
		return path, nil
	}
	if IsAccountPath(reference) {
		return reference, nil
	}
	return "", &ledgererror.UnresolvedAccountError{Reference: reference}
}

// IsAccountPath reports whether a reference has the shape of a full ledger
// account path: an uppercase first letter and at least one ':' separator,
// e.g. "Assets:Bank:Checking". Shortcut names are conventionally lowercase
// and unseparated, so this is how legacy literal paths are told apart.
func IsAccountPath(reference string) bool {
	first, _ := utf8.DecodeRuneInString(reference)
	if first == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(first) && strings.Contains(reference, ":")
}
