// Package classifier matches transactions against ordered rule lists using
// case-insensitive glob patterns.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"dl/bank2ledger/internal/ledgererror"
)

// CompilePattern compiles a glob pattern into a case-insensitive regexp
// matching the whole input. '*' matches any run of characters including none,
// '?' matches exactly one character and '[...]' matches a character class
// ('[!...]' negates). Malformed syntax yields a MalformedPatternError.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	expr, err := translateGlob(pattern)
	if err != nil {
		return nil, &ledgererror.MalformedPatternError{Pattern: pattern, Err: err}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &ledgererror.MalformedPatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

func translateGlob(pattern string) (string, error) {
	var b strings.Builder
	b.WriteString("(?is)^")

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			// a ']' directly after the (possibly negated) opening
			// bracket is a literal member of the class
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return "", fmt.Errorf("unterminated character class at offset %d", i)
			}
			class := string(runes[i+1 : j])
			class = strings.ReplaceAll(class, `\`, `\\`)
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")
	return b.String(), nil
}
