// Package rules loads rule documents, normalizes the two surface syntaxes
// into one canonical form and validates the result.
package rules

import "strings"

// The four phrase verbs understood by the simplified syntax, checked in this
// order. The verb is matched case-insensitively; the remainder of the phrase
// keeps its casing (matching is case-insensitive downstream anyway).
var phraseVerbs = []struct {
	prefix  string
	rewrite func(rest string) string
}{
	{"contains ", func(rest string) string { return "*" + rest + "*" }},
	{"starts with ", func(rest string) string { return rest + "*" }},
	{"ends with ", func(rest string) string { return "*" + rest }},
	{"exactly ", func(rest string) string { return rest }},
}

// TranslatePattern converts a natural-language match phrase into a glob
// pattern. Phrases that start with none of the known verbs pass through
// unchanged, which covers legacy glob patterns such as "*salary*".
func TranslatePattern(phrase string) string {
	lower := strings.ToLower(phrase)
	for _, verb := range phraseVerbs {
		if strings.HasPrefix(lower, verb.prefix) {
			return verb.rewrite(phrase[len(verb.prefix):])
		}
	}
	return phrase
}
