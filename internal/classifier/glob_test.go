package classifier

import (
	"testing"

	"dl/bank2ledger/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatternMatching(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"*salary*", "SALARY PAYMENT", true},
		{"*salary*", "salary payment", true},
		{"*salary*", "MONTHLY SALARY", true},
		{"*salary*", "RENT", false},
		{"GROCERY*", "GROCERY STORE 42", true},
		{"GROCERY*", "MY GROCERY", false},
		{"*FEE", "ANNUAL FEE", true},
		{"*FEE", "FEE REFUND", false},
		{"Rent Payment", "rent payment", true},
		{"Rent Payment", "rent payment extra", false},
		{"POS?42", "POS 42", true},
		{"POS?42", "POS42", false},
		{"202[34] BONUS", "2023 BONUS", true},
		{"202[34] BONUS", "2025 BONUS", false},
		{"[!a]bc", "xbc", true},
		{"[!a]bc", "abc", false},
		{"*", "", true},
		{"", "", true},
		{"", "anything", false},
	}

	for _, tc := range cases {
		re, err := CompilePattern(tc.pattern)
		require.NoError(t, err, "pattern %q", tc.pattern)
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("pattern %q against %q = %v, want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}

func TestCompilePatternMalformed(t *testing.T) {
	_, err := CompilePattern("*[unterminated")
	require.Error(t, err)

	var malformed *ledgererror.MalformedPatternError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "*[unterminated", malformed.Pattern)
}

func TestCompilePatternQuotesRegexMeta(t *testing.T) {
	// regex metacharacters in the glob are literal text
	re, err := CompilePattern("*1+1 (fee)*")
	require.NoError(t, err)
	assert.True(t, re.MatchString("charge 1+1 (FEE) x"))
	assert.False(t, re.MatchString("charge 11 fee"))
}
