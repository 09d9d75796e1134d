package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "rules", "output"} {
		flag := Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "flag %q should be registered", name)
	}

	assert.Equal(t, "i", Cmd.PersistentFlags().Lookup("input").Shorthand)
	assert.Equal(t, "r", Cmd.PersistentFlags().Lookup("rules").Shorthand)
	assert.Equal(t, "o", Cmd.PersistentFlags().Lookup("output").Shorthand)
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "bank2ledger", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
}
