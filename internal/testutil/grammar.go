package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wheybags/wlang/internal/grammar"
)

// MustBuild parses and builds text with default options, failing the test on
// any construction error.
func MustBuild(t *testing.T, text string) *grammar.Grammar {
	t.Helper()

	g, err := grammar.New(text, grammar.DefaultOptions())
	require.NoError(t, err, "grammar should build")
	return g
}
