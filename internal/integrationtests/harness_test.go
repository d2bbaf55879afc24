package integrationtests

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wheybags/wlang/internal/app"
	"github.com/wheybags/wlang/internal/cli"
	"github.com/wheybags/wlang/internal/hcl_adapter"
	"github.com/wheybags/wlang/internal/testutil"
)

// harnessResult holds the outcomes of one end-to-end run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// runCLI parses args exactly as the binary does and runs the app with debug
// logging captured.
func runCLI(t *testing.T, args ...string) *harnessResult {
	t.Helper()

	var usage bytes.Buffer
	cfg, shouldExit, err := cli.Parse(append([]string{"-log-level", "debug"}, args...), &usage)
	require.NoError(t, err, "arguments should parse")
	require.False(t, shouldExit, "arguments should describe a run")

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	runErr := app.NewApp(&out, logs, cfg, hcl_adapter.NewLoader()).Run(context.Background())

	if os.Getenv(testutil.LogsEnv) == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &harnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
