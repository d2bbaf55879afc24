package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheybags/wlang/internal/analysis"
	"github.com/wheybags/wlang/internal/grammar"
	"github.com/wheybags/wlang/internal/hcl_adapter"
	"github.com/wheybags/wlang/internal/testutil"
)

const exprGrammar = `
Root     = Expr
Expr     = Term ExprTail
ExprTail = "+" Term ExprTail | Nil
Term     = "(" Expr ")" | "id"
`

// runApp runs a fresh App over cfg and returns the report and log output.
func runApp(t *testing.T, cfg Config) (string, string, error) {
	t.Helper()

	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	err = NewApp(&out, logs, appConfig, hcl_adapter.NewLoader()).Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv(testutil.LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return out.String(), logs.String(), err
}

func TestRun_GrammarFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"expr.grammar": exprGrammar})
	path := filepath.Join(dir, "expr.grammar")

	out, logs, err := runApp(t, Config{GrammarPaths: []string{path}})
	require.NoError(t, err)

	assert.Contains(t, out, "Firsts:\n")
	assert.Contains(t, out, `    Term     = "(" | "id"`)
	assert.Contains(t, out, `    ExprTail = ")" $End`)
	assert.Contains(t, out, "    ExprTail = yes")
	assert.Contains(t, logs, "Analysis finished.")
	assert.Contains(t, logs, `summary="1 grammar, 4 rules (1 nullable), 0 warnings"`)
}

func TestRun_ConfigWithDefaultsAndJSON(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"grammars/expr.grammar": exprGrammar,
		"tool.hcl": `
			grammar "expr" {
			  source = "grammars/expr.grammar"
			  rules  = ["Term"]
			}

			grammar "tiny" {
			  inline      = "Program = A \"x\"\nA = \"a\" | Epsilon"
			  start       = "Program"
			  nil_keyword = "Epsilon"
			}
		`,
	})

	out, logs, err := runApp(t, Config{
		ConfigPath: filepath.Join(dir, "tool.hcl"),
		FollowMode: "fixedpoint",
		Format:     "json",
	})
	require.NoError(t, err)

	var docs []struct {
		Name   string           `json:"name"`
		Result *analysis.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)

	assert.Equal(t, "expr", docs[0].Name)
	require.Len(t, docs[0].Result.Rules, 1)
	assert.Equal(t, "Term", docs[0].Result.Rules[0].Name)
	assert.Equal(t, analysis.FollowFixedPointMode, docs[0].Result.FollowMode)

	assert.Equal(t, "tiny", docs[1].Name)
	a, ok := docs[1].Result.Rule("A")
	require.True(t, ok)
	assert.True(t, a.Nullable)
	assert.Equal(t, []string{`"x"`}, a.Follow)

	assert.Contains(t, logs, "grammar=tiny")
}

func TestRun_LintWarningsAreLogged(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"orphan.grammar": "Root = \"x\"\nOrphan = \"y\"",
	})

	_, logs, err := runApp(t, Config{GrammarPaths: []string{dir}})
	require.NoError(t, err)
	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, "rule Orphan is unreachable from the start rule")
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		cfg     Config
		wantErr error
		wantMsg string
	}{
		{
			name:    "construction error keeps line",
			files:   map[string]string{"bad.grammar": "Root = A\nA = Nil | \"a\""},
			wantErr: grammar.ErrNilNotLast,
			wantMsg: "line 2",
		},
		{
			name:    "ambiguous grammar",
			files:   map[string]string{"amb.grammar": `Root = "a" | "a" "b"`},
			wantErr: analysis.ErrAmbiguousFirst,
		},
		{
			name:    "left recursive grammar",
			files:   map[string]string{"lr.grammar": `Root = Root "a" | "b"`},
			wantErr: analysis.ErrLeftRecursion,
		},
		{
			name:    "unknown rule filter",
			files:   map[string]string{"ok.grammar": `Root = "a"`},
			cfg:     Config{Rules: []string{"Missing"}},
			wantErr: analysis.ErrUnknownRule,
		},
		{
			name:    "directory without grammars",
			files:   map[string]string{"notes.txt": "nothing here"},
			wantMsg: "no grammars found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := testutil.WriteFiles(t, tc.files)
			cfg := tc.cfg
			cfg.GrammarPaths = []string{dir}

			_, _, err := runApp(t, cfg)
			require.Error(t, err)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "grammar path", cfg: Config{GrammarPaths: []string{"a.grammar"}}},
		{name: "config path", cfg: Config{ConfigPath: "tool.hcl", WorkerCount: 2}},
		{name: "no input", cfg: Config{}, wantErr: "at least one grammar path"},
		{name: "bad format", cfg: Config{ConfigPath: "x", Format: "xml"}, wantErr: "invalid report format"},
		{name: "bad follow", cfg: Config{ConfigPath: "x", FollowMode: "eager"}, wantErr: "invalid follow mode"},
		{name: "bad workers", cfg: Config{ConfigPath: "x", WorkerCount: -2}, wantErr: "invalid worker count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, got.WorkerCount)
			if tc.cfg.WorkerCount == 0 {
				assert.Equal(t, runtime.GOMAXPROCS(0), got.WorkerCount)
			}
		})
	}
}
