package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheybags/wlang/internal/analysis"
	"github.com/wheybags/wlang/internal/testutil"
)

func analyze(t *testing.T, name, source, text string) Document {
	t.Helper()

	ctx, _ := testutil.Context(t)
	res, err := analysis.New(ctx, testutil.MustBuild(t, text)).Analyze(analysis.FollowGuarded)
	require.NoError(t, err)
	return Document{Name: name, Source: source, Result: res}
}

// requireGolden fails with a unified diff when got differs from want.
func requireGolden(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	t.Fatalf("report mismatch:\n%s", diff)
}

const sampleGrammar = `
	Root = A Y
	Y = A | "1"
	A = "2" | "3"
`

const tinyGrammar = "Program = A \"x\"\nA = Nil"

func TestText_SingleDocument(t *testing.T) {
	doc := analyze(t, "sample", "", sampleGrammar)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, doc))

	want := `Firsts:
    Root = "2" "3"
    Y    = "2" "3" | "1"
    A    = "2" | "3"

Follows:
    Root = $End
    Y    = $End
    A    = "1" "2" "3" $End

Nullable:
    Root = no
    Y    = no
    A    = no
`
	requireGolden(t, want, buf.String())
}

func TestText_MultipleDocumentsWithWarnings(t *testing.T) {
	docs := []Document{
		analyze(t, "sample", "", sampleGrammar),
		analyze(t, "tiny", "tiny.grammar", tinyGrammar),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, docs...))

	want := `sample:
    Firsts:
        Root = "2" "3"
        Y    = "2" "3" | "1"
        A    = "2" | "3"

    Follows:
        Root = $End
        Y    = $End
        A    = "1" "2" "3" $End

    Nullable:
        Root = no
        Y    = no
        A    = no

tiny (tiny.grammar):
    Firsts:
        Program = "x"
        A       =

    Follows:
        Program =
        A       = "x"

    Nullable:
        Program = no
        A       = yes

    Warnings:
        start rule Root is not defined
`
	requireGolden(t, want, buf.String())
}

func TestJSON(t *testing.T) {
	doc := analyze(t, "tiny", "tiny.grammar", tinyGrammar)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, doc))

	var decoded []struct {
		Name   string `json:"name"`
		Source string `json:"source"`
		Result struct {
			FollowMode string `json:"follow_mode"`
			Rules      []struct {
				Name     string     `json:"name"`
				Nullable bool       `json:"nullable"`
				First    [][]string `json:"first"`
				Follow   []string   `json:"follow"`
			} `json:"rules"`
			Warnings []struct {
				Kind  string   `json:"kind"`
				Rules []string `json:"rules"`
			} `json:"warnings"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	got := decoded[0]
	assert.Equal(t, "tiny", got.Name)
	assert.Equal(t, "guarded", got.Result.FollowMode)
	require.Len(t, got.Result.Rules, 2)
	assert.Equal(t, [][]string{{`"x"`}}, got.Result.Rules[0].First)
	assert.Equal(t, []string{}, got.Result.Rules[0].Follow)
	assert.True(t, got.Result.Rules[1].Nullable)
	require.Len(t, got.Result.Warnings, 1)
	assert.Equal(t, "missing-start", got.Result.Warnings[0].Kind)

	assert.True(t, strings.Contains(buf.String(), `"first": []`), "empty FIRST renders as an empty array")
}

func TestJSON_NoDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSummary(t *testing.T) {
	docs := []Document{
		analyze(t, "sample", "", sampleGrammar),
		analyze(t, "tiny", "tiny.grammar", tinyGrammar),
	}
	assert.Equal(t, "2 grammars, 5 rules (1 nullable), 1 warning", Summary(docs...))

	big := &analysis.Result{Rules: make([]analysis.RuleResult, 1234)}
	assert.Equal(t, "1 grammar, 1,234 rules (0 nullable), 0 warnings", Summary(Document{Name: "big", Result: big}))
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yaml", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
