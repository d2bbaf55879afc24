package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheybags/wlang/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "defaults",
			args: []string{"a.grammar"},
			want: &app.Config{
				GrammarPaths: []string{"a.grammar"},
				FollowMode:   "guarded",
				Format:       "text",
				LogFormat:    "text",
				LogLevel:     "info",
				WorkerCount:  runtime.GOMAXPROCS(0),
			},
		},
		{
			name: "every option",
			args: []string{
				"-config", "tool.hcl",
				"-start", "Program",
				"-end-marker", "$Eof",
				"-nil-keyword", "Epsilon",
				"-format", "JSON",
				"-follow", "fixedpoint",
				"-rules", "A, B,,C",
				"-workers", "3",
				"-log-format", "json",
				"-log-level", "DEBUG",
				"a.grammar", "grammars/",
			},
			want: &app.Config{
				GrammarPaths: []string{"a.grammar", "grammars/"},
				ConfigPath:   "tool.hcl",
				Start:        "Program",
				EndMarker:    "$Eof",
				NilKeyword:   "Epsilon",
				FollowMode:   "fixedpoint",
				Rules:        []string{"A", "B", "C"},
				Format:       "json",
				LogFormat:    "json",
				LogLevel:     "debug",
				WorkerCount:  3,
			},
		},
		{
			name: "config shorthand only",
			args: []string{"-c", "tool.hcl"},
			want: &app.Config{
				ConfigPath:  "tool.hcl",
				FollowMode:  "guarded",
				Format:      "text",
				LogFormat:   "text",
				LogLevel:    "info",
				WorkerCount: runtime.GOMAXPROCS(0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_UsageExits(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}} {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope", "a.grammar"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml", "a.grammar"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "a.grammar"}, "invalid log-level"},
		{"bad report format", []string{"-format", "yaml", "a.grammar"}, "invalid report format"},
		{"bad follow mode", []string{"-follow", "iterative", "a.grammar"}, "invalid follow mode"},
		{"negative workers", []string{"-workers", "-1", "a.grammar"}, "invalid worker count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
