package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wheybags/wlang/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("grammartool", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
grammartool - FIRST, FOLLOW and nullability analysis for LL(1) grammars.

Usage:
  grammartool [options] [GRAMMAR_PATH...]

Arguments:
  GRAMMAR_PATH
    Path to a grammar file or a directory containing .grammar files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file or directory declaring grammar jobs.")
	cFlag := flagSet.String("c", "", "Path to an HCL config file or directory (shorthand).")
	startFlag := flagSet.String("start", "", "Start rule name. Defaults to 'Root'.")
	endFlag := flagSet.String("end-marker", "", "End-of-input marker added to the start rule's FOLLOW set. Defaults to '$End'.")
	nilFlag := flagSet.String("nil-keyword", "", "Keyword for the empty alternative. Defaults to 'Nil'.")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'json'.")
	followFlag := flagSet.String("follow", "guarded", "FOLLOW algorithm. Options: 'guarded' or 'fixedpoint'.")
	rulesFlag := flagSet.String("rules", "", "Comma-separated rules to report. Empty reports every rule.")
	workersFlag := flagSet.Int("workers", 0, "Number of grammars analyzed concurrently. 0 uses GOMAXPROCS.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	grammarPaths := flagSet.Args()
	slog.Debug("Input paths determined.", "config", configPath, "grammars", grammarPaths)

	if configPath == "" && len(grammarPaths) == 0 {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GrammarPaths: grammarPaths,
		ConfigPath:   configPath,
		Start:        *startFlag,
		EndMarker:    *endFlag,
		NilKeyword:   *nilFlag,
		FollowMode:   strings.ToLower(*followFlag),
		Rules:        splitList(*rulesFlag),
		Format:       strings.ToLower(*formatFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		WorkerCount:  *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
