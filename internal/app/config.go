package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/wheybags/wlang/internal/analysis"
	"github.com/wheybags/wlang/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GrammarPaths []string // .grammar files or directories
	ConfigPath   string   // hcl file or directory

	// Defaults for jobs that do not set their own.
	Start      string
	EndMarker  string
	NilKeyword string
	FollowMode string
	Rules      []string

	Format      string
	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and returns the config the app runs with. A zero
// WorkerCount becomes GOMAXPROCS.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.GrammarPaths) == 0 && cfg.ConfigPath == "" {
		return nil, errors.New("at least one grammar path or a config file is required")
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}
	if _, err := analysis.ParseFollowMode(cfg.FollowMode); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("invalid worker count %d: must not be negative", cfg.WorkerCount)
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = runtime.GOMAXPROCS(0)
	}
	return &cfg, nil
}
