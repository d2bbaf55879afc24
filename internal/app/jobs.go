package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/wheybags/wlang/internal/config"
	"github.com/wheybags/wlang/internal/fsutil"
)

const grammarExt = ".grammar"

// collectJobs merges the jobs declared in the config file with one job per
// grammar file named on the command line, then fills unset fields from the
// command-line defaults.
func (a *App) collectJobs(ctx context.Context) (*config.Model, error) {
	model := &config.Model{}

	if a.config.ConfigPath != "" {
		loaded, err := a.loader.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model.Grammars = append(model.Grammars, loaded.Grammars...)
		a.logger.Debug("Configuration loaded and translated into unified model.", "grammars", len(loaded.Grammars))
	}

	if len(a.config.GrammarPaths) > 0 {
		files, err := fsutil.FindFiles(a.config.GrammarPaths, grammarExt)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			model.Grammars = append(model.Grammars, &config.Grammar{
				Name:   file,
				Source: file,
				Origin: "command line",
			})
		}
		a.logger.Debug("Grammar files discovered.", "count", len(files))
	}

	for _, job := range model.Grammars {
		a.applyDefaults(job)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	if len(model.Grammars) == 0 {
		return nil, errors.New("no grammars found")
	}
	return model, nil
}

func (a *App) applyDefaults(job *config.Grammar) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&job.Start, a.config.Start)
	fill(&job.EndMarker, a.config.EndMarker)
	fill(&job.NilKeyword, a.config.NilKeyword)
	fill(&job.FollowMode, a.config.FollowMode)
	if len(job.Rules) == 0 {
		job.Rules = a.config.Rules
	}
}
