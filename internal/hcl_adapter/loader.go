package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/wheybags/wlang/internal/config"
	"github.com/wheybags/wlang/internal/ctxlog"
	"github.com/wheybags/wlang/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader that exposes the process
// environment to expressions.
func NewLoader() *Loader {
	return &Loader{environ: processEnv}
}

// Load parses every .hcl file found under paths and translates their grammar
// blocks into a validated model, in file then declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())
	model := &config.Model{}

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			g, err := l.translateGrammar(ctx, file, block, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Grammars = append(model.Grammars, g)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "grammars", len(model.Grammars))
	return model, nil
}

// translateGrammar decodes one grammar block into its config form.
func (l *Loader) translateGrammar(ctx context.Context, file string, block *hcl.Block, evalCtx *hcl.EvalContext) (*config.Grammar, error) {
	origin := fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line)

	var raw grammarBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%s: failed to decode grammar %q: %w", origin, block.Labels[0], diags)
	}

	g := &config.Grammar{Name: block.Labels[0], Origin: origin}
	attrs := []struct {
		name   string
		expr   hcl.Expression
		target any
	}{
		{"source", raw.Source, &g.Source},
		{"inline", raw.Inline, &g.Inline},
		{"start", raw.Start, &g.Start},
		{"end_marker", raw.EndMarker, &g.EndMarker},
		{"nil_keyword", raw.NilKeyword, &g.NilKeyword},
		{"follow_mode", raw.FollowMode, &g.FollowMode},
		{"rules", raw.Rules, &g.Rules},
	}
	for _, attr := range attrs {
		if err := evalInto(ctx, attr.expr, attr.name, evalCtx, attr.target); err != nil {
			return nil, fmt.Errorf("%s: grammar %q: %w", origin, g.Name, err)
		}
	}

	if g.Source != "" && !filepath.IsAbs(g.Source) {
		g.Source = filepath.Join(filepath.Dir(file), g.Source)
	}

	ctxlog.FromContext(ctx).Debug("Translated grammar block.", "grammar", g.Name, "origin", origin, "source", g.Source)
	return g, nil
}
