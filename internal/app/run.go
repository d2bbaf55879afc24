package app

import (
	"context"
	"fmt"
	"os"

	"github.com/wheybags/wlang/internal/analysis"
	"github.com/wheybags/wlang/internal/config"
	"github.com/wheybags/wlang/internal/ctxlog"
	"github.com/wheybags/wlang/internal/grammar"
	"github.com/wheybags/wlang/internal/report"
	"golang.org/x/sync/errgroup"
)

// Run analyzes every configured grammar and writes the report. Grammars are
// analyzed concurrently, up to WorkerCount at a time; the report keeps job
// order. The first failing job cancels the rest.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.collectJobs(ctx)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	docs := make([]report.Document, len(model.Grammars))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.config.WorkerCount, 1))
	for i, job := range model.Grammars {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := a.analyze(gctx, job)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := report.Write(a.outW, format, docs...); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Info("Analysis finished.", "summary", report.Summary(docs...))
	a.logger.Debug("App.Run method finished.")
	return nil
}

// analyze builds and analyzes one job.
func (a *App) analyze(ctx context.Context, job *config.Grammar) (report.Document, error) {
	ctx = ctxlog.With(ctx, "grammar", job.Name)
	logger := ctxlog.FromContext(ctx)

	text := job.Inline
	if job.Source != "" {
		data, err := os.ReadFile(job.Source)
		if err != nil {
			return report.Document{}, fmt.Errorf("grammar %s: %w", job.Name, err)
		}
		text = string(data)
	}

	g, err := grammar.New(text, grammar.Options{
		StartRule:  job.Start,
		EndMarker:  job.EndMarker,
		NilKeyword: job.NilKeyword,
	})
	if err != nil {
		return report.Document{}, fmt.Errorf("grammar %s: %w", job.Name, err)
	}
	logger.Debug("Grammar built.", "rules", g.Len(), "origin", job.Origin)

	mode, err := analysis.ParseFollowMode(job.FollowMode)
	if err != nil {
		return report.Document{}, fmt.Errorf("grammar %s: %w", job.Name, err)
	}

	res, err := analysis.New(ctx, g).Analyze(mode)
	if err != nil {
		return report.Document{}, fmt.Errorf("grammar %s: %w", job.Name, err)
	}
	for _, w := range res.Warnings {
		logger.Warn("Grammar lint warning.", "kind", string(w.Kind), "detail", w.String())
	}

	if len(job.Rules) > 0 {
		if res, err = res.Only(job.Rules...); err != nil {
			return report.Document{}, fmt.Errorf("grammar %s: %w", job.Name, err)
		}
	}

	return report.Document{Name: job.Name, Source: job.Source, Result: res}, nil
}
