package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wheybags/wlang/internal/ctxlog"
	"github.com/wheybags/wlang/internal/grammar"
)

// Analyzer answers nullability, FIRST and FOLLOW queries about one grammar.
type Analyzer struct {
	g      *grammar.Grammar
	logger *slog.Logger
}

// New creates an Analyzer for g. The logger is taken from ctx.
func New(ctx context.Context, g *grammar.Grammar) *Analyzer {
	return &Analyzer{
		g:      g,
		logger: ctxlog.FromContext(ctx).With("component", "analysis"),
	}
}

// Grammar returns the analyzed grammar.
func (a *Analyzer) Grammar() *grammar.Grammar {
	return a.g
}

func (a *Analyzer) lookup(name string) (*grammar.NonTerminal, error) {
	nt, ok := a.g.Rule(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return nt, nil
}
