package analysis

import (
	"fmt"
	"strings"

	"github.com/wheybags/wlang/internal/graph"
)

// WarningKind classifies lint findings.
type WarningKind string

const (
	WarnMissingStart  WarningKind = "missing-start"
	WarnUnreachable   WarningKind = "unreachable"
	WarnLeftRecursive WarningKind = "left-recursive"
)

// Warning is a grammar property that does not stop construction but will
// either fail a later query or make rules useless.
type Warning struct {
	Kind  WarningKind `json:"kind"`
	Rules []string    `json:"rules"`
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnMissingStart:
		return fmt.Sprintf("start rule %s is not defined", w.Rules[0])
	case WarnUnreachable:
		return fmt.Sprintf("rule %s is unreachable from the start rule", w.Rules[0])
	case WarnLeftRecursive:
		return fmt.Sprintf("rules %s are left recursive", strings.Join(w.Rules, ", "))
	default:
		return fmt.Sprintf("%s: %s", w.Kind, strings.Join(w.Rules, ", "))
	}
}

// References returns the rule reference graph: an edge A -> B for every
// occurrence of B in an alternative of A.
func (a *Analyzer) References() *graph.Graph[string] {
	g := graph.New[string]()
	for _, nt := range a.g.Rules() {
		g.AddNode(nt.Name)
		for _, prod := range nt.Productions {
			for _, sym := range prod {
				if sym.IsNonTerminal() {
					g.AddEdge(nt.Name, sym.Text)
				}
			}
		}
	}
	return g
}

// LeadingReferences returns the graph with an edge A -> B whenever B can be
// the first rule expanded by an alternative of A, that is, B is preceded only
// by nullable rules. A cycle in this graph is left recursion.
func (a *Analyzer) LeadingReferences() *graph.Graph[string] {
	g := graph.New[string]()
	for _, nt := range a.g.Rules() {
		g.AddNode(nt.Name)
		for _, prod := range nt.Productions {
			for _, sym := range prod {
				if !sym.IsNonTerminal() {
					break
				}
				g.AddEdge(nt.Name, sym.Text)
				if !a.isNullable(sym.Ref) {
					break
				}
			}
		}
	}
	return g
}

// Lint reports a missing start rule, rules unreachable from the start rule
// and left-recursive cycles.
func (a *Analyzer) Lint() []Warning {
	var warnings []Warning

	startName := a.g.Options().StartRule
	if _, ok := a.g.Start(); !ok {
		warnings = append(warnings, Warning{Kind: WarnMissingStart, Rules: []string{startName}})
	} else {
		refs := a.References()
		reachable := make(map[string]bool)
		for _, name := range refs.Reachable(startName) {
			reachable[name] = true
		}
		for _, name := range a.g.Names() {
			if !reachable[name] {
				warnings = append(warnings, Warning{Kind: WarnUnreachable, Rules: []string{name}})
			}
		}
	}

	for _, cycle := range a.LeadingReferences().Cycles() {
		warnings = append(warnings, Warning{Kind: WarnLeftRecursive, Rules: cycle})
	}

	for _, w := range warnings {
		a.logger.Debug("Grammar lint finding.", "kind", string(w.Kind), "rules", w.Rules)
	}
	return warnings
}
