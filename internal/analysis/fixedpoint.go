package analysis

import (
	"github.com/wheybags/wlang/internal/grammar"
)

// FollowFixedPoint computes the FOLLOW set of every rule at once, propagating
// FIRST sets and enclosing FOLLOW sets until no set grows. The result is keyed
// by rule name.
func (a *Analyzer) FollowFixedPoint() (map[string]TerminalSet, error) {
	rules := a.g.Rules()

	firsts := make([]TerminalSet, len(rules))
	nullable := make([]bool, len(rules))
	follows := make([]TerminalSet, len(rules))
	for i, nt := range rules {
		terms, err := a.firstFlat(nt.ID, nil)
		if err != nil {
			return nil, err
		}
		firsts[i] = NewTerminalSet(terms...)
		nullable[i] = a.isNullable(nt.ID)
		follows[i] = NewTerminalSet()
	}
	if start, ok := a.g.Start(); ok {
		follows[start.ID].Add(a.g.EndMarker())
	}

	for iteration := 1; ; iteration++ {
		changed := false
		for _, owner := range rules {
			for _, prod := range owner.Productions {
				for i, sym := range prod {
					if !sym.IsNonTerminal() {
						continue
					}
					if propagate(prod[i+1:], follows[sym.Ref], follows[owner.ID], firsts, nullable) {
						changed = true
					}
				}
			}
		}
		if !changed {
			a.logger.Debug("FOLLOW fixed point reached.", "iterations", iteration, "rules", len(rules))
			break
		}
	}

	out := make(map[string]TerminalSet, len(rules))
	for i, nt := range rules {
		out[nt.Name] = follows[i]
	}
	return out, nil
}

// propagate adds to target what can follow a symbol whose suffix in the
// alternative is rest. ownerFollow is the FOLLOW set of the enclosing rule.
func propagate(rest grammar.Production, target, ownerFollow TerminalSet, firsts []TerminalSet, nullable []bool) bool {
	grew := false
	for _, sym := range rest {
		if !sym.IsNonTerminal() {
			if !target.Contains(sym.Text) {
				target.Add(sym.Text)
				grew = true
			}
			return grew
		}
		if target.Merge(firsts[sym.Ref]) {
			grew = true
		}
		if !nullable[sym.Ref] {
			return grew
		}
	}
	if target.Merge(ownerFollow) {
		grew = true
	}
	return grew
}
