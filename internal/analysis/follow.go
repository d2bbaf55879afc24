package analysis

import (
	"math"

	"github.com/wheybags/wlang/internal/grammar"
)

// noGuardHit is the low mark of a frame whose subtree never reached a rule
// on the active chain above it.
const noGuardHit = math.MaxInt

// followState is the per-query state of a FOLLOW computation: the rules on
// the active call chain with their depth, and the rules whose FOLLOW set is
// already complete.
type followState struct {
	active map[grammar.RuleID]int
	done   map[grammar.RuleID]TerminalSet
}

func newFollowState() *followState {
	return &followState{
		active: make(map[grammar.RuleID]int),
		done:   make(map[grammar.RuleID]TerminalSet),
	}
}

// Follow returns the terminals that can appear directly after the named rule
// in a derivation from the start rule. The start rule's set always contains
// the grammar's end marker.
//
// Follow recurses into the FOLLOW set of every rule whose alternatives can end
// with the queried rule. A rule already on the active call chain contributes
// nothing, which keeps mutually recursive rules from looping.
func (a *Analyzer) Follow(name string) (TerminalSet, error) {
	nt, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	follows, _, err := a.follow(nt.ID, newFollowState())
	return follows, err
}

// follow returns the FOLLOW set of id and the shallowest depth of an active
// rule the computation ran into. A frame that only ran into itself or rules
// below it holds the complete set and is recorded in st.done, so later
// occurrences in the same query reuse it instead of walking every path again.
func (a *Analyzer) follow(id grammar.RuleID, st *followState) (TerminalSet, int, error) {
	if follows, ok := st.done[id]; ok {
		return follows, noGuardHit, nil
	}
	if depth, ok := st.active[id]; ok {
		a.logger.Debug("FOLLOW cycle guard hit.", "rule", a.g.RuleByID(id).Name)
		return NewTerminalSet(), depth, nil
	}
	depth := len(st.active)
	st.active[id] = depth
	defer delete(st.active, id)

	follows := NewTerminalSet()
	if start, ok := a.g.Start(); ok && start.ID == id {
		follows.Add(a.g.EndMarker())
	}

	low := noGuardHit
	for _, owner := range a.g.Rules() {
		for _, prod := range owner.Productions {
			for i, sym := range prod {
				if !sym.Refers(id) {
					continue
				}
				hit, err := a.followOccurrence(owner.ID, prod[i+1:], follows, st)
				if err != nil {
					return nil, 0, err
				}
				low = min(low, hit)
			}
		}
	}

	if low >= depth {
		st.done[id] = follows
		low = noGuardHit
	}
	return follows, low, nil
}

// followOccurrence adds to into what can follow one occurrence of a rule,
// given the symbols after it in an alternative of owner. It returns the low
// mark of the enclosing FOLLOW computation, if one was needed.
func (a *Analyzer) followOccurrence(owner grammar.RuleID, rest grammar.Production, into TerminalSet, st *followState) (int, error) {
	for _, sym := range rest {
		if !sym.IsNonTerminal() {
			into.Add(sym.Text)
			return noGuardHit, nil
		}

		terms, err := a.firstFlat(sym.Ref, nil)
		if err != nil {
			return 0, err
		}
		into.Add(terms...)

		if !a.isNullable(sym.Ref) {
			return noGuardHit, nil
		}
	}

	outer, low, err := a.follow(owner, st)
	if err != nil {
		return 0, err
	}
	into.Merge(outer)
	return low, nil
}
