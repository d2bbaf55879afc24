package analysis

import "github.com/wheybags/wlang/internal/grammar"

// nullState is the per-query state of a nullability check: the rules on the
// active call chain and the rules already proven nullable.
type nullState struct {
	active   map[grammar.RuleID]bool
	nullable map[grammar.RuleID]bool
}

func newNullState() *nullState {
	return &nullState{
		active:   make(map[grammar.RuleID]bool),
		nullable: make(map[grammar.RuleID]bool),
	}
}

// CanBeNil reports whether the named rule derives the empty string: one of
// its alternatives is the empty marker, or consists only of nullable rule
// references.
func (a *Analyzer) CanBeNil(name string) (bool, error) {
	nt, err := a.lookup(name)
	if err != nil {
		return false, err
	}
	return a.nullable(nt.ID, newNullState()), nil
}

// isNullable runs a fresh top-level nullability check for id.
func (a *Analyzer) isNullable(id grammar.RuleID) bool {
	return a.nullable(id, newNullState())
}

func (a *Analyzer) nullable(id grammar.RuleID, st *nullState) bool {
	if st.nullable[id] {
		return true
	}
	if st.active[id] {
		// Only positive answers are cached: a negative one here depends on
		// which rules happen to be on the chain.
		a.logger.Debug("Nullability cycle guard hit.", "rule", a.g.RuleByID(id).Name)
		return false
	}

	st.active[id] = true
	defer delete(st.active, id)

	for _, prod := range a.g.RuleByID(id).Productions {
		if a.productionNullable(prod, st) {
			st.nullable[id] = true
			return true
		}
	}
	return false
}

func (a *Analyzer) productionNullable(prod grammar.Production, st *nullState) bool {
	if prod.IsEmpty() {
		return true
	}
	for _, sym := range prod {
		if !sym.IsNonTerminal() || !a.nullable(sym.Ref, st) {
			return false
		}
	}
	return true
}
