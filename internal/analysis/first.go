package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wheybags/wlang/internal/grammar"
)

// First returns the FIRST terminals of the named rule, one group per
// alternative in declaration order. Alternatives that start no terminal, such
// as the empty alternative, have no group. Each group lists terminals in the
// order they were found.
//
// A terminal that shows up twice across the groups makes the rule ambiguous
// for a one-token lookahead, and First fails with ErrAmbiguousFirst.
func (a *Analyzer) First(name string) ([][]string, error) {
	nt, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	return a.first(nt.ID, nil)
}

// first computes the FIRST groups of id. chain holds the rules whose FIRST
// computation is in progress above this call.
func (a *Analyzer) first(id grammar.RuleID, chain []grammar.RuleID) ([][]string, error) {
	if slices.Contains(chain, id) {
		return nil, a.leftRecursionError(append(chain, id))
	}
	chain = append(chain[:len(chain):len(chain)], id)

	nt := a.g.RuleByID(id)
	var groups [][]string
	for _, prod := range nt.Productions {
		var group []string
		for _, sym := range prod {
			if sym.IsEmpty() {
				break
			}
			if sym.IsTerminal() {
				group = append(group, sym.Text)
				break
			}

			terms, err := a.firstFlat(sym.Ref, chain)
			if err != nil {
				return nil, err
			}
			group = append(group, terms...)

			if !a.isNullable(sym.Ref) {
				break
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	if err := checkDisjoint(nt.Name, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// firstFlat returns the FIRST groups of id concatenated into one list.
func (a *Analyzer) firstFlat(id grammar.RuleID, chain []grammar.RuleID) ([]string, error) {
	groups, err := a.first(id, chain)
	if err != nil {
		return nil, err
	}
	return slices.Concat(groups...), nil
}

func checkDisjoint(rule string, groups [][]string) error {
	seen := make(map[string]int)
	for i, group := range groups {
		for _, term := range group {
			if prev, ok := seen[term]; ok {
				if prev == i {
					return fmt.Errorf("%w: rule %s: %s appears twice in FIRST group %d", ErrAmbiguousFirst, rule, term, i+1)
				}
				return fmt.Errorf("%w: rule %s: %s appears in FIRST groups %d and %d", ErrAmbiguousFirst, rule, term, prev+1, i+1)
			}
			seen[term] = i
		}
	}
	return nil
}

func (a *Analyzer) leftRecursionError(chain []grammar.RuleID) error {
	names := make([]string, len(chain))
	for i, id := range chain {
		names[i] = a.g.RuleByID(id).Name
	}
	// Report only the cycle, not the path that led into it.
	start := slices.Index(names, names[len(names)-1])
	return fmt.Errorf("%w: %s", ErrLeftRecursion, strings.Join(names[start:], " -> "))
}
