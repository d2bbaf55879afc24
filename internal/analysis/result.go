package analysis

import "fmt"

// FollowMode selects the FOLLOW algorithm used by Analyze.
type FollowMode string

const (
	// FollowGuarded runs one guarded recursive Follow query per rule.
	FollowGuarded FollowMode = "guarded"
	// FollowFixedPointMode solves every FOLLOW set with FollowFixedPoint.
	FollowFixedPointMode FollowMode = "fixedpoint"
)

// ParseFollowMode validates a mode name. The empty string selects
// FollowGuarded.
func ParseFollowMode(s string) (FollowMode, error) {
	switch FollowMode(s) {
	case "", FollowGuarded:
		return FollowGuarded, nil
	case FollowFixedPointMode:
		return FollowFixedPointMode, nil
	default:
		return "", fmt.Errorf("invalid follow mode %q: must be %q or %q", s, FollowGuarded, FollowFixedPointMode)
	}
}

// RuleResult holds every analysis of one rule.
type RuleResult struct {
	Name     string     `json:"name"`
	Nullable bool       `json:"nullable"`
	First    [][]string `json:"first"`
	Follow   []string   `json:"follow"`
}

// Result is the analysis of a whole grammar, rules in declaration order.
type Result struct {
	FollowMode FollowMode   `json:"follow_mode"`
	Rules      []RuleResult `json:"rules"`
	Warnings   []Warning    `json:"warnings,omitempty"`
}

// Rule returns the result for the named rule.
func (r *Result) Rule(name string) (RuleResult, bool) {
	for _, rr := range r.Rules {
		if rr.Name == name {
			return rr, true
		}
	}
	return RuleResult{}, false
}

// Nullable returns how many rules can derive the empty string.
func (r *Result) Nullable() int {
	n := 0
	for _, rr := range r.Rules {
		if rr.Nullable {
			n++
		}
	}
	return n
}

// Only returns a copy of r restricted to the named rules, in the order given.
func (r *Result) Only(names ...string) (*Result, error) {
	out := &Result{FollowMode: r.FollowMode, Warnings: r.Warnings}
	for _, name := range names {
		rr, ok := r.Rule(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		out.Rules = append(out.Rules, rr)
	}
	return out, nil
}

// Analyze computes nullability, FIRST and FOLLOW for every rule and collects
// the lint warnings. It stops at the first failing query. In guarded mode the
// FOLLOW queries of one call share the sets they have already completed.
func (a *Analyzer) Analyze(mode FollowMode) (*Result, error) {
	res := &Result{FollowMode: mode, Warnings: a.Lint()}

	var fixed map[string]TerminalSet
	if mode == FollowFixedPointMode {
		var err error
		if fixed, err = a.FollowFixedPoint(); err != nil {
			return nil, err
		}
	}

	st := newFollowState()
	for _, nt := range a.g.Rules() {
		first, err := a.first(nt.ID, nil)
		if err != nil {
			return nil, err
		}

		follow, ok := fixed[nt.Name]
		if !ok {
			if follow, _, err = a.follow(nt.ID, st); err != nil {
				return nil, err
			}
		}

		if first == nil {
			first = [][]string{}
		}
		res.Rules = append(res.Rules, RuleResult{
			Name:     nt.Name,
			Nullable: a.isNullable(nt.ID),
			First:    first,
			Follow:   follow.Sorted(),
		})
	}

	a.logger.Debug("Grammar analyzed.", "rules", len(res.Rules), "follow_mode", string(mode), "warnings", len(res.Warnings))
	return res, nil
}
