package config

import (
	"fmt"
)

// Model is the unified, format-agnostic representation of a configuration:
// every grammar job in the order it was declared.
type Model struct {
	Grammars []*Grammar
}

// Grammar is one analysis job. Exactly one of Source and Inline is set.
// Empty marker fields mean the built-in default.
type Grammar struct {
	Name string
	// Source is a grammar file path, already resolved against the
	// directory of the configuration file that declared it.
	Source string
	// Inline is grammar text given directly in the configuration.
	Inline string

	Start      string
	EndMarker  string
	NilKeyword string
	FollowMode string
	// Rules restricts the report to these rules. Empty means all rules.
	Rules []string

	// Origin names the configuration file and line that declared the job.
	Origin string
}

// Validate checks the invariants every loader must uphold: unique names and
// exactly one grammar text source per job.
func (m *Model) Validate() error {
	seen := make(map[string]string, len(m.Grammars))
	for _, g := range m.Grammars {
		if g.Name == "" {
			return fmt.Errorf("%s: grammar has no name", g.Origin)
		}
		if prev, ok := seen[g.Name]; ok {
			return fmt.Errorf("%s: grammar %q already declared at %s", g.Origin, g.Name, prev)
		}
		seen[g.Name] = g.Origin

		switch {
		case g.Source == "" && g.Inline == "":
			return fmt.Errorf("%s: grammar %q needs one of source or inline", g.Origin, g.Name)
		case g.Source != "" && g.Inline != "":
			return fmt.Errorf("%s: grammar %q sets both source and inline", g.Origin, g.Name)
		}
	}
	return nil
}
