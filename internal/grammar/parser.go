package grammar

import (
	"strings"
)

// RawRule is a rule as written in the source: its name and the unresolved
// tokens of each alternative.
type RawRule struct {
	Name         string
	Alternatives [][]string
	Line         int
}

// String renders the rule back into the notation it was parsed from.
func (r RawRule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString(" =")
	for i, alt := range r.Alternatives {
		if i > 0 {
			sb.WriteString(" |")
		}
		for _, tok := range alt {
			sb.WriteByte(' ')
			sb.WriteString(tok)
		}
	}
	return sb.String()
}

// RawTable is the output of Parse: rules in declaration order, no references
// resolved.
type RawTable struct {
	Rules []RawRule
	index map[string]int
}

// Lookup returns the raw rule with the given name.
func (t *RawTable) Lookup(name string) (RawRule, bool) {
	i, ok := t.index[name]
	if !ok {
		return RawRule{}, false
	}
	return t.Rules[i], true
}

// String renders the table one rule per line.
func (t *RawTable) String() string {
	lines := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Parse splits grammar text into a RawTable. Comments start with // and run to
// the end of the line; lines left without tokens are skipped.
func Parse(text string) (*RawTable, error) {
	table := &RawTable{index: make(map[string]int)}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		rule, err := parseRule(lineNo, tokens)
		if err != nil {
			return nil, err
		}
		if prev, exists := table.Lookup(rule.Name); exists {
			return nil, lineErrorf(lineNo, rule.Name, ErrDuplicateRule, "first defined on line %d", prev.Line)
		}

		table.index[rule.Name] = len(table.Rules)
		table.Rules = append(table.Rules, rule)
	}

	return table, nil
}

func parseRule(lineNo int, tokens []string) (RawRule, error) {
	if len(tokens) < 2 || tokens[1] != "=" {
		return RawRule{}, lineErrorf(lineNo, "", ErrMalformedRule, "expected `Name = ...`, got %q", strings.Join(tokens, " "))
	}

	name := tokens[0]
	if !isRuleName(name) {
		return RawRule{}, lineErrorf(lineNo, name, ErrMalformedRule, "rule names must start with an uppercase letter")
	}
	if len(tokens) == 2 {
		return RawRule{}, lineErrorf(lineNo, name, ErrMalformedRule, "rule has no alternatives")
	}

	rule := RawRule{Name: name, Line: lineNo}
	var acc []string
	for _, tok := range tokens[2:] {
		if tok != "|" {
			acc = append(acc, tok)
			continue
		}
		if len(acc) == 0 {
			return RawRule{}, lineErrorf(lineNo, name, ErrMalformedRule, "empty alternative %d", len(rule.Alternatives)+1)
		}
		rule.Alternatives = append(rule.Alternatives, acc)
		acc = nil
	}
	if len(acc) == 0 {
		return RawRule{}, lineErrorf(lineNo, name, ErrMalformedRule, "empty alternative %d", len(rule.Alternatives)+1)
	}
	rule.Alternatives = append(rule.Alternatives, acc)

	return rule, nil
}
