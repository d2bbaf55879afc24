package grammar

import "strings"

// Defaults used when the corresponding Options field is empty.
const (
	DefaultStartRule  = "Root"
	DefaultEndMarker  = "$End"
	DefaultNilKeyword = "Nil"
)

// Options controls the reserved names of a grammar.
type Options struct {
	// StartRule is the rule whose FOLLOW set always contains EndMarker.
	StartRule string
	// EndMarker is the terminal standing for the end of input.
	EndMarker string
	// NilKeyword is the token that marks an empty alternative.
	NilKeyword string
}

// DefaultOptions returns the conventional Root / $End / Nil options.
func DefaultOptions() Options {
	return Options{
		StartRule:  DefaultStartRule,
		EndMarker:  DefaultEndMarker,
		NilKeyword: DefaultNilKeyword,
	}
}

func (o Options) withDefaults() Options {
	if o.StartRule == "" {
		o.StartRule = DefaultStartRule
	}
	if o.EndMarker == "" {
		o.EndMarker = DefaultEndMarker
	}
	if o.NilKeyword == "" {
		o.NilKeyword = DefaultNilKeyword
	}
	return o
}

// RuleID indexes a rule in its grammar's arena.
type RuleID int

// SymbolKind tells the three kinds of production symbols apart.
type SymbolKind int

const (
	// Terminal is an opaque token, kept as written (quotes included).
	Terminal SymbolKind = iota
	// NonTerminalRef points at another rule of the same grammar.
	NonTerminalRef
	// Empty is the empty-string marker, alone in its alternative.
	Empty
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminalRef:
		return "nonterminal"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Symbol is a single element of a production. For a NonTerminalRef, Text is
// the referenced rule's name and Ref its arena index.
type Symbol struct {
	Kind SymbolKind
	Text string
	Ref  RuleID
}

// IsTerminal reports whether s is a terminal token.
func (s Symbol) IsTerminal() bool { return s.Kind == Terminal }

// IsNonTerminal reports whether s refers to a rule.
func (s Symbol) IsNonTerminal() bool { return s.Kind == NonTerminalRef }

// IsEmpty reports whether s is the empty-string marker.
func (s Symbol) IsEmpty() bool { return s.Kind == Empty }

// Refers reports whether s is a reference to rule id.
func (s Symbol) Refers(id RuleID) bool {
	return s.Kind == NonTerminalRef && s.Ref == id
}

func (s Symbol) String() string {
	if s.Kind == NonTerminalRef {
		return "NT(" + s.Text + ")"
	}
	return s.Text
}

// Production is one alternative of a rule.
type Production []Symbol

// IsEmpty reports whether p is the empty alternative.
func (p Production) IsEmpty() bool {
	return len(p) == 1 && p[0].Kind == Empty
}

// String renders the production with rule references shown as NT(Name).
func (p Production) String() string {
	parts := make([]string, len(p))
	for i, sym := range p {
		parts[i] = sym.String()
	}
	return strings.Join(parts, " ")
}

// NonTerminal is a named rule and its alternatives, in source order.
type NonTerminal struct {
	ID          RuleID
	Name        string
	Productions []Production
}

// Grammar is the resolved, read-only rule set produced by Build.
type Grammar struct {
	rules  []*NonTerminal
	byName map[string]RuleID
	opts   Options
}

// Rule looks a rule up by name.
func (g *Grammar) Rule(name string) (*NonTerminal, bool) {
	id, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return g.rules[id], true
}

// RuleByID returns the rule stored at id. It panics if id does not belong to g.
func (g *Grammar) RuleByID(id RuleID) *NonTerminal {
	return g.rules[id]
}

// Rules returns every rule in declaration order.
func (g *Grammar) Rules() []*NonTerminal {
	out := make([]*NonTerminal, len(g.rules))
	copy(out, g.rules)
	return out
}

// Names returns every rule name in declaration order.
func (g *Grammar) Names() []string {
	out := make([]string, len(g.rules))
	for i, nt := range g.rules {
		out[i] = nt.Name
	}
	return out
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Options returns the options the grammar was built with, defaults filled in.
func (g *Grammar) Options() Options { return g.opts }

// EndMarker returns the token that follows the start rule at end of input.
func (g *Grammar) EndMarker() string { return g.opts.EndMarker }

// Start returns the start rule, if the grammar defines it.
func (g *Grammar) Start() (*NonTerminal, bool) {
	return g.Rule(g.opts.StartRule)
}

// isRuleName reports whether tok names a rule rather than a terminal.
func isRuleName(tok string) bool {
	return tok != "" && tok[0] >= 'A' && tok[0] <= 'Z'
}
