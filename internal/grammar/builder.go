package grammar

// New parses text and builds a Grammar from it.
func New(text string, opts Options) (*Grammar, error) {
	raw, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Build(raw, opts)
}

// Build resolves the tokens of raw into a Grammar. All rules are registered
// before any production is resolved, so references may point forward.
func Build(raw *RawTable, opts Options) (*Grammar, error) {
	opts = opts.withDefaults()
	g := &Grammar{
		rules:  make([]*NonTerminal, 0, len(raw.Rules)),
		byName: make(map[string]RuleID, len(raw.Rules)),
		opts:   opts,
	}

	for _, r := range raw.Rules {
		if r.Name == opts.NilKeyword {
			return nil, lineErrorf(r.Line, r.Name, ErrMalformedRule, "%s is reserved for empty alternatives", opts.NilKeyword)
		}
		id := RuleID(len(g.rules))
		g.rules = append(g.rules, &NonTerminal{ID: id, Name: r.Name})
		g.byName[r.Name] = id
	}

	for i, r := range raw.Rules {
		nt := g.rules[i]
		nt.Productions = make([]Production, 0, len(r.Alternatives))
		for altIdx, alt := range r.Alternatives {
			if err := g.checkEmptyPlacement(r, altIdx, alt); err != nil {
				return nil, err
			}
			prod, err := g.resolve(r, alt)
			if err != nil {
				return nil, err
			}
			nt.Productions = append(nt.Productions, prod)
		}
	}

	return g, nil
}

func (g *Grammar) checkEmptyPlacement(r RawRule, altIdx int, alt []string) error {
	keyword := g.opts.NilKeyword
	if len(alt) == 0 {
		return lineErrorf(r.Line, r.Name, ErrMalformedRule, "empty alternative %d", altIdx+1)
	}
	if len(alt) > 1 {
		for _, tok := range alt {
			if tok == keyword {
				return lineErrorf(r.Line, r.Name, ErrNilNotAlone, "alternative %d", altIdx+1)
			}
		}
		return nil
	}
	if alt[0] == keyword && altIdx != len(r.Alternatives)-1 {
		return lineErrorf(r.Line, r.Name, ErrNilNotLast, "found at alternative %d of %d", altIdx+1, len(r.Alternatives))
	}
	return nil
}

func (g *Grammar) resolve(r RawRule, alt []string) (Production, error) {
	prod := make(Production, len(alt))
	for i, tok := range alt {
		switch {
		case tok == g.opts.NilKeyword:
			prod[i] = Symbol{Kind: Empty, Text: tok}
		case isRuleName(tok):
			id, ok := g.byName[tok]
			if !ok {
				return nil, lineErrorf(r.Line, r.Name, ErrUndefinedRule, "%s", tok)
			}
			prod[i] = Symbol{Kind: NonTerminalRef, Text: tok, Ref: id}
		default:
			prod[i] = Symbol{Kind: Terminal, Text: tok}
		}
	}
	return prod, nil
}
