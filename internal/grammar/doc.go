// Package grammar holds the data model for context-free grammars written in the
// line-oriented rule notation, together with the text parser and the builder
// that resolves rule references.
//
// The notation is one rule per line:
//
//	Statement = "return" Expression | $Id Statement'   // trailing comment
//
// A token starting with an uppercase ASCII letter refers to another rule, the
// keyword Nil marks an empty alternative, and every other token is an opaque
// terminal. Construction happens in two steps: Parse produces a RawTable of
// unresolved tokens, and Build turns it into an immutable Grammar. New does
// both.
//
// A Grammar stores its rules in a single arena indexed by RuleID. Productions
// refer to other rules by RuleID rather than by pointer, so recursive grammars
// never form ownership cycles.
package grammar
