// Package analysis computes the LL(1) static analyses of a grammar.Grammar:
// nullability, per-alternative FIRST sets and FOLLOW sets.
//
// An Analyzer never mutates its grammar and allocates fresh state for every
// query, so repeated queries return identical results and one Analyzer may be
// shared between goroutines.
//
// Recursion is guarded on every query. Nullability treats a rule that is
// already being evaluated as not nullable along that path. FIRST fails with
// ErrLeftRecursion when it re-enters a rule, since that only happens for
// left-recursive grammars. FOLLOW skips rules already on the active call
// chain; FollowFixedPoint solves all FOLLOW sets by iterating to a fixed point
// instead.
//
// Lint and Analyze work on the whole grammar: Lint reports unreachable rules
// and left-recursive cycles found on the rule reference graph, and Analyze
// collects every per-rule result in declaration order.
package analysis
