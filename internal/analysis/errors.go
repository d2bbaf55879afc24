package analysis

import "errors"

var (
	// ErrUnknownRule is returned when a query names a rule the grammar does
	// not define.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrAmbiguousFirst is returned when a terminal appears more than once
	// in the FIRST groups of a rule.
	ErrAmbiguousFirst = errors.New("ambiguous FIRST set")
	// ErrLeftRecursion is returned when computing FIRST re-enters a rule.
	ErrLeftRecursion = errors.New("left recursion")
)
