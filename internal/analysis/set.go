package analysis

import (
	"maps"
	"slices"
	"strings"
)

// TerminalSet is an unordered set of terminal tokens.
type TerminalSet map[string]struct{}

// NewTerminalSet returns a set holding items.
func NewTerminalSet(items ...string) TerminalSet {
	s := make(TerminalSet, len(items))
	s.Add(items...)
	return s
}

// Add inserts items into s.
func (s TerminalSet) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Merge adds every element of other and reports whether s grew.
func (s TerminalSet) Merge(other TerminalSet) bool {
	grew := false
	for item := range other {
		if _, ok := s[item]; !ok {
			s[item] = struct{}{}
			grew = true
		}
	}
	return grew
}

// Contains reports whether item is in s.
func (s TerminalSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the elements in lexical order. The result is never nil.
func (s TerminalSet) Sorted() []string {
	out := slices.AppendSeq(make([]string, 0, len(s)), maps.Keys(s))
	slices.Sort(out)
	return out
}

func (s TerminalSet) String() string {
	return "{" + strings.Join(s.Sorted(), " ") + "}"
}
