package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRule is returned for a line that is not of the form
	// `Name = alternatives`.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrDuplicateRule is returned when the same rule name is defined twice.
	ErrDuplicateRule = errors.New("duplicate rule")
	// ErrUndefinedRule is returned when a production refers to a rule that
	// has no definition.
	ErrUndefinedRule = errors.New("undefined rule")
	// ErrNilNotAlone is returned when the empty keyword shares an
	// alternative with other symbols.
	ErrNilNotAlone = errors.New("empty marker must be the only symbol of its alternative")
	// ErrNilNotLast is returned when an empty alternative is followed by
	// other alternatives.
	ErrNilNotLast = errors.New("empty alternative must be the last alternative")
)

// LineError reports a construction failure together with the source line it
// was found on.
type LineError struct {
	Line   int    // 1-based line in the grammar text.
	Rule   string // Rule being parsed, empty if the line has no usable name.
	Err    error  // One of the package sentinel errors.
	Detail string
}

func (e *LineError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Rule != "" {
		msg += fmt.Sprintf(": rule %s", e.Rule)
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErrorf(line int, rule string, err error, format string, args ...any) *LineError {
	return &LineError{Line: line, Rule: rule, Err: err, Detail: fmt.Sprintf(format, args...)}
}
