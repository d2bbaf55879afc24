package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/wheybags/wlang/internal/analysis"
	"modernc.org/mathutil"
	"modernc.org/strutil"
)

// Format selects the rendering of Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid report format %q: must be %q or %q", s, FormatText, FormatJSON)
	}
}

// Document is the analysis of one named grammar.
type Document struct {
	Name   string           `json:"name"`
	Source string           `json:"source,omitempty"`
	Result *analysis.Result `json:"result"`
}

// Write renders docs to w in the given format.
func Write(w io.Writer, format Format, docs ...Document) error {
	switch format {
	case FormatText, "":
		return Text(w, docs...)
	case FormatJSON:
		return JSON(w, docs...)
	default:
		return fmt.Errorf("invalid report format %q", format)
	}
}

// Text writes the console layout. With more than one document each one is
// nested under a header naming the grammar.
func Text(w io.Writer, docs ...Document) error {
	f := strutil.IndentFormatter(w, "    ")
	nested := len(docs) > 1
	for i, doc := range docs {
		if i > 0 {
			if _, err := f.Format("\n"); err != nil {
				return err
			}
		}
		if nested {
			if _, err := f.Format("%s:\n%i", header(doc)); err != nil {
				return err
			}
		}
		if err := writeResult(f, doc.Result); err != nil {
			return err
		}
		if nested {
			if _, err := f.Format("%u"); err != nil {
				return err
			}
		}
	}
	return nil
}

func header(doc Document) string {
	if doc.Source == "" || doc.Source == doc.Name {
		return doc.Name
	}
	return fmt.Sprintf("%s (%s)", doc.Name, doc.Source)
}

func writeResult(f strutil.Formatter, res *analysis.Result) error {
	width := 0
	for _, rr := range res.Rules {
		width = mathutil.Max(width, len(rr.Name))
	}

	sections := []struct {
		title string
		value func(analysis.RuleResult) string
	}{
		{"Firsts", func(rr analysis.RuleResult) string { return firstString(rr.First) }},
		{"Follows", func(rr analysis.RuleResult) string { return strings.Join(rr.Follow, " ") }},
		{"Nullable", func(rr analysis.RuleResult) string { return yesNo(rr.Nullable) }},
	}

	for i, sec := range sections {
		if i > 0 {
			if _, err := f.Format("\n"); err != nil {
				return err
			}
		}
		if _, err := f.Format("%s:\n%i", sec.title); err != nil {
			return err
		}
		for _, rr := range res.Rules {
			if _, err := f.Format("%-*s =%s\n", width, rr.Name, lead(sec.value(rr))); err != nil {
				return err
			}
		}
		if _, err := f.Format("%u"); err != nil {
			return err
		}
	}

	if len(res.Warnings) == 0 {
		return nil
	}
	if _, err := f.Format("\nWarnings:\n%i"); err != nil {
		return err
	}
	for _, warn := range res.Warnings {
		if _, err := f.Format("%s\n", warn); err != nil {
			return err
		}
	}
	_, err := f.Format("%u")
	return err
}

// firstString joins the terminals of each group with spaces and the groups
// with " | ".
func firstString(groups [][]string) string {
	parts := make([]string, len(groups))
	for i, group := range groups {
		parts[i] = strings.Join(group, " ")
	}
	return strings.Join(parts, " | ")
}

func lead(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// JSON writes docs as an indented JSON array.
func JSON(w io.Writer, docs ...Document) error {
	if docs == nil {
		docs = []Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Summary returns a one-line tally of docs, for example
// "2 grammars, 1,204 rules (31 nullable), 1 warning".
func Summary(docs ...Document) string {
	rules, nullable, warnings := 0, 0, 0
	for _, doc := range docs {
		if doc.Result == nil {
			continue
		}
		rules += len(doc.Result.Rules)
		nullable += doc.Result.Nullable()
		warnings += len(doc.Result.Warnings)
	}
	return fmt.Sprintf("%s, %s (%s nullable), %s",
		count(len(docs), "grammar"),
		count(rules, "rule"),
		humanize.Comma(int64(nullable)),
		count(warnings, "warning"),
	)
}

func count(n int, singular string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, singular, "")
}
