// Package report tallies the outcome of a conversion run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"bls2brs/internal/diagnostic"
	"bls2brs/internal/match"
)

// Report counts mapped and unmapped source bricks.
type Report struct {
	// Success is the number of source bricks that produced output.
	Success int
	// Failure is the number of source bricks that had no usable rule.
	Failure int
	// Unmapped counts failures per UI name.
	Unmapped map[string]int
	// Rejected counts the failures per UI name that a pattern rule matched
	// but refused. Every entry is also counted in Unmapped.
	Rejected map[string]int
	// Rules counts successes per rule name.
	Rules map[string]int
}

// NameCount is one entry of Names.
type NameCount struct {
	Name  string
	Count int
}

// SuggestFunc returns candidate names for an unmapped brick.
type SuggestFunc func(name string) match.Suggestion

// New creates an empty report.
func New() *Report {
	return &Report{
		Unmapped: make(map[string]int),
		Rejected: make(map[string]int),
		Rules:    make(map[string]int),
	}
}

// RecordSuccess counts a source brick mapped by rule.
func (r *Report) RecordSuccess(rule string) {
	r.Success++
	r.Rules[rule]++
}

// RecordFailure counts an unmapped source brick.
func (r *Report) RecordFailure(name string) {
	r.Failure++
	r.Unmapped[name]++
}

// RecordRejection counts a source brick whose matching pattern rule
// rejected it.
func (r *Report) RecordRejection(name string) {
	r.RecordFailure(name)
	r.Rejected[name]++
}

// Total returns the number of source bricks seen.
func (r *Report) Total() int {
	return r.Success + r.Failure
}

// Names returns the unmapped names, most frequent first, ties by name.
func (r *Report) Names() []NameCount {
	return sortedCounts(r.Unmapped)
}

// RuleCounts returns the successes per rule, most used first, ties by name.
func (r *Report) RuleCounts() []NameCount {
	return sortedCounts(r.Rules)
}

func sortedCounts(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Diagnostics returns one warning per unmapped name in Names order. suggest
// may be nil.
func (r *Report) Diagnostics(suggest SuggestFunc) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, nc := range r.Names() {
		diag := diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeUnmapped,
			Message:  "no rule maps this brick",
			Brick:    nc.Name,
			Count:    nc.Count,
		}

		if r.Rejected[nc.Name] > 0 {
			diag.Code = diagnostic.CodeRejected
			diag.Message = "a pattern rule matched but rejected the brick"
		}

		if suggest != nil {
			s := suggest(nc.Name)
			diag.Suggestions, diag.Ambiguous = s.Names, s.Ambiguous
		}

		d.Add(diag)
	}

	return d
}

// Suggester returns a SuggestFunc offering up to n of the known names.
func Suggester(known []string, n int) SuggestFunc {
	return func(name string) match.Suggestion {
		return match.Suggest(name, known, n)
	}
}

// WriteSummary prints the counts, the per-rule tally, every error of
// extra and up to top unmapped names.
func (r *Report) WriteSummary(w io.Writer, top int, suggest SuggestFunc, extra diagnostic.Diagnostics) error {
	_, err := fmt.Fprintf(w, "%d bricks mapped, %d unmapped (%d unique)\n",
		r.Success, r.Failure, len(r.Unmapped))
	if err != nil {
		return err
	}

	if rules := r.RuleCounts(); len(rules) > 0 {
		parts := make([]string, len(rules))
		for i, nc := range rules {
			parts[i] = fmt.Sprintf("%s %d", nc.Name, nc.Count)
		}

		if _, err := fmt.Fprintf(w, "by rule: %s\n", strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	var d diagnostic.Diagnostics

	d.Merge(extra)
	d.Merge(r.Diagnostics(suggest))

	for _, e := range d.Errors {
		if _, err := fmt.Fprintf(w, "  error: %s\n", e.String()); err != nil {
			return err
		}
	}

	warnings := d.Warnings
	if top >= 0 && len(warnings) > top {
		warnings = warnings[:top]
	}

	for _, diag := range warnings {
		if _, err := fmt.Fprintf(w, "  %s\n", diag.String()); err != nil {
			return err
		}
	}

	return nil
}
