package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeUnmapped = "unmapped"
	CodeRejected = "rejected"
	CodeRuleFile = "rule-file"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Brick is the UI name this relates to (if any).
	Brick string
	// Count is how many bricks the diagnostic covers (0 when not counted).
	Count int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
	// Ambiguous marks suggestions that score too close to rank.
	Ambiguous bool
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, brick string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Brick:    brick,
	})
}

// Add appends a prepared diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
	} else {
		d.Warnings = append(d.Warnings, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if
// there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string, for example
// `"2x2 Rnd" (x3): [unmapped] no rule matches (did you mean: 2x2 Round)`.
func (d Diagnostic) String() string {
	var prefix string

	if d.Brick != "" {
		prefix = fmt.Sprintf("%q", d.Brick)
		if d.Count > 0 {
			prefix += fmt.Sprintf(" (x%d)", d.Count)
		}
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		lead := "did you mean"
		if d.Ambiguous {
			lead += " one of"
		}

		msg += " (" + lead + ": " + strings.Join(d.Suggestions, ", ") + ")"
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
