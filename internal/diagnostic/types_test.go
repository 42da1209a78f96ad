package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestAddAndMerge(t *testing.T) {
	var d Diagnostics

	d.Add(Diagnostic{Severity: SeverityWarning, Code: CodeUnmapped, Message: "no rule matches", Brick: "Foobar 9000"})
	d.Add(Diagnostic{Severity: SeverityError, Code: CodeRuleFile, Message: "asset is required", Brick: "X"})
	d.Add(Diagnostic{Code: CodeRejected, Message: "bad size", Brick: "0h Panel 1x"})

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 2)
	assert.True(t, d.HasErrors())

	var other Diagnostics
	other.AddError(CodeRejected, "bad size", "0h Panel 2x")
	d.Merge(other)

	require.Len(t, d.Errors, 2)
	assert.Equal(t, "0h Panel 2x", d.Errors[1].Brick)
	assert.Equal(t, SeverityError, d.Errors[1].Severity)
}

func TestErrorJoinsErrorDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.Add(Diagnostic{Code: CodeUnmapped, Message: "ignored", Brick: "W"})
	assert.NoError(t, d.Error())

	d.AddError(CodeRuleFile, "first", "A")
	d.AddError(CodeRuleFile, "second", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, `"A": [rule-file] first; [rule-file] second`, err.Error())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnmapped,
		Message:     "no rule matches",
		Brick:       "2x2 Rnd",
		Count:       3,
		Suggestions: []string{"2x2 Round", "2x2F Round"},
	}

	assert.Equal(t, `"2x2 Rnd" (x3): [unmapped] no rule matches (did you mean: 2x2 Round, 2x2F Round)`, d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())

	d.Ambiguous = true
	assert.Equal(t, `"2x2 Rnd" (x3): [unmapped] no rule matches (did you mean one of: 2x2 Round, 2x2F Round)`, d.String())
}
