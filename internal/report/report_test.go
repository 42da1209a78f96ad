package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bls2brs/internal/diagnostic"
)

func TestRecordFailureCountsRepeats(t *testing.T) {
	r := New()

	r.RecordFailure("Foobar 9000")
	assert.Equal(t, 1, r.Unmapped["Foobar 9000"])

	r.RecordFailure("Foobar 9000")
	assert.Equal(t, 2, r.Unmapped["Foobar 9000"])
	assert.Equal(t, 2, r.Failure)
	assert.Equal(t, 0, r.Success)
}

func TestRecordSuccess(t *testing.T) {
	r := New()

	r.RecordSuccess("basic")
	r.RecordSuccess("basic")
	r.RecordSuccess("literal")

	assert.Equal(t, 3, r.Success)
	assert.Equal(t, map[string]int{"basic": 2, "literal": 1}, r.Rules)
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, []NameCount{{Name: "basic", Count: 2}, {Name: "literal", Count: 1}}, r.RuleCounts())
}

func TestRecordRejection(t *testing.T) {
	r := New()

	r.RecordRejection("0h Panel 1x")
	r.RecordRejection("0h Panel 1x")
	r.RecordFailure("Foobar 9000")

	assert.Equal(t, 3, r.Failure)
	assert.Equal(t, 2, r.Unmapped["0h Panel 1x"])
	assert.Equal(t, map[string]int{"0h Panel 1x": 2}, r.Rejected)

	d := r.Diagnostics(nil)
	require.Len(t, d.Warnings, 2)
	assert.Equal(t, diagnostic.CodeRejected, d.Warnings[0].Code)
	assert.Equal(t, "0h Panel 1x", d.Warnings[0].Brick)
	assert.Equal(t, diagnostic.CodeUnmapped, d.Warnings[1].Code)
}

func TestNamesOrder(t *testing.T) {
	r := New()

	for _, name := range []string{"b", "a", "c", "c", "a", "c"} {
		r.RecordFailure(name)
	}

	assert.Equal(t, []NameCount{
		{Name: "c", Count: 3},
		{Name: "a", Count: 2},
		{Name: "b", Count: 1},
	}, r.Names())

	r.RecordFailure("b")
	names := r.Names()
	assert.Equal(t, "a", names[1].Name)
	assert.Equal(t, "b", names[2].Name)
}

func TestDiagnostics(t *testing.T) {
	r := New()
	r.RecordFailure("2x2 Rnd")
	r.RecordFailure("2x2 Rnd")
	r.RecordFailure("Foobar 9000")

	d := r.Diagnostics(Suggester([]string{"2x2 Round", "Castle Wall"}, 3))

	require.Len(t, d.Warnings, 2)
	assert.False(t, d.HasErrors())

	first := d.Warnings[0]
	assert.Equal(t, "2x2 Rnd", first.Brick)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, []string{"2x2 Round"}, first.Suggestions)
	assert.False(t, first.Ambiguous)

	assert.Empty(t, d.Warnings[1].Suggestions)

	plain := r.Diagnostics(nil)
	assert.Nil(t, plain.Warnings[0].Suggestions)
}

func TestWriteSummary(t *testing.T) {
	r := New()
	r.RecordSuccess("basic")
	r.RecordFailure("Foobar 9000")
	r.RecordFailure("Foobar 9000")
	r.RecordFailure("Other")

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf, 1, nil, diagnostic.Diagnostics{}))

	assert.Equal(t,
		"1 bricks mapped, 3 unmapped (2 unique)\n"+
			"by rule: basic 1\n"+
			"  \"Foobar 9000\" (x2): [unmapped] no rule maps this brick\n",
		buf.String())
}

func TestWriteSummaryListsErrorsAndAmbiguity(t *testing.T) {
	r := New()
	r.RecordRejection("1x3 Wedge")

	var extra diagnostic.Diagnostics
	extra.AddError(diagnostic.CodeRuleFile, "failed to read rule file", "")

	suggest := Suggester([]string{"1x2 Wedge", "1x4 Wedge"}, 2)

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf, 0, suggest, extra))

	assert.Equal(t,
		"0 bricks mapped, 1 unmapped (1 unique)\n"+
			"  error: [rule-file] failed to read rule file\n",
		buf.String())

	buf.Reset()
	require.NoError(t, r.WriteSummary(&buf, -1, suggest, extra))

	assert.Contains(t, buf.String(),
		`"1x3 Wedge" (x1): [rejected] a pattern rule matched but rejected the brick (did you mean one of: 1x2 Wedge, 1x4 Wedge)`)
	assert.Len(t, extra.Errors, 1)
}
