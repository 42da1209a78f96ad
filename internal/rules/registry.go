package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"bls2brs/internal/brick"
)

var (
	// ErrUnmapped is returned when no rule maps a brick.
	ErrUnmapped = errors.New("unmapped brick")
	// ErrRejected is returned when the first matching pattern rejects the
	// captured parameters. It wraps ErrUnmapped.
	ErrRejected = fmt.Errorf("%w: rejected by pattern rule", ErrUnmapped)
)

// LiteralRule is the rule name reported for exact-name matches.
const LiteralRule = "literal"

// Generator builds descriptors from the captures of a matched pattern.
// It returns false when the captures describe an invalid brick.
type Generator func(m Match, src *brick.Source) ([]brick.Descriptor, bool)

// PatternRule pairs a regular expression with its generator.
type PatternRule struct {
	Name     string
	Pattern  *regexp.Regexp
	Generate Generator
}

// Resolution is the outcome of a successful lookup.
type Resolution struct {
	// Rule is LiteralRule or the name of the pattern rule that matched.
	Rule        string
	Descriptors []brick.Descriptor
}

// Registry holds literal and pattern rules. It is safe for concurrent
// reads once populated.
type Registry struct {
	literals map[string][]brick.Descriptor
	patterns []PatternRule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		literals: make(map[string][]brick.Descriptor),
	}
}

// AddLiteral maps the exact UI name to descriptors, replacing any previous
// entry for name.
func (r *Registry) AddLiteral(name string, ds ...brick.Descriptor) {
	r.literals[name] = brick.CloneAll(ds)
}

// AddPattern appends a pattern rule; it is tried after every rule added
// before it.
func (r *Registry) AddPattern(rule PatternRule) {
	if rule.Pattern == nil || rule.Generate == nil {
		panic(fmt.Sprintf("rules: pattern rule %q needs a pattern and a generator", rule.Name))
	}

	r.patterns = append(r.patterns, rule)
}

// Has returns true if name has a literal rule.
func (r *Registry) Has(name string) bool {
	_, ok := r.literals[name]
	return ok
}

// Names returns the literal rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.literals))
	for name := range r.literals {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Patterns returns the pattern rules in resolution order.
func (r *Registry) Patterns() []PatternRule {
	out := make([]PatternRule, len(r.patterns))
	copy(out, r.patterns)

	return out
}

// Resolve finds the descriptors for src. The returned descriptors are
// owned by the caller. Errors wrap ErrUnmapped.
func (r *Registry) Resolve(src *brick.Source) (Resolution, error) {
	if ds, ok := r.literals[src.Name]; ok {
		if len(ds) == 0 {
			return Resolution{}, fmt.Errorf("%w: %q has an empty literal rule", ErrUnmapped, src.Name)
		}

		return Resolution{Rule: LiteralRule, Descriptors: brick.CloneAll(ds)}, nil
	}

	for _, p := range r.patterns {
		idx := p.Pattern.FindStringSubmatchIndex(src.Name)
		if idx == nil {
			continue
		}

		ds, ok := p.Generate(Match{input: src.Name, idx: idx, re: p.Pattern}, src)
		if !ok || len(ds) == 0 {
			return Resolution{}, fmt.Errorf("%w: %q by %s", ErrRejected, src.Name, p.Name)
		}

		return Resolution{Rule: p.Name, Descriptors: ds}, nil
	}

	return Resolution{}, fmt.Errorf("%w: %q", ErrUnmapped, src.Name)
}

// Match exposes the capture groups of a pattern match.
type Match struct {
	input string
	idx   []int
	re    *regexp.Regexp
}

// Has returns true if group i participated in the match.
func (m Match) Has(i int) bool {
	return 2*i+1 < len(m.idx) && m.idx[2*i] >= 0
}

// Group returns the text of group i, or "" when it did not participate.
func (m Match) Group(i int) string {
	if !m.Has(i) {
		return ""
	}

	return m.input[m.idx[2*i]:m.idx[2*i+1]]
}

// Uint parses group i as a decimal uint32. It returns false when the
// group is missing or out of range.
func (m Match) Uint(i int) (uint32, bool) {
	if !m.Has(i) {
		return 0, false
	}

	v, err := strconv.ParseUint(m.Group(i), 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}

// HasNamed returns true if the named group participated in the match.
func (m Match) HasNamed(name string) bool {
	i := m.re.SubexpIndex(name)
	return i >= 0 && m.Has(i)
}

// Named returns the text of the named group.
func (m Match) Named(name string) string {
	i := m.re.SubexpIndex(name)
	if i < 0 {
		return ""
	}

	return m.Group(i)
}

// NamedUint parses the named group as a decimal uint32.
func (m Match) NamedUint(name string) (uint32, bool) {
	i := m.re.SubexpIndex(name)
	if i < 0 {
		return 0, false
	}

	return m.Uint(i)
}
